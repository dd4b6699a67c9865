// Package constraints provides type constraints shared by the MRCP packages.
package constraints

// Byteseq is either a string or a byte slice holding text.
type Byteseq interface {
	~string | ~[]byte
}
