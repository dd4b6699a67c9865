// Package headers builds typed, defaulted views of MRCP message headers.
//
// A view is built once per inbound message by [NewRecogHeaders] or [NewSynthHeaders].
// It copies every value it needs out of the message, so it stays valid after the
// message pool is destroyed and can be shared between goroutines.
//
// Views keep the raw values as they were found on the message and apply defaults
// in the accessors. Absent fields, missing header blocks and values that are not
// valid UTF-8 all read as absent.
package headers

//go:generate errtrace -w .
