// Package jsonutil is the JSON codec used to render MRCP values.
package jsonutil

//go:generate errtrace -w .

import (
	"io"

	"braces.dev/errtrace"
	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.ConfigStd

func Marshal(v any) ([]byte, error) {
	return errtrace.Wrap2(defaultConfig.Marshal(v))
}

func Unmarshal(data []byte, v any) error {
	return errtrace.Wrap(defaultConfig.Unmarshal(data, v))
}

func Encode(w io.Writer, v any) error {
	enc := defaultConfig.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(v))
}
