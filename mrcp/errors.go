package mrcp

import (
	"fmt"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
)

// Common errors.
const (
	ErrInvalidArgument           = errorutil.ErrInvalidArgument
	ErrUnknownHeader       Error = "unknown header"
	ErrUnsupportedResource Error = "unsupported resource"
)

// Text errors.
const (
	// ErrAbsent is returned when a span holds no bytes.
	ErrAbsent Error = "value absent"
	// ErrMalformedText is returned when a span holds bytes that are not valid UTF-8.
	ErrMalformedText Error = "malformed text"
)

// Error represents an MRCP error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// MalformedTextError is returned by [Span.Decode] for bytes that are not valid UTF-8.
// It matches [ErrMalformedText] with [errors.Is].
type MalformedTextError struct {
	// Offset is the index of the first byte of the first invalid sequence.
	Offset int
}

func (err *MalformedTextError) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrMalformedText, err.Offset)
}

func (*MalformedTextError) Malformed() bool { return true }

func (*MalformedTextError) Is(target error) bool { return target == ErrMalformedText } //nolint:errorlint
