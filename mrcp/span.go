package mrcp

import (
	"log/slog"
	"strconv"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gomrcp/internal/constraints"
	"github.com/ghettovoice/gomrcp/internal/log"
	"github.com/ghettovoice/gomrcp/internal/util"
)

// Span is a length-delimited, not null-terminated byte range of a message.
// A nil or empty span means the value is absent, there is no empty-but-present text.
//
// A span usually borrows memory of the message [Pool] and must not be kept
// after the pool is destroyed. Use [Span.Text] to get an owned copy.
type Span []byte

// SpanOf returns a span that owns a copy of s.
func SpanOf[T constraints.Byteseq](s T) Span {
	if len(s) == 0 {
		return nil
	}
	b := make([]byte, len(s))
	copy(b, s)
	return b
}

// BorrowSpan wraps b without copying.
func BorrowSpan(b []byte) Span { return b }

func (s Span) Len() int { return len(s) }

func (s Span) IsEmpty() bool { return len(s) == 0 }

// Text returns an owned copy of the span as text.
// It reports false if the span is empty or holds bytes that are not valid UTF-8.
func (s Span) Text() (string, bool) {
	if len(s) == 0 || !utf8.Valid(s) {
		return "", false
	}
	return string(s), true
}

// Decode is like [Span.Text] but tells why the text is absent:
// [ErrAbsent] for an empty span and [*MalformedTextError] for invalid UTF-8.
func (s Span) Decode() (string, error) {
	if len(s) == 0 {
		return "", errtrace.Wrap(ErrAbsent)
	}
	if !utf8.Valid(s) {
		return "", errtrace.Wrap(&MalformedTextError{Offset: invalidOffset(s)})
	}
	return string(s), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return len(b)
}

// String returns the span text or an empty string if the span is absent or malformed.
func (s Span) String() string {
	v, _ := s.Text()
	return v
}

func (s Span) LogValue() slog.Value {
	if len(s) == 0 {
		return slog.StringValue("")
	}
	if !utf8.Valid(s) {
		return slog.StringValue(strconv.Quote(util.Ellipsis(string(s), log.MaxBytesLen)))
	}
	return log.StringValue(s).LogValue()
}

// Pair is a name/value pair of spans, e.g. a vendor-specific parameter.
type Pair struct {
	Name  Span
	Value Span
}

// NewPair creates a pair owning copies of name and value.
func NewPair[T constraints.Byteseq](name, value T) Pair {
	return Pair{Name: SpanOf(name), Value: SpanOf(value)}
}
