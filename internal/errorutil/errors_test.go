package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
)

type malformedErr struct{}

func (malformedErr) Error() string   { return "malformed" }
func (malformedErr) Malformed() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const sentinel errorutil.Error = "sentinel"
	cause := errors.New("cause")

	cases := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, "sentinel"},
		{"error", []any{cause}, "sentinel: cause"},
		{"wrapped", []any{fmt.Errorf("x: %w", sentinel)}, "x: sentinel"},
		{"string", []any{"bad id"}, "sentinel: bad id"},
		{"format", []any{"bad id %d", 42}, "sentinel: bad id 42"},
		{"other", []any{42}, "sentinel"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if got := err.Error(); got != c.want {
				t.Errorf("err.Error() = %q, want %q", got, c.want)
			}
			if !errors.Is(err, sentinel) {
				t.Errorf("errors.Is(err, sentinel) = false, want true")
			}
		})
	}
}

func TestIsMalformedErr(t *testing.T) {
	t.Parallel()

	if !errorutil.IsMalformedErr(fmt.Errorf("field: %w", malformedErr{})) {
		t.Error("errorutil.IsMalformedErr(wrapped) = false, want true")
	}
	if errorutil.IsMalformedErr(errorutil.ErrInvalidArgument) {
		t.Error("errorutil.IsMalformedErr(ErrInvalidArgument) = true, want false")
	}
	if errorutil.IsMalformedErr(nil) {
		t.Error("errorutil.IsMalformedErr(nil) = true, want false")
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("first"), errors.New("second")

	if err := errorutil.JoinPrefix("load", nil, nil); err != nil {
		t.Errorf("errorutil.JoinPrefix(nils) = %v, want nil", err)
	}
	if got, want := errorutil.JoinPrefix("load:", e1).Error(), "load: first"; got != want {
		t.Errorf("errorutil.JoinPrefix(e1) = %q, want %q", got, want)
	}

	err := errorutil.JoinPrefix("load", e1, nil, e2)
	if got, want := err.Error(), "load:\n  - first\n  - second"; got != want {
		t.Errorf("errorutil.JoinPrefix(e1, e2) = %q, want %q", got, want)
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("errorutil.JoinPrefix(e1, e2) does not wrap both errors")
	}
}
