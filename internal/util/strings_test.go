package util_test

import (
	"testing"

	"github.com/ghettovoice/gomrcp/internal/util"
)

func TestEllipsis(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"empty", "", 3, ""},
		{"short", "abc", 3, "abc"},
		{"long", "abcdef", 3, "abc..."},
		{"multibyte", "привет", 2, "пр..."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.Ellipsis(c.in, c.max); got != c.want {
				t.Errorf("util.Ellipsis(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
			}
		})
	}
}
