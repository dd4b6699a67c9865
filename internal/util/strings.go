// Package util provides common utility functions.
package util

import (
	"strings"
	"sync"
	"unicode/utf8"
)

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// Ellipsis cuts s to at most maxLen runes and marks the cut with "...".
// Invalid UTF-8 sequences count as one rune each.
func Ellipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[0:maxLen]) + "..."
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
