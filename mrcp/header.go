package mrcp

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/gomrcp/internal/util"
)

func headerName[T ~int](names []string, id T) string {
	if id < 0 || int(id) >= len(names) {
		return "Unknown-Header(" + strconv.Itoa(int(id)) + ")"
	}
	return names[id]
}

func headerIDByName[T ~int](names []string, name string) (T, bool) {
	name = util.TrimSP(name)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return T(i), true
		}
	}
	return -1, false
}
