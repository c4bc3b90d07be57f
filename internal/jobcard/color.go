package jobcard

import (
	"strings"
	"unicode"
)

// Palette is the ordered set of logo gradients. ColorIndex depends on both
// the order and the length, so entries are only ever appended.
var Palette = [...]string{
	"from-blue-500 to-blue-600",
	"from-purple-500 to-purple-600",
	"from-orange-500 to-orange-600",
	"from-green-500 to-green-600",
	"from-red-500 to-red-600",
	"from-teal-500 to-teal-600",
}

const colorKeyLen = 8

// ColorIndex maps a job id to a Palette index. The first eight characters are
// read as a base-16 integer (longest valid hex prefix, like parseInt) and
// reduced modulo the palette size. Ids without a readable hex prefix map to 0.
func ColorIndex(id string) int {
	if id == "" {
		return 0
	}
	n, ok := parseHexPrefix(firstRunes(id, colorKeyLen))
	if !ok {
		return 0
	}
	// NaN maps to 0 above and negatives wrap, so the index is always in range.
	idx := n % int64(len(Palette))
	if idx < 0 {
		idx += int64(len(Palette))
	}
	return int(idx)
}

func ColorClass(id string) string {
	return Palette[ColorIndex(id)]
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func parseHexPrefix(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var n int64
	digits := 0
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		n = n*16 + int64(d)
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
