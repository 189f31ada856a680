package segment

import (
	"fmt"
	"strconv"
	"strings"

	"spritecut/sprite"
)

// parseColor reads #RGB, #RGBA, #RRGGBB and #RRGGBBAA colors, or a plain
// decimal value for gray and paletted sheets.
func parseColor(s string) (sprite.Color, error) {
	if !strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return sprite.Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB, #RRGGBBAA or a number: %w", s, err)
		}
		return sprite.Value(uint16(v)), nil
	}

	hex := s[1:]
	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return sprite.Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	var ch [4]uint8
	n := len(hex) / digits
	for i := range n {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return sprite.Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		if digits == 1 {
			v |= v << 4
		}
		ch[i] = uint8(v)
	}

	if n == 3 {
		return sprite.RGB(ch[0], ch[1], ch[2]), nil
	}
	return sprite.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}
