package pdfdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Colors configures the page number and title colors of a document.
type Colors struct {
	PageNum Color
	Title   Color
}

// ParseColor parses "#rrggbb" or "#rgb" hex notation.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		var parts [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string(hex[i]), 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			parts[i] = uint8(v * 16 | v)
		}
		return Color{parts[0], parts[1], parts[2]}, nil
	case 6:
		var parts [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			parts[i] = uint8(v)
		}
		return Color{parts[0], parts[1], parts[2]}, nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", s)
	}
}
