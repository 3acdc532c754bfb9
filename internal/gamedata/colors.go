package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (or "RRGGBB") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	r, g, b, err := parseRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return tcell.NewRGBColor(r, g, b), nil
}

// parseRGB splits a hex color into its channels.
func parseRGB(hex string) (r, g, b int32, err error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color length: %q", hex)
	}

	var channels [3]int32
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid channel %d in %q: %w", i, hex, err)
		}
		channels[i] = int32(v)
	}
	return channels[0], channels[1], channels[2], nil
}
