package qr

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts SVG color names ("black", "navy") and hex notation
// (#rgb, #rgba, #rrggbb, #rrggbbaa).
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if !strings.HasPrefix(name, "#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	digits := name[1:]
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// ParseColors parses every entry of list, failing on the first bad one.
func ParseColors(list []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
