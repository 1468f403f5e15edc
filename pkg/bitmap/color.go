package bitmap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Color is a 32-bit pixel value laid out as 0xRRGGBBAA. It is written to
// the file as a little-endian uint32.
type Color uint32

const (
	Black Color = 0x00000000
	Blue  Color = 0x0000FF00
	Green Color = 0x00FF0000
	Red   Color = 0xFF000000
	White Color = 0xFFFFFF00
)

var colorNames = map[string]Color{
	"black": Black,
	"blue":  Blue,
	"green": Green,
	"red":   Red,
	"white": White,
}

// ParseColor accepts a color name (black, blue, green, red, white) or a hex
// value such as 0xFFFFFF00.
func ParseColor(s string) (Color, error) {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: want a name or 0x-prefixed hex", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("0x%08x", uint32(c))
}

// RGBA implements color.Color. The low byte is ignored and the color is
// treated as opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>24) & 0xff
	g = uint32(c>>16) & 0xff
	b = uint32(c>>8) & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

var _ color.Color = Color(0)
