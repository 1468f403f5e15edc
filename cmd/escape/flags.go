package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/willbeason/escape-bitmap/pkg/bitmap"
	"github.com/willbeason/escape-bitmap/pkg/escape"
)

var (
	_ pflag.Value = (*colorValue)(nil)
	_ pflag.Value = (*boxValue)(nil)
	_ pflag.Value = (*complexValue)(nil)
)

type colorValue bitmap.Color

func (c *colorValue) String() string {
	return bitmap.Color(*c).String()
}

func (c *colorValue) Set(s string) error {
	parsed, err := bitmap.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colorValue(parsed)
	return nil
}

func (c *colorValue) Type() string {
	return "color"
}

// parseFloats splits a comma-separated list of exactly n floats.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}

	result := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}

type boxValue escape.Box

func (b *boxValue) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.XLower, b.XUpper, b.YLower, b.YUpper)
}

func (b *boxValue) Set(s string) error {
	fs, err := parseFloats(s, 4)
	if err != nil {
		return err
	}

	box := escape.Box{XLower: fs[0], XUpper: fs[1], YLower: fs[2], YUpper: fs[3]}
	if err := box.Validate(); err != nil {
		return err
	}
	*b = boxValue(box)
	return nil
}

func (b *boxValue) Type() string {
	return "box"
}

type complexValue complex128

func (c *complexValue) String() string {
	return fmt.Sprintf("%g,%g", real(*c), imag(*c))
}

func (c *complexValue) Set(s string) error {
	fs, err := parseFloats(s, 2)
	if err != nil {
		return err
	}
	*c = complexValue(complex(fs[0], fs[1]))
	return nil
}

func (c *complexValue) Type() string {
	return "complex"
}
