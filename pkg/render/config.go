package render

import (
	"errors"
	"fmt"

	"github.com/willbeason/escape-bitmap/pkg/bitmap"
	"github.com/willbeason/escape-bitmap/pkg/escape"
	"github.com/willbeason/escape-bitmap/pkg/transforms"
)

const (
	Width  = 1200
	Height = 800

	Iterations = 100
)

// DefaultBox is both the rendered region and the escape box.
var DefaultBox = escape.Box{
	XLower: -2.0,
	XUpper: 1.0,
	YLower: -1.0,
	YUpper: 1.0,
}

var ErrColors = errors.New("inside and outside colors must differ")

// Config is everything needed to render one image. It is not modified once
// rendering starts.
type Config struct {
	// Box is the region of the plane mapped onto the image. Orbits leaving it
	// count as escaped.
	Box escape.Box

	Width, Height int

	Iterations int

	// Inside colors samples whose orbit stays in Box, Outside the rest.
	Inside, Outside bitmap.Color

	// Recurrence defaults to transforms.Mandelbrot if nil.
	Recurrence transforms.Recurrence
}

func DefaultConfig() Config {
	return Config{
		Box:        DefaultBox,
		Width:      Width,
		Height:     Height,
		Iterations: Iterations,
		Inside:     bitmap.Black,
		Outside:    bitmap.White,
		Recurrence: transforms.Mandelbrot{},
	}
}

func (c Config) Validate() error {
	if _, err := bitmap.ImageBytes(c.Width, c.Height); err != nil {
		return err
	}
	if err := c.Box.Validate(); err != nil {
		return err
	}
	if err := escape.ValidateIterations(c.Iterations); err != nil {
		return err
	}
	if c.Inside == c.Outside {
		return fmt.Errorf("%w: both %v", ErrColors, c.Inside)
	}
	return nil
}

// Point maps pixel (px, py) to the plane. Pixel (0, 0) is the box's lower
// corner.
func (c Config) Point(px, py int) complex128 {
	xStep := (c.Box.XUpper - c.Box.XLower) / float64(c.Width)
	yStep := (c.Box.YUpper - c.Box.YLower) / float64(c.Height)

	return complex(float64(px)*xStep+c.Box.XLower, float64(py)*yStep+c.Box.YLower)
}

func (c Config) Evaluator() escape.Evaluator {
	return escape.Evaluator{
		Box:        c.Box,
		Iterations: c.Iterations,
		Recurrence: c.Recurrence,
	}
}
