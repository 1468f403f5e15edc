// Package render evaluates every pixel of an image and hands the result to the
// bitmap encoder.
package render

import (
	"github.com/willbeason/escape-bitmap/pkg/bitmap"
	"github.com/willbeason/escape-bitmap/pkg/escape"
)

// A Grid is a rendered image, row-major with row 0 at the box's lower edge.
type Grid struct {
	Width, Height int
	Pixels        []bitmap.Color

	// Inside is the number of pixels classified escape.In.
	Inside int
}

// Render classifies every pixel of cfg.
func Render(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := cfg.Evaluator()
	g := &Grid{
		Width:  cfg.Width,
		Height: cfg.Height,
		Pixels: make([]bitmap.Color, cfg.Width*cfg.Height),
	}

	for py := 0; py < cfg.Height; py++ {
		row := g.Pixels[py*cfg.Width : (py+1)*cfg.Width]
		for px := range row {
			if e.Classify(cfg.Point(px, py)) == escape.In {
				row[px] = cfg.Inside
				g.Inside++
			} else {
				row[px] = cfg.Outside
			}
		}
	}

	return g, nil
}

// WriteFile saves g as a bitmap at path.
func (g *Grid) WriteFile(path string) error {
	return bitmap.WriteFile(path, g.Width, g.Height, g.Pixels)
}
