// Package escape classifies points of the complex plane by whether their orbit
// under a recurrence leaves a bounding box within an iteration budget.
package escape

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/escape-bitmap/pkg/transforms"
)

// MaxIterations is the largest iteration budget accepted.
const MaxIterations = 2000

var ErrIterations = errors.New("iteration budget out of range")

// ValidateIterations rejects budgets outside [0, MaxIterations]. Budgets are
// never clamped.
func ValidateIterations(n int) error {
	if n < 0 || n > MaxIterations {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIterations, n, MaxIterations)
	}
	return nil
}

// Membership is the result of classifying a sample.
type Membership int

const (
	// Out means the orbit left the box.
	Out Membership = iota
	// In means the orbit stayed in the box for the whole budget.
	In
)

func (m Membership) String() string {
	switch m {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Membership(%d)", int(m))
	}
}

// A Box is an axis-aligned rectangle of the complex plane.
type Box struct {
	XLower, XUpper float64
	YLower, YUpper float64
}

var ErrBox = errors.New("invalid box")

func (b Box) Validate() error {
	for _, v := range []float64{b.XLower, b.XUpper, b.YLower, b.YUpper} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrBox, b)
		}
	}
	if b.XLower >= b.XUpper || b.YLower >= b.YUpper {
		return fmt.Errorf("%w: empty range in %v", ErrBox, b)
	}
	return nil
}

// Escaped reports whether z lies outside the box. Points on an edge are still
// inside.
func (b Box) Escaped(z complex128) bool {
	x, y := real(z), imag(z)
	return x > b.XUpper || x < b.XLower || y > b.YUpper || y < b.YLower
}

func (b Box) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", b.XLower, b.XUpper, b.YLower, b.YUpper)
}

// An Evaluator classifies samples. The zero Recurrence is transforms.Mandelbrot.
type Evaluator struct {
	Box        Box
	Iterations int
	Recurrence transforms.Recurrence
}

// Classify reports whether the orbit of c stays in e.Box for e.Iterations steps.
func (e Evaluator) Classify(c complex128) Membership {
	m, _ := e.Escape(c)
	return m
}

// Escape is Classify, also returning how many iterations were performed.
// Iteration stops on the first step that leaves the box.
func (e Evaluator) Escape(c complex128) (Membership, int) {
	r := e.Recurrence
	if r == nil {
		r = transforms.Mandelbrot{}
	}

	z := c
	for i := 0; i < e.Iterations; i++ {
		z = r.Next(z, c)
		if e.Box.Escaped(z) {
			return Out, i + 1
		}
	}

	return In, e.Iterations
}
