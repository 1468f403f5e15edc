package transforms

import "math/cmplx"

// Julia is z -> z^2 + C for a fixed C. The starting sample only seeds z.
type Julia struct {
	C complex128
}

func (j Julia) Next(z, _ complex128) complex128 {
	return square(z) + j.C
}

// Sine is z -> z*sin(z).
type Sine struct{}

func (Sine) Next(z, _ complex128) complex128 {
	return z * cmplx.Sin(z)
}
