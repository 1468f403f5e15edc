package transforms

// Mandelbrot is z -> z^2 + c.
type Mandelbrot struct{}

func (Mandelbrot) Next(z, c complex128) complex128 {
	return square(z) + c
}

// square expands z^2 into its parts. The explicit float64 conversions force
// each product to be rounded, so the compiler may not fuse them into FMAs and
// results match on every architecture.
func square(z complex128) complex128 {
	x, y := real(z), imag(z)
	return complex(float64(x*x)-float64(y*y), float64(2*x*y))
}
