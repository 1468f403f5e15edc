package transforms

import "fmt"

// A Recurrence derives the next iterate of an orbit from the current iterate z
// and the sample c the orbit started from.
type Recurrence interface {
	Next(z, c complex128) complex128
}

var (
	_ Recurrence = Mandelbrot{}
	_ Recurrence = Julia{}
	_ Recurrence = Sine{}
)

// Names lists the recurrences ByName understands.
var Names = []string{"mandelbrot", "julia", "sine"}

// ByName returns the named recurrence. juliaC is only used by "julia".
func ByName(name string, juliaC complex128) (Recurrence, error) {
	switch name {
	case "mandelbrot":
		return Mandelbrot{}, nil
	case "julia":
		return Julia{C: juliaC}, nil
	case "sine":
		return Sine{}, nil
	default:
		return nil, fmt.Errorf("unknown recurrence %q, want one of %v", name, Names)
	}
}
