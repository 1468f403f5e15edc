package transforms

import (
	"math/cmplx"
	"testing"
)

func TestMandelbrot_Next(t *testing.T) {
	tests := []struct {
		name string
		z, c complex128
		want complex128
	}{
		{name: "origin", z: 0, c: 0, want: 0},
		{name: "real", z: 1, c: 1, want: 2},
		{name: "imaginary", z: 1i, c: 0, want: -1},
		{name: "mixed", z: complex(1, 2), c: complex(0.5, -0.5), want: complex(-2.5, 3.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mandelbrot{}.Next(tt.z, tt.c)
			if got != tt.want {
				t.Errorf("Next(%v, %v) = %v, want %v", tt.z, tt.c, got, tt.want)
			}
		})
	}
}

func TestJulia_Next(t *testing.T) {
	j := Julia{C: complex(0.25, 0)}

	got := j.Next(0.5, complex(100, 100))
	if got != 0.5 {
		t.Errorf("Next(0.5) = %v, want 0.5", got)
	}
}

func TestSine_Next(t *testing.T) {
	z := complex(0.3, -0.2)

	got := Sine{}.Next(z, 0)
	want := z * cmplx.Sin(z)
	if got != want {
		t.Errorf("Next(%v) = %v, want %v", z, got, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		r, err := ByName(name, 0)
		if err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
		if r == nil {
			t.Errorf("ByName(%q) returned nil recurrence", name)
		}
	}

	j, err := ByName("julia", complex(0.7, 0.42))
	if err != nil {
		t.Fatal(err)
	}
	if j.(Julia).C != complex(0.7, 0.42) {
		t.Errorf("got %v, want Julia with C=(0.7+0.42i)", j)
	}

	if _, err := ByName("burning-ship", 0); err == nil {
		t.Error("ByName(burning-ship) succeeded, want error")
	}
}
