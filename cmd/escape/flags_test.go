package main

import (
	"testing"

	"github.com/willbeason/escape-bitmap/pkg/bitmap"
	"github.com/willbeason/escape-bitmap/pkg/escape"
)

func TestBoxValue(t *testing.T) {
	var b boxValue
	if err := b.Set("-0.8, -0.7, 0.05, 0.15"); err != nil {
		t.Fatal(err)
	}

	want := escape.Box{XLower: -0.8, XUpper: -0.7, YLower: 0.05, YUpper: 0.15}
	if escape.Box(b) != want {
		t.Errorf("got %v, want %v", escape.Box(b), want)
	}
	if got := b.String(); got != "-0.8,-0.7,0.05,0.15" {
		t.Errorf("String() = %q", got)
	}

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "1,0,0,1", "-2,1,-1,1,0"} {
		if err := b.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded, want error", bad)
		}
	}
}

func TestColorValue(t *testing.T) {
	var c colorValue
	if err := c.Set("green"); err != nil {
		t.Fatal(err)
	}
	if bitmap.Color(c) != bitmap.Green {
		t.Errorf("got %v, want green", bitmap.Color(c))
	}
	if err := c.Set("0xzz"); err == nil {
		t.Error("Set(0xzz) succeeded, want error")
	}
}

func TestComplexValue(t *testing.T) {
	var c complexValue
	if err := c.Set("0.7,0.42"); err != nil {
		t.Fatal(err)
	}
	if complex128(c) != complex(0.7, 0.42) {
		t.Errorf("got %v, want (0.7+0.42i)", complex128(c))
	}
	if err := c.Set("0.7"); err == nil {
		t.Error("Set(0.7) succeeded, want error")
	}
}

func TestParseIterations(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 100},
		{args: []string{"1"}, want: 1},
		{args: []string{"2000"}, want: 2000},
		{args: []string{"2001"}, wantErr: true},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"1e3"}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseIterations(tt.args, 100)
		if tt.wantErr != (err != nil) {
			t.Errorf("parseIterations(%v) error = %v, wantErr %t", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIterations(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}
