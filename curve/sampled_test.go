// seehuhn.de/go/colour - composable colour transforms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampled(t *testing.T) {
	c := mustSampled(t, []float64{0, 0.5, 2}, []float64{1, 2, 5})
	tests := []struct {
		x, want float64
	}{
		{0, 1},
		{0.25, 1.5},
		{0.5, 2},
		{1, 3},
		{2, 5},
	}
	for _, tt := range tests {
		if got := c.Evaluate(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Evaluate(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
	for _, x := range []float64{-0.1, 2.1, math.NaN()} {
		if got := c.Evaluate(x); !math.IsNaN(got) {
			t.Errorf("Evaluate(%g) = %g, want NaN", x, got)
		}
	}
}

func TestUniform(t *testing.T) {
	c, err := NewUniform(0, 1, []float64{0, 0.1, 0.4, 0.9, 1})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{0, 0.1, 0.4, 0.9, 1} {
		x := float64(i) / 4
		if got := c.Evaluate(x); got != want {
			t.Errorf("Evaluate(%g) = %g, want %g", x, got, want)
		}
	}
	if got := c.Evaluate(0.125); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("Evaluate(0.125) = %g, want 0.05", got)
	}
}

func TestSampledInvert(t *testing.T) {
	c := mustSampled(t, []float64{0, 1, 2}, []float64{4, 2, 1})
	if got := c.Monotonic(); got != -1 {
		t.Errorf("Monotonic() = %d, want -1", got)
	}
	inv, ok := c.Invert()
	if !ok {
		t.Fatal("not invertible")
	}
	xs, ys := inv.(*Sampled).Points()
	if d := cmp.Diff([]float64{1, 2, 4}, xs); d != "" {
		t.Errorf("inverse x-coordinates (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{2, 1, 0}, ys); d != "" {
		t.Errorf("inverse y-coordinates (-want +got):\n%s", d)
	}
	lo, hi := inv.Domain()
	if lo != 1 || hi != 4 {
		t.Errorf("inverse domain [%g, %g], want [1, 4]", lo, hi)
	}
}

func TestSampledNotMonotonic(t *testing.T) {
	cases := [][]float64{
		{0, 1, 0.5},
		{0, 0.5, 0.5, 1},
	}
	for _, ys := range cases {
		xs := make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
		c := mustSampled(t, xs, ys)
		if c.Monotonic() != 0 {
			t.Errorf("%v: reported as monotonic", ys)
		}
		if _, ok := c.Invert(); ok {
			t.Errorf("%v: reported as invertible", ys)
		}
	}
}

func TestNewSampledInvalid(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"single point", []float64{0}, []float64{0}},
		{"length mismatch", []float64{0, 1}, []float64{0, 1, 2}},
		{"unsorted", []float64{0, 2, 1}, []float64{0, 1, 2}},
		{"duplicate", []float64{0, 1, 1}, []float64{0, 1, 2}},
		{"NaN", []float64{0, 1}, []float64{0, math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSampled(tt.xs, tt.ys); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := NewUniform(1, 0, []float64{0, 1}); err == nil {
		t.Error("NewUniform: expected error for empty interval")
	}
}

func TestNewSampledCopies(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	c := mustSampled(t, xs, ys)
	ys[1] = 100
	if got := c.Evaluate(1); got != 1 {
		t.Errorf("curve changed after modifying input: Evaluate(1) = %g", got)
	}
}

func TestTable(t *testing.T) {
	// from the 8-bit to 16-bit scaling used for lut8Type tables
	table := make([]uint16, 256)
	for i := range table {
		v := uint16(i)
		table[i] = v<<8 | v
	}
	c, err := NewTable(table)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if got := c.Evaluate(x); math.Abs(got-x) > 1e-6 {
			t.Errorf("Evaluate(%g) = %g", x, got)
		}
	}

	c, err = NewTable([]uint16{0x8000})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Evaluate(0.3); math.Abs(got-float64(0x8000)/65535) > 1e-12 {
		t.Errorf("constant table: got %g", got)
	}

	if _, err := NewTable(nil); err == nil {
		t.Error("empty table: expected error")
	}
}
