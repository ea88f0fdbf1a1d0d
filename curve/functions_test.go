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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinear(t *testing.T) {
	c := &Linear{Slope: 2, Offset: 3}
	if got := c.Evaluate(5); got != 13 {
		t.Errorf("Evaluate(5) = %g, want 13", got)
	}

	inv, ok := c.Invert()
	if !ok {
		t.Fatal("not invertible")
	}
	if got := inv.Evaluate(13); got != 5 {
		t.Errorf("inverse Evaluate(13) = %g, want 5", got)
	}
	want := &Linear{Slope: 0.5, Offset: -1.5}
	if d := cmp.Diff(want, inv); d != "" {
		t.Errorf("unexpected inverse (-want +got):\n%s", d)
	}
}

func TestLinearDegenerate(t *testing.T) {
	c := &Linear{Slope: 0, Offset: 1}
	if _, ok := c.Invert(); ok {
		t.Error("constant function reported as invertible")
	}
}

func TestIdentity(t *testing.T) {
	c := Identity()
	for _, x := range []float64{-1e6, -1, 0, 0.5, 42} {
		if got := c.Evaluate(x); got != x {
			t.Errorf("Evaluate(%g) = %g", x, got)
		}
	}
	lo, hi := c.Domain()
	if !math.IsInf(lo, -1) || !math.IsInf(hi, +1) {
		t.Errorf("got domain [%g, %g]", lo, hi)
	}
}

func TestGamma(t *testing.T) {
	tests := []struct {
		c     *Gamma
		input float64
		want  float64
	}{
		{&Gamma{A: 1, G: 1}, 0.5, 0.5},
		{&Gamma{A: 1, G: 2}, 0.5, 0.25},
		{&Gamma{A: 1, G: 2.2}, 0.5, 0.2176},
		{&Gamma{A: 1, G: 2.2}, 0, 0},
		{&Gamma{A: 1, G: 2.2}, 1, 1},
		{&Gamma{A: 2, B: 1, G: 2, C: -1}, 1, 8},
	}
	for _, tt := range tests {
		got := tt.c.Evaluate(tt.input)
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("%v: Evaluate(%.2f) = %.4f, want %.4f", tt.c, tt.input, got, tt.want)
		}
	}
}

func TestGammaInverseForm(t *testing.T) {
	c := &Gamma{A: 1, G: 2.2}
	inv, ok := c.Invert()
	if !ok {
		t.Fatal("not invertible")
	}
	want := &Gamma{A: 1, G: 1 / 2.2}
	if d := cmp.Diff(want, inv, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("unexpected inverse (-want +got):\n%s", d)
	}
}

func TestGammaDegenerate(t *testing.T) {
	for _, c := range []*Gamma{
		{A: 1, G: 0},
		{A: 0, G: 2},
	} {
		if _, ok := c.Invert(); ok {
			t.Errorf("%v reported as invertible", c)
		}
	}
}

func TestExponentialDegenerate(t *testing.T) {
	cases := []*Exponential{
		{Base: 2, XScale: 1, YScale: 0},
		{Base: 2, XScale: 0, YScale: 1},
		{Base: -2, XScale: 1, YScale: 1},
		{Base: 1, XScale: 1, YScale: 1},
	}
	for _, c := range cases {
		if _, ok := c.Invert(); ok {
			t.Errorf("%v reported as invertible", c)
		}
	}
}

func TestLogGammaInverseForms(t *testing.T) {
	tests := []struct {
		name string
		c    *LogGamma
		want string
	}{
		{"unit exponent", &LogGamma{Base: 10, Gamma: 1, XScale: 1, YScale: 1}, "*curve.Exponential"},
		{"no offset", &LogGamma{Base: 10, Gamma: 2, XScale: 1, YScale: 1}, "*curve.Exponential"},
		{"offset", &LogGamma{Base: 10, Gamma: 2, XScale: 1, XOffset: 1, YScale: 1}, "*curve.Composed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.c.Invert()
			if !ok {
				t.Fatal("not invertible")
			}
			if got := typeName(inv); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := (&LogGamma{Base: 10, Gamma: 0, XScale: 1, YScale: 1}).Invert(); ok {
		t.Error("zero exponent reported as invertible")
	}
}

func TestExponentialInverseIsLogGamma(t *testing.T) {
	c := &Exponential{Base: math.E, XScale: 1, YScale: 1}
	inv, ok := c.Invert()
	if !ok {
		t.Fatal("not invertible")
	}
	want := &LogGamma{Base: math.E, Gamma: 1, XScale: 1, YScale: 1}
	if d := cmp.Diff(want, inv); d != "" {
		t.Errorf("unexpected inverse (-want +got):\n%s", d)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
