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

import "math"

// Gamma is the power function y = (A*x + B)^G + C.
//
// The curve is defined on the whole real line.  Where A*x+B is negative
// and G is not an integer, the value is NaN.
type Gamma struct {
	A, B, G, C float64
}

// Evaluate implements the [Curve] interface.
func (c *Gamma) Evaluate(x float64) float64 {
	return math.Pow(c.A*x+c.B, c.G) + c.C
}

// Domain implements the [Curve] interface.
func (c *Gamma) Domain() (float64, float64) {
	return math.Inf(-1), math.Inf(+1)
}

// Invert implements the [Curve] interface.
//
// The inverse is x = (1/A)*(y - C)^(1/G) - B/A.  For A > 0 this is again a
// Gamma curve, since (1/A)*u^(1/G) = (A^(-G)*u)^(1/G).  For A < 0 the inverse
// is a [Transformed] curve wrapping a Gamma curve.
func (c *Gamma) Invert() (Curve, bool) {
	if c.G == 0 {
		return declined("Gamma", "zero exponent")
	}
	if c.A == 0 {
		return declined("Gamma", "zero scale")
	}

	if c.A > 0 {
		s := math.Pow(c.A, -c.G)
		return &Gamma{
			A: s,
			B: -c.C * s,
			G: 1 / c.G,
			C: -c.B / c.A,
		}, true
	}

	return &Transformed{
		F:       &Gamma{A: 1, B: -c.C, G: 1 / c.G},
		XScale:  1,
		YScale:  1 / c.A,
		YOffset: -c.B / c.A,
	}, true
}
