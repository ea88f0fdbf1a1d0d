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

// Linear is the affine function y = Slope*x + Offset on the whole real line.
type Linear struct {
	Slope  float64
	Offset float64
}

// Identity returns the curve y = x.
func Identity() *Linear {
	return &Linear{Slope: 1}
}

// Evaluate implements the [Curve] interface.
func (c *Linear) Evaluate(x float64) float64 {
	return c.Slope*x + c.Offset
}

// Domain implements the [Curve] interface.
func (c *Linear) Domain() (float64, float64) {
	return math.Inf(-1), math.Inf(+1)
}

// Invert implements the [Curve] interface.
// A linear function is invertible if the slope is non-zero.
func (c *Linear) Invert() (Curve, bool) {
	if c.Slope == 0 || !isFinite(c.Slope) {
		return declined("Linear", "zero slope")
	}
	return &Linear{
		Slope:  1 / c.Slope,
		Offset: -c.Offset / c.Slope,
	}, true
}
