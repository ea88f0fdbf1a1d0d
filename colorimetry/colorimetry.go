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

// Package colorimetry implements closed-form conversions between colour
// spaces.
//
// All conversions are [transform.Transform] values.  CIE XYZ values are
// scaled so that the reference white has Y = 1.  RGB, HSV and HLS
// channels are in [0, 1], except for hue, which is given in degrees.
// L*a*b*, L*u*v* and Hunter Lab use the conventional range 0 to 100 for
// lightness.
package colorimetry

import (
	"fmt"
	"math"

	"seehuhn.de/go/colour/transform"
)

// XYZ is a CIE 1931 tristimulus value.
type XYZ [3]float64

// Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the tristimulus value with chromaticity c and luminance Y.
func (c Chromaticity) XYZ(Y float64) XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		c.X / c.Y * Y,
		Y,
		(1 - c.X - c.Y) / c.Y * Y,
	}
}

// Chromaticity returns the xy chromaticity of v.
// Black is mapped to (0, 0).
func (v XYZ) Chromaticity() Chromaticity {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: v[0] / sum, Y: v[1] / sum}
}

// Standard illuminants, as tristimulus values with Y = 1.
var (
	// D50 is the ICC profile connection space white point.
	D50 = XYZ{0.9642, 1.0, 0.8249}

	// D65 is the white point of sRGB and most video standards.
	D65 = XYZ{0.95047, 1.0, 1.08883}

	IlluminantA = XYZ{1.09850, 1.0, 0.35585}
	IlluminantC = XYZ{0.98074, 1.0, 1.18232}
	IlluminantE = XYZ{1.0, 1.0, 1.0}
)

// Chromaticities of the standard illuminants.
var (
	D50xy = Chromaticity{0.3457, 0.3585}
	D65xy = Chromaticity{0.3127, 0.3290}
)

// checkWhite verifies that w can be used as a reference white.
func checkWhite(name string, w XYZ) error {
	for i, v := range w {
		if !(v > 0) || math.IsInf(v, 0) {
			return &transform.InvalidTransformError{
				Transform: name,
				Field:     "white",
				Message:   fmt.Sprintf("component %d of the white point is %g", i, v),
			}
		}
	}
	return nil
}
