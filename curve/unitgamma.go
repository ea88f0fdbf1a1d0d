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
)

// UnitGamma is a curve on the unit interval which consists of a linear
// segment near zero and a power function above a threshold:
//
//	y = (A*x + B)^Gamma + C    for D <= x <= 1
//	y = E*x + F                for 0 <= x < D
//
// This is the form used by most RGB transfer functions, including sRGB
// and BT.709.  Outside [0, 1] the value is NaN.
type UnitGamma struct {
	Gamma float64
	A, B  float64
	C     float64
	D     float64
	E, F  float64
}

// SRGB returns the sRGB decoding curve from IEC 61966-2-1.
func SRGB() *UnitGamma {
	return &UnitGamma{
		Gamma: 2.4,
		A:     1 / 1.055,
		B:     0.055 / 1.055,
		D:     0.04045,
		E:     1 / 12.92,
	}
}

// The BT.709 constants, to enough digits that both branches meet.
const (
	rec709Alpha = 1.09929682680944
	rec709Beta  = 0.018053968510807
)

// Rec709 returns the decoding curve corresponding to the ITU-R BT.709
// opto-electronic transfer function.
func Rec709() *UnitGamma {
	return &UnitGamma{
		Gamma: 1 / 0.45,
		A:     1 / rec709Alpha,
		B:     (rec709Alpha - 1) / rec709Alpha,
		D:     4.5 * rec709Beta,
		E:     1 / 4.5,
	}
}

// Evaluate implements the [Curve] interface.
func (c *UnitGamma) Evaluate(x float64) float64 {
	if !(x >= 0 && x <= 1) {
		return math.NaN()
	}
	if x < c.D {
		return c.E*x + c.F
	}
	return c.power(x)
}

func (c *UnitGamma) power(x float64) float64 {
	v := c.A*x + c.B
	if v < 0 {
		v = 0
	}
	return math.Pow(v, c.Gamma) + c.C
}

// Domain implements the [Curve] interface.
func (c *UnitGamma) Domain() (float64, float64) {
	return 0, 1
}

// Invert implements the [Curve] interface.
//
// Both branches in use must be strictly monotonic in the same direction,
// and if both are in use they must agree at D within [DefaultTolerance].
// The inverse is defined on the image of [0, 1].
func (c *UnitGamma) Invert() (Curve, bool) {
	linear := c.D > 0
	power := c.D <= 1

	var up bool
	if power {
		if c.Gamma == 0 {
			return declined("UnitGamma", "zero exponent")
		}
		if c.A <= 0 {
			return declined("UnitGamma", "non-positive scale")
		}
		v := c.A*max(c.D, 0) + c.B
		if v < 0 {
			return declined("UnitGamma", "flat segment in the power branch")
		}
		if v == 0 && c.Gamma < 0 {
			return declined("UnitGamma", "power branch is unbounded")
		}
		up = c.Gamma > 0
	}
	if linear {
		if c.E == 0 {
			return declined("UnitGamma", "flat linear branch")
		}
		if power && (c.E > 0) != up {
			return declined("UnitGamma", "branches have opposite directions")
		}
		up = c.E > 0
	}

	fwd := *c
	inv := &unitGammaInverse{fwd: &fwd, up: up, linear: linear, power: power}
	if linear && power {
		inv.split = c.E*c.D + c.F
		if math.Abs(c.power(c.D)-inv.split) > DefaultTolerance {
			return declined("UnitGamma", "discontinuous at threshold")
		}
	}

	lo, hi := image(c, 0, 1)
	if !isFinite(lo) || !isFinite(hi) {
		return declined("UnitGamma", "image is not finite")
	}
	// Rounding may leave the image of a normalised curve just inside [0, 1].
	if lo > 0 && lo < 1e-12 {
		lo = 0
	}
	if hi < 1 && 1-hi < 1e-12 {
		hi = 1
	}
	inv.lo, inv.hi = lo, hi
	return inv, true
}

// unitGammaInverse is the inverse of a [UnitGamma] curve.
type unitGammaInverse struct {
	fwd    *UnitGamma
	lo, hi float64

	// split is the output value at which the branches meet.
	split         float64
	up            bool
	linear, power bool
}

func (c *unitGammaInverse) Evaluate(y float64) float64 {
	if !(y >= c.lo && y <= c.hi) {
		return math.NaN()
	}
	f := c.fwd

	useLinear := c.linear
	if c.linear && c.power {
		useLinear = y < c.split
		if !c.up {
			useLinear = y > c.split
		}
	}

	var x float64
	if useLinear {
		x = (y - f.F) / f.E
	} else {
		w := y - f.C
		if w < 0 {
			w = 0
		}
		x = (math.Pow(w, 1/f.Gamma) - f.B) / f.A
	}
	return min(max(x, 0), 1)
}

func (c *unitGammaInverse) Domain() (float64, float64) {
	return c.lo, c.hi
}

func (c *unitGammaInverse) Invert() (Curve, bool) {
	fwd := *c.fwd
	return &fwd, true
}

// FromParametric returns the curve described by the coefficients of an
// ICC parametricCurveType element.  The parameters are given in the order
// in which they appear in the tag, i.e. g, a, b, c, d, e, f.
//
// The supported function types are
//
//	0: y = x^g
//	1: y = (ax+b)^g                   for x >= -b/a, else 0
//	2: y = (ax+b)^g + c               for x >= -b/a, else c
//	3: y = (ax+b)^g                   for x >= d, else cx
//	4: y = (ax+b)^g + e               for x >= d, else cx + f
func FromParametric(funcType int, params []float64) (*UnitGamma, error) {
	want := []int{1, 3, 4, 5, 7}
	if funcType < 0 || funcType >= len(want) {
		return nil, newInvalidCurveError("parametric", "funcType", "unknown function type %d", funcType)
	}
	if len(params) != want[funcType] {
		return nil, newInvalidCurveError("parametric", "params",
			"function type %d needs %d parameters, got %d", funcType, want[funcType], len(params))
	}
	for i, p := range params {
		if !isFinite(p) {
			return nil, newInvalidCurveError("parametric", "params", "parameter %d is not finite", i)
		}
	}
	if (funcType == 1 || funcType == 2) && params[1] == 0 {
		return nil, newInvalidCurveError("parametric", "params", "a must be non-zero")
	}

	c := &UnitGamma{Gamma: params[0], A: 1}
	switch funcType {
	case 1:
		c.A, c.B = params[1], params[2]
		c.D = -c.B / c.A
	case 2:
		c.A, c.B, c.C = params[1], params[2], params[3]
		c.D = -c.B / c.A
		c.F = c.C
	case 3:
		c.A, c.B, c.E, c.D = params[1], params[2], params[3], params[4]
	case 4:
		c.A, c.B, c.E, c.D = params[1], params[2], params[3], params[4]
		c.C, c.F = params[5], params[6]
	}
	return c, nil
}
