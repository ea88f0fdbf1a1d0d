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

// Window restricts a curve to a narrower domain.
// Outside [Min, Max] the curve evaluates to NaN.
type Window struct {
	Curve    Curve
	Min, Max float64
}

// Evaluate implements the [Curve] interface.
func (c *Window) Evaluate(x float64) float64 {
	if !(x >= c.Min && x <= c.Max) {
		return math.NaN()
	}
	return c.Curve.Evaluate(x)
}

// Domain implements the [Curve] interface.  The domain is the intersection
// of [Min, Max] with the domain of the wrapped curve.
func (c *Window) Domain() (float64, float64) {
	lo, hi := c.Curve.Domain()
	return max(lo, c.Min), min(hi, c.Max)
}

// Invert implements the [Curve] interface.  The inverse of the wrapped
// curve is restricted to the image of the window.
func (c *Window) Invert() (Curve, bool) {
	inv, ok := c.Curve.Invert()
	if !ok {
		return nil, false
	}
	lo, hi := c.Domain()
	a, b := image(c.Curve, lo, hi)
	if math.IsNaN(a) || math.IsNaN(b) {
		return declined("Window", "image of the window is undefined")
	}
	return &Window{Curve: inv, Min: a, Max: b}, true
}

// Transformed applies affine maps to the input and output of a curve:
//
//	y = YScale * F(XScale*x + XOffset) + YOffset
type Transformed struct {
	F       Curve
	XScale  float64
	XOffset float64
	YScale  float64
	YOffset float64
}

// Evaluate implements the [Curve] interface.
func (c *Transformed) Evaluate(x float64) float64 {
	return c.YScale*c.F.Evaluate(c.XScale*x+c.XOffset) + c.YOffset
}

// Domain implements the [Curve] interface.
// The domain is the pre-image of the domain of F under the input map.
func (c *Transformed) Domain() (float64, float64) {
	if c.XScale == 0 {
		return math.Inf(-1), math.Inf(+1)
	}
	lo, hi := c.F.Domain()
	a := (lo - c.XOffset) / c.XScale
	b := (hi - c.XOffset) / c.XScale
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Invert implements the [Curve] interface.
func (c *Transformed) Invert() (Curve, bool) {
	if c.XScale == 0 || c.YScale == 0 {
		return declined("Transformed", "zero scale")
	}
	inv, ok := c.F.Invert()
	if !ok {
		return nil, false
	}
	return &Transformed{
		F:       inv,
		XScale:  1 / c.YScale,
		XOffset: -c.YOffset / c.YScale,
		YScale:  1 / c.XScale,
		YOffset: -c.XOffset / c.XScale,
	}, true
}

// Composed is the curve x -> Second(First(x)).
type Composed struct {
	First  Curve
	Second Curve
}

// Evaluate implements the [Curve] interface.
func (c *Composed) Evaluate(x float64) float64 {
	return c.Second.Evaluate(c.First.Evaluate(x))
}

// Domain implements the [Curve] interface.
func (c *Composed) Domain() (float64, float64) {
	return c.First.Domain()
}

// Invert implements the [Curve] interface.
func (c *Composed) Invert() (Curve, bool) {
	f, ok := c.First.Invert()
	if !ok {
		return nil, false
	}
	g, ok := c.Second.Invert()
	if !ok {
		return nil, false
	}
	return &Composed{First: g, Second: f}, true
}
