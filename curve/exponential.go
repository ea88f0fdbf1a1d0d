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

// Exponential is the function y = YScale * Base^(XScale*x + XOffset) + YOffset.
type Exponential struct {
	Base    float64
	XScale  float64
	XOffset float64
	YScale  float64
	YOffset float64
}

// Evaluate implements the [Curve] interface.
func (c *Exponential) Evaluate(x float64) float64 {
	return c.YScale*math.Pow(c.Base, c.XScale*x+c.XOffset) + c.YOffset
}

// Domain implements the [Curve] interface.
func (c *Exponential) Domain() (float64, float64) {
	return math.Inf(-1), math.Inf(+1)
}

// Invert implements the [Curve] interface.  The inverse is a [LogGamma]
// curve with exponent 1.
func (c *Exponential) Invert() (Curve, bool) {
	switch {
	case c.YScale == 0:
		return declined("Exponential", "zero y scale")
	case c.XScale == 0:
		return declined("Exponential", "zero x scale")
	case c.Base <= 0 || c.Base == 1:
		return declined("Exponential", "invalid base")
	}
	return &LogGamma{
		Base:    c.Base,
		Gamma:   1,
		XScale:  1 / c.YScale,
		XOffset: -c.YOffset / c.YScale,
		YScale:  1 / c.XScale,
		YOffset: -c.XOffset / c.XScale,
	}, true
}

// LogGamma is the function y = YScale * log_Base(XScale*x^Gamma + XOffset) + YOffset.
type LogGamma struct {
	Base    float64
	Gamma   float64
	XScale  float64
	XOffset float64
	YScale  float64
	YOffset float64
}

// Evaluate implements the [Curve] interface.
func (c *LogGamma) Evaluate(x float64) float64 {
	u := c.XScale*math.Pow(x, c.Gamma) + c.XOffset
	return c.YScale*math.Log(u)/math.Log(c.Base) + c.YOffset
}

// Domain implements the [Curve] interface.
func (c *LogGamma) Domain() (float64, float64) {
	return math.Inf(-1), math.Inf(+1)
}

// Invert implements the [Curve] interface.
//
// Solving for x gives x = ((Base^((y-YOffset)/YScale) - XOffset)/XScale)^(1/Gamma).
// For Gamma = 1 this is an [Exponential].  For XOffset = 0 and XScale > 0
// the outer power can be folded into the exponential.  Otherwise the
// inverse is an Exponential followed by a [Gamma] curve.
func (c *LogGamma) Invert() (Curve, bool) {
	switch {
	case c.Gamma == 0:
		return declined("LogGamma", "zero exponent")
	case c.XScale == 0:
		return declined("LogGamma", "zero x scale")
	case c.YScale == 0:
		return declined("LogGamma", "zero y scale")
	case c.Base <= 0 || c.Base == 1:
		return declined("LogGamma", "invalid base")
	}

	exp := &Exponential{
		Base:    c.Base,
		XScale:  1 / c.YScale,
		XOffset: -c.YOffset / c.YScale,
		YScale:  1 / c.XScale,
		YOffset: -c.XOffset / c.XScale,
	}
	if c.Gamma == 1 {
		return exp, true
	}

	if c.XOffset == 0 && c.XScale > 0 {
		return &Exponential{
			Base:    c.Base,
			XScale:  1 / (c.Gamma * c.YScale),
			XOffset: -c.YOffset / (c.Gamma * c.YScale),
			YScale:  math.Pow(c.XScale, -1/c.Gamma),
		}, true
	}

	return &Composed{
		First:  exp,
		Second: &Gamma{A: 1, G: 1 / c.Gamma},
	}, true
}
