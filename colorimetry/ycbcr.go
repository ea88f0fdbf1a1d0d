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

package colorimetry

import (
	"fmt"
	"math"

	"seehuhn.de/go/colour/transform"
)

// LumaWeights are the weights of the red and blue channel in the luma
// signal of a YCbCr encoding.  The green weight is 1 - Kr - Kb.
type LumaWeights struct {
	Kr, Kb float64
}

// Luma weights of the common video standards.
var (
	BT601  = LumaWeights{Kr: 0.299, Kb: 0.114}
	BT709  = LumaWeights{Kr: 0.2126, Kb: 0.0722}
	BT2020 = LumaWeights{Kr: 0.2627, Kb: 0.0593}
)

// NewRGBToYCbCr returns the matrix which maps RGB values to luma and two
// colour difference signals.  The colour difference signals range over
// [-cbHalf, cbHalf] and [-crHalf, crHalf] for RGB values in the unit cube.
// The inverse is obtained with the Invert method of the matrix.
func NewRGBToYCbCr(w LumaWeights, cbHalf, crHalf float64) (*transform.Matrix, error) {
	kg := 1 - w.Kr - w.Kb
	if !(w.Kr > 0 && w.Kb > 0 && kg > 0) {
		return nil, &transform.InvalidTransformError{
			Transform: "YCbCr",
			Field:     "weights",
			Message:   fmt.Sprintf("invalid luma weights Kr=%g, Kb=%g", w.Kr, w.Kb),
		}
	}
	for _, h := range []float64{cbHalf, crHalf} {
		if !(h > 0) || math.IsInf(h, 0) {
			return nil, &transform.InvalidTransformError{
				Transform: "YCbCr",
				Field:     "range",
				Message:   fmt.Sprintf("invalid chroma half range %g", h),
			}
		}
	}

	cb := cbHalf / (1 - w.Kb)
	cr := crHalf / (1 - w.Kr)
	return transform.NewMatrix3([9]float64{
		w.Kr, kg, w.Kb,
		-cb * w.Kr, -cb * kg, cb * (1 - w.Kb),
		cr * (1 - w.Kr), -cr * kg, -cr * w.Kb,
	}), nil
}

// RGBToYCbCr returns the RGB to YCbCr matrix for the given weights, with
// Cb and Cr in the range [-0.5, 0.5].
func RGBToYCbCr(w LumaWeights) (*transform.Matrix, error) {
	return NewRGBToYCbCr(w, 0.5, 0.5)
}

// RGBToYUV returns the analogue YUV encoding of BT.601, where U ranges
// over [-0.436, 0.436] and V over [-0.615, 0.615].
func RGBToYUV() *transform.Matrix {
	m, err := NewRGBToYCbCr(BT601, 0.436, 0.615)
	if err != nil {
		panic("unreachable")
	}
	return m
}
