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

package transform

import (
	"slices"

	"seehuhn.de/go/colour/curve"
)

// Curves applies a separate curve to every channel.
//
// Each input value is clamped to the domain of its curve before the curve
// is evaluated, so that values which are just outside the domain because
// of rounding do not produce NaN.
type Curves struct {
	curves []curve.Curve
}

// NewCurves returns the transform which applies curves[i] to channel i.
func NewCurves(curves ...curve.Curve) (*Curves, error) {
	if len(curves) == 0 {
		return nil, newInvalidTransformError("curves", "curves", "no curves given")
	}
	for i, c := range curves {
		if c == nil {
			return nil, newInvalidTransformError("curves", "curves", "curve %d is nil", i)
		}
	}
	return &Curves{curves: slices.Clone(curves)}, nil
}

// Curve returns the curve used for channel i.
func (t *Curves) Curve(i int) curve.Curve {
	return t.curves[i]
}

// InputChannels implements the [Transform] interface.
func (t *Curves) InputChannels() int { return len(t.curves) }

// OutputChannels implements the [Transform] interface.
func (t *Curves) OutputChannels() int { return len(t.curves) }

// Apply implements the [Transform] interface.
// The vectors dst and src may be the same.
func (t *Curves) Apply(dst, src []float64) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	for i, c := range t.curves {
		dst[i] = c.Evaluate(curve.Clamp(c, src[i]))
	}
	return nil
}

// Invert implements the [Transform] interface.
// The transform is invertible if every curve is invertible.
func (t *Curves) Invert() (Transform, bool) {
	inv := make([]curve.Curve, len(t.curves))
	for i, c := range t.curves {
		ci, ok := c.Invert()
		if !ok {
			return declined("Curves", "channel curve not invertible")
		}
		inv[i] = ci
	}
	return &Curves{curves: inv}, true
}

// Local implements the [Transform] interface.
func (t *Curves) Local() Transform { return t }
