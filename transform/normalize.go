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
	"math"
	"slices"
)

// Normalize maps every channel from [min, max] to [0, 1].
// Values outside the range are clamped.
type Normalize struct {
	min, max []float64
}

// Denormalize maps every channel from [0, 1] to [min, max].
// Values outside the unit interval are clamped.
type Denormalize struct {
	min, max []float64
}

func checkRanges(name string, min, max []float64) error {
	if len(min) == 0 {
		return newInvalidTransformError(name, "min", "no channels given")
	}
	if len(min) != len(max) {
		return newInvalidTransformError(name, "max",
			"%d minimum values but %d maximum values", len(min), len(max))
	}
	for i := range min {
		lo, hi := min[i], max[i]
		if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return newInvalidTransformError(name, "min", "invalid range [%g, %g] for channel %d", lo, hi, i)
		}
	}
	return nil
}

// NewNormalize returns the transform which maps channel i from
// [min[i], max[i]] to [0, 1].
func NewNormalize(min, max []float64) (*Normalize, error) {
	if err := checkRanges("normalize", min, max); err != nil {
		return nil, err
	}
	return &Normalize{min: slices.Clone(min), max: slices.Clone(max)}, nil
}

// InputChannels implements the [Transform] interface.
func (t *Normalize) InputChannels() int { return len(t.min) }

// OutputChannels implements the [Transform] interface.
func (t *Normalize) OutputChannels() int { return len(t.min) }

// Apply implements the [Transform] interface.
func (t *Normalize) Apply(dst, src []float64) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	for i, x := range src {
		dst[i] = clamp((x-t.min[i])/(t.max[i]-t.min[i]), 0, 1)
	}
	return nil
}

// Invert implements the [Transform] interface.
// Because of the clamping, the inverse is only a right inverse.
func (t *Normalize) Invert() (Transform, bool) {
	return &Denormalize{min: t.min, max: t.max}, true
}

// Local implements the [Transform] interface.
func (t *Normalize) Local() Transform { return t }

// NewDenormalize returns the transform which maps channel i from [0, 1]
// to [min[i], max[i]].
func NewDenormalize(min, max []float64) (*Denormalize, error) {
	if err := checkRanges("denormalize", min, max); err != nil {
		return nil, err
	}
	return &Denormalize{min: slices.Clone(min), max: slices.Clone(max)}, nil
}

// InputChannels implements the [Transform] interface.
func (t *Denormalize) InputChannels() int { return len(t.min) }

// OutputChannels implements the [Transform] interface.
func (t *Denormalize) OutputChannels() int { return len(t.min) }

// Apply implements the [Transform] interface.
func (t *Denormalize) Apply(dst, src []float64) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	for i, x := range src {
		dst[i] = t.min[i] + clamp(x, 0, 1)*(t.max[i]-t.min[i])
	}
	return nil
}

// Invert implements the [Transform] interface.
func (t *Denormalize) Invert() (Transform, bool) {
	return &Normalize{min: t.min, max: t.max}, true
}

// Local implements the [Transform] interface.
func (t *Denormalize) Local() Transform { return t }
