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

// Package transform implements vector valued colour transforms.
//
// A [Transform] maps a fixed number of input channels to a fixed number of
// output channels.  Transforms are built from curves, matrices and
// lookup tables, and can be chained using [NewComposition].  Like curves,
// every transform reports its own inverse, where one exists.
//
// Transforms are safe for concurrent use, except where they hold scratch
// space.  Callers who share a transform between goroutines must obtain one
// instance per goroutine using [Transform.Local].
package transform

import (
	"errors"
	"fmt"

	"seehuhn.de/go/colour/internal/logging"
)

// Transform is a function from N input channels to M output channels.
type Transform interface {
	// InputChannels returns the number of input channels.
	InputChannels() int

	// OutputChannels returns the number of output channels.
	OutputChannels() int

	// Apply evaluates the transform at src and stores the result in dst.
	// If the length of src or dst does not match the channel counts,
	// a [*ShapeError] is returned.
	Apply(dst, src []float64) error

	// Invert returns the inverse transform.  If the transform has no
	// inverse, the second return value is false.
	Invert() (Transform, bool)

	// Local returns an instance of the transform which can be used
	// concurrently with the receiver.  The new instance shares all
	// read-only data with the receiver.  Transforms without scratch space
	// return the receiver.
	Local() Transform
}

// ErrShape is matched by all [*ShapeError] values.
var ErrShape = errors.New("transform: shape mismatch")

// ShapeError is returned by Apply if a vector has the wrong length.
type ShapeError struct {
	Want, Got int

	// Output is true if the output vector has the wrong length.
	Output bool
}

func (e *ShapeError) Error() string {
	which := "input"
	if e.Output {
		which = "output"
	}
	return fmt.Sprintf("transform: %s has %d channels, expected %d", which, e.Got, e.Want)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// checkShape verifies that dst and src fit the channel counts of t.
func checkShape(t Transform, dst, src []float64) error {
	if n := t.InputChannels(); len(src) != n {
		return &ShapeError{Want: n, Got: len(src)}
	}
	if m := t.OutputChannels(); len(dst) != m {
		return &ShapeError{Want: m, Got: len(dst), Output: true}
	}
	return nil
}

// InvalidTransformError is returned when a transform is constructed from
// inconsistent data.
type InvalidTransformError struct {
	Transform string
	Field     string
	Message   string
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("%s transform invalid %s: %s", e.Transform, e.Field, e.Message)
}

func (e *InvalidTransformError) Is(target error) bool {
	_, ok := target.(*InvalidTransformError)
	return ok
}

func newInvalidTransformError(transform, field, format string, args ...any) *InvalidTransformError {
	return &InvalidTransformError{
		Transform: transform,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Eval applies t to the given input values and returns a newly allocated
// output vector.
func Eval(t Transform, src ...float64) ([]float64, error) {
	dst := make([]float64, t.OutputChannels())
	err := t.Apply(dst, src)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func declined(transform, reason string) (Transform, bool) {
	logging.Logger().Debug("transform not invertible", "transform", transform, "reason", reason)
	return nil, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
