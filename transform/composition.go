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

import "slices"

// Composition applies a sequence of transforms one after the other.
//
// The intermediate results are stored in scratch space owned by the
// Composition.  A Composition must not be used concurrently; use
// [Composition.Local] to obtain independent instances.
type Composition struct {
	steps   []Transform
	scratch [][]float64
}

// NewComposition returns the transform which applies the given steps in
// order.  The number of output channels of each step must equal the number
// of input channels of the next step.
func NewComposition(steps ...Transform) (*Composition, error) {
	if len(steps) == 0 {
		return nil, newInvalidTransformError("composition", "steps", "no steps given")
	}
	for i, s := range steps {
		if s == nil {
			return nil, newInvalidTransformError("composition", "steps", "step %d is nil", i)
		}
		if i > 0 {
			if m, n := steps[i-1].OutputChannels(), s.InputChannels(); m != n {
				return nil, newInvalidTransformError("composition", "steps",
					"step %d has %d outputs but step %d has %d inputs", i-1, m, i, n)
			}
		}
	}
	return newComposition(slices.Clone(steps)), nil
}

func newComposition(steps []Transform) *Composition {
	c := &Composition{
		steps:   steps,
		scratch: make([][]float64, len(steps)-1),
	}
	for i := range c.scratch {
		c.scratch[i] = make([]float64, steps[i].OutputChannels())
	}
	return c
}

// Steps returns the transforms which make up the composition.
func (c *Composition) Steps() []Transform {
	return slices.Clone(c.steps)
}

// InputChannels implements the [Transform] interface.
func (c *Composition) InputChannels() int { return c.steps[0].InputChannels() }

// OutputChannels implements the [Transform] interface.
func (c *Composition) OutputChannels() int { return c.steps[len(c.steps)-1].OutputChannels() }

// Apply implements the [Transform] interface.
func (c *Composition) Apply(dst, src []float64) error {
	if err := checkShape(c, dst, src); err != nil {
		return err
	}
	last := len(c.steps) - 1
	in := src
	for i, s := range c.steps {
		out := dst
		if i < last {
			out = c.scratch[i]
		}
		if err := s.Apply(out, in); err != nil {
			return err
		}
		in = out
	}
	return nil
}

// Invert implements the [Transform] interface.
// The inverse applies the inverses of all steps in reverse order.
func (c *Composition) Invert() (Transform, bool) {
	n := len(c.steps)
	inv := make([]Transform, n)
	for i, s := range c.steps {
		si, ok := s.Invert()
		if !ok {
			return declined("Composition", "step not invertible")
		}
		inv[n-1-i] = si
	}
	return newComposition(inv), true
}

// Local implements the [Transform] interface.
// The new instance has its own scratch space, and uses local instances
// of all steps.
func (c *Composition) Local() Transform {
	steps := make([]Transform, len(c.steps))
	for i, s := range c.steps {
		steps[i] = s.Local()
	}
	return newComposition(steps)
}
