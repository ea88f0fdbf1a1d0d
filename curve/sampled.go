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
	"slices"
	"sort"
)

// Sampled is a piecewise linear curve through a list of points.
// The domain is the interval between the first and last x-coordinate.
type Sampled struct {
	xs, ys  []float64
	uniform bool
}

// NewSampled returns the piecewise linear curve through the points
// (xs[i], ys[i]).  The x-coordinates must be strictly increasing and at
// least two points are required.  The slices are copied.
func NewSampled(xs, ys []float64) (*Sampled, error) {
	if len(xs) != len(ys) {
		return nil, newInvalidCurveError("sampled", "ys",
			"length %d does not match %d x-coordinates", len(ys), len(xs))
	}
	if len(xs) < 2 {
		return nil, newInvalidCurveError("sampled", "xs", "need at least two points, got %d", len(xs))
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, newInvalidCurveError("sampled", "xs", "point %d is not finite", i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, newInvalidCurveError("sampled", "xs", "x-coordinates not strictly increasing at index %d", i)
		}
	}
	return &Sampled{
		xs: slices.Clone(xs),
		ys: slices.Clone(ys),
	}, nil
}

// NewUniform returns the piecewise linear curve through the values ys,
// placed at equally spaced points between min and max.
func NewUniform(min, max float64, ys []float64) (*Sampled, error) {
	if !(min < max) || !isFinite(min) || !isFinite(max) {
		return nil, newInvalidCurveError("sampled", "domain", "invalid interval [%g, %g]", min, max)
	}
	n := len(ys)
	if n < 2 {
		return nil, newInvalidCurveError("sampled", "ys", "need at least two points, got %d", n)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = min + (max-min)*float64(i)/float64(n-1)
	}
	xs[n-1] = max
	c, err := NewSampled(xs, ys)
	if err != nil {
		return nil, err
	}
	c.uniform = true
	return c, nil
}

// NewTable returns the curve on [0, 1] described by a table of 16-bit
// samples, as found in ICC curveType elements and lut16Type tables.
// A table with a single entry describes a constant.
func NewTable(table []uint16) (Curve, error) {
	switch len(table) {
	case 0:
		return nil, newInvalidCurveError("sampled", "table", "empty table")
	case 1:
		return &Window{
			Curve: &Linear{Offset: float64(table[0]) / 65535},
			Min:   0,
			Max:   1,
		}, nil
	}
	ys := make([]float64, len(table))
	for i, v := range table {
		ys[i] = float64(v) / 65535
	}
	return NewUniform(0, 1, ys)
}

// Evaluate implements the [Curve] interface.
func (c *Sampled) Evaluate(x float64) float64 {
	n := len(c.xs)
	if !(x >= c.xs[0] && x <= c.xs[n-1]) {
		return math.NaN()
	}

	var i int
	if c.uniform {
		pos := (x - c.xs[0]) / (c.xs[n-1] - c.xs[0]) * float64(n-1)
		i = min(int(pos), n-2)
		if i > 0 && x < c.xs[i] {
			i--
		}
	} else {
		// first index with xs[i+1] > x, so that xs[i] <= x < xs[i+1]
		i = sort.Search(n-1, func(k int) bool { return c.xs[k+1] > x })
		i = min(i, n-2)
	}

	x0, x1 := c.xs[i], c.xs[i+1]
	y0, y1 := c.ys[i], c.ys[i+1]
	if x == x0 {
		return y0
	} else if x == x1 {
		return y1
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// Domain implements the [Curve] interface.
func (c *Sampled) Domain() (float64, float64) {
	return c.xs[0], c.xs[len(c.xs)-1]
}

// Points returns copies of the x- and y-coordinates of the sample points.
func (c *Sampled) Points() (xs, ys []float64) {
	return slices.Clone(c.xs), slices.Clone(c.ys)
}

// Monotonic returns +1 if the sample values are strictly increasing, -1 if
// they are strictly decreasing and 0 otherwise.
func (c *Sampled) Monotonic() int {
	up, down := true, true
	for i := 1; i < len(c.ys); i++ {
		if c.ys[i] <= c.ys[i-1] {
			up = false
		}
		if c.ys[i] >= c.ys[i-1] {
			down = false
		}
	}
	switch {
	case up:
		return +1
	case down:
		return -1
	default:
		return 0
	}
}

// Invert implements the [Curve] interface.
// A sampled curve is invertible if its values are strictly monotonic.
func (c *Sampled) Invert() (Curve, bool) {
	dir := c.Monotonic()
	if dir == 0 {
		return declined("Sampled", "not strictly monotonic")
	}
	xs := slices.Clone(c.ys)
	ys := slices.Clone(c.xs)
	if dir < 0 {
		slices.Reverse(xs)
		slices.Reverse(ys)
	}
	return &Sampled{xs: xs, ys: ys}, true
}
