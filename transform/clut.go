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

// MaxCLUTInputs is the largest number of input channels supported by a CLUT.
const MaxCLUTInputs = 15

// CLUT is a colour lookup table: an N-dimensional grid of M-channel output
// samples, with interpolation between the grid points.
//
// Inputs are expected in [0, 1] and are clamped to this range.  The
// samples are stored so that the first input channel varies most slowly.
// Evaluation uses scratch space owned by the CLUT; use [CLUT.Local] for
// concurrent use.
type CLUT struct {
	gridSizes []int
	nOut      int
	values    []float64

	// strides[i] is the offset in values between adjacent grid points
	// along axis i, upper[i] is the same except for axes of size 1 where
	// it is zero.
	strides []int
	upper   []int

	tetrahedral bool

	// scratch space for the 2^N corner weights and offsets
	weights []float64
	offsets []int
}

type clutOptions struct {
	tetrahedral bool
}

// CLUTOption configures the construction of a [CLUT].
type CLUTOption func(*clutOptions)

// WithTetrahedral selects tetrahedral instead of multilinear
// interpolation.  This only has an effect for CLUTs with three input
// channels and at least two grid points along every axis.
func WithTetrahedral() CLUTOption {
	return func(o *clutOptions) {
		o.tetrahedral = true
	}
}

// NewCLUT returns a lookup table with the given grid sizes for the input
// channels and the given number of output channels.  The length of values
// must be outputChannels times the product of the grid sizes.
func NewCLUT(gridSizes []int, outputChannels int, values []float64, opts ...CLUTOption) (*CLUT, error) {
	o := &clutOptions{}
	for _, opt := range opts {
		opt(o)
	}

	n := len(gridSizes)
	if n == 0 || n > MaxCLUTInputs {
		return nil, newInvalidTransformError("CLUT", "gridSizes", "invalid number of inputs %d", n)
	}
	if outputChannels < 1 {
		return nil, newInvalidTransformError("CLUT", "outputChannels", "invalid number of outputs %d", outputChannels)
	}

	strides := make([]int, n)
	upper := make([]int, n)
	size := outputChannels
	for i := n - 1; i >= 0; i-- {
		g := gridSizes[i]
		if g < 1 {
			return nil, newInvalidTransformError("CLUT", "gridSizes", "grid size %d for input %d", g, i)
		}
		strides[i] = size
		if g > 1 {
			upper[i] = size
		}
		if size > math.MaxInt32/g {
			return nil, newInvalidTransformError("CLUT", "gridSizes", "table too large")
		}
		size *= g
	}
	if len(values) != size {
		return nil, newInvalidTransformError("CLUT", "values",
			"expected %d values, got %d", size, len(values))
	}

	c := &CLUT{
		gridSizes: slices.Clone(gridSizes),
		nOut:      outputChannels,
		values:    slices.Clone(values),
		strides:   strides,
		upper:     upper,
	}
	if o.tetrahedral && n == 3 && gridSizes[0] > 1 && gridSizes[1] > 1 && gridSizes[2] > 1 {
		c.tetrahedral = true
	}
	c.allocScratch()
	return c, nil
}

func (c *CLUT) allocScratch() {
	k := 1 << len(c.gridSizes)
	c.weights = make([]float64, k)
	c.offsets = make([]int, k)
}

// GridSizes returns the number of grid points along each input axis.
func (c *CLUT) GridSizes() []int {
	return slices.Clone(c.gridSizes)
}

// InputChannels implements the [Transform] interface.
func (c *CLUT) InputChannels() int { return len(c.gridSizes) }

// OutputChannels implements the [Transform] interface.
func (c *CLUT) OutputChannels() int { return c.nOut }

// gridPos maps the input x for axis i to a cell index and the fractional
// position inside the cell.
func (c *CLUT) gridPos(i int, x float64) (int, float64) {
	size := c.gridSizes[i]
	g := clamp(x, 0, 1) * float64(size-1)

	// land exactly on grid points when x = k/(size-1) up to rounding
	if r := math.Round(g); math.Abs(g-r) < 1e-9 {
		g = r
	}

	cell := int(g)
	if cell > size-2 {
		cell = size - 2
	}
	if cell < 0 {
		cell = 0
	}
	return cell, g - float64(cell)
}

// Apply implements the [Transform] interface.
func (c *CLUT) Apply(dst, src []float64) error {
	if err := checkShape(c, dst, src); err != nil {
		return err
	}
	for _, x := range src {
		if math.IsNaN(x) {
			for j := range dst {
				dst[j] = math.NaN()
			}
			return nil
		}
	}

	if c.tetrahedral {
		c.applyTetrahedral(dst, src)
		return nil
	}

	// Iterative doubling: after processing axis i, the first 2^(i+1)
	// entries of weights and offsets describe the corners of the cell in
	// the first i+1 dimensions.  Bit i of the corner index is set for the
	// upper grid point along axis i.
	weights := c.weights
	offsets := c.offsets
	weights[0] = 1
	offsets[0] = 0
	base := 0
	k := 1
	for i, x := range src {
		cell, alpha := c.gridPos(i, x)
		base += cell * c.strides[i]
		step := c.upper[i]
		for j := range k {
			w := weights[j]
			weights[j] = w * (1 - alpha)
			weights[k+j] = w * alpha
			offsets[k+j] = offsets[j] + step
		}
		k *= 2
	}

	for j := range c.nOut {
		var sum float64
		for corner := range k {
			w := weights[corner]
			if w == 0 {
				continue
			}
			sum += w * c.values[base+offsets[corner]+j]
		}
		dst[j] = sum
	}
	return nil
}

// applyTetrahedral interpolates in a three-dimensional table by splitting
// the grid cell into six tetrahedra.
func (c *CLUT) applyTetrahedral(dst, src []float64) {
	ri, fr := c.gridPos(0, src[0])
	gi, fg := c.gridPos(1, src[1])
	bi, fb := c.gridPos(2, src[2])

	rStride, gStride, bStride := c.strides[0], c.strides[1], c.strides[2]
	base := ri*rStride + gi*gStride + bi*bStride

	c000 := base
	c001 := base + bStride
	c010 := base + gStride
	c011 := base + gStride + bStride
	c100 := base + rStride
	c101 := base + rStride + bStride
	c110 := base + rStride + gStride
	c111 := base + rStride + gStride + bStride

	v := c.values
	for i := range c.nOut {
		var out float64
		switch {
		case fr > fg && fg > fb:
			out = (1-fr)*v[c000+i] + (fr-fg)*v[c100+i] + (fg-fb)*v[c110+i] + fb*v[c111+i]
		case fr > fg && fr > fb:
			out = (1-fr)*v[c000+i] + (fr-fb)*v[c100+i] + (fb-fg)*v[c101+i] + fg*v[c111+i]
		case fr > fg:
			out = (1-fb)*v[c000+i] + (fb-fr)*v[c001+i] + (fr-fg)*v[c101+i] + fg*v[c111+i]
		case fr > fb:
			out = (1-fg)*v[c000+i] + (fg-fr)*v[c010+i] + (fr-fb)*v[c110+i] + fb*v[c111+i]
		case fg > fb:
			out = (1-fg)*v[c000+i] + (fg-fb)*v[c010+i] + (fb-fr)*v[c011+i] + fr*v[c111+i]
		default:
			out = (1-fb)*v[c000+i] + (fb-fg)*v[c001+i] + (fg-fr)*v[c011+i] + fr*v[c111+i]
		}
		dst[i] = out
	}
}

// Invert implements the [Transform] interface.
// Lookup tables are never invertible.
func (c *CLUT) Invert() (Transform, bool) {
	return declined("CLUT", "sampled tables have no inverse")
}

// Local implements the [Transform] interface.
// The new instance shares the table with the receiver.
func (c *CLUT) Local() Transform {
	res := *c
	res.allocScratch()
	return &res
}
