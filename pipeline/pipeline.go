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

// Package pipeline assembles the processing elements of ICC colour
// profile tags into transforms.
//
// The types in this package hold already decoded tag contents: curves,
// matrices and lookup tables.  The Build methods chain these elements in
// the order prescribed by the ICC specification for the respective tag
// type.  Missing elements are skipped.
package pipeline

import (
	"fmt"

	"seehuhn.de/go/colour/colorimetry"
	"seehuhn.de/go/colour/curve"
	"seehuhn.de/go/colour/transform"
)

// PCSChannels is the number of channels of the profile connection space.
// An empty pipeline is the identity on this many channels.
const PCSChannels = 3

// Lut holds the contents of an ICC lut8Type or lut16Type tag.
// The elements are applied in the order Matrix, Input, CLUT, Output.
type Lut struct {
	// Matrix is only allowed for three input channels.
	Matrix *transform.Matrix
	Input  []curve.Curve
	CLUT   *transform.CLUT
	Output []curve.Curve
}

// Build returns the transform described by l.
func (l *Lut) Build() (transform.Transform, error) {
	if l.Matrix != nil && (l.Matrix.Rows() != 3 || l.Matrix.Cols() != 3) {
		return nil, fmt.Errorf("pipeline: lut matrix must be 3×3, not %d×%d",
			l.Matrix.Rows(), l.Matrix.Cols())
	}
	var b builder
	b.add(matrixStep(l.Matrix))
	b.curves("input", l.Input)
	b.add(clutStep(l.CLUT))
	b.curves("output", l.Output)
	return b.build()
}

// AToB holds the contents of an ICC lutAToBType tag.
// The elements are applied in the order A, CLUT, M, Matrix, B.
type AToB struct {
	A      []curve.Curve
	CLUT   *transform.CLUT
	M      []curve.Curve
	Matrix *transform.Matrix
	B      []curve.Curve
}

// Build returns the transform described by l.
func (l *AToB) Build() (transform.Transform, error) {
	var b builder
	b.curves("A", l.A)
	b.add(clutStep(l.CLUT))
	b.curves("M", l.M)
	b.add(matrixStep(l.Matrix))
	b.curves("B", l.B)
	return b.build()
}

// BToA holds the contents of an ICC lutBToAType tag.
// The elements are applied in the order B, Matrix, M, CLUT, A.
type BToA struct {
	B      []curve.Curve
	Matrix *transform.Matrix
	M      []curve.Curve
	CLUT   *transform.CLUT
	A      []curve.Curve
}

// Build returns the transform described by l.
func (l *BToA) Build() (transform.Transform, error) {
	var b builder
	b.curves("B", l.B)
	b.add(matrixStep(l.Matrix))
	b.curves("M", l.M)
	b.add(clutStep(l.CLUT))
	b.curves("A", l.A)
	return b.build()
}

// MatrixTRC describes a three-component matrix-based profile.
// Red, Green and Blue are the PCS values of the colorant tags, and
// TRC holds the tone reproduction curves.  A nil curve is the identity.
type MatrixTRC struct {
	Red, Green, Blue colorimetry.XYZ
	TRC              [3]curve.Curve
}

// Build returns the transform from device RGB to PCS XYZ.
func (p *MatrixTRC) Build() (transform.Transform, error) {
	var b builder
	b.curves("TRC", p.TRC[:])
	b.add(transform.NewMatrix3([9]float64{
		p.Red[0], p.Green[0], p.Blue[0],
		p.Red[1], p.Green[1], p.Blue[1],
		p.Red[2], p.Green[2], p.Blue[2],
	}), nil)
	return b.build()
}

// GrayTRC describes a monochrome profile.  The grey value is mapped
// through TRC and then scaled by the media white point White.
type GrayTRC struct {
	TRC   curve.Curve
	White colorimetry.XYZ
}

// Build returns the transform from a device grey value to PCS XYZ.
func (p *GrayTRC) Build() (transform.Transform, error) {
	var b builder
	b.curves("TRC", []curve.Curve{p.TRC})
	b.add(transform.NewMatrix(3, 1, p.White[:], nil))
	return b.build()
}

// LabPCS returns the transform from CIE L*a*b* values to the ICC Lab PCS
// encoding, where all channels are in the range [0, 1].
func LabPCS() *transform.Normalize {
	t, err := transform.NewNormalize(labMin, labMax)
	if err != nil {
		panic("unreachable")
	}
	return t
}

// LabFromPCS returns the transform from the ICC Lab PCS encoding to
// CIE L*a*b* values.  This is the inverse of [LabPCS].
func LabFromPCS() *transform.Denormalize {
	t, err := transform.NewDenormalize(labMin, labMax)
	if err != nil {
		panic("unreachable")
	}
	return t
}

var (
	labMin = []float64{0, -128, -128}
	labMax = []float64{100, 127, 127}
)

// builder collects the stages of a pipeline.  The first error is kept
// and all later stages are ignored.
type builder struct {
	steps []transform.Transform
	err   error
}

func (b *builder) add(t transform.Transform, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	if t != nil {
		b.steps = append(b.steps, t)
	}
}

// curves adds a per-channel curve stage.  Nil entries are replaced by
// the identity.
func (b *builder) curves(stage string, cs []curve.Curve) {
	if len(cs) == 0 {
		return
	}
	cc := make([]curve.Curve, len(cs))
	for i, c := range cs {
		if c == nil {
			c = curve.Identity()
		}
		cc[i] = c
	}
	t, err := transform.NewCurves(cc...)
	if err != nil {
		b.add(nil, fmt.Errorf("pipeline: %s curves: %w", stage, err))
		return
	}
	b.add(t, nil)
}

func (b *builder) build() (transform.Transform, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch len(b.steps) {
	case 0:
		return transform.Identity(PCSChannels), nil
	case 1:
		return b.steps[0], nil
	}
	c, err := transform.NewComposition(b.steps...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return c, nil
}

// matrixStep and clutStep avoid storing typed nil pointers in the
// transform interface.
func matrixStep(m *transform.Matrix) (transform.Transform, error) {
	if m == nil {
		return nil, nil
	}
	return m, nil
}

func clutStep(c *transform.CLUT) (transform.Transform, error) {
	if c == nil {
		return nil, nil
	}
	return c, nil
}
