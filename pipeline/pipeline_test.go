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

package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colour/colorimetry"
	"seehuhn.de/go/colour/curve"
	"seehuhn.de/go/colour/transform"
)

func identityCLUT(t *testing.T) *transform.CLUT {
	t.Helper()
	values := make([]float64, 0, 2*2*2*3)
	for r := range 2 {
		for g := range 2 {
			for b := range 2 {
				values = append(values, float64(r), float64(g), float64(b))
			}
		}
	}
	c, err := transform.NewCLUT([]int{2, 2, 2}, 3, values)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func sqrtCurves() []curve.Curve {
	return []curve.Curve{
		&curve.Gamma{A: 1, G: 0.5},
		&curve.Gamma{A: 1, G: 0.5},
		&curve.Gamma{A: 1, G: 0.5},
	}
}

func doubling() *transform.Matrix {
	return transform.NewMatrix3([9]float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
}

func apply(t *testing.T, p interface {
	Build() (transform.Transform, error)
}, x ...float64) []float64 {
	t.Helper()
	tr, err := p.Build()
	if err != nil {
		t.Fatal(err)
	}
	y, err := transform.Eval(tr, x...)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestAToBOrder(t *testing.T) {
	// 0.25 → CLUT (identity) → M (sqrt = 0.5) → matrix (×2) = 1.0
	l := &AToB{
		CLUT:   identityCLUT(t),
		M:      sqrtCurves(),
		Matrix: doubling(),
	}
	got := apply(t, l, 0.25, 0.25, 0.25)
	want := []float64{1, 1, 1}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestBToAOrder(t *testing.T) {
	// 0.25 → matrix (×2 = 0.5) → M (sqrt ≈ 0.707) → CLUT (identity)
	l := &BToA{
		Matrix: doubling(),
		M:      sqrtCurves(),
		CLUT:   identityCLUT(t),
	}
	got := apply(t, l, 0.25, 0.25, 0.25)
	v := math.Sqrt(0.5)
	want := []float64{v, v, v}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLutOrder(t *testing.T) {
	// 0.25 → matrix (×2 = 0.5) → input (sqrt) → CLUT → output (sqrt)
	l := &Lut{
		Matrix: doubling(),
		Input:  sqrtCurves(),
		CLUT:   identityCLUT(t),
		Output: sqrtCurves(),
	}
	got := apply(t, l, 0.25, 0.25, 0.25)
	v := math.Pow(0.5, 0.25)
	want := []float64{v, v, v}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLutMatrixShape(t *testing.T) {
	m, err := transform.NewMatrix(1, 3, []float64{1, 1, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	l := &Lut{Matrix: m}
	if _, err := l.Build(); err == nil {
		t.Error("non-square matrix: expected error")
	}
}

func TestEmptyPipeline(t *testing.T) {
	for _, p := range []interface {
		Build() (transform.Transform, error)
	}{&Lut{}, &AToB{}, &BToA{}} {
		tr, err := p.Build()
		if err != nil {
			t.Fatal(err)
		}
		if tr != transform.Transform(transform.Identity(PCSChannels)) {
			t.Errorf("%T: got %T", p, tr)
		}
	}
}

func TestChannelMismatch(t *testing.T) {
	l := &AToB{
		A:    []curve.Curve{curve.Identity(), curve.Identity()},
		CLUT: identityCLUT(t),
	}
	_, err := l.Build()
	var ite *transform.InvalidTransformError
	if !errors.As(err, &ite) {
		t.Errorf("got %v, want InvalidTransformError", err)
	}
}

func TestNilCurveIsIdentity(t *testing.T) {
	l := &AToB{B: []curve.Curve{nil, &curve.Gamma{A: 1, G: 2}, nil}}
	got := apply(t, l, 0.5, 0.5, 0.5)
	if d := cmp.Diff([]float64{0.5, 0.25, 0.5}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestMatrixTRC(t *testing.T) {
	srgb := colorimetry.SRGB()
	m := srgb.Matrix().Coefficients()
	p := &MatrixTRC{
		Red:   colorimetry.XYZ{m[0], m[3], m[6]},
		Green: colorimetry.XYZ{m[1], m[4], m[7]},
		Blue:  colorimetry.XYZ{m[2], m[5], m[8]},
		TRC:   [3]curve.Curve{curve.SRGB(), curve.SRGB(), curve.SRGB()},
	}
	for _, x := range [][]float64{{0, 0, 0}, {1, 1, 1}, {0.2, 0.5, 0.9}} {
		want, err := transform.Eval(srgb, x...)
		if err != nil {
			t.Fatal(err)
		}
		got := apply(t, p, x...)
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); d != "" {
			t.Errorf("%v (-want +got):\n%s", x, d)
		}
	}
}

func TestGrayTRC(t *testing.T) {
	p := &GrayTRC{
		TRC:   &curve.UnitGamma{Gamma: 2.2, A: 1},
		White: colorimetry.D50,
	}
	got := apply(t, p, 1)
	if d := cmp.Diff(colorimetry.D50[:], got); d != "" {
		t.Errorf("white (-want +got):\n%s", d)
	}
	got = apply(t, p, 0.5)
	y := math.Pow(0.5, 2.2)
	want := []float64{colorimetry.D50[0] * y, y, colorimetry.D50[2] * y}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); d != "" {
		t.Errorf("mid grey (-want +got):\n%s", d)
	}
}

func TestLabPCS(t *testing.T) {
	enc := LabPCS()
	dec := LabFromPCS()

	got, err := transform.Eval(enc, 100, -128, 127)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{1, 0, 1}, got); d != "" {
		t.Errorf("encode (-want +got):\n%s", d)
	}

	lab := []float64{50, 20, -30}
	pcs, _ := transform.Eval(enc, lab...)
	back, err := transform.Eval(dec, pcs...)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(lab, back, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}

	if inv, ok := enc.Invert(); !ok || inv.InputChannels() != 3 {
		t.Error("LabPCS does not invert")
	}
}
