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
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colour/transform"
)

func eval(t *testing.T, tr transform.Transform, x ...float64) []float64 {
	t.Helper()
	y, err := transform.Eval(tr, x...)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

type roundTripCase struct {
	name  string
	tr    transform.Transform
	input func(r *rand.Rand) []float64
}

func unitCube(r *rand.Rand) []float64 {
	return []float64{r.Float64(), r.Float64(), r.Float64()}
}

func positiveXYZ(r *rand.Rand) []float64 {
	return []float64{0.01 + r.Float64(), 0.01 + r.Float64(), 0.01 + r.Float64()}
}

func roundTripCases(t *testing.T) []roundTripCase {
	t.Helper()
	linear, err := NewRGB(SRGBPrimaries, nil)
	if err != nil {
		t.Fatal(err)
	}
	lab, err := NewXYZToLab(D50)
	if err != nil {
		t.Fatal(err)
	}
	labInv, err := NewLabToXYZ(D65)
	if err != nil {
		t.Fatal(err)
	}
	luv, err := NewXYZToLuv(D65)
	if err != nil {
		t.Fatal(err)
	}
	hunter, err := NewXYZToHunterLab(D65)
	if err != nil {
		t.Fatal(err)
	}
	ycc, err := RGBToYCbCr(BT709)
	if err != nil {
		t.Fatal(err)
	}
	return []roundTripCase{
		{"sRGB", SRGB(), unitCube},
		{"AdobeRGB", AdobeRGB(), unitCube},
		{"DisplayP3", DisplayP3(), unitCube},
		{"Rec2020", Rec2020(), unitCube},
		{"ProPhoto", ProPhoto(), unitCube},
		{"LinearSRGB", linear, unitCube},
		{"Lab", lab, positiveXYZ},
		{"LabInverse", labInv, func(r *rand.Rand) []float64 {
			return []float64{100 * r.Float64(), 200*r.Float64() - 100, 200*r.Float64() - 100}
		}},
		{"Luv", luv, positiveXYZ},
		{"HunterLab", hunter, positiveXYZ},
		{"HSV", RGBToHSV{}, unitCube},
		{"HLS", RGBToHLS{}, unitCube},
		{"YCbCr", ycc, unitCube},
		{"YUV", RGBToYUV(), unitCube},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range roundTripCases(t) {
		t.Run(c.name, func(t *testing.T) {
			inv, ok := c.tr.Invert()
			if !ok {
				t.Fatal("not invertible")
			}
			r := rand.New(rand.NewPCG(1, 2))
			for range 200 {
				x := c.input(r)
				y := eval(t, c.tr, x...)
				got := eval(t, inv, y...)
				if d := cmp.Diff(x, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
					t.Fatalf("%v -> %v (-want +got):\n%s", x, y, d)
				}
			}
		})
	}
}

func TestShape(t *testing.T) {
	for _, c := range roundTripCases(t) {
		inv, _ := c.tr.Invert()
		for _, tr := range []transform.Transform{c.tr, inv} {
			name := fmt.Sprintf("%s/%T", c.name, tr)
			t.Run(name, func(t *testing.T) {
				err := tr.Apply(make([]float64, 3), make([]float64, 2))
				if !errors.Is(err, transform.ErrShape) {
					t.Errorf("short input: got %v", err)
				}
				err = tr.Apply(make([]float64, 4), make([]float64, 3))
				var se *transform.ShapeError
				if !errors.As(err, &se) || !se.Output {
					t.Errorf("long output: got %v", err)
				}
				if tr.Local() == nil {
					t.Error("Local returned nil")
				}
			})
		}
	}
}

func TestSRGBWhite(t *testing.T) {
	got := eval(t, SRGB(), 1, 1, 1)
	if d := cmp.Diff(D65[:], got, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("sRGB white (-want +got):\n%s", d)
	}
}

func TestPrimariesMatrix(t *testing.T) {
	m, err := SRGBPrimaries.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	if d := cmp.Diff(want, m.Coefficients(), cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("sRGB matrix (-want +got):\n%s", d)
	}

	for _, p := range []Primaries{AdobeRGBPrimaries, DisplayP3Primaries, Rec2020Primaries, ProPhotoPrimaries} {
		m, err := p.Matrix()
		if err != nil {
			t.Fatal(err)
		}
		got := eval(t, m, 1, 1, 1)
		if d := cmp.Diff(p.White[:], got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%v: white (-want +got):\n%s", p, d)
		}
	}

	bad := SRGBPrimaries
	bad.Blue = Chromaticity{0.47, 0.465} // on the line from red to green
	if _, err := bad.Matrix(); err == nil {
		t.Error("collinear primaries: expected error")
	}
}

func TestNewRGBInvalid(t *testing.T) {
	bad := SRGBPrimaries
	bad.Green = Chromaticity{0.3, 0}
	if _, err := NewRGB(bad, nil); err == nil {
		t.Error("zero y chromaticity: expected error")
	}
}

func TestRGBPairing(t *testing.T) {
	fwd := SRGB()
	inv, _ := fwd.Invert()
	back, _ := inv.Invert()
	if back != transform.Transform(fwd) {
		t.Error("inverse of inverse is a new object")
	}
	if SRGB() != fwd {
		t.Error("SRGB returned different instances")
	}
}

func TestBradford(t *testing.T) {
	m, err := Bradford(D50, D65)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		0.9555766, -0.0230393, 0.0631636,
		-0.0282895, 1.0099416, 0.0210077,
		0.0122982, -0.0204830, 1.3299098,
	}
	if d := cmp.Diff(want, m.Coefficients(), cmpopts.EquateApprox(0, 1e-3)); d != "" {
		t.Errorf("D50 to D65 (-want +got):\n%s", d)
	}

	got := eval(t, m, D50[:]...)
	if d := cmp.Diff(D65[:], got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("D50 does not map to D65 (-want +got):\n%s", d)
	}

	id, err := Bradford(D65, D65)

	if err != nil {

		t.Fatal(err)

	}
	if d := cmp.Diff([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Coefficients(), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("same white point (-want +got):\n%s", d)
	}
}

func TestChromaticity(t *testing.T) {
	w := D65xy.XYZ(1)
	got := w.Chromaticity()
	if d := cmp.Diff(D65xy, got, cmpopts.EquateApprox(0, 1e-15)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
	if c := (XYZ{}).Chromaticity(); c != (Chromaticity{}) {
		t.Errorf("black: got %v", c)
	}
}

func TestWhiteValidation(t *testing.T) {
	bad := XYZ{0.95, 0, 1.09}
	var ite *transform.InvalidTransformError
	if _, err := NewXYZToLab(bad); !errors.As(err, &ite) {
		t.Errorf("Lab: got %v", err)
	}
	if _, err := NewLuvToXYZ(bad); err == nil {
		t.Error("Luv: expected error")
	}
	if _, err := NewHunterLabToXYZ(XYZ{-1, 1, 1}); err == nil {
		t.Error("HunterLab: expected error")
	}
}
