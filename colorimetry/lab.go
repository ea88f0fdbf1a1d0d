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
	"math"

	"seehuhn.de/go/colour/transform"
)

// CIE 1976 constants
const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0  // (29/3)^3
)

// XYZToLab converts CIE XYZ values to CIE 1976 L*a*b*.
// L* ranges from 0 to 100 for colours not brighter than the white point.
type XYZToLab struct {
	white XYZ
}

// NewXYZToLab returns the conversion from XYZ to L*a*b* relative to the
// given reference white.
func NewXYZToLab(white XYZ) (*XYZToLab, error) {
	if err := checkWhite("XYZToLab", white); err != nil {
		return nil, err
	}
	return &XYZToLab{white: white}, nil
}

// White returns the reference white.
func (t *XYZToLab) White() XYZ { return t.white }

// InputChannels implements the [transform.Transform] interface.
func (t *XYZToLab) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *XYZToLab) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *XYZToLab) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	fx := labF(src[0] / t.white[0])
	fy := labF(src[1] / t.white[1])
	fz := labF(src[2] / t.white[2])

	dst[0] = 116*fy - 16
	dst[1] = 500 * (fx - fy)
	dst[2] = 200 * (fy - fz)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *XYZToLab) Invert() (transform.Transform, bool) {
	return &LabToXYZ{white: t.white}, true
}

// Local implements the [transform.Transform] interface.
func (t *XYZToLab) Local() transform.Transform { return t }

// LabToXYZ converts CIE 1976 L*a*b* values to CIE XYZ.
type LabToXYZ struct {
	white XYZ
}

// NewLabToXYZ returns the conversion from L*a*b* to XYZ relative to the
// given reference white.
func NewLabToXYZ(white XYZ) (*LabToXYZ, error) {
	if err := checkWhite("LabToXYZ", white); err != nil {
		return nil, err
	}
	return &LabToXYZ{white: white}, nil
}

// White returns the reference white.
func (t *LabToXYZ) White() XYZ { return t.white }

// InputChannels implements the [transform.Transform] interface.
func (t *LabToXYZ) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *LabToXYZ) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *LabToXYZ) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	L, a, b := src[0], src[1], src[2]

	fy := (L + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	var yr float64
	if L > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = L / labKappa
	}

	dst[0] = labFInv(fx) * t.white[0]
	dst[1] = yr * t.white[1]
	dst[2] = labFInv(fz) * t.white[2]
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *LabToXYZ) Invert() (transform.Transform, bool) {
	return &XYZToLab{white: t.white}, true
}

// Local implements the [transform.Transform] interface.
func (t *LabToXYZ) Local() transform.Transform { return t }

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}
