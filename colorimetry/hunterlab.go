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

// hunterK returns the chromaticity coefficients Ka and Kb of Hunter Lab
// for the given white point.
func hunterK(w XYZ) (ka, kb float64) {
	ka = 100 * (175 / 198.04) * (w[0] + w[1]) / w[1]
	kb = 100 * (70 / 218.11) * (w[1] + w[2]) / w[1]
	return ka, kb
}

// XYZToHunterLab converts CIE XYZ values to Hunter Lab.
type XYZToHunterLab struct {
	white  XYZ
	ka, kb float64
}

// NewXYZToHunterLab returns the conversion from XYZ to Hunter Lab
// relative to the given reference white.
func NewXYZToHunterLab(white XYZ) (*XYZToHunterLab, error) {
	if err := checkWhite("XYZToHunterLab", white); err != nil {
		return nil, err
	}
	ka, kb := hunterK(white)
	return &XYZToHunterLab{white: white, ka: ka, kb: kb}, nil
}

// InputChannels implements the [transform.Transform] interface.
func (t *XYZToHunterLab) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *XYZToHunterLab) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
// Negative Y values give NaN.
func (t *XYZToHunterLab) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	xr := src[0] / t.white[0]
	yr := src[1] / t.white[1]
	zr := src[2] / t.white[2]

	s := math.Sqrt(yr)
	dst[0] = 100 * s
	if s == 0 {
		dst[1], dst[2] = 0, 0
		return nil
	}
	dst[1] = t.ka * (xr - yr) / s
	dst[2] = t.kb * (yr - zr) / s
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *XYZToHunterLab) Invert() (transform.Transform, bool) {
	return &HunterLabToXYZ{white: t.white, ka: t.ka, kb: t.kb}, true
}

// Local implements the [transform.Transform] interface.
func (t *XYZToHunterLab) Local() transform.Transform { return t }

// HunterLabToXYZ converts Hunter Lab values to CIE XYZ.
type HunterLabToXYZ struct {
	white  XYZ
	ka, kb float64
}

// NewHunterLabToXYZ returns the conversion from Hunter Lab to XYZ
// relative to the given reference white.
func NewHunterLabToXYZ(white XYZ) (*HunterLabToXYZ, error) {
	if err := checkWhite("HunterLabToXYZ", white); err != nil {
		return nil, err
	}
	ka, kb := hunterK(white)
	return &HunterLabToXYZ{white: white, ka: ka, kb: kb}, nil
}

// InputChannels implements the [transform.Transform] interface.
func (t *HunterLabToXYZ) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *HunterLabToXYZ) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *HunterLabToXYZ) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	s := src[0] / 100
	yr := s * s

	dst[0] = t.white[0] * (src[1]*s/t.ka + yr)
	dst[1] = t.white[1] * yr
	dst[2] = t.white[2] * (yr - src[2]*s/t.kb)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *HunterLabToXYZ) Invert() (transform.Transform, bool) {
	return &XYZToHunterLab{white: t.white, ka: t.ka, kb: t.kb}, true
}

// Local implements the [transform.Transform] interface.
func (t *HunterLabToXYZ) Local() transform.Transform { return t }
