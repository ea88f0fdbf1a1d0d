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

// XYZToLuv converts CIE XYZ values to CIE 1976 L*u*v*.
type XYZToLuv struct {
	white  XYZ
	un, vn float64
}

// NewXYZToLuv returns the conversion from XYZ to L*u*v* relative to the
// given reference white.
func NewXYZToLuv(white XYZ) (*XYZToLuv, error) {
	if err := checkWhite("XYZToLuv", white); err != nil {
		return nil, err
	}
	un, vn := uvPrime(white[0], white[1], white[2])
	return &XYZToLuv{white: white, un: un, vn: vn}, nil
}

// InputChannels implements the [transform.Transform] interface.
func (t *XYZToLuv) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *XYZToLuv) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *XYZToLuv) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	X, Y, Z := src[0], src[1], src[2]

	yr := Y / t.white[1]
	var L float64
	if yr > labEpsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = labKappa * yr
	}

	u, v := t.un, t.vn
	if X+15*Y+3*Z != 0 {
		u, v = uvPrime(X, Y, Z)
	}
	dst[0] = L
	dst[1] = 13 * L * (u - t.un)
	dst[2] = 13 * L * (v - t.vn)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *XYZToLuv) Invert() (transform.Transform, bool) {
	return &LuvToXYZ{white: t.white, un: t.un, vn: t.vn}, true
}

// Local implements the [transform.Transform] interface.
func (t *XYZToLuv) Local() transform.Transform { return t }

// LuvToXYZ converts CIE 1976 L*u*v* values to CIE XYZ.
type LuvToXYZ struct {
	white  XYZ
	un, vn float64
}

// NewLuvToXYZ returns the conversion from L*u*v* to XYZ relative to the
// given reference white.
func NewLuvToXYZ(white XYZ) (*LuvToXYZ, error) {
	if err := checkWhite("LuvToXYZ", white); err != nil {
		return nil, err
	}
	un, vn := uvPrime(white[0], white[1], white[2])
	return &LuvToXYZ{white: white, un: un, vn: vn}, nil
}

// InputChannels implements the [transform.Transform] interface.
func (t *LuvToXYZ) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *LuvToXYZ) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *LuvToXYZ) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	L, u, v := src[0], src[1], src[2]
	if L == 0 {
		dst[0], dst[1], dst[2] = 0, 0, 0
		return nil
	}

	var Y float64
	if L > labKappa*labEpsilon {
		fy := (L + 16) / 116
		Y = fy * fy * fy
	} else {
		Y = L / labKappa
	}
	Y *= t.white[1]

	up := u/(13*L) + t.un
	vp := v/(13*L) + t.vn
	if vp == 0 {
		dst[0], dst[1], dst[2] = 0, Y, 0
		return nil
	}
	dst[0] = Y * 9 * up / (4 * vp)
	dst[1] = Y
	dst[2] = Y * (12 - 3*up - 20*vp) / (4 * vp)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (t *LuvToXYZ) Invert() (transform.Transform, bool) {
	return &XYZToLuv{white: t.white, un: t.un, vn: t.vn}, true
}

// Local implements the [transform.Transform] interface.
func (t *LuvToXYZ) Local() transform.Transform { return t }

// uvPrime returns the CIE 1976 UCS chromaticity coordinates u', v'.
func uvPrime(X, Y, Z float64) (float64, float64) {
	d := X + 15*Y + 3*Z
	return 4 * X / d, 9 * Y / d
}
