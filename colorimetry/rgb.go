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
	"fmt"
	"sync"

	"seehuhn.de/go/colour/curve"
	"seehuhn.de/go/colour/transform"
)

// RGBToXYZ converts RGB values to CIE XYZ.  The RGB values are first
// decoded by the transfer curve of the colour space, and then mapped to
// XYZ by a 3×3 matrix.
//
// RGBToXYZ and its inverse [XYZToRGB] are always constructed together,
// using [NewRGB].
type RGBToXYZ struct {
	primaries Primaries
	decode    *transform.Curves // nil for linear RGB
	m         *transform.Matrix
	inv       *XYZToRGB
}

// XYZToRGB converts CIE XYZ values to RGB.  This is the inverse of
// [RGBToXYZ].  Linear RGB values are clamped to the domain of the
// encoding curve before being encoded, so that out of gamut colours
// are clipped.
type XYZToRGB struct {
	encode *transform.Curves // nil for linear RGB
	m      *transform.Matrix
	fwd    *RGBToXYZ
}

// NewRGB returns the conversion from the RGB space with the given
// primaries and decoding curve to XYZ.  The decoding curve maps encoded
// channel values to linear light; if decode is nil, the RGB values are
// taken to be linear.  The decoding curve must be invertible.
//
// The inverse conversion is available via the Invert method.
func NewRGB(p Primaries, decode curve.Curve) (*RGBToXYZ, error) {
	m, err := p.Matrix()
	if err != nil {
		return nil, err
	}
	mInv, ok := m.Invert()
	if !ok {
		return nil, fmt.Errorf("colorimetry: RGB matrix for %v is singular", p)
	}

	fwd := &RGBToXYZ{primaries: p, m: m}
	inv := &XYZToRGB{m: mInv.(*transform.Matrix)}
	if decode != nil {
		encode, ok := decode.Invert()
		if !ok {
			return nil, fmt.Errorf("colorimetry: decoding curve %T has no inverse", decode)
		}
		fwd.decode, err = transform.NewCurves(decode, decode, decode)
		if err != nil {
			return nil, err
		}
		inv.encode, err = transform.NewCurves(encode, encode, encode)
		if err != nil {
			return nil, err
		}
	}
	fwd.inv = inv
	inv.fwd = fwd
	return fwd, nil
}

// Primaries returns the primaries of the RGB space.
func (t *RGBToXYZ) Primaries() Primaries { return t.primaries }

// Matrix returns the matrix which maps linear RGB values to XYZ.
func (t *RGBToXYZ) Matrix() *transform.Matrix { return t.m }

// InputChannels implements the [transform.Transform] interface.
func (t *RGBToXYZ) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *RGBToXYZ) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *RGBToXYZ) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	var buf [3]float64
	if t.decode != nil {
		if err := t.decode.Apply(buf[:], src); err != nil {
			return err
		}
		src = buf[:]
	}
	return t.m.Apply(dst, src)
}

// Invert implements the [transform.Transform] interface.
// The inverse is the [XYZToRGB] constructed together with t.
func (t *RGBToXYZ) Invert() (transform.Transform, bool) { return t.inv, true }

// Local implements the [transform.Transform] interface.
func (t *RGBToXYZ) Local() transform.Transform { return t }

// InputChannels implements the [transform.Transform] interface.
func (t *XYZToRGB) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (t *XYZToRGB) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (t *XYZToRGB) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	if t.encode == nil {
		return t.m.Apply(dst, src)
	}
	var buf [3]float64
	if err := t.m.Apply(buf[:], src); err != nil {
		return err
	}
	return t.encode.Apply(dst, buf[:])
}

// Invert implements the [transform.Transform] interface.
func (t *XYZToRGB) Invert() (transform.Transform, bool) { return t.fwd, true }

// Local implements the [transform.Transform] interface.
func (t *XYZToRGB) Local() transform.Transform { return t }

func must(t *RGBToXYZ, err error) *RGBToXYZ {
	if err != nil {
		panic(err)
	}
	return t
}

var (
	srgb = sync.OnceValue(func() *RGBToXYZ {
		return must(NewRGB(SRGBPrimaries, curve.SRGB()))
	})
	adobeRGB = sync.OnceValue(func() *RGBToXYZ {
		return must(NewRGB(AdobeRGBPrimaries, &curve.UnitGamma{Gamma: 563.0 / 256, A: 1}))
	})
	displayP3 = sync.OnceValue(func() *RGBToXYZ {
		return must(NewRGB(DisplayP3Primaries, curve.SRGB()))
	})
	rec2020 = sync.OnceValue(func() *RGBToXYZ {
		return must(NewRGB(Rec2020Primaries, curve.Rec709()))
	})
	proPhoto = sync.OnceValue(func() *RGBToXYZ {
		return must(NewRGB(ProPhotoPrimaries, &curve.UnitGamma{Gamma: 1.8, A: 1, D: 1.0 / 32, E: 1.0 / 16}))
	})
)

// SRGB returns the conversion from sRGB (IEC 61966-2-1) to XYZ.
func SRGB() *RGBToXYZ { return srgb() }

// AdobeRGB returns the conversion from Adobe RGB (1998) to XYZ.
func AdobeRGB() *RGBToXYZ { return adobeRGB() }

// DisplayP3 returns the conversion from Display P3 to XYZ.
func DisplayP3() *RGBToXYZ { return displayP3() }

// Rec2020 returns the conversion from ITU-R BT.2020 RGB to XYZ.
func Rec2020() *RGBToXYZ { return rec2020() }

// ProPhoto returns the conversion from ProPhoto RGB (ROMM RGB) to XYZ.
// The white point is D50.
func ProPhoto() *RGBToXYZ { return proPhoto() }

func checkShape3(dst, src []float64) error {
	if len(src) != 3 {
		return &transform.ShapeError{Want: 3, Got: len(src)}
	}
	if len(dst) != 3 {
		return &transform.ShapeError{Want: 3, Got: len(dst), Output: true}
	}
	return nil
}
