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

// RGBToHSV converts RGB values to hue, saturation and value.
// Hue is given in degrees in the range [0, 360), and the other channels
// are in the range [0, 1] for RGB input in the unit cube.
type RGBToHSV struct{}

// HSVToRGB converts hue, saturation and value to RGB.
// This is the inverse of [RGBToHSV].  Hue values outside [0, 360) are
// wrapped around.
type HSVToRGB struct{}

// RGBToHLS converts RGB values to hue, lightness and saturation,
// in this channel order.
type RGBToHLS struct{}

// HLSToRGB converts hue, lightness and saturation to RGB.
// This is the inverse of [RGBToHLS].
type HLSToRGB struct{}

// InputChannels implements the [transform.Transform] interface.
func (RGBToHSV) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (RGBToHSV) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (RGBToHSV) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	h, hi, lo := hueOf(src[0], src[1], src[2])
	var s float64
	if hi != 0 {
		s = (hi - lo) / hi
	}
	dst[0], dst[1], dst[2] = h, s, hi
	return nil
}

// Invert implements the [transform.Transform] interface.
func (RGBToHSV) Invert() (transform.Transform, bool) { return HSVToRGB{}, true }

// Local implements the [transform.Transform] interface.
func (t RGBToHSV) Local() transform.Transform { return t }

// InputChannels implements the [transform.Transform] interface.
func (HSVToRGB) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (HSVToRGB) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (HSVToRGB) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	h, s, v := src[0], src[1], src[2]
	c := v * s
	fromHue(dst, h, c, v-c)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (HSVToRGB) Invert() (transform.Transform, bool) { return RGBToHSV{}, true }

// Local implements the [transform.Transform] interface.
func (t HSVToRGB) Local() transform.Transform { return t }

// InputChannels implements the [transform.Transform] interface.
func (RGBToHLS) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (RGBToHLS) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (RGBToHLS) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	h, hi, lo := hueOf(src[0], src[1], src[2])
	l := (hi + lo) / 2
	var s float64
	if c := hi - lo; c != 0 {
		s = c / (1 - math.Abs(2*l-1))
	}
	dst[0], dst[1], dst[2] = h, l, s
	return nil
}

// Invert implements the [transform.Transform] interface.
func (RGBToHLS) Invert() (transform.Transform, bool) { return HLSToRGB{}, true }

// Local implements the [transform.Transform] interface.
func (t RGBToHLS) Local() transform.Transform { return t }

// InputChannels implements the [transform.Transform] interface.
func (HLSToRGB) InputChannels() int { return 3 }

// OutputChannels implements the [transform.Transform] interface.
func (HLSToRGB) OutputChannels() int { return 3 }

// Apply implements the [transform.Transform] interface.
func (HLSToRGB) Apply(dst, src []float64) error {
	if err := checkShape3(dst, src); err != nil {
		return err
	}
	h, l, s := src[0], src[1], src[2]
	c := (1 - math.Abs(2*l-1)) * s
	fromHue(dst, h, c, l-c/2)
	return nil
}

// Invert implements the [transform.Transform] interface.
func (HLSToRGB) Invert() (transform.Transform, bool) { return RGBToHLS{}, true }

// Local implements the [transform.Transform] interface.
func (t HLSToRGB) Local() transform.Transform { return t }

// hueOf returns the hue of an RGB colour in degrees, together with the
// largest and smallest channel value.  Achromatic colours have hue 0.
func hueOf(r, g, b float64) (h, hi, lo float64) {
	hi = math.Max(r, math.Max(g, b))
	lo = math.Min(r, math.Min(g, b))
	d := hi - lo
	if d == 0 {
		return 0, hi, lo
	}

	switch hi {
	case r:
		h = (g - b) / d
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return 60 * h, hi, lo
}

// fromHue writes the RGB colour with hue h (in degrees), chroma c and
// smallest channel value m to dst.
func fromHue(dst []float64, h, c, m float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 60
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	dst[0], dst[1], dst[2] = r+m, g+m, b+m
}
