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

package colour

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/colour/colorimetry"
	"seehuhn.de/go/colour/transform"
)

type space struct {
	white colorimetry.XYZ
	toXYZ func() (transform.Transform, error)
}

// rgbBased returns the conversion from a space which is derived from sRGB
// by the transform fromRGB.
func rgbBased(fromRGB func() (transform.Transform, error)) func() (transform.Transform, error) {
	return func() (transform.Transform, error) {
		t, err := fromRGB()
		if err != nil {
			return nil, err
		}
		inv, ok := t.Invert()
		if !ok {
			return nil, fmt.Errorf("colour: %T is not invertible", t)
		}
		c, err := transform.NewComposition(inv, colorimetry.SRGB())
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func fixed(t transform.Transform) func() (transform.Transform, error) {
	return func() (transform.Transform, error) { return t, nil }
}

func inverse[T transform.Transform](newT func(colorimetry.XYZ) (T, error), white colorimetry.XYZ) func() (transform.Transform, error) {
	return func() (transform.Transform, error) {
		t, err := newT(white)
		if err != nil {
			return nil, err
		}
		inv, _ := t.Invert()
		return inv, nil
	}
}

func linearSRGB() (transform.Transform, error) {
	t, err := colorimetry.NewRGB(colorimetry.SRGBPrimaries, nil)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func ycbcr709() (transform.Transform, error) {
	m, err := colorimetry.RGBToYCbCr(colorimetry.BT709)
	if err != nil {
		return nil, err
	}
	return m, nil
}

var spaces = map[string]space{
	"srgb":        {colorimetry.D65, fixed(colorimetry.SRGB())},
	"adobergb":    {colorimetry.D65, fixed(colorimetry.AdobeRGB())},
	"displayp3":   {colorimetry.D65, fixed(colorimetry.DisplayP3())},
	"rec2020":     {colorimetry.D65, fixed(colorimetry.Rec2020())},
	"prophoto":    {colorimetry.D50, fixed(colorimetry.ProPhoto())},
	"linear-srgb": {colorimetry.D65, linearSRGB},
	"xyz":         {colorimetry.D50, fixed(transform.Identity(3))},
	"lab":         {colorimetry.D50, inverse(colorimetry.NewXYZToLab, colorimetry.D50)},
	"luv":         {colorimetry.D65, inverse(colorimetry.NewXYZToLuv, colorimetry.D65)},
	"hunterlab":   {colorimetry.D65, inverse(colorimetry.NewXYZToHunterLab, colorimetry.D65)},
	"hsv":         {colorimetry.D65, rgbBased(fixed(colorimetry.RGBToHSV{}))},
	"hls":         {colorimetry.D65, rgbBased(fixed(colorimetry.RGBToHLS{}))},
	"ycbcr":       {colorimetry.D65, rgbBased(ycbcr709)},
}

// Spaces returns the names of the colour spaces known to [Convert],
// in alphabetical order.
func Spaces() []string {
	names := maps.Keys(spaces)
	slices.Sort(names)
	return names
}

// Convert returns the transform which converts colour values from the
// named space from to the named space to.
//
// The RGB spaces, HSV, HLS and YCbCr take values in the range [0, 1].
// HSV and HLS measure hue in degrees and are derived from sRGB, and
// YCbCr uses the BT.709 weights on top of sRGB.  XYZ is relative to the
// D50 white point, with Y=1 for the white.
func Convert(from, to string) (transform.Transform, error) {
	src, ok := spaces[from]
	if !ok {
		return nil, fmt.Errorf("colour: unknown colour space %q", from)
	}
	dst, ok := spaces[to]
	if !ok {
		return nil, fmt.Errorf("colour: unknown colour space %q", to)
	}

	a, err := src.toXYZ()
	if err != nil {
		return nil, fmt.Errorf("colour: %s: %w", from, err)
	}
	b, err := dst.toXYZ()
	if err != nil {
		return nil, fmt.Errorf("colour: %s: %w", to, err)
	}
	bInv, ok := b.Invert()
	if !ok {
		return nil, fmt.Errorf("colour: conversion to %s is not invertible", to)
	}

	steps := []transform.Transform{a}
	if src.white != dst.white {
		m, err := colorimetry.Bradford(src.white, dst.white)
		if err != nil {
			return nil, err
		}
		Logger().Debug("chromatic adaptation",
			slog.String("from", from), slog.String("to", to))
		steps = append(steps, m)
	}
	steps = append(steps, bInv)
	c, err := transform.NewComposition(steps...)
	if err != nil {
		return nil, err
	}
	return c, nil
}
