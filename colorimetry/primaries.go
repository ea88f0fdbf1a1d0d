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

	"seehuhn.de/go/colour/transform"
)

// Primaries describes the gamut of an RGB colour space by the
// chromaticities of its three primaries and its white point.
type Primaries struct {
	Red, Green, Blue Chromaticity
	White            XYZ
}

// Primaries of common RGB colour spaces.
var (
	// SRGBPrimaries are the primaries of sRGB and ITU-R BT.709.
	SRGBPrimaries = Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.30, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
		White: D65,
	}

	AdobeRGBPrimaries = Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.15, 0.06},
		White: D65,
	}

	DisplayP3Primaries = Primaries{
		Red:   Chromaticity{0.680, 0.320},
		Green: Chromaticity{0.265, 0.690},
		Blue:  Chromaticity{0.150, 0.060},
		White: D65,
	}

	Rec2020Primaries = Primaries{
		Red:   Chromaticity{0.708, 0.292},
		Green: Chromaticity{0.170, 0.797},
		Blue:  Chromaticity{0.131, 0.046},
		White: D65,
	}

	ProPhotoPrimaries = Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.1596, 0.8404},
		Blue:  Chromaticity{0.0366, 0.0001},
		White: D50,
	}
)

var errDegeneratePrimaries = errors.New("colorimetry: primaries are collinear")

// Matrix returns the 3×3 matrix which maps linear RGB values to XYZ.
// The columns are the XYZ values of the primaries, scaled so that
// RGB (1, 1, 1) maps to the white point.
func (p Primaries) Matrix() (*transform.Matrix, error) {
	for _, c := range []Chromaticity{p.Red, p.Green, p.Blue} {
		if c.Y == 0 {
			return nil, errDegeneratePrimaries
		}
	}
	r := p.Red.XYZ(1)
	g := p.Green.XYZ(1)
	b := p.Blue.XYZ(1)
	prim := transform.NewMatrix3([9]float64{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	})
	inv, ok := prim.Invert()
	if !ok {
		return nil, errDegeneratePrimaries
	}

	// solve prim·s = white for the scale factors s
	s := make([]float64, 3)
	err := inv.Apply(s, p.White[:])
	if err != nil {
		return nil, err
	}
	return transform.NewMatrix3([9]float64{
		s[0] * r[0], s[1] * g[0], s[2] * b[0],
		s[0] * r[1], s[1] * g[1], s[2] * b[1],
		s[0] * r[2], s[1] * g[2], s[2] * b[2],
	}), nil
}

// bradford is the cone response matrix of the Bradford chromatic
// adaptation transform.
var bradford = transform.NewMatrix3([9]float64{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
})

// Bradford returns the matrix which adapts XYZ values from the white
// point src to the white point dst, using the Bradford method.
func Bradford(src, dst XYZ) (*transform.Matrix, error) {
	s := make([]float64, 3)
	d := make([]float64, 3)
	if err := bradford.Apply(s, src[:]); err != nil {
		return nil, err
	}
	if err := bradford.Apply(d, dst[:]); err != nil {
		return nil, err
	}
	if s[0] == 0 || s[1] == 0 || s[2] == 0 {
		return nil, errors.New("colorimetry: degenerate source white point")
	}
	diag := transform.NewMatrix3([9]float64{
		d[0] / s[0], 0, 0,
		0, d[1] / s[1], 0,
		0, 0, d[2] / s[2],
	})

	inv, ok := bradford.Invert()
	if !ok {
		panic("unreachable")
	}
	tmp, err := transform.Mul(diag, bradford)
	if err != nil {
		return nil, err
	}
	return transform.Mul(inv.(*transform.Matrix), tmp)
}
