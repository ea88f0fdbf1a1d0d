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

// Package colour converts colour values between colour spaces.
//
// The conversions are built from composable, invertible transforms.  The
// building blocks live in the sub-packages:
//
//   - [seehuhn.de/go/colour/curve] implements one-dimensional tone curves,
//     including the gamma curves of the common RGB spaces.
//   - [seehuhn.de/go/colour/transform] implements vector valued transforms:
//     matrices, per-channel curves, compositions and N-dimensional lookup
//     tables.
//   - [seehuhn.de/go/colour/colorimetry] implements the closed-form
//     conversions between RGB, XYZ, Lab, Luv, Hunter Lab, HSV, HLS and
//     YCbCr.
//   - [seehuhn.de/go/colour/pipeline] assembles the elements of ICC
//     profile tags into transforms.
//
// This package provides the conversion between named colour spaces:
//
//	t, err := colour.Convert("srgb", "lab")
//	if err != nil {
//	    // handle error
//	}
//	lab, err := transform.Eval(t, 1, 0.5, 0)
//
// Where the white points of the two spaces differ, the conversion includes
// a Bradford chromatic adaptation.
package colour
