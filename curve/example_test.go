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

package curve_test

import (
	"fmt"

	"seehuhn.de/go/colour/curve"
)

func ExampleUnitGamma_Invert() {
	decode := curve.SRGB()
	encode, ok := decode.Invert()
	if !ok {
		panic("not invertible")
	}

	y := decode.Evaluate(0.5)
	fmt.Printf("%.4f %.4f\n", y, encode.Evaluate(y))
	// Output: 0.2140 0.5000
}
