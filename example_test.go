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

package colour_test

import (
	"fmt"

	"seehuhn.de/go/colour"
	"seehuhn.de/go/colour/transform"
)

func ExampleConvert() {
	t, err := colour.Convert("srgb", "lab")
	if err != nil {
		panic(err)
	}
	lab, err := transform.Eval(t, 1, 0, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", lab[0], lab[1], lab[2])
	// Output: 54.29 80.82 69.89
}
