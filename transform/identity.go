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

package transform

// Identity copies its input to the output.  The value gives the number of
// channels.
type Identity int

// InputChannels implements the [Transform] interface.
func (t Identity) InputChannels() int { return int(t) }

// OutputChannels implements the [Transform] interface.
func (t Identity) OutputChannels() int { return int(t) }

// Apply implements the [Transform] interface.
func (t Identity) Apply(dst, src []float64) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// Invert implements the [Transform] interface.
// The identity is its own inverse.
func (t Identity) Invert() (Transform, bool) { return t, true }

// Local implements the [Transform] interface.
func (t Identity) Local() Transform { return t }
