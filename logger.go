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
	"log/slog"

	"seehuhn.de/go/colour/internal/logging"
)

// SetLogger sets the logger used by all colour packages.  Only debug
// level messages are emitted, for example when a transform or curve
// cannot be inverted.  Passing nil disables logging, which is also the
// default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger used by all colour packages.
func Logger() *slog.Logger {
	return logging.Logger()
}
