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

// Package curve implements one-dimensional response curves.
//
// A [Curve] maps a real number to a real number on a domain which may be
// the whole real line.  Curves are immutable after construction.  Evaluating
// a curve outside its domain returns NaN; this is a normal outcome, not an
// error.  Callers which need saturation must clamp before calling Evaluate.
//
// Every curve can report its own analytic inverse.  Inversion is not
// guaranteed to succeed: [Curve.Invert] returns false when the function is
// not injective or its parameters are degenerate.  No numerical root
// finding is ever used.
package curve

import (
	"fmt"
	"math"

	"seehuhn.de/go/colour/internal/logging"
)

// DefaultTolerance is the tolerance used when checking whether two curve
// values agree, for example at the joins of a [Piecewise] curve.
const DefaultTolerance = 1e-6

// Curve is a scalar function of one variable.
type Curve interface {
	// Evaluate returns the function value at x.
	// The result is NaN if x is outside the domain.
	Evaluate(x float64) float64

	// Domain returns the interval on which the curve is defined.
	// The bounds may be infinite.
	Domain() (min, max float64)

	// Invert returns the inverse function.  The domain of the inverse is
	// the image of the original domain.  If the curve has no inverse,
	// the second return value is false.
	Invert() (Curve, bool)
}

// InvalidCurveError is returned when a curve is constructed from
// inconsistent data.
type InvalidCurveError struct {
	Curve   string
	Field   string
	Message string
}

func (e *InvalidCurveError) Error() string {
	return fmt.Sprintf("%s curve invalid %s: %s", e.Curve, e.Field, e.Message)
}

func (e *InvalidCurveError) Is(target error) bool {
	_, ok := target.(*InvalidCurveError)
	return ok
}

func newInvalidCurveError(curve, field, format string, args ...any) *InvalidCurveError {
	return &InvalidCurveError{
		Curve:   curve,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Clamp restricts x to the domain of c.  NaN is returned unchanged.
func Clamp(c Curve, x float64) float64 {
	lo, hi := c.Domain()
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// declined logs that a curve could not be inverted and returns the
// values Invert should return in this case.
func declined(curve, reason string) (Curve, bool) {
	logging.Logger().Debug("curve not invertible", "curve", curve, "reason", reason)
	return nil, false
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// image returns the interval spanned by f(lo) and f(hi).
func image(c Curve, lo, hi float64) (float64, float64) {
	a, b := c.Evaluate(lo), c.Evaluate(hi)
	if a > b {
		a, b = b, a
	}
	return a, b
}
