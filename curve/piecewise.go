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

package curve

import (
	"math"
	"slices"
	"sort"
)

// Piecewise is a curve made from segments over contiguous sub-domains.
//
// With k segments and breakpoints b_0 < ... < b_{k-2}, the first segment
// applies on [min, b_0), the second on [b_0, b_1), and so on; the last
// segment applies on [b_{k-2}, max].  Inputs are clamped into a segment's
// own domain by up to the tolerance of the curve before evaluation, to
// absorb rounding errors at the joins.
type Piecewise struct {
	segments []Curve
	bounds   []float64

	// lo[i], hi[i] is the part of segment i's domain which is in use
	lo, hi []float64

	eps float64
}

type piecewiseOptions struct {
	eps float64
}

// PiecewiseOption configures the construction of a [Piecewise] curve.
type PiecewiseOption func(*piecewiseOptions)

// WithTolerance sets the tolerance used to compare domain boundaries and
// the curve values at the joins.  The default is [DefaultTolerance].
func WithTolerance(eps float64) PiecewiseOption {
	return func(o *piecewiseOptions) {
		o.eps = eps
	}
}

// NewPiecewise combines the given segments into a single curve.
//
// The bounds give the k-1 breakpoints between the k segments, in
// increasing order.  The outer limits of the curve are determined by the
// domains of the first and last segment.  The domain of every segment must
// cover its sub-domain, up to the tolerance.
func NewPiecewise(bounds []float64, segments []Curve, opts ...PiecewiseOption) (*Piecewise, error) {
	o := &piecewiseOptions{eps: DefaultTolerance}
	for _, opt := range opts {
		opt(o)
	}
	if !(o.eps >= 0) {
		return nil, newInvalidCurveError("piecewise", "tolerance", "negative tolerance %g", o.eps)
	}

	k := len(segments)
	if k == 0 {
		return nil, newInvalidCurveError("piecewise", "segments", "no segments given")
	}
	if len(bounds) != k-1 {
		return nil, newInvalidCurveError("piecewise", "bounds",
			"%d segments need %d bounds, got %d", k, k-1, len(bounds))
	}
	for i, b := range bounds {
		if !isFinite(b) {
			return nil, newInvalidCurveError("piecewise", "bounds", "bound %d is not finite", i)
		}
		if i > 0 && b <= bounds[i-1] {
			return nil, newInvalidCurveError("piecewise", "bounds", "bounds not increasing at index %d", i)
		}
	}

	p := &Piecewise{
		segments: slices.Clone(segments),
		bounds:   slices.Clone(bounds),
		lo:       make([]float64, k),
		hi:       make([]float64, k),
		eps:      o.eps,
	}
	for i, seg := range segments {
		if seg == nil {
			return nil, newInvalidCurveError("piecewise", "segments", "segment %d is nil", i)
		}
		dlo, dhi := seg.Domain()
		a, b := dlo, dhi
		if i > 0 {
			a = bounds[i-1]
		}
		if i < k-1 {
			b = bounds[i]
		}
		if dlo > a+o.eps || dhi < b-o.eps {
			return nil, newInvalidCurveError("piecewise", "segments",
				"domain [%g, %g] of segment %d does not cover [%g, %g]", dlo, dhi, i, a, b)
		}
		p.lo[i] = max(a, dlo)
		p.hi[i] = min(b, dhi)
		if p.lo[i] > p.hi[i] {
			return nil, newInvalidCurveError("piecewise", "segments", "segment %d has an empty domain", i)
		}
	}
	return p, nil
}

// Join combines segments with contiguous domains into a single curve.
// The breakpoints are taken from the segment domains.  Interior domain
// limits must be finite, and the end of each segment must match the start
// of the next segment up to the tolerance.
func Join(segments []Curve, opts ...PiecewiseOption) (*Piecewise, error) {
	o := &piecewiseOptions{eps: DefaultTolerance}
	for _, opt := range opts {
		opt(o)
	}

	var bounds []float64
	for i := 1; i < len(segments); i++ {
		if segments[i-1] == nil || segments[i] == nil {
			return nil, newInvalidCurveError("piecewise", "segments", "segment is nil")
		}
		_, prevHi := segments[i-1].Domain()
		lo, _ := segments[i].Domain()
		if !isFinite(prevHi) || !isFinite(lo) {
			return nil, newInvalidCurveError("piecewise", "segments", "segment %d has an unbounded interior end", i)
		}
		if math.Abs(prevHi-lo) > o.eps {
			return nil, newInvalidCurveError("piecewise", "segments",
				"segments %d and %d are not contiguous (%g != %g)", i-1, i, prevHi, lo)
		}
		bounds = append(bounds, lo)
	}
	return NewPiecewise(bounds, segments, opts...)
}

// Evaluate implements the [Curve] interface.
func (p *Piecewise) Evaluate(x float64) float64 {
	k := len(p.segments)
	if !(x >= p.lo[0] && x <= p.hi[k-1]) {
		return math.NaN()
	}
	i := p.find(x)
	return p.segments[i].Evaluate(clamp(x, p.lo[i], p.hi[i]))
}

// find returns the index of the segment which applies at x.
func (p *Piecewise) find(x float64) int {
	return sort.Search(len(p.bounds), func(j int) bool { return p.bounds[j] > x })
}

// Domain implements the [Curve] interface.
func (p *Piecewise) Domain() (float64, float64) {
	return p.lo[0], p.hi[len(p.hi)-1]
}

// Segments returns the segments of the curve.
func (p *Piecewise) Segments() []Curve {
	return slices.Clone(p.segments)
}

// Bounds returns the breakpoints between the segments.
func (p *Piecewise) Bounds() []float64 {
	return slices.Clone(p.bounds)
}

// Discontinuities returns the breakpoints where the values of the adjacent
// segments differ by more than the tolerance.
func (p *Piecewise) Discontinuities() []float64 {
	var res []float64
	for i, b := range p.bounds {
		left := p.segments[i].Evaluate(clamp(b, p.lo[i], p.hi[i]))
		right := p.segments[i+1].Evaluate(clamp(b, p.lo[i+1], p.hi[i+1]))
		if !(math.Abs(left-right) <= p.eps) {
			res = append(res, b)
		}
	}
	return res
}

// Invert implements the [Curve] interface.
//
// A piecewise curve is invertible if every segment is invertible, the
// curve is continuous at every breakpoint, and all segments are increasing
// or all segments are decreasing.
func (p *Piecewise) Invert() (Curve, bool) {
	if len(p.Discontinuities()) > 0 {
		return declined("Piecewise", "discontinuous")
	}

	k := len(p.segments)
	inverses := make([]Curve, k)
	dir := 0
	for i, seg := range p.segments {
		flo, fhi := seg.Evaluate(p.lo[i]), seg.Evaluate(p.hi[i])
		var d int
		switch {
		case fhi > flo:
			d = +1
		case fhi < flo:
			d = -1
		default:
			return declined("Piecewise", "segment is constant or undefined")
		}
		if dir != 0 && d != dir {
			return declined("Piecewise", "not monotonic")
		}
		dir = d

		w := &Window{Curve: seg, Min: p.lo[i], Max: p.hi[i]}
		inv, ok := w.Invert()
		if !ok {
			return nil, false
		}
		inverses[i] = inv
	}
	if dir < 0 {
		slices.Reverse(inverses)
	}

	res, err := Join(inverses, WithTolerance(p.eps))
	if err != nil {
		return declined("Piecewise", err.Error())
	}
	return res, true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
