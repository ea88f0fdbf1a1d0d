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

import (
	"math"
	"slices"

	"golang.org/x/image/math/f64"
)

// SingularThreshold is the smallest absolute determinant for which a 3×3
// matrix is considered invertible.
const SingularThreshold = 1e-12

// Matrix is the affine map out = M·in + t.
type Matrix struct {
	rows, cols int
	m          []float64 // row-major, rows×cols
	t          []float64 // length rows, nil for zero translation
}

// NewMatrix returns the affine map with the given coefficients, stored in
// row-major order.  The translation vector may be nil, in which case no
// translation is applied.
func NewMatrix(rows, cols int, coefficients, translation []float64) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, newInvalidTransformError("matrix", "shape", "invalid shape %d×%d", rows, cols)
	}
	if len(coefficients) != rows*cols {
		return nil, newInvalidTransformError("matrix", "coefficients",
			"%d×%d matrix needs %d coefficients, got %d", rows, cols, rows*cols, len(coefficients))
	}
	if translation != nil && len(translation) != rows {
		return nil, newInvalidTransformError("matrix", "translation",
			"need %d values, got %d", rows, len(translation))
	}

	res := &Matrix{
		rows: rows,
		cols: cols,
		m:    slices.Clone(coefficients),
	}
	for _, v := range translation {
		if v != 0 {
			res.t = slices.Clone(translation)
			break
		}
	}
	return res, nil
}

// NewMatrix3 returns the linear map given by a 3×3 matrix in row-major order.
func NewMatrix3(m f64.Mat3) *Matrix {
	return &Matrix{rows: 3, cols: 3, m: m[:]}
}

// Mat3 returns the coefficients of a 3×3 matrix without translation.
// The second return value is false for all other matrices.
func (t *Matrix) Mat3() (f64.Mat3, bool) {
	var res f64.Mat3
	if t.rows != 3 || t.cols != 3 || t.t != nil {
		return res, false
	}
	copy(res[:], t.m)
	return res, true
}

// Rows returns the number of rows of the matrix.
func (t *Matrix) Rows() int { return t.rows }

// Cols returns the number of columns of the matrix.
func (t *Matrix) Cols() int { return t.cols }

// Coefficients returns a copy of the matrix coefficients in row-major order.
func (t *Matrix) Coefficients() []float64 {
	return slices.Clone(t.m)
}

// Translation returns a copy of the translation vector.
func (t *Matrix) Translation() []float64 {
	res := make([]float64, t.rows)
	copy(res, t.t)
	return res
}

// InputChannels implements the [Transform] interface.
func (t *Matrix) InputChannels() int { return t.cols }

// OutputChannels implements the [Transform] interface.
func (t *Matrix) OutputChannels() int { return t.rows }

// Apply implements the [Transform] interface.
// The vectors dst and src may overlap.
func (t *Matrix) Apply(dst, src []float64) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}

	var buf [16]float64
	var out []float64
	if t.rows <= len(buf) {
		out = buf[:t.rows]
	} else {
		out = make([]float64, t.rows)
	}

	for i := range t.rows {
		row := t.m[i*t.cols : (i+1)*t.cols]
		var sum float64
		for j, x := range src {
			sum += row[j] * x
		}
		if t.t != nil {
			sum += t.t[i]
		}
		out[i] = sum
	}
	copy(dst, out)
	return nil
}

// Invert implements the [Transform] interface.
//
// Only 3×3 matrices without translation can be inverted.  The inverse is
// computed using the adjugate matrix.  If the absolute value of the
// determinant is smaller than [SingularThreshold], no inverse is returned.
func (t *Matrix) Invert() (Transform, bool) {
	if t.rows != 3 || t.cols != 3 {
		return declined("Matrix", "not 3×3")
	}
	m, ok := t.Mat3()
	if !ok {
		return declined("Matrix", "non-zero translation")
	}
	inv, ok := invert3(m)
	if !ok {
		return declined("Matrix", "singular")
	}
	return NewMatrix3(inv), true
}

func invert3(m f64.Mat3) (f64.Mat3, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if !(math.Abs(det) >= SingularThreshold) {
		return f64.Mat3{}, false
	}
	s := 1 / det
	return f64.Mat3{
		(e*i - f*h) * s, (c*h - b*i) * s, (b*f - c*e) * s,
		(f*g - d*i) * s, (a*i - c*g) * s, (c*d - a*f) * s,
		(d*h - e*g) * s, (b*g - a*h) * s, (a*e - b*d) * s,
	}, true
}

func mul3(a, b f64.Mat3) f64.Mat3 {
	var res f64.Mat3
	for i := range 3 {
		for j := range 3 {
			res[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}
	return res
}

// Local implements the [Transform] interface.
func (t *Matrix) Local() Transform { return t }

// Mul returns the affine map which first applies b and then a.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, newInvalidTransformError("matrix", "shape",
			"cannot multiply %d×%d by %d×%d", a.rows, a.cols, b.rows, b.cols)
	}

	if a3, ok := a.Mat3(); ok {
		if b3, ok := b.Mat3(); ok {
			return NewMatrix3(mul3(a3, b3)), nil
		}
	}

	res := &Matrix{
		rows: a.rows,
		cols: b.cols,
		m:    make([]float64, a.rows*b.cols),
	}
	for i := range a.rows {
		for j := range b.cols {
			var sum float64
			for k := range a.cols {
				sum += a.m[i*a.cols+k] * b.m[k*b.cols+j]
			}
			res.m[i*b.cols+j] = sum
		}
	}

	if a.t != nil || b.t != nil {
		tr := make([]float64, a.rows)
		for i := range a.rows {
			var sum float64
			if a.t != nil {
				sum = a.t[i]
			}
			if b.t != nil {
				for k := range a.cols {
					sum += a.m[i*a.cols+k] * b.t[k]
				}
			}
			tr[i] = sum
		}
		res.t = tr
	}
	return res, nil
}
