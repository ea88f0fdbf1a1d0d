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
	"sync"

	"github.com/kovidgoyal/go-parallel"

	"seehuhn.de/go/colour/internal/logging"
)

type batchOptions struct {
	workers int
}

// BatchOption configures [ApplyAll].
type BatchOption func(*batchOptions)

// WithWorkers sets the number of goroutines used by [ApplyAll].
// The default, 0, uses one goroutine per available CPU.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = max(n, 0)
	}
}

// ApplyAll applies t to every pixel of a packed batch.  The input src
// holds the pixels one after another, with t.InputChannels() values per
// pixel; the results are written to dst in the same layout with
// t.OutputChannels() values per pixel.
//
// The pixels are processed in parallel.  Every goroutine uses its own
// instance of t, obtained via [Transform.Local].
func ApplyAll(t Transform, dst, src []float64, opts ...BatchOption) error {
	o := &batchOptions{}
	for _, opt := range opts {
		opt(o)
	}

	n, m := t.InputChannels(), t.OutputChannels()
	if n < 1 {
		return &ShapeError{Want: 1, Got: n}
	}
	if rem := len(src) % n; rem != 0 {
		return &ShapeError{Want: n, Got: rem}
	}
	count := len(src) / n
	if len(dst) != count*m {
		return &ShapeError{Want: count * m, Got: len(dst), Output: true}
	}
	if count == 0 {
		return nil
	}

	var mu sync.Mutex
	var firstErr error
	f := func(start, limit int) {
		local := t.Local()
		for p := start; p < limit; p++ {
			err := local.Apply(dst[p*m:(p+1)*m], src[p*n:(p+1)*n])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
		}
	}

	err := parallel.Run_in_parallel_over_range(o.workers, f, 0, count)
	if err == nil {
		err = firstErr
	}
	if err != nil {
		logging.Logger().Debug("batch transform failed", "pixels", count, "error", err)
	}
	return err
}
