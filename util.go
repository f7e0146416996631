// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

// resize returns a slice of length dim, reslicing x if its capacity already
// allows it and allocating a new slice otherwise. Used throughout the
// line-search and descent-strategy families to avoid reallocating scratch
// buffers every iteration.
func resize(x []float64, dim int) []float64 {
	if cap(x) < dim {
		return make([]float64, dim)
	}
	return x[:dim]
}
