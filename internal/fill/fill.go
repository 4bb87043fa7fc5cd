// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fill provides a generic helper for initializing a slice to
// a sentinel value. It plays the same role bit's internal/zero
// package does for clearing reused buffers, generalized with a type
// parameter: the generator's bucket-head array uses -1, not the zero
// value, to mean "empty bucket", so a plain zeroing loop won't do.
package fill

// Slice sets every element of s to v.
func Slice[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}
