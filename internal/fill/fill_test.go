// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceInt32(t *testing.T) {
	s := make([]int32, 5)
	Slice(s, int32(-1))
	require.Equal(t, []int32{-1, -1, -1, -1, -1}, s)
}

func TestSliceEmpty(t *testing.T) {
	var s []int32
	Slice(s, int32(-1))
	require.Empty(t, s)
}

func TestSliceString(t *testing.T) {
	s := make([]string, 3)
	Slice(s, "x")
	require.Equal(t, []string{"x", "x", "x"}, s)
}
