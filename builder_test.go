// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/chainhash"
	"github.com/bpowers/chainhash/infos"
)

func TestBuilderAndOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.chainhash")

	b, err := chainhash.NewBuilder[string, []byte](path, infos.String{})
	require.NoError(t, err)

	want := make(map[string]string, 100)
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("key-%04d", i)
		v := fmt.Sprintf("value-%04d", i)
		want[k] = v
		b.Insert(k, []byte(v))
	}
	require.Equal(t, 100, b.NumEntries())

	payloadOffset, bucketsOffset, err := b.Finalize()
	require.NoError(t, err)
	require.EqualValues(t, 8, payloadOffset)

	r, f, err := chainhash.OpenReader[string, string, []byte](path, int(bucketsOffset), infos.String{})
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, 100, r.NumEntries())
	for k, v := range want {
		cur, err := r.Find(k)
		require.NoError(t, err)
		require.True(t, cur.Found())
		got, err := cur.Value()
		require.NoError(t, err)
		require.Equal(t, v, string(got))
	}
}

func TestOpenIterableReaderAfterBuilder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.chainhash")

	b, err := chainhash.NewBuilder[string, []byte](path, infos.String{})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		b.Insert(fmt.Sprintf("k%d", i), []byte(fmt.Sprintf("v%d", i)))
	}

	payloadOffset, bucketsOffset, err := b.Finalize()
	require.NoError(t, err)

	ir, f, err := chainhash.OpenIterableReader[string, string, []byte](path, int(payloadOffset), int(bucketsOffset), infos.String{})
	require.NoError(t, err)
	defer f.Close()

	count := 0
	it := ir.Keys()
	for it.Next() {
		count++
	}
	require.NoError(t, it.Err())
	require.Equal(t, 50, count)
}
