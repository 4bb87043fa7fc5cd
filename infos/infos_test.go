// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package infos_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/chainhash/infos"
	"github.com/bpowers/chainhash/internal/wire"
)

func TestBytesEmitReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	info := infos.Bytes{}

	key := []byte("hello")
	data := []byte("world!!")

	keyLen, dataLen, err := info.EmitKeyDataLength(&buf, key, data)
	require.NoError(t, err)
	require.EqualValues(t, len(key), keyLen)
	require.EqualValues(t, len(data), dataLen)

	require.NoError(t, info.EmitKey(&buf, key, keyLen))
	require.NoError(t, info.EmitData(&buf, key, data, dataLen))

	raw := buf.Bytes()
	cur := wire.NewCursor(raw)
	gotKeyLen, gotDataLen, err := info.ReadKeyDataLength(cur)
	require.NoError(t, err)
	require.Equal(t, keyLen, gotKeyLen)
	require.Equal(t, dataLen, gotDataLen)

	pos := cur.Pos()
	gotKey, err := info.ReadKey(raw[pos:], gotKeyLen)
	require.NoError(t, err)
	require.Equal(t, key, gotKey)
	pos += int(gotKeyLen)

	gotData, err := info.ReadData(gotKey, raw[pos:], gotDataLen)
	require.NoError(t, err)
	require.Equal(t, data, gotData)
}

func TestBytesHashAgreesAcrossCalls(t *testing.T) {
	info := infos.Bytes{}
	key := []byte("consistent-hash-key")
	require.Equal(t, info.ComputeHash(key), info.ComputeHash(append([]byte(nil), key...)))
}

func TestStringHashMatchesBytesHash(t *testing.T) {
	require.Equal(t, infos.Bytes{}.ComputeHash([]byte("same")), infos.String{}.ComputeHash("same"))
}

func TestStringEmitReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	info := infos.String{}

	key := "a-string-key"
	data := []byte("some data")

	keyLen, dataLen, err := info.EmitKeyDataLength(&buf, key, data)
	require.NoError(t, err)
	require.NoError(t, info.EmitKey(&buf, key, keyLen))
	require.NoError(t, info.EmitData(&buf, key, data, dataLen))

	raw := buf.Bytes()
	cur := wire.NewCursor(raw)
	gotKeyLen, gotDataLen, err := info.ReadKeyDataLength(cur)
	require.NoError(t, err)

	pos := cur.Pos()
	gotKey, err := info.ReadKey(raw[pos:], gotKeyLen)
	require.NoError(t, err)
	require.Equal(t, key, gotKey)
	pos += int(gotKeyLen)

	gotData, err := info.ReadData(gotKey, raw[pos:], gotDataLen)
	require.NoError(t, err)
	require.Equal(t, data, gotData)
}
