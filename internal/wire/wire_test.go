// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReadsAdvance(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	c := NewCursor(b)

	v1, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), v1)

	v2, err := c.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0302), v2)

	v3, err := c.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x07060504), v3)

	require.Equal(t, 7, c.Pos())
	require.Empty(t, c.Remaining())
}

func TestCursorReadPastEndErrors(t *testing.T) {
	c := NewCursor([]byte{0x01})
	_, err := c.ReadUint32()
	require.Error(t, err)
}

func TestAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	require.NoError(t, c.Advance(2))
	require.Equal(t, 2, c.Pos())
	require.Error(t, c.Advance(10))
}

func TestPutAndReadRoundTrip(t *testing.T) {
	var buf [4]byte
	PutUint32(buf[:], 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), Uint32(buf[:], 0))
	require.Equal(t, uint32(0xdeadbeef), AlignedUint32(buf[:], 0))

	var u16buf [2]byte
	PutUint16(u16buf[:], 0xbeef)
	require.Equal(t, uint16(0xbeef), Uint16(u16buf[:], 0))
}

func TestCountingWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCountingWriter(&buf)
	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.EqualValues(t, 5, cw.Len())

	cw2 := NewCountingWriterAt(&buf, 100)
	_, err = cw2.Write([]byte("!!"))
	require.NoError(t, err)
	require.EqualValues(t, 102, cw2.Len())
}
