// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package infos provides ready-made WriterInfo/ReaderInfo
// implementations over []byte and string keys, hashed with
// github.com/dgryski/go-farm, so most callers never have to write
// their own.
package infos

import (
	"bytes"
	"fmt"
	"io"

	farm "github.com/dgryski/go-farm"

	"github.com/bpowers/chainhash"
	"github.com/bpowers/chainhash/internal/wire"
)

// Bytes is a chainhash.WriterInfo[[]byte, []byte] and
// chainhash.ReaderInfo[[]byte, []byte, []byte]: both the key and the
// data are opaque byte slices, stored verbatim with a two-field
// uint16 length prefix.
type Bytes struct{}

var (
	_ chainhash.WriterInfo[[]byte, []byte]         = Bytes{}
	_ chainhash.ReaderInfo[[]byte, []byte, []byte] = Bytes{}
)

// ComputeHash returns the low 32 bits of a 64-bit Farm hash of key.
func (Bytes) ComputeHash(key []byte) uint32 {
	return uint32(farm.Hash64(key))
}

// EqualKey reports whether a and b hold the same bytes.
func (Bytes) EqualKey(a, b []byte) bool { return bytes.Equal(a, b) }

// GetInternalKey returns ekey unchanged; Bytes has no distinct
// internal representation.
func (Bytes) GetInternalKey(ekey []byte) []byte { return ekey }

// GetExternalKey returns ikey unchanged.
func (Bytes) GetExternalKey(ikey []byte) []byte { return ikey }

// EmitKeyDataLength writes a two-uint16 (keyLen, dataLen) prefix.
// Keys and data longer than 65535 bytes cannot be represented.
func (Bytes) EmitKeyDataLength(w io.Writer, key, data []byte) (keyLen, dataLen uint32, err error) {
	if len(key) > 1<<16-1 {
		return 0, 0, fmt.Errorf("infos: key too long: %d bytes", len(key))
	}
	if len(data) > 1<<16-1 {
		return 0, 0, fmt.Errorf("infos: data too long: %d bytes", len(data))
	}
	var buf [4]byte
	wire.PutUint16(buf[0:2], uint16(len(key)))
	wire.PutUint16(buf[2:4], uint16(len(data)))
	if _, err := w.Write(buf[:]); err != nil {
		return 0, 0, err
	}
	return uint32(len(key)), uint32(len(data)), nil
}

// EmitKey writes key verbatim.
func (Bytes) EmitKey(w io.Writer, key []byte, keyLen uint32) error {
	_, err := w.Write(key[:keyLen])
	return err
}

// EmitData writes data verbatim.
func (Bytes) EmitData(w io.Writer, _ []byte, data []byte, dataLen uint32) error {
	_, err := w.Write(data[:dataLen])
	return err
}

// ReadKeyDataLength reads the two-uint16 prefix EmitKeyDataLength
// wrote.
func (Bytes) ReadKeyDataLength(cur *wire.Cursor) (keyLen, dataLen uint32, err error) {
	kl, err := cur.ReadUint16()
	if err != nil {
		return 0, 0, err
	}
	dl, err := cur.ReadUint16()
	if err != nil {
		return 0, 0, err
	}
	return uint32(kl), uint32(dl), nil
}

// ReadKey returns a copy of the keyLen bytes at b -- the caller's
// span outlives the Reader only as long as the mapping is open, so
// Info implementations that hand out long-lived keys must copy.
func (Bytes) ReadKey(b []byte, keyLen uint32) ([]byte, error) {
	out := make([]byte, keyLen)
	copy(out, b[:keyLen])
	return out, nil
}

// ReadData returns a copy of the dataLen bytes at b.
func (Bytes) ReadData(_ []byte, b []byte, dataLen uint32) ([]byte, error) {
	out := make([]byte, dataLen)
	copy(out, b[:dataLen])
	return out, nil
}
