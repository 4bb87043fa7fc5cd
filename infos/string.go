// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package infos

import (
	"io"

	"github.com/bpowers/chainhash"
	"github.com/bpowers/chainhash/internal/unsafestring"
	"github.com/bpowers/chainhash/internal/wire"
)

// String is a chainhash.WriterInfo[string, []byte] and
// chainhash.ReaderInfo[string, string, []byte]: the key is a string,
// stored and hashed as bytes by delegating to Bytes, and the data is
// an opaque byte slice. Hashing and emission convert the key to bytes
// without copying, via unsafestring.ToBytes.
type String struct{}

var (
	_ chainhash.WriterInfo[string, []byte]         = String{}
	_ chainhash.ReaderInfo[string, string, []byte] = String{}
)

// ComputeHash hashes key the same way Bytes does, bit-for-bit, so a
// table built with String can be opened by anything that hashes the
// same underlying bytes.
func (String) ComputeHash(key string) uint32 {
	return Bytes{}.ComputeHash(unsafestring.ToBytes(key))
}

// EqualKey reports whether a and b hold the same characters.
func (String) EqualKey(a, b string) bool { return a == b }

// GetInternalKey returns ekey unchanged.
func (String) GetInternalKey(ekey string) string { return ekey }

// GetExternalKey returns ikey unchanged.
func (String) GetExternalKey(ikey string) string { return ikey }

// EmitKeyDataLength writes the same two-uint16 prefix Bytes does.
func (String) EmitKeyDataLength(w io.Writer, key string, data []byte) (keyLen, dataLen uint32, err error) {
	return Bytes{}.EmitKeyDataLength(w, unsafestring.ToBytes(key), data)
}

// EmitKey writes key's bytes verbatim.
func (String) EmitKey(w io.Writer, key string, keyLen uint32) error {
	return Bytes{}.EmitKey(w, unsafestring.ToBytes(key), keyLen)
}

// EmitData writes data verbatim.
func (String) EmitData(w io.Writer, key string, data []byte, dataLen uint32) error {
	return Bytes{}.EmitData(w, unsafestring.ToBytes(key), data, dataLen)
}

// ReadKeyDataLength reads the prefix EmitKeyDataLength wrote.
func (String) ReadKeyDataLength(cur *wire.Cursor) (keyLen, dataLen uint32, err error) {
	return Bytes{}.ReadKeyDataLength(cur)
}

// ReadKey decodes the stored key as a string, copying out of the
// mapped span the same way Bytes.ReadKey does.
func (String) ReadKey(b []byte, keyLen uint32) (string, error) {
	return string(b[:keyLen]), nil
}

// ReadData returns a copy of the dataLen bytes at b.
func (String) ReadData(_ string, b []byte, dataLen uint32) ([]byte, error) {
	return Bytes{}.ReadData(nil, b, dataLen)
}
