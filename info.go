// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"io"

	"github.com/bpowers/chainhash/internal/wire"
)

// WriterInfo is supplied by the caller to control hashing and
// serialization while a Generator emits a table. K and D are the key
// and data types Insert accepts; the core never inspects their bytes
// -- WriterInfo is the sole arbiter of how they're encoded.
//
// WriterInfo is a generic interface type. Generator's methods take it
// as an interface value, so its methods are called through ordinary
// interface dispatch; they are not specialized per Info type.
type WriterInfo[K, D any] interface {
	// ComputeHash returns key's 32-bit hash. Equal keys must
	// produce equal hashes; nothing else is assumed about the
	// distribution.
	ComputeHash(key K) uint32

	// EmitKeyDataLength writes any length prefix it needs to w and
	// returns the lengths that EmitKey and EmitData will then be
	// asked to write. It runs once per entry, before EmitKey.
	EmitKeyDataLength(w io.Writer, key K, data D) (keyLen, dataLen uint32, err error)

	// EmitKey writes key's keyLen bytes to w. keyLen is the value
	// EmitKeyDataLength returned for this entry.
	EmitKey(w io.Writer, key K, keyLen uint32) error

	// EmitData writes data's dataLen bytes to w. key is passed
	// through because some encodings reference it (e.g. to delta
	// encode data against the key).
	EmitData(w io.Writer, key K, data D, dataLen uint32) error
}

// ReaderInfo is supplied by the caller to control hashing,
// comparison, and deserialization while a Reader performs lookups or
// an IterableReader walks entries. IK is the internal (stored) key
// type; EK is the external (lookup input) key type -- they're often
// the same, but splitting them lets a caller look up with a cheaper
// representation than what's stored. D is the data type.
type ReaderInfo[IK, EK, D any] interface {
	// ComputeHash must agree bit-for-bit with the WriterInfo that
	// produced the table being read.
	ComputeHash(ikey IK) uint32

	// EqualKey reports whether two internal keys are equal.
	EqualKey(a, b IK) bool

	// GetInternalKey translates a lookup input into the type
	// that's actually stored and hashed.
	GetInternalKey(ekey EK) IK

	// GetExternalKey translates a stored key back into the type a
	// caller looks up with. Only required for key iteration.
	GetExternalKey(ikey IK) EK

	// ReadKeyDataLength reads this entry's length prefix from cur,
	// leaving the cursor positioned right after it, and returns the
	// lengths of the key and data that follow.
	ReadKeyDataLength(cur *wire.Cursor) (keyLen, dataLen uint32, err error)

	// ReadKey decodes the internal key from exactly keyLen bytes.
	ReadKey(b []byte, keyLen uint32) (IK, error)

	// ReadData decodes the data for key from exactly dataLen bytes.
	ReadData(key IK, b []byte, dataLen uint32) (D, error)
}
