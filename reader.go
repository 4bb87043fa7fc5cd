// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"fmt"

	"github.com/bpowers/chainhash/internal/wire"
)

// Reader answers point lookups against a table previously written by
// Generator.Emit, directly against the bytes it was given -- no
// decoding happens until Find actually walks a chain, and no part of
// the span is copied.
type Reader[IK, EK, D any] struct {
	span          []byte
	bucketsOffset int
	numBuckets    uint32
	numEntries    uint32
	info          ReaderInfo[IK, EK, D]
}

// NewReader wraps span, interpreting the table whose index begins at
// bucketsOffset. span must extend at least to the end of that index;
// it may (and normally does) extend further back, to cover the
// table's own payload and whatever a caller wrote before it.
func NewReader[IK, EK, D any](span []byte, bucketsOffset int, info ReaderInfo[IK, EK, D]) (*Reader[IK, EK, D], error) {
	if bucketsOffset <= 0 {
		return nil, ErrNotAfterBase
	}
	if bucketsOffset%4 != 0 {
		return nil, ErrMisaligned
	}
	if bucketsOffset+8 > len(span) {
		return nil, ErrShortSpan
	}

	numBuckets := wire.AlignedUint32(span, bucketsOffset)
	numEntries := wire.AlignedUint32(span, bucketsOffset+4)

	end := bucketsOffset + 8 + 4*int(numBuckets)
	if end > len(span) {
		return nil, ErrShortSpan
	}

	return &Reader[IK, EK, D]{
		span:          span,
		bucketsOffset: bucketsOffset,
		numBuckets:    numBuckets,
		numEntries:    numEntries,
		info:          info,
	}, nil
}

// NumBuckets reports the table's bucket count.
func (r *Reader[IK, EK, D]) NumBuckets() int { return int(r.numBuckets) }

// NumEntries reports the table's entry count, including duplicates.
func (r *Reader[IK, EK, D]) NumEntries() int { return int(r.numEntries) }

// IsEmpty reports whether the table has no entries.
func (r *Reader[IK, EK, D]) IsEmpty() bool { return r.numEntries == 0 }

// Info returns the ReaderInfo the Reader was constructed with.
func (r *Reader[IK, EK, D]) Info() ReaderInfo[IK, EK, D] { return r.info }

// End returns the sentinel cursor a miss is reported with.
func (r *Reader[IK, EK, D]) End() Cursor[D] {
	return Cursor[D]{}
}

func (r *Reader[IK, EK, D]) bucketSlot(i uint32) uint32 {
	off := r.bucketsOffset + 8 + 4*int(i)
	return wire.AlignedUint32(r.span, off)
}

// Find hashes externalKey, indexes directly into the bucket array,
// and walks the chain at that bucket comparing hashes (a cheap filter
// before ever asking Info to decode anything) and then keys. It
// returns the sentinel cursor, not an error, when no entry matches;
// ErrTruncated is reserved for the span being too short to contain
// what the bucket index claims it should.
func (r *Reader[IK, EK, D]) Find(externalKey EK) (Cursor[D], error) {
	if r.numBuckets == 0 {
		return r.End(), nil
	}

	ikey := r.info.GetInternalKey(externalKey)
	hash := r.info.ComputeHash(ikey)
	bucket := hash & (r.numBuckets - 1)

	off := r.bucketSlot(bucket)
	if off == 0 {
		return r.End(), nil
	}

	if int(off)+2 > len(r.span) {
		return Cursor[D]{}, ErrTruncated
	}
	n := wire.Uint16(r.span, int(off))
	pos := int(off) + 2

	for i := uint16(0); i < n; i++ {
		if pos+4 > len(r.span) {
			return Cursor[D]{}, ErrTruncated
		}
		itemHash := wire.Uint32(r.span, pos)
		pos += 4

		cur := wire.NewCursor(r.span[pos:])
		keyLen, dataLen, err := r.info.ReadKeyDataLength(cur)
		if err != nil {
			return Cursor[D]{}, fmt.Errorf("ReadKeyDataLength: %w", err)
		}
		pos += cur.Pos()

		if pos+int(keyLen) > len(r.span) {
			return Cursor[D]{}, ErrTruncated
		}
		keyBytes := r.span[pos : pos+int(keyLen)]
		pos += int(keyLen)

		if pos+int(dataLen) > len(r.span) {
			return Cursor[D]{}, ErrTruncated
		}
		dataBytes := r.span[pos : pos+int(dataLen)]
		pos += int(dataLen)

		if itemHash == hash {
			ik, err := r.info.ReadKey(keyBytes, keyLen)
			if err != nil {
				return Cursor[D]{}, fmt.Errorf("ReadKey: %w", err)
			}
			if r.info.EqualKey(ik, ikey) {
				db, dl := dataBytes, dataLen
				return Cursor[D]{
					found: true,
					decode: func() (D, error) {
						return r.info.ReadData(ik, db, dl)
					},
				}, nil
			}
		}
	}

	return r.End(), nil
}
