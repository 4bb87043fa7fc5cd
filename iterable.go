// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"fmt"

	"github.com/bpowers/chainhash/internal/wire"
)

// IterableReader is a Reader that additionally supports walking every
// entry in the table, bucket by bucket, in the order Emit wrote them.
// It adds nothing to the on-disk format -- any table a Reader can
// open, an IterableReader can too -- it just also knows where the
// payload starts so it can walk the whole payload once.
type IterableReader[IK, EK, D any] struct {
	*Reader[IK, EK, D]
	payloadOffset int
}

// NewIterableReader wraps span exactly as NewReader does, additionally
// recording payloadOffset, the start of the first byte a caller wrote
// for this table's payload (normally the offset right after whatever
// prefix preceded it). Iteration walks forward from there.
func NewIterableReader[IK, EK, D any](span []byte, payloadOffset, bucketsOffset int, info ReaderInfo[IK, EK, D]) (*IterableReader[IK, EK, D], error) {
	r, err := NewReader[IK, EK, D](span, bucketsOffset, info)
	if err != nil {
		return nil, err
	}
	if payloadOffset <= 0 || payloadOffset > bucketsOffset {
		return nil, ErrNotAfterBase
	}
	return &IterableReader[IK, EK, D]{Reader: r, payloadOffset: payloadOffset}, nil
}

// entryCursor walks the table's payload region entry by entry,
// tracking how many items remain in the bucket block currently being
// read (itemsLeftInBucket) and how many entries remain overall
// (entriesLeft), mirroring the original implementation's iterator
// advance logic: when itemsLeftInBucket hits zero, read the next
// bucket block's item count (empty buckets write no block, so the
// blocks follow one another directly; a zero count, if one is read,
// is skipped), until entriesLeft hits zero and iteration is done.
type entryCursor[IK, EK, D any] struct {
	r   *IterableReader[IK, EK, D]
	pos int

	entriesLeft       uint32
	itemsLeftInBucket uint16

	key     IK
	keyLen  uint32
	dataOff int
	dataLen uint32
	err     error
}

func newEntryCursor[IK, EK, D any](r *IterableReader[IK, EK, D]) *entryCursor[IK, EK, D] {
	return &entryCursor[IK, EK, D]{r: r, pos: r.payloadOffset, entriesLeft: r.numEntries}
}

// next decodes the next entry's key and locates its data, returning
// false once every entry has been visited or a decode error occurs
// (inspect err in that case).
func (c *entryCursor[IK, EK, D]) next() bool {
	if c.entriesLeft == 0 {
		return false
	}

	span := c.r.span
	for c.itemsLeftInBucket == 0 {
		if c.pos+2 > len(span) {
			c.err = ErrTruncated
			return false
		}
		n := wire.Uint16(span, c.pos)
		c.pos += 2
		if n == 0 {
			continue
		}
		c.itemsLeftInBucket = n
	}

	if c.pos+4 > len(span) {
		c.err = ErrTruncated
		return false
	}
	c.pos += 4 // hash, not needed for iteration

	cur := wire.NewCursor(span[c.pos:])
	keyLen, dataLen, err := c.r.info.ReadKeyDataLength(cur)
	if err != nil {
		c.err = fmt.Errorf("ReadKeyDataLength: %w", err)
		return false
	}
	c.pos += cur.Pos()

	if c.pos+int(keyLen) > len(span) {
		c.err = ErrTruncated
		return false
	}
	key, err := c.r.info.ReadKey(span[c.pos:c.pos+int(keyLen)], keyLen)
	if err != nil {
		c.err = fmt.Errorf("ReadKey: %w", err)
		return false
	}
	c.pos += int(keyLen)

	if c.pos+int(dataLen) > len(span) {
		c.err = ErrTruncated
		return false
	}
	c.key, c.keyLen = key, keyLen
	c.dataOff, c.dataLen = c.pos, dataLen
	c.pos += int(dataLen)

	c.itemsLeftInBucket--
	c.entriesLeft--
	return true
}

func (c *entryCursor[IK, EK, D]) data() (D, error) {
	b := c.r.span[c.dataOff : c.dataOff+int(c.dataLen)]
	return c.r.info.ReadData(c.key, b, c.dataLen)
}

// KeyIterator walks every stored key in a table, in on-disk bucket
// order. Its zero value is not usable; construct one with
// IterableReader.Keys.
type KeyIterator[IK, EK, D any] struct {
	c *entryCursor[IK, EK, D]
}

// Next advances the iterator, returning false when exhausted or on
// error (check Err to distinguish the two).
func (it *KeyIterator[IK, EK, D]) Next() bool { return it.c.next() }

// Key returns the external form of the current entry's key. Only
// valid after a call to Next that returned true.
func (it *KeyIterator[IK, EK, D]) Key() EK {
	return it.c.r.info.GetExternalKey(it.c.key)
}

// Err returns the error that stopped iteration, if any.
func (it *KeyIterator[IK, EK, D]) Err() error { return it.c.err }

// DataIterator walks every stored data value in a table, in on-disk
// bucket order. Its zero value is not usable; construct one with
// IterableReader.Data.
type DataIterator[IK, EK, D any] struct {
	c *entryCursor[IK, EK, D]
}

// Next advances the iterator, returning false when exhausted or on
// error (check Err to distinguish the two).
func (it *DataIterator[IK, EK, D]) Next() bool { return it.c.next() }

// Data decodes and returns the current entry's data. Only valid after
// a call to Next that returned true.
func (it *DataIterator[IK, EK, D]) Data() (D, error) { return it.c.data() }

// Err returns the error that stopped iteration, if any.
func (it *DataIterator[IK, EK, D]) Err() error { return it.c.err }

// Keys returns a fresh KeyIterator over every entry in the table.
func (r *IterableReader[IK, EK, D]) Keys() *KeyIterator[IK, EK, D] {
	return &KeyIterator[IK, EK, D]{c: newEntryCursor(r)}
}

// Data returns a fresh DataIterator over every entry in the table.
func (r *IterableReader[IK, EK, D]) Data() *DataIterator[IK, EK, D] {
	return &DataIterator[IK, EK, D]{c: newEntryCursor(r)}
}
