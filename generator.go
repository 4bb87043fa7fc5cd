// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"fmt"

	"github.com/bpowers/chainhash/internal/fill"
	"github.com/bpowers/chainhash/internal/wire"
)

const initialNumBuckets = 64

// item is one entry in the generator's arena. Chains are singly
// linked via next, an index back into the same arena slice rather
// than a pointer -- the safe-language analogue of the original
// implementation's BumpPtrAllocator, and the same shape as bit's own
// internal.ondisk.BucketSlice: a flat array grown by doubling, with
// no per-node allocation or lifetime to reason about. next is -1 for
// the end of a chain.
type item[K, D any] struct {
	key  K
	data D
	hash uint32
	next int32
}

// Generator accumulates (key, data) entries in memory, maintaining a
// bucket array under a 3/4 load-factor policy, and Emits the payload
// and bucket index it describes to a Sink. It is not safe for
// concurrent Insert calls; a single Emit call consumes it logically,
// though it remains safe to call again (it will simply re-encode the
// same entries).
type Generator[K, D any] struct {
	buckets    []int32 // bucket index -> head item index, -1 if empty
	items      []item[K, D]
	numEntries int
}

// NewGenerator returns a Generator with 64 empty buckets and no
// entries, per the format's invariant that the table always starts
// with 64 buckets.
func NewGenerator[K, D any]() *Generator[K, D] {
	buckets := make([]int32, initialNumBuckets)
	fill.Slice(buckets, int32(-1))
	return &Generator[K, D]{buckets: buckets}
}

// NumBuckets reports the generator's current bucket count, always a
// power of two.
func (g *Generator[K, D]) NumBuckets() int { return len(g.buckets) }

// NumEntries reports the number of entries inserted so far, including
// duplicates.
func (g *Generator[K, D]) NumEntries() int { return g.numEntries }

// Insert appends an entry, growing the bucket array first if doing so
// keeps 4*NumEntries < 3*NumBuckets. Inserting the same key twice is
// allowed and produces two discoverable entries; Reader.Find returns
// the most recently inserted one, since chains are built head-first.
func (g *Generator[K, D]) Insert(key K, data D, info WriterInfo[K, D]) {
	h := info.ComputeHash(key)

	g.numEntries++
	if 4*g.numEntries >= 3*len(g.buckets) {
		g.resize(len(g.buckets) * 2)
	}

	b := h & uint32(len(g.buckets)-1)
	idx := int32(len(g.items))
	g.items = append(g.items, item[K, D]{key: key, data: data, hash: h, next: g.buckets[b]})
	g.buckets[b] = idx
}

// resize doubles the bucket array and relinks every existing item
// into it by its stored hash. Items themselves never move; only the
// bucket heads and next pointers change. Chain order is not
// preserved across a resize -- this is observable in iteration order
// but not in lookup correctness, and is deterministic for a given
// insertion sequence and bucket-count sequence.
func (g *Generator[K, D]) resize(newSize int) {
	newBuckets := make([]int32, newSize)
	fill.Slice(newBuckets, int32(-1))
	mask := uint32(newSize - 1)

	for _, head := range g.buckets {
		for idx := head; idx != -1; {
			next := g.items[idx].next
			b := g.items[idx].hash & mask
			g.items[idx].next = newBuckets[b]
			newBuckets[b] = idx
			idx = next
		}
	}

	g.buckets = newBuckets
}

// Emit writes the table's payload followed by its 4-byte-aligned
// bucket index to sink, returning the offset (in sink's own
// coordinate system) at which the bucket index begins -- the value a
// Reader needs to find the table again. sink must not be positioned
// at offset 0 of its stream; see ErrZeroOffset.
func (g *Generator[K, D]) Emit(sink Sink, info WriterInfo[K, D]) (tableOffset uint32, err error) {
	if sink.Len() == 0 {
		return 0, ErrZeroOffset
	}

	bucketOffsets := make([]uint32, len(g.buckets))

	var u16buf [2]byte
	var u32buf [4]byte

	for i, head := range g.buckets {
		if head == -1 {
			continue
		}

		off := sink.Len()
		if off == 0 {
			return 0, ErrZeroOffset
		}
		bucketOffsets[i] = uint32(off)

		n := 0
		for idx := head; idx != -1; idx = g.items[idx].next {
			n++
		}
		wire.PutUint16(u16buf[:], uint16(n))
		if _, err = sink.Write(u16buf[:]); err != nil {
			return 0, fmt.Errorf("writing bucket item count: %w", err)
		}

		for idx := head; idx != -1; idx = g.items[idx].next {
			it := &g.items[idx]

			wire.PutUint32(u32buf[:], it.hash)
			if _, err = sink.Write(u32buf[:]); err != nil {
				return 0, fmt.Errorf("writing item hash: %w", err)
			}

			keyLen, dataLen, err2 := info.EmitKeyDataLength(sink, it.key, it.data)
			if err2 != nil {
				return 0, fmt.Errorf("EmitKeyDataLength: %w", err2)
			}
			if err2 = info.EmitKey(sink, it.key, keyLen); err2 != nil {
				return 0, fmt.Errorf("EmitKey: %w", err2)
			}
			if err2 = info.EmitData(sink, it.key, it.data, dataLen); err2 != nil {
				return 0, fmt.Errorf("EmitData: %w", err2)
			}
		}
	}

	pad := int((4 - sink.Len()%4) % 4)
	if pad > 0 {
		var zeros [4]byte
		if _, err = sink.Write(zeros[:pad]); err != nil {
			return 0, fmt.Errorf("writing alignment padding: %w", err)
		}
	}
	tableOffset = uint32(sink.Len())

	wire.PutUint32(u32buf[:], uint32(len(g.buckets)))
	if _, err = sink.Write(u32buf[:]); err != nil {
		return 0, fmt.Errorf("writing NumBuckets: %w", err)
	}
	wire.PutUint32(u32buf[:], uint32(g.numEntries))
	if _, err = sink.Write(u32buf[:]); err != nil {
		return 0, fmt.Errorf("writing NumEntries: %w", err)
	}
	for _, off := range bucketOffsets {
		wire.PutUint32(u32buf[:], off)
		if _, err = sink.Write(u32buf[:]); err != nil {
			return 0, fmt.Errorf("writing bucket offset: %w", err)
		}
	}

	return tableOffset, nil
}
