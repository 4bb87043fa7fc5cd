// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package chainhash builds and reads on-disk chained hash tables: a
// persistent, position-independent key-value map meant to be
// embedded inside a larger binary artifact and consumed by a
// zero-copy, memory-mapped Reader.
//
// A Generator accumulates entries in memory, resizing its bucket
// array to keep the load factor under 3/4, and then Emits a
// self-describing byte layout:
//
//	┌────────────────────────┐
//	│ caller-written prefix  │  MUST occupy at least byte 0
//	├────────────────────────┤
//	│ payload                │  one block per non-empty bucket:
//	│                        │    u16 item count
//	│                        │    repeated: u32 hash, Info-defined
//	│                        │    length prefix, key bytes, data bytes
//	├────────────────────────┤
//	│ 0-3 bytes of padding    │  until the next offset is 4-byte aligned
//	├────────────────────────┤
//	│ index                  │
//	│   u32 NumBuckets        │
//	│   u32 NumEntries        │
//	│   u32[NumBuckets]       │  0 means empty; else offset to a
//	│                        │  bucket's u16 item count field
//	└────────────────────────┘
//
// Reader wraps an already-written byte span and answers point lookups
// by hashing the key, indexing directly into the bucket array, and
// walking the chain at that offset -- no heap structures are built up
// front. IterableReader additionally exposes a lazy key sequence and
// a lazy data sequence over every entry in the table.
//
// All multi-byte integers are little-endian. Offset 0 in the bucket
// index means "empty bucket", so the table's payload must never begin
// at byte 0 of the stream it's written into; callers place at least
// one byte of their own (a header, a version word, ...) first.
//
// Both halves of the format are driven by a caller-supplied Info
// policy (WriterInfo on the write side, ReaderInfo on the read side)
// that owns hashing and key/data serialization -- this package never
// inspects a key or data byte itself. See package infos for ready-made
// Info implementations over []byte and string keys.
//
// The generator is not safe for concurrent Insert calls. A Reader is
// immutable after construction and safe for concurrent use by
// multiple goroutines provided the Info they share is used safely (or
// each goroutine has its own).
package chainhash
