// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import "errors"

var (
	// ErrZeroOffset is returned by Generator.Emit when the sink was
	// positioned at offset 0 of its stream at the start of
	// emission. Offset 0 is reserved to mean "empty bucket" in the
	// bucket index, so a table's payload must never begin there --
	// write at least one byte of your own (a header, a version
	// word, ...) before calling Emit.
	ErrZeroOffset = errors.New("chainhash: cannot emit a table at stream offset 0")

	// ErrNotAfterBase is returned by NewReader when bucketsOffset is
	// not strictly greater than 0 (the table can't start at the
	// origin of the stream it was emitted into).
	ErrNotAfterBase = errors.New("chainhash: buckets offset must be greater than 0")

	// ErrMisaligned is returned by NewReader when bucketsOffset is
	// not a multiple of 4 bytes.
	ErrMisaligned = errors.New("chainhash: buckets offset must be 4-byte aligned")

	// ErrShortSpan is returned by NewReader or NewIterableReader
	// when the byte span is too short to hold the table's header or
	// bucket index. A payload that runs past the end of the span is
	// reported later, as ErrTruncated.
	ErrShortSpan = errors.New("chainhash: span too short for table")

	// ErrTruncated is returned by Find or by an iterator when a
	// decoded length or offset would read past the end of the span
	// -- the on-disk bytes are corrupt or truncated.
	ErrTruncated = errors.New("chainhash: truncated or corrupt table")

	// ErrNotFound is returned by Cursor.Value when called on the
	// end sentinel. Find itself never returns this error -- a miss
	// is signalled by the sentinel cursor, not an error, per the
	// package's two-category error design (construction-time
	// precondition violations are errors; "not found" is not).
	ErrNotFound = errors.New("chainhash: cursor has no value")
)
