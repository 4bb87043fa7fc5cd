// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package wire implements the little-endian byte codecs shared by the
// generator and reader halves of the on-disk chained hash table. All
// multi-byte integers on disk are little-endian. The two 32-bit
// header fields (NumBuckets, NumEntries) and the bucket index slots
// are always 4-byte aligned; everything inside a bucket's payload is
// not, since Info-defined record shapes give no alignment guarantee
// there -- every payload read in this package is an explicit
// byte-wise decode rather than a reinterpreted pointer.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Cursor walks forward through a byte slice. It is the type handed to
// ReaderInfo.ReadKeyDataLength so that implementation can consume
// whatever length prefix it wrote, leaving the cursor positioned
// right after it.
type Cursor struct {
	b   []byte
	pos int
}

// NewCursor returns a Cursor over b, starting at position 0.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the cursor's current offset into its backing slice.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the bytes the cursor hasn't consumed yet.
func (c *Cursor) Remaining() []byte { return c.b[c.pos:] }

// Advance moves the cursor forward n bytes without reading them.
func (c *Cursor) Advance(n int) error {
	if n < 0 || c.pos+n > len(c.b) {
		return fmt.Errorf("wire: advance(%d) past end (pos %d, len %d)", n, c.pos, len(c.b))
	}
	c.pos += n
	return nil
}

// ReadByte reads a single byte and advances.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos+1 > len(c.b) {
		return 0, fmt.Errorf("wire: byte read past end (pos %d, len %d)", c.pos, len(c.b))
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads an unaligned little-endian uint16 and advances.
func (c *Cursor) ReadUint16() (uint16, error) {
	if c.pos+2 > len(c.b) {
		return 0, fmt.Errorf("wire: uint16 read past end (pos %d, len %d)", c.pos, len(c.b))
	}
	v := binary.LittleEndian.Uint16(c.b[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// ReadUint32 reads an unaligned little-endian uint32 and advances.
func (c *Cursor) ReadUint32() (uint32, error) {
	if c.pos+4 > len(c.b) {
		return 0, fmt.Errorf("wire: uint32 read past end (pos %d, len %d)", c.pos, len(c.b))
	}
	v := binary.LittleEndian.Uint32(c.b[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// PutUint16 writes a little-endian uint16 into dst.
func PutUint16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

// PutUint32 writes a little-endian uint32 into dst.
func PutUint32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }

// Uint16 reads an unaligned little-endian uint16 out of b at off.
func Uint16(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off : off+2]) }

// Uint32 reads an unaligned little-endian uint32 out of b at off.
func Uint32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off : off+4]) }

// AlignedUint32 reads the 4-byte-aligned little-endian uint32 at off.
// It is spelled out separately from Uint32 even though the decode
// itself is identical, so call sites document which fields the
// format guarantees alignment for (the index header and bucket
// slots) and which it doesn't (the payload).
func AlignedUint32(b []byte, off int) uint32 { return Uint32(b, off) }

// CountingWriter adapts a plain io.Writer into something that reports
// how many bytes have been written to it so far, the way the
// generator needs to know its own absolute stream offset. This
// mirrors the pattern bit's own internal data writers use: an `off`
// field updated inside Write, rather than relying on a seekable
// stream's tell().
type CountingWriter struct {
	w   io.Writer
	off int64
}

// NewCountingWriter wraps w, starting its count at zero. If w has
// already had bytes written to it directly (bypassing this wrapper),
// construct with NewCountingWriterAt instead so the count stays
// accurate.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// NewCountingWriterAt wraps w, starting its count at startOffset --
// for when the caller already wrote startOffset bytes to w directly.
func NewCountingWriterAt(w io.Writer, startOffset int64) *CountingWriter {
	return &CountingWriter{w: w, off: startOffset}
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.off += int64(n)
	return n, err
}

// Len reports the number of bytes written through cw so far
// (including any startOffset it was constructed with).
func (cw *CountingWriter) Len() int64 { return cw.off }
