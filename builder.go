// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bpowers/chainhash/internal/wire"
)

const (
	prefixMagic   = 0xC0A1CE00
	prefixVersion = uint32(1)
	prefixSize    = 8
)

// Builder is a convenience wrapper around Generator that owns a
// result file's full lifecycle: writing a small magic+version prefix
// (so the table's payload never lands at stream offset 0), buffering
// writes, and atomically publishing the finished table so a reader
// mmap'ing resultPath never observes a partially written file.
type Builder[K, D any] struct {
	resultPath string
	tmpFile    *os.File
	w          *bufio.Writer
	info       WriterInfo[K, D]
	gen        *Generator[K, D]
}

// NewBuilder creates a temporary file next to resultPath and writes
// its 8-byte prefix (magic + format version), ready for Insert calls.
// Finalize renames the temporary file into place, so a half-built
// table is never visible at resultPath.
func NewBuilder[K, D any](resultPath string, info WriterInfo[K, D]) (*Builder[K, D], error) {
	resultPath, err := filepath.Abs(resultPath)
	if err != nil {
		return nil, fmt.Errorf("chainhash: filepath.Abs(%q): %w", resultPath, err)
	}

	dir := filepath.Dir(resultPath)
	tmpFile, err := os.CreateTemp(dir, "chainhash-builder.*.tmp")
	if err != nil {
		return nil, fmt.Errorf("chainhash: CreateTemp in %q: %w", dir, err)
	}

	w := bufio.NewWriter(tmpFile)
	var hdr [prefixSize]byte
	wire.PutUint32(hdr[0:4], prefixMagic)
	wire.PutUint32(hdr[4:8], prefixVersion)
	if _, err := w.Write(hdr[:]); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return nil, fmt.Errorf("chainhash: writing prefix to %q: %w", tmpFile.Name(), err)
	}

	return &Builder[K, D]{
		resultPath: resultPath,
		tmpFile:    tmpFile,
		w:          w,
		info:       info,
		gen:        NewGenerator[K, D](),
	}, nil
}

// Insert adds an entry to the table under construction.
func (b *Builder[K, D]) Insert(key K, data D) {
	b.gen.Insert(key, data, b.info)
}

// NumEntries reports how many entries have been inserted so far.
func (b *Builder[K, D]) NumEntries() int { return b.gen.NumEntries() }

// Finalize emits the accumulated table to the temporary file, flushes
// and closes it, makes it read-only, and renames it into place at
// resultPath -- the same create-temp, chmod-0444, rename sequence the
// teacher's own Builder.finalize uses, so a reader mmap'ing
// resultPath only ever sees the whole table or nothing. It returns
// the payload offset (where the table's entries begin, right after
// the prefix) and the buckets offset a Reader needs to open the
// result. The Builder must not be used again afterward.
func (b *Builder[K, D]) Finalize() (payloadOffset, bucketsOffset uint32, err error) {
	tmpPath := b.tmpFile.Name()

	sink := wire.NewCountingWriterAt(b.w, prefixSize)
	tableOffset, err := b.gen.Emit(sink, b.info)
	if err != nil {
		b.tmpFile.Close()
		os.Remove(tmpPath)
		return 0, 0, fmt.Errorf("chainhash: emitting table to %q: %w", tmpPath, err)
	}

	if err := b.w.Flush(); err != nil {
		b.tmpFile.Close()
		os.Remove(tmpPath)
		return 0, 0, fmt.Errorf("chainhash: flushing %q: %w", tmpPath, err)
	}
	if err := b.tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, 0, fmt.Errorf("chainhash: closing %q: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, 0444); err != nil {
		os.Remove(tmpPath)
		return 0, 0, fmt.Errorf("chainhash: chmod(0444) %q: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, b.resultPath); err != nil {
		os.Remove(tmpPath)
		return 0, 0, fmt.Errorf("chainhash: renaming %q to %q: %w", tmpPath, b.resultPath, err)
	}

	return prefixSize, tableOffset, nil
}
