// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chainhash

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/bpowers/chainhash/internal/mmap"
)

// File is a memory-mapped file, opened read-only, that a Reader or
// IterableReader can be constructed over without copying its
// contents. Close unmaps it; a Reader built from its Data must not
// be used afterward.
type File struct {
	mm *mmap.ReaderAt
}

// OpenFile memory-maps path and advises the kernel that access will
// be dominated by random point lookups rather than sequential scans
// -- the expected pattern for a hash table, as opposed to the
// sequential-scan hint a log-structured format would want.
func OpenFile(path string) (*File, error) {
	mm, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chainhash: opening %q: %w", path, err)
	}
	if err := mm.Advise(unix.MADV_RANDOM); err != nil {
		mm.Close()
		return nil, fmt.Errorf("chainhash: madvise %q: %w", path, err)
	}
	return &File{mm: mm}, nil
}

// Data returns the file's mapped contents.
func (f *File) Data() []byte { return f.mm.Data() }

// Close unmaps the file.
func (f *File) Close() error { return f.mm.Close() }

// OpenReader memory-maps path and constructs a Reader over it at
// bucketsOffset, returning the File so the caller can Close it once
// done. Go's generic methods cannot introduce new type parameters
// beyond the receiver's, so this is a free function rather than a
// method on File.
func OpenReader[IK, EK, D any](path string, bucketsOffset int, info ReaderInfo[IK, EK, D]) (*Reader[IK, EK, D], *File, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewReader[IK, EK, D](f.Data(), bucketsOffset, info)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f, nil
}

// OpenIterableReader memory-maps path and constructs an
// IterableReader over it, returning the File so the caller can Close
// it once done.
func OpenIterableReader[IK, EK, D any](path string, payloadOffset, bucketsOffset int, info ReaderInfo[IK, EK, D]) (*IterableReader[IK, EK, D], *File, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewIterableReader[IK, EK, D](f.Data(), payloadOffset, bucketsOffset, info)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f, nil
}
