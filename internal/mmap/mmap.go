// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmap memory-maps a file read-only and exposes its contents
// as a plain byte slice. It exists because the public mmap packages
// in the ecosystem stop at io.ReaderAt, and a zero-copy Reader needs
// direct access to the mapped bytes rather than a copy through Read.
package mmap

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ReaderAt is a read-only memory-mapped file.
type ReaderAt struct {
	data []byte
	f    *os.File
}

// Open memory-maps the file at path for reading. The file is kept
// open for the lifetime of the mapping; Close unmaps and closes it.
func Open(path string) (*ReaderAt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &ReaderAt{f: f}, nil
	}
	if size < 0 || int64(int(size)) != size {
		f.Close()
		return nil, fmt.Errorf("mmap: file %q too large to map: %d bytes", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: Mmap(%q): %w", path, err)
	}

	return &ReaderAt{data: data, f: f}, nil
}

// Data returns the mapped file's contents. The returned slice is
// valid until Close is called and must not be written to.
func (r *ReaderAt) Data() []byte { return r.data }

// Len returns the length of the mapped file.
func (r *ReaderAt) Len() int { return len(r.data) }

// Advise applies a usage hint to the mapping, e.g. unix.MADV_RANDOM
// for access patterns dominated by point lookups rather than
// sequential scans.
func (r *ReaderAt) Advise(advice int) error {
	if len(r.data) == 0 {
		return nil
	}
	return unix.Madvise(r.data, advice)
}

// ReadAt implements io.ReaderAt against the mapped bytes.
func (r *ReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(r.data)) {
		return 0, fmt.Errorf("mmap: invalid ReadAt offset %d", off)
	}
	n := copy(p, r.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the file and closes its descriptor. It is safe to
// call more than once.
func (r *ReaderAt) Close() error {
	var err error
	if r.data != nil {
		err = unix.Munmap(r.data)
		r.data = nil
	}
	if r.f != nil {
		if cerr := r.f.Close(); err == nil {
			err = cerr
		}
		r.f = nil
	}
	return err
}
