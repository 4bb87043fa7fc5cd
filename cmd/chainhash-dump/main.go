// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command chainhash-dump builds and inspects chainhash tables of
// string keys to []byte values from the command line, mainly as a
// worked example of the Builder/Reader/IterableReader lifecycle.
//
// Subcommands:
//
//	chainhash-dump build <path>        reads key:value lines from stdin
//	chainhash-dump get <path> <key>    looks up one key
//	chainhash-dump list <path>         prints every key
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bpowers/chainhash"
	"github.com/bpowers/chainhash/infos"
	"github.com/bpowers/chainhash/internal/bytesutil"
)

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = build(os.Args[2])
	case "get":
		if len(os.Args) < 4 {
			usage()
		}
		err = get(os.Args[2], os.Args[3])
	case "list":
		err = list(os.Args[2])
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "chainhash-dump: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chainhash-dump build|get|list <path> [key]")
	os.Exit(2)
}

// offsetsPath derives the sidecar file a Reader needs to remember
// where a table's buckets begin, since that offset isn't otherwise
// recoverable from the file alone.
func offsetsPath(path string) string { return path + ".offsets" }

func build(path string) error {
	b, err := chainhash.NewBuilder[string, []byte](path, infos.String{})
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		keyBytes, value, ok := bytesutil.Cut(line, ':')
		if !ok {
			continue
		}
		b.Insert(string(keyBytes), append([]byte(nil), value...))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	payloadOffset, bucketsOffset, err := b.Finalize()
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d entries, payloadOffset=%d bucketsOffset=%d\n",
		path, b.NumEntries(), payloadOffset, bucketsOffset)

	return writeOffsets(offsetsPath(path), payloadOffset, bucketsOffset)
}

func writeOffsets(path string, payloadOffset, bucketsOffset uint32) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%d %d\n", payloadOffset, bucketsOffset)), 0o644)
}

func readOffsets(path string) (payloadOffset, bucketsOffset int, err error) {
	b, err := os.ReadFile(offsetsPath(path))
	if err != nil {
		return 0, 0, fmt.Errorf("reading %s (run build first): %w", offsetsPath(path), err)
	}
	if _, err := fmt.Sscanf(string(b), "%d %d", &payloadOffset, &bucketsOffset); err != nil {
		return 0, 0, fmt.Errorf("parsing %s: %w", offsetsPath(path), err)
	}
	return payloadOffset, bucketsOffset, nil
}

func get(path, key string) error {
	_, bucketsOffset, err := readOffsets(path)
	if err != nil {
		return err
	}

	r, f, err := chainhash.OpenReader[string, string, []byte](path, bucketsOffset, infos.String{})
	if err != nil {
		return err
	}
	defer f.Close()

	cur, err := r.Find(key)
	if err != nil {
		return err
	}
	if !cur.Found() {
		return fmt.Errorf("key %q not found", key)
	}

	value, err := cur.Value()
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", value)
	return nil
}

func list(path string) error {
	payloadOffset, bucketsOffset, err := readOffsets(path)
	if err != nil {
		return err
	}

	r, f, err := chainhash.OpenIterableReader[string, string, []byte](path, payloadOffset, bucketsOffset, infos.String{})
	if err != nil {
		return err
	}
	defer f.Close()

	it := r.Keys()
	for it.Next() {
		fmt.Println(it.Key())
	}
	return it.Err()
}
