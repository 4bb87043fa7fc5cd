// Copyright 2021 The chainhash Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command gen-testdata writes random key:value pairs to stdout,
// suitable for piping into chainhash-dump build. Keys are derived
// from the values with HMAC-SHA256 so the fixture is reproducible
// given the same random seed logged to stderr (pass it back with
// -seed), without needing the
// values themselves to be unique.
package main

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

var (
	nPairs    = flag.Int("n", 100000, "number of key:value pairs to generate")
	prefix    = flag.String("prefix", "pref_", "prefix prepended to each generated value")
	suffixLen = flag.Int("suffix-len", 16, "length in hex characters of each value's random suffix")
	hmacKey   = flag.String("hmac-key", "d259c7f656caf7f1", "key used to derive keys from values")
	seedFlag  = flag.Int64("seed", 0, "random seed; 0 draws one from crypto/rand")
)

func newRand() *rand.Rand {
	seed := *seedFlag
	if seed == 0 {
		var seedBytes [8]byte
		if _, err := crand.Read(seedBytes[:]); err != nil {
			panic(err)
		}
		seed = int64(binary.LittleEndian.Uint64(seedBytes[:]))
	}
	fmt.Fprintf(os.Stderr, "gen-testdata: seed=%d\n", seed)
	return rand.New(rand.NewSource(seed))
}

func main() {
	flag.Parse()

	rng := newRand()
	h := hmac.New(sha256.New, []byte(*hmacKey))

	w := os.Stdout
	for i := 0; i < *nPairs; i++ {
		buf := make([]byte, *suffixLen/2)
		if _, err := rng.Read(buf); err != nil {
			panic(err)
		}
		value := fmt.Sprintf("%s%x", *prefix, buf)
		h.Reset()
		h.Write([]byte(value))
		key := hex.EncodeToString(h.Sum(nil))

		fmt.Fprintf(w, "%s:%s\n", key, value)
	}
}
