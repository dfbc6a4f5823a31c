// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil contains utilities for unit tests.
package testutil

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/google/tink/go/subtle/random"
)

// ErrEntropyExhausted is returned by FailingReader.
var ErrEntropyExhausted = errors.New("test entropy source exhausted")

// NewDeterministicReader returns a reproducible ChaCha8 stream seeded from
// label. Two readers created with the same label produce the same bytes.
func NewDeterministicReader(label string) io.Reader {
	return rand.NewChaCha8(sha256.Sum256([]byte(label)))
}

// ConstReader is an io.Reader that fills every buffer with the same byte.
type ConstReader byte

func (c ConstReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

// FailingReader returns ErrEntropyExhausted once N bytes have been read.
type FailingReader struct {
	N int
}

func (f *FailingReader) Read(p []byte) (int, error) {
	if f.N <= 0 {
		return 0, ErrEntropyExhausted
	}
	n := min(len(p), f.N)
	copy(p, random.GetRandomBytes(uint32(n)))
	f.N -= n
	return n, nil
}

// GetRandomBytes returns n random bytes.
func GetRandomBytes(t *testing.T, n int) []byte {
	t.Helper()
	return random.GetRandomBytes(uint32(n))
}

// Combinations returns every size-k subset of {0, ..., n-1}, each in
// increasing order.
func Combinations(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i <= n-(k-len(cur)); i++ {
			cur = append(cur, i)
			walk(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(0)
	return out
}
