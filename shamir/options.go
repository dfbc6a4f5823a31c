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

package shamir

import (
	"fmt"
	"io"

	"github.com/GoogleCloudPlatform/secretsharing/constants"
	"github.com/google/tink/go/subtle/random"
)

// Option configures a split.
type Option func(*options)

type options struct {
	rand          io.Reader
	randomIndices bool
}

func newOptions(opts []Option) *options {
	o := &options{rand: cryptoReader{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRandom sets the source of the random polynomial coefficients (and of
// the index permutation when WithRandomIndices is set). The reader must be
// cryptographically secure and safe for concurrent use if shared between
// goroutines; deterministic readers are only suitable for tests.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithRandomIndices assigns shares a random selection of distinct indices
// from 1..255 instead of 1..n, so an index does not reveal how many shares
// were dealt.
func WithRandomIndices() Option {
	return func(o *options) {
		o.randomIndices = true
	}
}

// cryptoReader reads from Tink's CSPRNG.
type cryptoReader struct{}

func (cryptoReader) Read(p []byte) (int, error) {
	copy(p, random.GetRandomBytes(uint32(len(p))))
	return len(p), nil
}

// shareIndices returns the n indices at which the shares are evaluated.
func shareIndices(n int, o *options) ([]int, error) {
	if !o.randomIndices {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i + 1
		}
		return xs, nil
	}
	perm := make([]int, constants.MaxShares)
	for i := range perm {
		perm[i] = i + 1
	}
	// Fisher-Yates, stopping once the first n positions are fixed.
	for i := 0; i < n && i < len(perm)-1; i++ {
		j, err := uniform(o.rand, len(perm)-i)
		if err != nil {
			return nil, err
		}
		perm[i], perm[i+j] = perm[i+j], perm[i]
	}
	return perm[:n], nil
}

// uniform returns an unbiased integer in [0, bound) for 0 < bound <= 256.
func uniform(r io.Reader, bound int) (int, error) {
	limit := 256 - 256%bound
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, fmt.Errorf("failed to read random index: %w", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % bound, nil
		}
	}
}
