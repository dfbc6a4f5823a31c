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

// Package shares converts between secrets.Share values and the flat byte
// layout used by HashiCorp Vault's shamir package: the share's value bytes
// followed by a single trailing byte holding its index.
package shares

import (
	"errors"
	"fmt"

	"github.com/GoogleCloudPlatform/secretsharing/secrets"
	"github.com/GoogleCloudPlatform/secretsharing/shamir"
)

// ErrMalformedShare is returned when decoding a byte share that is too short
// or carries a zero index.
var ErrMalformedShare = errors.New("malformed encoded share")

// Encode appends the X value to the end of a copy of the share value.
func Encode(share secrets.Share) ([]byte, error) {
	if share.X < 1 || share.X > 255 {
		return nil, fmt.Errorf("%w: index %d does not fit in one byte", shamir.ErrInvalidShare, share.X)
	}
	if len(share.Value) == 0 {
		return nil, fmt.Errorf("%w: empty value", shamir.ErrInvalidShare)
	}
	out := make([]byte, 0, len(share.Value)+1)
	out = append(out, share.Value...)
	return append(out, byte(share.X)), nil
}

// Decode splits an encoded share into its value and X field (last byte). The
// returned share does not alias b.
func Decode(b []byte) (secrets.Share, error) {
	if len(b) < 2 {
		return secrets.Share{}, fmt.Errorf("%w: got %d bytes, want at least 2", ErrMalformedShare, len(b))
	}
	x := int(b[len(b)-1])
	if x == 0 {
		return secrets.Share{}, fmt.Errorf("%w: zero index", ErrMalformedShare)
	}
	share := secrets.Share{Value: b[:len(b)-1], X: x}
	return share.Clone(), nil
}

// SplitShares splits data into numShares encoded shares, any threshold of
// which reconstruct it with CombineShares.
func SplitShares(data []byte, numShares, threshold int, opts ...shamir.Option) ([][]byte, error) {
	split, err := shamir.Split(data, numShares, threshold, opts...)
	if err != nil {
		return nil, fmt.Errorf("error splitting secret: %w", err)
	}
	byteShares := make([][]byte, 0, len(split))
	for _, share := range split {
		b, err := Encode(share)
		if err != nil {
			return nil, err
		}
		clear(share.Value)
		byteShares = append(byteShares, b)
	}
	return byteShares, nil
}

// CombineShares takes a list of encoded shares and reconstitutes the original
// data. Note that this does not guarantee the shares are correct (SSS will
// succeed at "reconstructing" data from even faulty shares), so integrity
// checks are done separately.
func CombineShares(byteShares [][]byte) ([]byte, error) {
	decoded := make([]secrets.Share, 0, len(byteShares))
	defer func() {
		for _, s := range decoded {
			clear(s.Value)
		}
	}()
	for i, b := range byteShares {
		share, err := Decode(b)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		decoded = append(decoded, share)
	}
	return shamir.Combine(decoded)
}
