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

// Package shamir encapsulates all of the logic needed to perform t-of-n [Shamir
// Secret Sharing] (SSS) on arbitrary-size secrets over GF(2^8). SSS is based on
// the Lagrange interpolation theorem, which states that `k` points are enough
// to uniquely determine a polynomial of degree less than or equal to `k - 1`.
//
// Every byte of the secret is the constant term of its own polynomial of
// degree `k - 1` with fresh random coefficients. Share `x` holds the
// evaluation of every one of those polynomials at `x`.
//
// This scheme is secure under the following assumptions:
//   - The scheme requires a trusted dealer to generate the shares. Participants
//     must trust the dealer with access to the secret and to properly generate the
//     shares.
//   - The scheme assumes a passive adversary which can observe (k - 1) shares
//     without being able to reconstruct the secret. Combine cannot detect
//     bogus or corrupted shares, shares from different splits, or too few
//     shares; it returns a value of the right length that is simply wrong.
//     Examples of this attack: https://crypto.stackexchange.com/q/41994/76875
//
// [Shamir Secret Sharing]: https://web.mit.edu/6.857/OldStuff/Fall03/ref/Shamir-HowToShareAsecrets.pdf
package shamir

import (
	"fmt"

	"github.com/GoogleCloudPlatform/secretsharing/constants"
	"github.com/GoogleCloudPlatform/secretsharing/internal/field/gf8"
	"github.com/GoogleCloudPlatform/secretsharing/internal/polynomial"
	"github.com/GoogleCloudPlatform/secretsharing/secrets"
	"github.com/golang/glog"
)

// Split splits secret into n shares, any k of which reconstruct it with
// Combine. With k = 1 every share carries the secret verbatim.
func Split(secret []byte, n, k int, opts ...Option) ([]secrets.Share, error) {
	if err := validateSplitInput(secret, n, k); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	glog.V(2).Infof("Splitting %d-byte secret into %d shares with threshold %d", len(secret), n, k)

	indices, err := shareIndices(n, o)
	if err != nil {
		return nil, err
	}
	xs := make([]gf8.Element, n)
	shares := make([]secrets.Share, n)
	for i, x := range indices {
		xs[i] = gf8.Element(x)
		shares[i] = secrets.Share{Value: make([]byte, len(secret)), X: x}
	}

	// For each secret byte we build a polynomial of degree k - 1 where the
	// byte is the constant coefficient and every other coefficient is random:
	// b + R_1 * x^1 + R_2 * x^2 + ... + R_(k-1) * x^(k-1)
	coefficients := make([]gf8.Element, k)
	for pos, b := range secret {
		if err := polynomial.Random(o.rand, gf8.Element(b), coefficients); err != nil {
			clear(coefficients)
			for _, s := range shares {
				clear(s.Value)
			}
			return nil, err
		}
		// shares[0] = [ F1(x0), F2(x0), ..., FN(x0) ]
		// shares[1] = [ F1(x1), F2(x1), ..., FN(x1) ]
		for i, x := range xs {
			shares[i].Value[pos] = byte(polynomial.Evaluate(coefficients, x))
		}
		clear(coefficients)
	}
	return shares, nil
}

// Combine reconstructs a secret from shares produced by a single Split.
//
// The number of shares provided must meet the threshold used by Split. That
// cannot be checked here: too few shares, or shares from different splits,
// silently produce a wrong secret.
func Combine(shares []secrets.Share) ([]byte, error) {
	if err := validateCombineInput(shares); err != nil {
		return nil, err
	}
	glog.V(2).Infof("Combining %d shares of length %d", len(shares), len(shares[0].Value))

	xs := make([]gf8.Element, len(shares))
	for i, s := range shares {
		xs[i] = gf8.Element(s.X)
	}
	// The basis depends only on the indices, so it is computed once and
	// reused for every byte.
	basis, err := polynomial.LagrangeBasisAtZero(xs)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, len(shares[0].Value))
	ys := make([]gf8.Element, len(shares))
	defer clear(ys)
	for pos := range secret {
		for i, s := range shares {
			ys[i] = gf8.Element(s.Value[pos])
		}
		b, err := polynomial.Interpolate(basis, ys)
		if err != nil {
			clear(secret)
			return nil, err
		}
		secret[pos] = byte(b)
	}
	return secret, nil
}

// SplitSecret splits a secret into metadata.NumShares shares where metadata.Threshold
// or more shares can be combined to reconstruct the original secret.
func SplitSecret(metadata secrets.Metadata, secret []byte, opts ...Option) (secrets.Split, error) {
	shares, err := Split(secret, metadata.NumShares, metadata.Threshold, opts...)
	if err != nil {
		return secrets.Split{}, err
	}
	return secrets.Split{
		Metadata:  metadata,
		Shares:    shares,
		SecretLen: len(secret),
	}, nil
}

// Reconstruct reconstructs the secret from secretSplit.
//
// Unlike Combine, the recorded threshold is enforced: fewer shares fail with
// ErrInsufficientShares, and only the first Threshold shares are used.
//
// Reconstruct will not detect bogus or corrupted shares.
func Reconstruct(secretSplit secrets.Split) ([]byte, error) {
	md := secretSplit.Metadata
	if err := validateParameters(md.NumShares, md.Threshold); err != nil {
		return nil, err
	}
	if len(secretSplit.Shares) < md.Threshold {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrInsufficientShares, md.Threshold, len(secretSplit.Shares))
	}
	secret, err := Combine(secretSplit.Shares[:md.Threshold])
	if err != nil {
		return nil, err
	}
	if len(secret) != secretSplit.SecretLen {
		clear(secret)
		return nil, fmt.Errorf("%w: reconstructed %d bytes, split recorded %d", ErrMismatchedShareLength, len(secret), secretSplit.SecretLen)
	}
	return secret, nil
}

func validateParameters(numShares, threshold int) error {
	if threshold < constants.MinThreshold {
		return fmt.Errorf("%w: threshold must be at least %d, got %d", ErrInvalidParameters, constants.MinThreshold, threshold)
	}
	if numShares < threshold {
		return fmt.Errorf("%w: numShares (%d) must be at least threshold (%d)", ErrInvalidParameters, numShares, threshold)
	}
	if numShares > constants.MaxShares {
		return fmt.Errorf("%w: numShares must be at most %d, got %d", ErrInvalidParameters, constants.MaxShares, numShares)
	}
	return nil
}

func validateSplitInput(secret []byte, numShares, threshold int) error {
	if len(secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidParameters)
	}
	return validateParameters(numShares, threshold)
}

func validateCombineInput(shares []secrets.Share) error {
	if len(shares) == 0 {
		return fmt.Errorf("%w: no shares provided", ErrInsufficientShares)
	}
	length := len(shares[0].Value)
	if length == 0 {
		return fmt.Errorf("%w: share 0 has an empty value", ErrInvalidShare)
	}
	seen := make(map[int]bool, len(shares))
	for i, s := range shares {
		if s.X < 1 || s.X > constants.MaxShares {
			return fmt.Errorf("%w: share %d has index %d, want 1..%d", ErrInvalidShare, i, s.X, constants.MaxShares)
		}
		if len(s.Value) != length {
			return fmt.Errorf("%w: share %d has length %d, share 0 has length %d", ErrMismatchedShareLength, i, len(s.Value), length)
		}
		if seen[s.X] {
			return fmt.Errorf("%w: %d", ErrDuplicateShareIndex, s.X)
		}
		seen[s.X] = true
	}
	return nil
}
