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

// Package secrets contains the types exchanged with the secret sharing library.
// A dealer splits a secret into `Share`s; when the dealer also records the
// `Metadata` used, the result is a `Split` that can later be reconstructed
// with the threshold enforced.
//
// Secrets and shares are owned by the caller. The library keeps no reference
// to either once a call returns.
package secrets

// Metadata contains the parameters used to split a secret.
type Metadata struct {
	NumShares int
	Threshold int
}

// Split represents a secret split into shares alongside the metadata needed to reconstruct it.
type Split struct {
	Metadata Metadata
	Shares   []Share
	// The length of the original split secret in bytes.
	SecretLen int
}

// Share represents one share of a shared secret without any metadata.
// X is the nonzero field element (1..255) at which every per-byte polynomial
// was evaluated; Value[i] is that evaluation for secret byte i.
type Share struct {
	Value []byte
	X     int
}

// Clone returns a deep copy of s.
func (s Share) Clone() Share {
	return Share{Value: append([]byte(nil), s.Value...), X: s.X}
}
