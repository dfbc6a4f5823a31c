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
	"errors"

	"github.com/GoogleCloudPlatform/secretsharing/internal/field/gf8"
)

// Errors returned by Split, Combine and their metadata-driven variants. They
// are wrapped with additional context; match them with errors.Is.
var (
	// ErrInvalidParameters indicates a threshold below one, a share count
	// below the threshold or above 255, or an empty secret.
	ErrInvalidParameters = errors.New("invalid secret sharing parameters")

	// ErrDivisionByZero indicates a field inversion of zero, which only
	// happens when interpolating over malformed share indices.
	ErrDivisionByZero = gf8.ErrDivisionByZero

	// ErrInsufficientShares indicates no shares, or fewer shares than the
	// recorded threshold, were supplied.
	ErrInsufficientShares = errors.New("not enough shares to reconstruct the secret")

	// ErrDuplicateShareIndex indicates two shares carry the same index.
	ErrDuplicateShareIndex = errors.New("duplicate share index")

	// ErrMismatchedShareLength indicates shares of differing lengths.
	ErrMismatchedShareLength = errors.New("shares have mismatched lengths")

	// ErrInvalidShare indicates a share with an index outside 1..255 or an
	// empty value.
	ErrInvalidShare = errors.New("invalid share")
)
