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

// Package constants contains constants shared between the field arithmetic,
// the splitter and the combiner.
package constants

// MaxShares is the largest number of shares a single split can produce. Every
// share is evaluated at a distinct nonzero element of GF(2^8), and there are
// only 255 of those.
const MaxShares = 255

// MinThreshold is the smallest accepted threshold. A threshold of one yields
// shares that each carry the secret verbatim.
const MinThreshold = 1

// ReductionPolynomial is the irreducible polynomial x^8 + x^4 + x^3 + x + 1
// used to reduce products in GF(2^8). This is the AES (Rijndael) field.
const ReductionPolynomial = 0x11B

// Generator generates the multiplicative group of GF(2^8) under
// ReductionPolynomial. The log/exp tables are built from its powers.
const Generator = 0x03

// FieldOrder is the number of nonzero elements in GF(2^8), i.e. the order of
// the multiplicative group.
const FieldOrder = 255
