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

// Package gf8 implements arithmetic in the field with 2^8 elements (GF(2^8)).
//
// Elements are bytes interpreted as polynomials over GF(2) of degree at most
// seven, reduced modulo x^8 + x^4 + x^3 + x + 1. Multiplication, inversion and
// division are table lookups into log/exp tables that are computed once when
// the package is initialised and never written afterwards, so they can be
// read concurrently without synchronisation.
package gf8

import (
	"errors"

	"github.com/GoogleCloudPlatform/secretsharing/constants"
)

// ErrDivisionByZero is returned when inverting or dividing by the zero element.
var ErrDivisionByZero = errors.New("division by zero in GF(2^8)")

// Element is an element of GF(2^8).
type Element byte

// tables holds the discrete logarithm and exponentiation tables for the
// generator. exp is doubled in length so that exp[log[a]+log[b]] never needs a
// modular reduction.
type tables struct {
	exp [2 * constants.FieldOrder]Element
	log [256]uint8
}

var tbl = newTables()

func newTables() *tables {
	tb := &tables{}
	x := Element(1)
	for i := 0; i < constants.FieldOrder; i++ {
		tb.exp[i] = x
		tb.exp[i+constants.FieldOrder] = x
		tb.log[x] = uint8(i)
		x = mulNoTable(x, constants.Generator)
	}
	return tb
}

// irreducible polynomial (x^8 + x^4 + x^3 + x + 1)
// we deal with uint8 so we only need 0x1B
const reduction = constants.ReductionPolynomial & 0xFF

// mulNoTable multiplies a and b bit by bit. It is only used to build the
// tables and as a reference in tests.
func mulNoTable(a, b Element) Element {
	x := byte(a)
	y := byte(b)

	var product uint8
	for i := 7; i >= 0; i-- {
		// if MSB in current product is set, mod is the reduction, else 0
		mod := (-(product >> 7)) & reduction
		// multiply coefficient x[i] with every coefficient in y
		xiTimesY := -((x >> i) & 1) & y
		product = xiTimesY ^ mod ^ (product << 1)
	}
	return Element(product)
}

// Add returns e + a. Addition in GF(2^8) is XOR.
func (e Element) Add(a Element) Element {
	return e ^ a
}

// Sub returns e - a, which in characteristic 2 is the same as Add.
func (e Element) Sub(a Element) Element {
	return e ^ a
}

// Mul returns e * a.
func (e Element) Mul(a Element) Element {
	if e == 0 || a == 0 {
		return 0
	}
	return tbl.exp[int(tbl.log[e])+int(tbl.log[a])]
}

// Inverse returns the multiplicative inverse of e.
// The zero element has no inverse and yields ErrDivisionByZero.
func (e Element) Inverse() (Element, error) {
	if e == 0 {
		return 0, ErrDivisionByZero
	}
	return tbl.exp[constants.FieldOrder-int(tbl.log[e])], nil
}

// Div returns e / a.
func (e Element) Div(a Element) (Element, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	if e == 0 {
		return 0, nil
	}
	return tbl.exp[int(tbl.log[e])+constants.FieldOrder-int(tbl.log[a])], nil
}

// Exp returns the generator raised to the power i.
func Exp(i int) Element {
	i %= constants.FieldOrder
	if i < 0 {
		i += constants.FieldOrder
	}
	return tbl.exp[i]
}
