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

// Package polynomial implements the polynomial operations over GF(2^8) that
// shamir secret sharing is built on: drawing a random polynomial with a fixed
// constant term, evaluating it, and recovering the constant term again with
// Lagrange interpolation.
package polynomial

import (
	"fmt"
	"io"

	"github.com/GoogleCloudPlatform/secretsharing/internal/field/gf8"
)

// Random fills dst with the coefficients of a polynomial of degree len(dst)-1
// whose constant term is intercept. dst[1:] are read from rand and are
// uniformly distributed over the whole field, zero included.
func Random(rand io.Reader, intercept gf8.Element, dst []gf8.Element) error {
	if len(dst) == 0 {
		return fmt.Errorf("polynomial must have at least one coefficient")
	}
	dst[0] = intercept
	if len(dst) == 1 {
		return nil
	}
	buf := make([]byte, len(dst)-1)
	defer clear(buf)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return fmt.Errorf("failed to read random coefficients: %w", err)
	}
	for i, b := range buf {
		dst[i+1] = gf8.Element(b)
	}
	return nil
}

// Evaluate evaluates a polynomial at `x` where `coefficients` take the form:
// f(x) = c[n-1] * x^(n-1) + c[n-2] * x^(n-2) + ... + c[1] * x^1 + c[0]
// using Horner's method.
func Evaluate(coefficients []gf8.Element, x gf8.Element) gf8.Element {
	var sum gf8.Element
	for i := len(coefficients) - 1; i > 0; i-- {
		sum = sum.Add(coefficients[i]).Mul(x)
	}
	if len(coefficients) > 0 {
		sum = sum.Add(coefficients[0])
	}
	return sum
}

// LagrangeBasisAtZero returns the Lagrange basis polynomials for the
// abscissae xs, evaluated at zero:
// l[i] = ∏j={1,n,j≠i} ( x[j] / ( x[j] - x[i] ) )
// Repeated abscissae make a denominator zero and yield gf8.ErrDivisionByZero.
func LagrangeBasisAtZero(xs []gf8.Element) ([]gf8.Element, error) {
	out := make([]gf8.Element, len(xs))
	for i := range xs {
		num, den := gf8.Element(1), gf8.Element(1)
		for j := range xs {
			if i == j {
				continue
			}
			num = num.Mul(xs[j])
			den = den.Mul(xs[j].Sub(xs[i]))
		}
		l, err := num.Div(den)
		if err != nil {
			return nil, fmt.Errorf("abscissa %d is repeated: %w", xs[i], err)
		}
		out[i] = l
	}
	return out, nil
}

// Interpolate recovers f(0) from the ordinates ys, given the Lagrange basis
// computed for their abscissae:
// ∑i={1,n} y[i] * basis[i]
func Interpolate(basis, ys []gf8.Element) (gf8.Element, error) {
	if len(basis) != len(ys) {
		return 0, fmt.Errorf("got %d ordinates for %d basis polynomials", len(ys), len(basis))
	}
	var sum gf8.Element
	for i, y := range ys {
		sum = sum.Add(y.Mul(basis[i]))
	}
	return sum, nil
}
