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

package gf8_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/GoogleCloudPlatform/secretsharing/internal/field/gf8"
	"github.com/google/go-cmp/cmp"
	"github.com/google/tink/go/subtle/random"
)

func TestAddition(t *testing.T) {
	for range 10 {
		elems := random.GetRandomBytes(2)
		a, b := gf8.Element(elems[0]), gf8.Element(elems[1])

		if got, want := a.Add(b), gf8.Element(elems[0]^elems[1]); got != want {
			t.Fatalf("a(%d) + b(%d), got = %d, want = %d", a, b, got, want)
		}
		if got, want := a.Sub(b), a.Add(b); got != want {
			t.Errorf("a(%d) - b(%d), got = %d, want = %d", a, b, got, want)
		}
	}
}

func TestMultiplication(t *testing.T) {
	for _, tc := range []struct {
		a    gf8.Element
		b    gf8.Element
		want gf8.Element
	}{
		// AES finite field examples:
		// https://en.wikipedia.org/wiki/Finite_field_arithmetic#Rijndael's_(AES)_finite_field
		{a: 0x53, b: 0xCA, want: 0x01},
		{a: 0x02, b: 0x87, want: 0x15},
		{a: 0x03, b: 0x6E, want: 0xB2},
		{a: 161, b: 56, want: 102},
		{a: 51, b: 82, want: 15},
		{a: 15, b: 30, want: 170},
		{a: 105, b: 27, want: 20},
		{a: 178, b: 160, want: 67},
		{a: 244, b: 118, want: 55},
		{a: 250, b: 221, want: 160},
		{a: 244, b: 34, want: 90},
		{a: 0, b: 34, want: 0},
		{a: 34, b: 0, want: 0},
		{a: 1, b: 199, want: 199},
	} {
		t.Run(fmt.Sprintf("%d * %d", tc.a, tc.b), func(t *testing.T) {
			if got := tc.a.Mul(tc.b); got != tc.want {
				t.Errorf("a(%d) * b(%d), got = %d, want = %d", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Mul(tc.a); got != tc.want {
				t.Errorf("b(%d) * a(%d), got = %d, want = %d", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestMultiplicationMatchesBitLevelProduct(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			x, y := gf8.Element(a), gf8.Element(b)
			if got, want := x.Mul(y), gf8.MulNoTable(x, y); got != want {
				t.Fatalf("%d * %d, got = %d, want = %d", a, b, got, want)
			}
		}
	}
}

func TestMultiplicationDistributesOverAddition(t *testing.T) {
	for range 100 {
		r := random.GetRandomBytes(3)
		a, b, c := gf8.Element(r[0]), gf8.Element(r[1]), gf8.Element(r[2])
		if got, want := a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)); got != want {
			t.Fatalf("%d * (%d + %d), got = %d, want = %d", a, b, c, got, want)
		}
	}
}

func TestInverse(t *testing.T) {
	for _, tc := range []struct {
		a    gf8.Element
		want gf8.Element
	}{
		{a: 0x53, want: 0xCA},
		{a: 1, want: 1},
		{a: 29, want: 64},
		{a: 180, want: 17},
		{a: 249, want: 156},
		{a: 186, want: 118},
		{a: 209, want: 7},
		{a: 233, want: 78},
		{a: 242, want: 56},
	} {
		t.Run(fmt.Sprintf("inverse(%d)", tc.a), func(t *testing.T) {
			got, err := tc.a.Inverse()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("inverse(%d), got = %d, want = %d", tc.a, got, tc.want)
			}
		})
	}
}

func TestEveryNonZeroElementHasInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		e := gf8.Element(a)
		inv, err := e.Inverse()
		if err != nil {
			t.Fatalf("Inverse(%d) err = %v, want nil", a, err)
		}
		if got := e.Mul(inv); got != 1 {
			t.Errorf("%d * inverse(%d) = %d, want 1", a, a, got)
		}
	}
}

func TestZeroInverseFails(t *testing.T) {
	if _, err := gf8.Element(0).Inverse(); !errors.Is(err, gf8.ErrDivisionByZero) {
		t.Fatalf("Inverse(0) err = %v, want %v", err, gf8.ErrDivisionByZero)
	}
}

func TestDivision(t *testing.T) {
	for a := range 256 {
		for b := 1; b < 256; b++ {
			x, y := gf8.Element(a), gf8.Element(b)
			q, err := x.Div(y)
			if err != nil {
				t.Fatalf("%d / %d err = %v, want nil", a, b, err)
			}
			if got := q.Mul(y); got != x {
				t.Fatalf("(%d / %d) * %d = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	for _, a := range []gf8.Element{0, 1, 0x53, 0xFF} {
		if _, err := a.Div(0); !errors.Is(err, gf8.ErrDivisionByZero) {
			t.Errorf("%d / 0 err = %v, want %v", a, err, gf8.ErrDivisionByZero)
		}
	}
}

func TestExpCyclesThroughMultiplicativeGroup(t *testing.T) {
	seen := make(map[gf8.Element]bool)
	for i := range 255 {
		seen[gf8.Exp(i)] = true
	}
	if len(seen) != 255 || seen[0] {
		t.Fatalf("generator powers cover %d elements (zero included: %v), want 255 nonzero", len(seen), seen[0])
	}
	if diff := cmp.Diff(gf8.Exp(0), gf8.Exp(255)); diff != "" {
		t.Errorf("Exp(255) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(gf8.Exp(254), gf8.Exp(-1)); diff != "" {
		t.Errorf("Exp(-1) mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := 1; a < 256; a++ {
				inv, err := gf8.Element(a).Inverse()
				if err != nil {
					errs <- err
					return
				}
				if gf8.Element(a).Mul(inv) != 1 {
					errs <- fmt.Errorf("%d * inverse(%d) != 1", a, a)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
