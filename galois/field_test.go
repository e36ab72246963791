// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy-823/polynomial-factorization/diagnostics"
)

// GF(8) with m(x) = 1 + x + x^3 (coefficients low power first).
func gf8() *Field {
	return NewField(2, 3, []uint32{1, 1, 0, 1})
}

// GF(9) with m(x) = 2 + 2x + x^2.
func gf9() *Field {
	return NewField(3, 2, []uint32{2, 2, 1})
}

func TestNewField_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { NewField(1, 2, []uint32{1, 0, 1}) })
	assert.Panics(t, func() { NewField(2, 0, []uint32{1}) })
	assert.Panics(t, func() { NewField(2, 2, []uint32{1, 0}) })
	assert.Panics(t, func() { NewField(2, 2, []uint32{1, 0, 0}) })
}

func TestField_Size(t *testing.T) {
	f := gf8()
	assert.Equal(t, uint32(2), f.Base())
	assert.Equal(t, uint32(3), f.Degree())
	assert.Equal(t, uint32(8), f.Size())
	assert.Len(t, f.All(), 8)
}

func TestField_AdditiveGroupAxioms(t *testing.T) {
	f := gf8()
	for _, a := range f.All() {
		assert.Equal(t, a, f.Add(a, f.Zero()))
		assert.Equal(t, f.Zero(), f.Add(a, f.Neg(a)))

		for _, b := range f.All() {
			assert.Equal(t, f.Add(a, b), f.Add(b, a))
			assert.Equal(t, a, f.Add(f.Sub(a, b), b))
		}
	}
}

func TestField_MultiplicativeGroupAxioms(t *testing.T) {
	f := gf9()
	for _, a := range f.All() {
		assert.Equal(t, a, f.Mul(a, f.One()))

		if a == f.Zero() {
			continue
		}

		assert.Equal(t, f.One(), f.Mul(a, f.Inv(a)))

		for _, b := range f.All() {
			assert.Equal(t, f.Mul(a, b), f.Mul(b, a))

			if b != f.Zero() {
				assert.Equal(t, a, f.Mul(f.Div(a, b), b))
			}
		}
	}
}

func TestField_DivAndInvPanicOnZero(t *testing.T) {
	f := gf8()
	assert.Panics(t, func() { f.Inv(f.Zero()) })
	assert.Panics(t, func() { f.Div(f.One(), f.Zero()) })
}

func TestField_Pow(t *testing.T) {
	f := gf9()
	for _, a := range f.All() {
		if a == f.Zero() {
			assert.Equal(t, f.One(), f.Pow(a, 0))
			assert.Equal(t, f.Zero(), f.Pow(a, 1))

			continue
		}

		assert.Equal(t, f.One(), f.Pow(a, 0))
		assert.Equal(t, a, f.Pow(a, 1))

		want := f.One()
		for e := uint64(0); e < 9; e++ {
			assert.Equal(t, want, f.Pow(a, e))
			want = f.Mul(want, a)
		}
	}
}

// GF(9), m(x) = 2 + 2x + x^2, so x^2 = x + 1 (x^2 + 2x + 2 = 0 mod 3).
// Element "x" is encoded as the coefficient vector (0, 1) => 0 + 1*3 = 3.
// "x + 1" is (1, 1) => 1 + 1*3 = 4. "2" is (2, 0) => 2. "1" is (1, 0) => 1.
func TestField_GF9_MultiplicationAndNegation(t *testing.T) {
	f := gf9()

	x := Element(3)
	xPlus1 := Element(4)
	one := f.One()
	two := Element(2)

	require.Equal(t, xPlus1, f.Mul(x, x))
	require.Equal(t, two, f.Neg(one))
}

func TestField_Track_DoesNotMutateShared(t *testing.T) {
	f := gf8()
	c := &diagnostics.Counters{}
	tracked := f.Track(c)

	tracked.Add(f.One(), f.One())
	tracked.Mul(f.One(), f.One())

	assert.Equal(t, uint64(1), c.AddCount)
	assert.Equal(t, uint64(1), c.MulCount)
	assert.Nil(t, f.counters)

	f.Add(f.One(), f.One())
	assert.Equal(t, uint64(1), c.AddCount)
}
