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
package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andy-823/polynomial-factorization/galois"
)

func TestGF8_MatchesConstructionFromPrimitivePolynomial(t *testing.T) {
	preset := GF8()
	built := galois.NewField(2, 3, []uint32{1, 1, 0, 1})

	for _, v := range preset.All() {
		assert.Equal(t, built.Mul(v, v), preset.Mul(v, v))
	}
}

func TestGF9_MatchesConstructionFromPrimitivePolynomial(t *testing.T) {
	preset := GF9()
	built := galois.NewField(3, 2, []uint32{2, 2, 1})

	for _, v := range preset.All() {
		assert.Equal(t, built.Mul(v, v), preset.Mul(v, v))
	}
}

func TestGF9_ScenarioVectors(t *testing.T) {
	f := GF9()

	assert.Equal(t, galois.Element(4), f.Mul(galois.Element(3), galois.Element(3)))
	assert.Equal(t, galois.Element(2), f.Neg(galois.Element(1)))
}

func TestGF16_MatchesConstructionFromPrimitivePolynomial(t *testing.T) {
	preset := GF16()
	built := galois.NewField(2, 4, []uint32{1, 1, 0, 0, 1})

	for _, v := range preset.All() {
		assert.Equal(t, built.Mul(v, v), preset.Mul(v, v))
	}
}

func TestGF16_MultiplicativeGroupHasFullOrder(t *testing.T) {
	f := GF16()

	one := f.One()
	x := galois.Element(2) // the base-p positional encoding of "x" itself

	power := one
	for i := 0; i < 14; i++ {
		power = f.Mul(power, x)
		assert.NotEqual(t, one, power, "x^%d should not yet be back to 1", i+1)
	}

	power = f.Mul(power, x)
	assert.Equal(t, one, power, "x^15 should cycle back to 1")
}
