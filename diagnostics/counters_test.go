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
package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters_NilIsZeroCost(t *testing.T) {
	var c *Counters
	// A nil *Counters must tolerate every call and always report zero.
	c.Add()
	c.Mul()
	c.Reset()
	assert.Equal(t, uint64(0), c.Total())
}

func TestCounters_TracksEachOperation(t *testing.T) {
	c := &Counters{}
	c.Add()
	c.Add()
	c.Sub()
	c.Neg()
	c.Mul()
	c.Div()
	c.Inv()
	c.Pow()

	assert.Equal(t, uint64(2), c.AddCount)
	assert.Equal(t, uint64(1), c.SubCount)
	assert.Equal(t, uint64(1), c.NegCount)
	assert.Equal(t, uint64(1), c.MulCount)
	assert.Equal(t, uint64(1), c.DivCount)
	assert.Equal(t, uint64(1), c.InvCount)
	assert.Equal(t, uint64(1), c.PowCount)
	assert.Equal(t, uint64(8), c.Total())
}

func TestCounters_Reset(t *testing.T) {
	c := &Counters{}
	c.Add()
	c.Mul()
	c.Reset()
	assert.Equal(t, uint64(0), c.Total())
}
