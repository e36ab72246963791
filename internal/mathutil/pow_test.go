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
package mathutil

import "testing"

func Test_Pow_Uint32_0(t *testing.T) { checkPow(uint32(0), t) }
func Test_Pow_Uint32_2(t *testing.T) { checkPow(uint32(2), t) }
func Test_Pow_Uint32_3(t *testing.T) { checkPow(uint32(3), t) }
func Test_Pow_Uint32_7(t *testing.T) { checkPow(uint32(7), t) }

func Test_Pow_Uint8_3(t *testing.T)  { checkPow(uint8(3), t) }
func Test_Pow_Uint64_2(t *testing.T) { checkPow(uint64(2), t) }

func checkPow[T Unsigned](base T, t *testing.T) {
	for i := T(0); i < 10; i++ {
		e := bruteForcePow(base, i)
		if x := Pow(base, i); x != e {
			t.Errorf("%d^%d == %d != %d", base, i, x, e)
		}
	}
}

func bruteForcePow[T Unsigned](base, exp T) T {
	acc := T(1)
	for i := T(0); i < exp; i++ {
		acc *= base
	}

	return acc
}
