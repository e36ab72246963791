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

// Package mathutil provides small numeric helpers shared by the field,
// polynomial and factorizer packages.
package mathutil

// Unsigned is any unsigned integer type. Declared locally rather than
// pulled from golang.org/x/exp/constraints: the teacher's own module
// doesn't depend on x/exp, and a five-type constraint this small doesn't
// earn a new dependency.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pow raises base to exp via square-and-multiply, for any unsigned integer
// type. galois.Field uses it at uint32 to compute field sizes (p^k);
// berlekamp's p-th-root extraction uses it at uint32 too, for p^(k-1).
// Overflow is the caller's responsibility to avoid by keeping the
// arguments small, as the whole point of this module is fields with
// q = p^k of at most a few hundred elements.
func Pow[T Unsigned](base, exp T) T {
	result := T(1)

	for {
		if exp&1 == 1 {
			result *= base
		}

		exp >>= 1
		if exp == 0 {
			break
		}

		base *= base
	}

	return result
}
