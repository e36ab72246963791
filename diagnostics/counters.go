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

// Package diagnostics provides optional, per-instance instrumentation for
// the field and factorizer packages: operation counters for empirical
// experiments, and a small allocation/GC snapshot for benchmarking.
//
// Nothing in this package is required to use the core; a nil *Counters is
// always a valid, zero-cost "don't count" value.
package diagnostics

// Counters tracks how many times each field-level operation has been
// performed. A Counters value holds no global or shared state: each
// galois.Field.Track call binds one to a private copy of a field, so
// parallel factorizations never contend on the same counters.
//
// Grounded on experiments/experiment_2/counting_field_element.hpp's
// CountingFieldElement, which counts every +=, -=, *=, /=, Inverse and Pow
// behind a single thread_local counter. Here the counter is split per
// operation instead of collapsed into one, since the Berlekamp factorizer
// additionally wants the Gauss-elimination and gcd-peeling phases counted
// separately (see GaussActions/DivisionActions on berlekamp.Factorizer).
type Counters struct {
	AddCount uint64
	SubCount uint64
	NegCount uint64
	MulCount uint64
	DivCount uint64
	InvCount uint64
	PowCount uint64
}

// Add records one field addition.
func (c *Counters) Add() {
	if c != nil {
		c.AddCount++
	}
}

// Sub records one field subtraction.
func (c *Counters) Sub() {
	if c != nil {
		c.SubCount++
	}
}

// Neg records one field negation.
func (c *Counters) Neg() {
	if c != nil {
		c.NegCount++
	}
}

// Mul records one field multiplication.
func (c *Counters) Mul() {
	if c != nil {
		c.MulCount++
	}
}

// Div records one field division.
func (c *Counters) Div() {
	if c != nil {
		c.DivCount++
	}
}

// Inv records one field inversion.
func (c *Counters) Inv() {
	if c != nil {
		c.InvCount++
	}
}

// Pow records one field exponentiation.
func (c *Counters) Pow() {
	if c != nil {
		c.PowCount++
	}
}

// Reset zeroes every counter, so a single Counters value can be reused
// across multiple Factorize calls without leaking counts between them.
func (c *Counters) Reset() {
	if c == nil {
		return
	}

	*c = Counters{}
}

// Total returns the sum of every counter, matching the original's
// GetTotalActions.
func (c *Counters) Total() uint64 {
	if c == nil {
		return 0
	}

	return c.AddCount + c.SubCount + c.NegCount + c.MulCount + c.DivCount + c.InvCount + c.PowCount
}
