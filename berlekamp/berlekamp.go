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

// Package berlekamp factorizes univariate polynomials over a galois.Field
// into their monic irreducible factors with multiplicities, via
// Berlekamp's algorithm: square-free reduction by repeated
// gcd(f, f'), p-th-power root extraction for inseparable polynomials, and
// splitting of a square-free polynomial via the kernel of the Frobenius-
// minus-identity map on F[x]/(h).
//
// Grounded on experiments/experiment_2/berlekamp.hpp from the original
// source (FactorizeImpl, FieldBaseRoot, BuildMatrix, PerformGaussElimination,
// FindFactorizingBasis and the split loop of DistinctDegreeFactorize),
// adapted to operate directly on the whole square-free polynomial rather
// than experiment_2's additional distinct-degree pre-split stage: that
// stage is an optimisation the factorization contract does not require,
// so it is left out in favour of the simpler single-matrix approach.
package berlekamp

import (
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/andy-823/polynomial-factorization/diagnostics"
	"github.com/andy-823/polynomial-factorization/galois"
	"github.com/andy-823/polynomial-factorization/internal/mathutil"
	"github.com/andy-823/polynomial-factorization/poly"
)

// Factor is a monic irreducible polynomial together with the positive
// multiplicity it occurs with in some factorization.
type Factor struct {
	Polynomial   *poly.Polynomial
	Multiplicity uint32
}

// Factorizer factorizes polynomials over a fixed field. The zero value is
// not usable; construct with New.
//
// A *Factorizer is used by at most one goroutine at a time: Factorize
// resets and updates the action counts stored on the Factorizer (and the
// diagnostics.Counters it is bound to, if any). Run parallel
// factorizations on separate Factorizer values. Use Track to get a private
// copy that accumulates field operation counts into a caller-owned
// diagnostics.Counters; Track itself leaves the original untouched.
type Factorizer struct {
	field *galois.Field

	counters        *diagnostics.Counters
	gaussActions    uint64
	divisionActions uint64
	perfLog         bool
}

// New returns a Factorizer over f.
func New(f *galois.Field) *Factorizer {
	return &Factorizer{field: f}
}

// Track returns a copy of z whose field operations are counted into c.
// The original z is left untouched.
func (z *Factorizer) Track(c *diagnostics.Counters) *Factorizer {
	clone := *z
	clone.counters = c

	return &clone
}

// TrackPerf returns a copy of z that logs a diagnostics.PerfStats snapshot
// (wall time, allocation and GC delta, plus the field operations performed)
// at debug level after every Factorize call. If z was not already bound to
// a diagnostics.Counters via Track, the clone gets a private one of its
// own, so the logged snapshot always has operation counts to report. The
// original z is left untouched.
func (z *Factorizer) TrackPerf() *Factorizer {
	clone := *z
	clone.perfLog = true

	if clone.counters == nil {
		clone.counters = &diagnostics.Counters{}
	}

	return &clone
}

// GaussActions returns the number of field operations spent finding the
// factorizing basis (building the (Q - I)^T matrix, Gauss elimination and
// reading off the kernel basis) during the most recent Factorize call.
// It is always zero unless z is bound to a diagnostics.Counters via Track
// or TrackPerf.
func (z *Factorizer) GaussActions() uint64 { return z.gaussActions }

// DivisionActions returns the number of field operations spent in the
// gcd-peeling factor-extraction loop during the most recent Factorize
// call. It is always zero unless z is bound to a diagnostics.Counters via
// Track or TrackPerf.
func (z *Factorizer) DivisionActions() uint64 { return z.divisionActions }

// TotalActions returns the total number of field operations performed
// during the most recent Factorize call, across every stage (square-free
// reduction, p-th-root extraction, Gauss elimination and gcd-peeling
// alike), not just the two stages GaussActions/DivisionActions break out.
// It is always zero unless z is bound to a diagnostics.Counters via Track
// or TrackPerf.
func (z *Factorizer) TotalActions() uint64 { return z.counters.Total() }

// Factorize returns the monic irreducible factors of u with their
// multiplicities. u's own field is ignored in favour of z's (including
// any diagnostics binding from Track); the caller is expected to have
// built u over the same field z was constructed with.
func (z *Factorizer) Factorize(u *poly.Polynomial) []Factor {
	z.gaussActions, z.divisionActions = 0, 0
	z.counters.Reset()

	if z.perfLog {
		stats := diagnostics.NewPerfStats(z.counters)
		defer func() {
			stats.Log("berlekamp: factorize")
			log.Debugf("berlekamp: factorize phase breakdown: %d gauss-elimination operations, %d gcd-peeling operations",
				z.gaussActions, z.divisionActions)
		}()
	}

	if u.IsZero() || u.IsOne() {
		return nil
	}

	tracked := z.field.Track(z.counters)

	monic := poly.New(tracked, u.Coefficients()).Monic()

	before := z.counters.Total()
	result := z.recurse(tracked, monic)

	for i := range result {
		result[i].Polynomial = poly.New(tracked, result[i].Polynomial.Coefficients())
	}

	log.Debugf("berlekamp: factorized degree %d polynomial into %d distinct factors using %d field operations",
		monic.Degree(), len(result), z.counters.Total()-before)

	return result
}

func (z *Factorizer) recurse(field *galois.Field, poly0 *poly.Polynomial) []Factor {
	var result []Factor

	current := poly0
	for !current.IsOne() {
		derivative := current.Derivative()

		if derivative.IsZero() {
			root := pthRoot(field, current)
			sub := z.recurse(field, root)
			p := field.Base()

			for _, fac := range sub {
				result = mergeFactor(result, fac.Polynomial, fac.Multiplicity*p)
			}

			return result
		}

		d := poly.Gcd(current, derivative)
		squareFree := current.Div(d)

		log.Debugf("berlekamp: square-free reduction step: degree %d -> square-free part degree %d, gcd(f,f') degree %d",
			current.Degree(), squareFree.Degree(), d.Degree())

		for _, irreducible := range z.splitSquareFree(field, squareFree) {
			result = mergeFactor(result, irreducible, 1)
		}

		current = d
	}

	return result
}

func mergeFactor(factors []Factor, p *poly.Polynomial, mult uint32) []Factor {
	for i := range factors {
		if factors[i].Polynomial.Equal(p) {
			factors[i].Multiplicity += mult
			return factors
		}
	}

	return append(factors, Factor{Polynomial: p, Multiplicity: mult})
}

// pthRoot returns g such that g(x)^p = f(x), given that f' = 0 (so f is a
// p-th power, every nonzero monomial of f has an index divisible by p).
// b[j] = a[p*j]^(p^(k-1)), the unique y with y^p = a[p*j] in GF(p^k).
func pthRoot(field *galois.Field, f *poly.Polynomial) *poly.Polynomial {
	p := field.Base()
	coeffs := f.Coefficients()

	rootPower := uint64(mathutil.Pow(p, field.Degree()-1))

	n := (len(coeffs) + int(p) - 1) / int(p)
	result := make([]galois.Element, n)

	for j := 0; j < n; j++ {
		idx := j * int(p)
		if idx < len(coeffs) {
			result[j] = field.Pow(coeffs[idx], rootPower)
		}

		for skip := idx + 1; skip < idx+int(p) && skip < len(coeffs); skip++ {
			if coeffs[skip] != field.Zero() {
				panic("berlekamp: p-th root extraction called on a polynomial whose derivative is not actually zero")
			}
		}
	}

	return poly.New(field, result)
}

// splitSquareFree returns the distinct monic irreducible factors of a
// monic square-free polynomial h, via the Berlekamp subalgebra basis of
// F[x]/(h).
func (z *Factorizer) splitSquareFree(field *galois.Field, h *poly.Polynomial) []*poly.Polynomial {
	if h.Degree() == 1 {
		return []*poly.Polynomial{h}
	}

	before := z.counters.Total()
	basis := z.findFactorizingBasis(field, h)
	z.gaussActions += z.counters.Total() - before

	if len(basis) == 1 {
		return []*poly.Polynomial{h}
	}

	factors := []*poly.Polynomial{h}
	newFactors := make([]*poly.Polynomial, 0, len(basis))

	before = z.counters.Total()

outer:
	for _, g := range basis {
		if g.IsConstant() {
			continue
		}

		newFactors = newFactors[:0]

		for _, t := range factors {
			for _, c := range field.All() {
				candidate := poly.Gcd(t, g.SubElement(c))
				if !candidate.IsOne() {
					newFactors = append(newFactors, candidate)
				}

				if len(newFactors) == len(basis) {
					factors, newFactors = newFactors, factors[:0]
					break outer
				}
			}
		}

		factors, newFactors = newFactors, factors[:0]
	}

	z.divisionActions += z.counters.Total() - before

	return factors
}

// findFactorizingBasis returns a basis of the kernel of L - I, where L is
// the F-linear map y -> y^q on F[x]/(h). A basis of size 1 means h is
// irreducible.
func (z *Factorizer) findFactorizingBasis(field *galois.Field, h *poly.Polynomial) []*poly.Polynomial {
	n := h.Degree()
	matrix := buildQMinusIMatrixTransposed(field, h, n)

	rank, pivotColumn, pivotSet := performGaussElimination(field, matrix, n)
	matrix = matrix[:rank]

	basis := make([]*poly.Polynomial, 0, n-rank)

	for column := 0; column < n; column++ {
		if pivotSet.Test(uint(column)) {
			continue
		}

		vec := make([]galois.Element, n)
		vec[column] = field.One()

		for row := 0; row < rank; row++ {
			vec[pivotColumn[row]] = field.Neg(matrix[row][column])
		}

		basis = append(basis, poly.New(field, vec))
	}

	return basis
}

// buildQMinusIMatrixTransposed returns (Q - I)^T where Q is the n x n
// matrix of the Frobenius-power map y -> y^q on F[x]/(h), expressed in
// the basis 1, x, ..., x^(n-1): row i of Q is x^(i*q) mod h. Rows are
// built iteratively from b = x^q mod h, computed once.
func buildQMinusIMatrixTransposed(field *galois.Field, h *poly.Polynomial, n int) [][]galois.Element {
	q := field.Size()

	xq := make([]galois.Element, int(q)+1)
	xq[q] = field.One()
	base := poly.New(field, xq).Mod(h)

	qRows := make([][]galois.Element, n)
	current := poly.One(field)

	for power := 0; power < n; power++ {
		row := make([]galois.Element, n)
		copy(row, current.Coefficients())
		qRows[power] = row

		current = current.Mul(base).Mod(h)
	}

	m := make([][]galois.Element, n)
	for i := 0; i < n; i++ {
		m[i] = make([]galois.Element, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m[i][j] = qRows[j][i]
		}

		m[i][i] = field.Sub(m[i][i], field.One())
	}

	return m
}

// performGaussElimination row-reduces m to reduced row-echelon form
// in place, returning the resulting rank, the pivot column of each
// surviving row (by row index, 0..rank-1), and a bitset marking every
// pivot column.
func performGaussElimination(field *galois.Field, m [][]galois.Element, n int) (int, []int, *bitset.BitSet) {
	pivotColumn := make([]int, 0, n)
	pivotSet := bitset.New(uint(n))

	rank := 0
	for column := 0; column < n; column++ {
		nextRow := rank
		for nextRow < n && m[nextRow][column] == field.Zero() {
			nextRow++
		}

		if nextRow == n {
			continue
		}

		m[rank], m[nextRow] = m[nextRow], m[rank]

		inv := field.Inv(m[rank][column])
		for i := column; i < n; i++ {
			m[rank][i] = field.Mul(m[rank][i], inv)
		}

		for other := 0; other < n; other++ {
			if other == rank || m[other][column] == field.Zero() {
				continue
			}

			coefficient := m[other][column]
			m[other][column] = field.Zero()

			for i := column + 1; i < n; i++ {
				m[other][i] = field.Sub(m[other][i], field.Mul(m[rank][i], coefficient))
			}
		}

		pivotColumn = append(pivotColumn, column)
		pivotSet.Set(uint(column))
		rank++
	}

	return rank, pivotColumn, pivotSet
}
