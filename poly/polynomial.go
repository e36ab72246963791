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

// Package poly implements univariate polynomials over a galois.Field: the
// ring operations, Euclidean division, formal derivative, monic
// normalisation and gcd that the factorizer package builds on.
//
// Grounded on factorization/polynomial/simple_polynomial.hpp from the
// original source, translated from a mutating, operator-overloaded C++
// class into Go's usual value-returning style: every method returns a new
// *Polynomial rather than mutating its receiver, matching how
// galois.Field's arithmetic methods already behave.
package poly

import (
	"fmt"

	"github.com/andy-823/polynomial-factorization/galois"
)

// Polynomial is a univariate polynomial over some galois.Field, stored as
// coefficients from the constant term up with no trailing zeros: the
// leading coefficient (the last entry) is always nonzero. A nil or empty
// coefficient slice denotes the zero polynomial.
//
// A *Polynomial is never mutated after construction; every operation
// returns a new one. Two polynomials built from the same field and the
// same trimmed coefficients are interchangeable.
type Polynomial struct {
	field  *galois.Field
	coeffs []galois.Element
}

// New constructs a polynomial over f from coefficients ordered low power
// first, trimming any trailing zeros. The returned value does not alias
// coeffs.
func New(f *galois.Field, coeffs []galois.Element) *Polynomial {
	trimmed := trim(f, append([]galois.Element(nil), coeffs...))
	return &Polynomial{field: f, coeffs: trimmed}
}

// Zero returns the zero polynomial over f.
func Zero(f *galois.Field) *Polynomial {
	return &Polynomial{field: f}
}

// One returns the constant polynomial 1 over f.
func One(f *galois.Field) *Polynomial {
	return &Polynomial{field: f, coeffs: []galois.Element{f.One()}}
}

// FromElement returns the constant polynomial with value e.
func FromElement(f *galois.Field, e galois.Element) *Polynomial {
	return New(f, []galois.Element{e})
}

// X returns the polynomial "x" over f.
func X(f *galois.Field) *Polynomial {
	return New(f, []galois.Element{f.Zero(), f.One()})
}

func trim(f *galois.Field, coeffs []galois.Element) []galois.Element {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == f.Zero() {
		n--
	}

	return coeffs[:n]
}

// Field returns the field this polynomial's coefficients live in.
func (p *Polynomial) Field() *galois.Field {
	return p.field
}

// Size returns the number of coefficients (degree+1 for a nonzero
// polynomial, 0 for the zero polynomial).
func (p *Polynomial) Size() int {
	return len(p.coeffs)
}

// Degree returns the polynomial's degree. Calling Degree on the zero
// polynomial is a caller-contract violation and panics, since the zero
// polynomial has no degree.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		panic("poly: degree of the zero polynomial is undefined")
	}

	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne reports whether p is the constant polynomial 1.
func (p *Polynomial) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == p.field.One()
}

// IsConstant reports whether p has degree <= 0.
func (p *Polynomial) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// Coefficients returns a copy of p's coefficients, low power first.
func (p *Polynomial) Coefficients() []galois.Element {
	return append([]galois.Element(nil), p.coeffs...)
}

// At returns the coefficient of x^i, or zero if i is beyond the degree.
func (p *Polynomial) At(i int) galois.Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.field.Zero()
	}

	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest power present.
// Panics on the zero polynomial.
func (p *Polynomial) LeadingCoefficient() galois.Element {
	if p.IsZero() {
		panic("poly: leading coefficient of the zero polynomial is undefined")
	}

	return p.coeffs[len(p.coeffs)-1]
}

// Equal reports whether p and q denote the same polynomial.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

// Compare gives a total order on polynomials for use as an associative
// container key: shorter sorts before longer, and equal-length
// polynomials compare coefficient-wise from the constant term upward.
// This ordering carries no arithmetic meaning.
func (p *Polynomial) Compare(q *Polynomial) int {
	if len(p.coeffs) != len(q.coeffs) {
		if len(p.coeffs) < len(q.coeffs) {
			return -1
		}

		return 1
	}

	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			if p.coeffs[i] < q.coeffs[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	return fmt.Sprintf("%v", p.coeffs)
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	f := p.field
	n := max(len(p.coeffs), len(q.coeffs))
	result := make([]galois.Element, n)

	for i := 0; i < n; i++ {
		result[i] = f.Add(p.At(i), q.At(i))
	}

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// AddElement returns p + e, where e is added to the constant term.
func (p *Polynomial) AddElement(e galois.Element) *Polynomial {
	f := p.field
	n := max(len(p.coeffs), 1)
	result := make([]galois.Element, n)
	copy(result, p.coeffs)
	result[0] = f.Add(result[0], e)

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	f := p.field
	n := max(len(p.coeffs), len(q.coeffs))
	result := make([]galois.Element, n)

	for i := 0; i < n; i++ {
		result[i] = f.Sub(p.At(i), q.At(i))
	}

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// SubElement returns p - e.
func (p *Polynomial) SubElement(e galois.Element) *Polynomial {
	f := p.field
	n := max(len(p.coeffs), 1)
	result := make([]galois.Element, n)
	copy(result, p.coeffs)
	result[0] = f.Sub(result[0], e)

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	f := p.field
	result := make([]galois.Element, len(p.coeffs))

	for i, c := range p.coeffs {
		result[i] = f.Neg(c)
	}

	return &Polynomial{field: f, coeffs: result}
}

// Mul returns p * q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	f := p.field

	if p.IsZero() || q.IsZero() {
		return Zero(f)
	}

	if q.IsConstant() {
		return p.MulElement(q.At(0))
	}

	if p.IsConstant() {
		return q.MulElement(p.At(0))
	}

	n := len(p.coeffs) + len(q.coeffs) - 1
	result := make([]galois.Element, n)

	for i, a := range p.coeffs {
		if a == f.Zero() {
			continue
		}

		for j, b := range q.coeffs {
			result[i+j] = f.Add(result[i+j], f.Mul(a, b))
		}
	}

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// MulElement returns p * e.
func (p *Polynomial) MulElement(e galois.Element) *Polynomial {
	f := p.field

	if e == f.Zero() {
		return Zero(f)
	}

	result := make([]galois.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		result[i] = f.Mul(c, e)
	}

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// DivElement returns p / e. Panics if e is zero.
func (p *Polynomial) DivElement(e galois.Element) *Polynomial {
	return p.MulElement(p.field.Inv(e))
}

// QuoRem returns the quotient and remainder of Euclidean division of p by
// q: p = quo*q + rem with rem.Degree() < q.Degree() (or rem zero). Panics
// if q is the zero polynomial.
func (p *Polynomial) QuoRem(q *Polynomial) (quo, rem *Polynomial) {
	f := p.field

	if q.IsZero() {
		panic("poly: division by the zero polynomial")
	}

	if len(p.coeffs) < len(q.coeffs) {
		return Zero(f), New(f, p.coeffs)
	}

	if q.IsConstant() {
		return p.DivElement(q.At(0)), Zero(f)
	}

	remainder := append([]galois.Element(nil), p.coeffs...)
	quoSize := len(p.coeffs) - len(q.coeffs) + 1
	quotient := make([]galois.Element, quoSize)

	divisorLead := q.coeffs[len(q.coeffs)-1]
	divisorLeadInv := f.Inv(divisorLead)

	for power := quoSize - 1; power >= 0; power-- {
		top := power + len(q.coeffs) - 1
		coefficient := f.Mul(remainder[top], divisorLeadInv)
		quotient[power] = coefficient

		if coefficient == f.Zero() {
			continue
		}

		for j, d := range q.coeffs {
			remainder[power+j] = f.Sub(remainder[power+j], f.Mul(d, coefficient))
		}
	}

	return &Polynomial{field: f, coeffs: trim(f, quotient)}, &Polynomial{field: f, coeffs: trim(f, remainder)}
}

// Div returns the quotient of Euclidean division of p by q.
func (p *Polynomial) Div(q *Polynomial) *Polynomial {
	quo, _ := p.QuoRem(q)
	return quo
}

// Mod returns the remainder of Euclidean division of p by q.
func (p *Polynomial) Mod(q *Polynomial) *Polynomial {
	_, rem := p.QuoRem(q)
	return rem
}

// Pow returns p^e via square-and-multiply over Mul.
func (p *Polynomial) Pow(e uint64) *Polynomial {
	f := p.field
	result := One(f)
	base := p

	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Mul(base)
		e >>= 1
	}

	return result
}

// Derivative returns the formal derivative of p: D(sum a_i x^i) =
// sum i*a_i x^{i-1}, with the integer i lifted into the field via
// FromSmallInt. In characteristic p the derivative vanishes on every
// monomial whose index is a multiple of p, which is what makes Derivative
// the square-free / inseparability signal the factorizer relies on.
func (p *Polynomial) Derivative() *Polynomial {
	f := p.field

	if len(p.coeffs) <= 1 {
		return Zero(f)
	}

	result := make([]galois.Element, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		result[i-1] = f.Mul(f.FromSmallInt(uint32(i)), p.coeffs[i])
	}

	return &Polynomial{field: f, coeffs: trim(f, result)}
}

// Monic returns p divided by its leading coefficient, so the result has
// leading coefficient 1. Returns p unchanged if p is already monic or
// zero.
func (p *Polynomial) Monic() *Polynomial {
	if p.IsZero() {
		return p
	}

	leading := p.LeadingCoefficient()
	if leading == p.field.One() {
		return p
	}

	return p.DivElement(leading)
}

// Gcd returns the monic greatest common divisor of p and q, via the
// Euclidean algorithm: while b is nonzero, (a, b) <- (b, a mod b), then
// monic-normalise a. Gcd(0, q) is Monic(q); Gcd(0, 0) is the zero
// polynomial.
func Gcd(p, q *Polynomial) *Polynomial {
	a, b := p, q

	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}

	return a.Monic()
}
