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

// Package galois implements GF(p^k) for small characteristic p and small
// extension degree k, via discrete-log tables built once at construction.
//
// An element is a machine integer encoding of the element's polynomial
// form: for characteristic 2, a k-bit packed bitfield; for odd
// characteristic, a base-p positional encoding of the k coefficients
// (digit i holding the coefficient of x^i, each digit always in [0,p)).
// Either way every integer in [0, q) denotes exactly one field value and
// every field value has exactly one such integer, so equality is plain
// integer equality and enumeration is plain integer counting.
package galois

import (
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/andy-823/polynomial-factorization/diagnostics"
	"github.com/andy-823/polynomial-factorization/internal/mathutil"
)

// Element is a single value of some GF(p^k). Its zero value is the
// additive identity of whichever field it is used with, which is the
// canonical encoding of the zero element regardless of p and k.
type Element uint32

// Field is GF(p^k) for a fixed, small characteristic p and extension
// degree k, with arithmetic backed by discrete-log tables computed once
// at construction. A *Field is safe to share for read across as many
// concurrent factorizers as desired: the tables never change after
// NewField returns.
//
// Grounded on factorization/galois_field/log_based_field.hpp from the
// original source (table construction, the p=2 XOR specialisation) and
// stylistically on smallfield.Field in the teacher (a value type exposing
// Add/Sub/Mul/etc as methods, Element kept distinct from a bare integer).
type Field struct {
	p, k, q uint32
	// logOf[v] is the discrete log e such that x^e = v, for v != 0.
	// logOf[0] is a sentinel never read by Add/Sub/Mul/Div/Inv/Pow.
	logOf []Element
	// powOf[e] = x^e for e in [0, 2(q-1)), duplicated past q-1 so that
	// logOf[a]+logOf[b] never needs reducing modulo q-1 before indexing.
	powOf []Element
	// counters is nil for an ordinary, shared, read-only field. Track
	// returns a private copy with a non-nil counters so a single
	// berlekamp.Factorizer can instrument its own calls without the
	// shared field ever being mutated.
	counters *diagnostics.Counters
}

// fieldCacheEntry guards the one-time construction of a field's tables
// behind a sync.Once, so concurrent callers requesting the same (p, k, m)
// block on the same build instead of racing to build it twice.
type fieldCacheEntry struct {
	once  sync.Once
	field *Field
}

// fieldCache maps a (p, k, m) cache key to its fieldCacheEntry. This is
// the "initialise once at first use" resolution of the field-construction
// question: a process that calls NewField(2, 3, ...) from many goroutines
// pays the table-building cost exactly once.
var fieldCache sync.Map

// NewField constructs GF(p^k) from characteristic p, extension degree k,
// and the k+1 coefficients of a primitive polynomial m(x) of degree k over
// GF(p), low power first, with m's leading coefficient (index k) required
// to be 1. The caller is trusted to supply an m that is actually
// irreducible and primitive (x generates F*); this is not validated, per
// spec — an implementation built from a bad m produces a field that is
// simply not GF(p^k), silently.
//
// NewField panics if p < 2, k == 0, len(m) != k+1, or m[k] != 1: these are
// caller-contract violations (see package-level error handling notes),
// not runtime conditions a correct caller can trigger. Calling NewField
// again with the same p, k and m returns the same cached tables rather
// than rebuilding them.
func NewField(p, k uint32, m []uint32) *Field {
	if p < 2 {
		panic(fmt.Sprintf("galois: characteristic must be >= 2, got %d", p))
	}

	if k < 1 {
		panic(fmt.Sprintf("galois: extension degree must be >= 1, got %d", k))
	}

	if uint32(len(m)) != k+1 {
		panic(fmt.Sprintf("galois: primitive polynomial needs %d coefficients, got %d", k+1, len(m)))
	}

	if m[k] != 1 {
		panic(fmt.Sprintf("galois: primitive polynomial must be monic, m[%d] = %d", k, m[k]))
	}

	key := fieldCacheKey(p, k, m)

	entryAny, _ := fieldCache.LoadOrStore(key, &fieldCacheEntry{})
	entry := entryAny.(*fieldCacheEntry)

	entry.once.Do(func() {
		q := mathutil.Pow(p, k)
		logOf, powOf := buildTables(p, k, q, m)

		log.Debugf("galois: built GF(%d^%d) = GF(%d), %d table entries", p, k, q, len(logOf)+len(powOf))

		entry.field = &Field{p: p, k: k, q: q, logOf: logOf, powOf: powOf}
	})

	return entry.field
}

// NewFieldFromTables constructs a Field directly from already-built
// discrete-log tables, bypassing buildTables entirely. It exists for
// galois/presets, whose tables are checked-in literals rather than
// values computed at call time, and is not cached: a preset already
// pays the "build once" cost at package init, via a sync.Once of its
// own or a plain package-level var.
//
// The caller is trusted to supply logOf/powOf produced by buildTables
// for this exact (p, k): this is not validated, for the same reason
// NewField does not validate that m is primitive.
func NewFieldFromTables(p, k uint32, logOf, powOf []Element) *Field {
	q := mathutil.Pow(p, k)

	if uint32(len(logOf)) != q {
		panic(fmt.Sprintf("galois: logOf must have %d entries, got %d", q, len(logOf)))
	}

	if uint32(len(powOf)) != 2*(q-1) {
		panic(fmt.Sprintf("galois: powOf must have %d entries, got %d", 2*(q-1), len(powOf)))
	}

	return &Field{p: p, k: k, q: q, logOf: logOf, powOf: powOf}
}

func fieldCacheKey(p, k uint32, m []uint32) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d,%d,", p, k)
	for _, c := range m {
		fmt.Fprintf(&b, "%d,", c)
	}

	return b.String()
}

// buildTables runs the construction algorithm of spec §4.1: iterate
// poly <- 1, x*1, x*x, ... for q-1 steps, recording the discrete log of
// each power, then duplicate the power table into [0, 2(q-1)) so sums of
// two logs never need reducing before a lookup.
func buildTables(p, k, q uint32, m []uint32) (logOf, powOf []Element) {
	alpha := q // x^k has positional weight p^k = q

	// generator = -(m(x) - x^k), i.e. the negation of the non-leading part
	// of m, as a base-p positional value built from m[0..k-1].
	var nonLeading uint32

	weight := uint32(1)
	for i := uint32(0); i < k; i++ {
		nonLeading += weight * m[i]
		weight *= p
	}

	generator := negateBaseP(nonLeading, p, k)

	logOf = make([]Element, q)
	logOf[0] = Element(q - 1) // impossible form: log of zero is never read

	powRaw := make([]Element, q-1)
	polynom := uint32(1)

	for power := uint32(0); power < q-1; power++ {
		powRaw[power] = Element(polynom)
		logOf[polynom] = Element(power)

		polynom *= p
		if polynom >= alpha {
			// Add generator once per unit of the overflowing x^k digit, so
			// the scaling stays digit-wise modulo p instead of letting an
			// integer product carry between digits.
			overflow := polynom / alpha
			polynom %= alpha
			for c := uint32(0); c < overflow; c++ {
				polynom = uint32(addBaseP(polynom, generator, p, k))
			}
		}
	}

	powOf = make([]Element, 2*(q-1))
	copy(powOf, powRaw)
	copy(powOf[q-1:], powRaw)

	return logOf, powOf
}

// addBaseP adds two base-p positional values digit by digit, modulo p at
// every digit independently (no carry crosses digit boundaries: this is
// vector addition in (Z/p)^k, packed into an integer for convenience, not
// ordinary integer addition). Works unchanged for p == 2, where it is
// equivalent to XOR; Field.Add uses the XOR fast path there instead.
func addBaseP(a, b, p, k uint32) Element {
	var result uint32

	weight := uint32(1)
	for i := uint32(0); i < k; i++ {
		result += ((a % p) + (b % p)) % p * weight
		a /= p
		b /= p
		weight *= p
	}

	return Element(result)
}

// negateBaseP negates every digit of a base-p positional value modulo p.
func negateBaseP(v, p, k uint32) uint32 {
	var result uint32

	weight := uint32(1)
	for i := uint32(0); i < k; i++ {
		d := v % p
		if d != 0 {
			result += (p - d) * weight
		}

		v /= p
		weight *= p
	}

	return result
}

// Track returns a copy of f bound to the given counters, so every
// arithmetic call made through the returned field increments c. The
// tables are shared (not copied) with f; only the copy's counters pointer
// differs, so f itself is never mutated and remains safe to share. Passing
// a nil c is equivalent to Track never having been called.
func (f *Field) Track(c *diagnostics.Counters) *Field {
	clone := *f
	clone.counters = c

	return &clone
}

// Base returns the field's characteristic p.
func (f *Field) Base() uint32 { return f.p }

// Degree returns the field's extension degree k.
func (f *Field) Degree() uint32 { return f.k }

// Size returns the field's size q = p^k.
func (f *Field) Size() uint32 { return f.q }

// Zero returns the additive identity.
func (f *Field) Zero() Element { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Element { return 1 }

// Equal reports whether a and b denote the same field element. Since
// every element has a unique canonical encoding, this is just integer
// equality; the method exists so callers don't have to know that.
func (f *Field) Equal(a, b Element) bool { return a == b }

// Add returns a + b.
func (f *Field) Add(a, b Element) Element {
	f.counters.Add()

	if f.p == 2 {
		return a ^ b
	}

	return addBaseP(uint32(a), uint32(b), f.p, f.k)
}

// Neg returns -a, the unique element such that a + (-a) = 0. For
// characteristic 2, -a = a.
func (f *Field) Neg(a Element) Element {
	f.counters.Neg()

	if f.p == 2 {
		return a
	}

	return Element(negateBaseP(uint32(a), f.p, f.k))
}

// Sub returns a - b.
func (f *Field) Sub(a, b Element) Element {
	f.counters.Sub()

	if f.p == 2 {
		return a ^ b
	}

	return addBaseP(uint32(a), negateBaseP(uint32(b), f.p, f.k), f.p, f.k)
}

// Mul returns a * b.
func (f *Field) Mul(a, b Element) Element {
	f.counters.Mul()

	if a == 0 || b == 0 {
		return 0
	}

	return f.powOf[f.logOf[a]+f.logOf[b]]
}

// Div returns a / b. Panics if b is zero: the caller must not divide by
// zero, per spec §4.1's error handling contract.
func (f *Field) Div(a, b Element) Element {
	f.counters.Div()

	if b == 0 {
		panic("galois: division by zero")
	}

	if a == 0 {
		return 0
	}

	return f.powOf[Element(f.q-1)+f.logOf[a]-f.logOf[b]]
}

// Inv returns a^-1. Panics if a is zero.
func (f *Field) Inv(a Element) Element {
	f.counters.Inv()

	if a == 0 {
		panic("galois: inverse of zero")
	}

	return f.powOf[Element(f.q-1)-f.logOf[a]]
}

// Pow returns a^e for an integer exponent e >= 0.
func (f *Field) Pow(a Element, e uint64) Element {
	f.counters.Pow()

	if a == 0 {
		if e == 0 {
			return 1
		}

		return 0
	}

	order := uint64(f.q - 1)
	idx := (e % order) * uint64(f.logOf[a]) % order

	return f.powOf[idx]
}

// FromSmallInt returns the canonical image of n mod p as a field constant
// (i.e. the element with coefficient n mod p at x^0 and zero elsewhere).
// Used to lift the integer coefficients appearing in a polynomial
// derivative into the field.
func (f *Field) FromSmallInt(n uint32) Element {
	return Element(n % f.p)
}

// First returns the field's first element in canonical enumeration order.
func (f *Field) First() Element { return 0 }

// Last returns the field's last element in canonical enumeration order.
func (f *Field) Last() Element { return Element(f.q - 1) }

// Next returns the element following v in canonical enumeration order.
// Calling Next(Last()) is undefined, per spec §4.1.
func (f *Field) Next(v Element) Element { return v + 1 }

// All returns every element of the field, in canonical enumeration order.
func (f *Field) All() []Element {
	elems := make([]Element, f.q)
	for v := f.First(); ; v = f.Next(v) {
		elems[v] = v

		if v == f.Last() {
			break
		}
	}

	return elems
}
