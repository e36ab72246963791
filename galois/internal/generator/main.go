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

// Package main regenerates galois/presets from a short list of named
// fields. It builds each field's discrete-log tables once, here, at
// generation time, so that galois/presets ends up holding checked-in
// var literals rather than recomputing a table on every process start.
//
// Grounded on field/internal/generator/main.go from the teacher: a list
// of named specs, a bavard.BatchGenerator rendering one template per
// spec into the target package, followed by gofmt/goimports over the
// output tree. The teacher computes Montgomery constants from a
// modulus; this generator instead runs the same table-construction
// algorithm galois.buildTables uses, so the emitted tables are exactly
// what NewField(p, k, m) would build, without paying for it at runtime.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// fieldSpec names one preset field by its characteristic, extension
// degree and primitive polynomial, low power first.
type fieldSpec struct {
	Name string
	P, K uint32
	M    []uint32
}

// fieldTables is the data fed to the template: the spec plus its
// computed tables, rendered as Go integer-literal slices.
type fieldTables struct {
	fieldSpec
	Q      uint32
	LogOf  []uint32
	PowOf  []uint32
	MPoly  string
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "polynomial-factorization")

	specs := []fieldSpec{
		{Name: "gf8", P: 2, K: 3, M: []uint32{1, 1, 0, 1}},
		{Name: "gf9", P: 3, K: 2, M: []uint32{2, 2, 1}},
		{Name: "gf16", P: 2, K: 4, M: []uint32{1, 1, 0, 0, 1}},
	}

	for _, spec := range specs {
		data := spec.tables()

		assertNoError(bgen.Generate(data, "presets", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../presets/%s.go", spec.Name),
				Templates: []string{"field.go.tmpl"},
			},
		), "for field %q", spec.Name)
	}

	runCmd("gofmt", "-w", "../../presets")
	runCmd("goimports", "-w", "../../presets")
}

// tables runs the same positional-encoding discrete-log construction as
// galois.buildTables: iterate poly <- 1, x, x^2, ... for q-1 steps,
// recording each power's discrete log, reducing with the negated
// non-leading part of m whenever a digit overflows.
func (s fieldSpec) tables() fieldTables {
	q := uint32(1)
	for i := uint32(0); i < s.K; i++ {
		q *= s.P
	}

	var nonLeading uint32

	weight := uint32(1)
	for i := uint32(0); i < s.K; i++ {
		nonLeading += weight * s.M[i]
		weight *= s.P
	}

	generator := negateBaseP(nonLeading, s.P, s.K)

	logOf := make([]uint32, q)
	logOf[0] = q - 1

	powRaw := make([]uint32, q-1)
	polynom := uint32(1)

	for power := uint32(0); power < q-1; power++ {
		powRaw[power] = polynom
		logOf[polynom] = power

		polynom *= s.P
		if polynom >= q {
			overflow := polynom / q
			polynom %= q
			for c := uint32(0); c < overflow; c++ {
				polynom = addBaseP(polynom, generator, s.P, s.K)
			}
		}
	}

	powOf := append(append([]uint32{}, powRaw...), powRaw...)

	return fieldTables{
		fieldSpec: s,
		Q:         q,
		LogOf:     logOf,
		PowOf:     powOf,
		MPoly:     describePoly(s.M),
	}
}

func addBaseP(a, b, p, k uint32) uint32 {
	var result uint32

	weight := uint32(1)
	for i := uint32(0); i < k; i++ {
		result += ((a % p) + (b % p)) % p * weight
		a /= p
		b /= p
		weight *= p
	}

	return result
}

func negateBaseP(a, p, k uint32) uint32 {
	var result uint32

	weight := uint32(1)
	for i := uint32(0); i < k; i++ {
		digit := a % p
		if digit != 0 {
			result += (p - digit) * weight
		}

		a /= p
		weight *= p
	}

	return result
}

func describePoly(m []uint32) string {
	var terms []string

	for i, c := range m {
		if c == 0 {
			continue
		}

		coef := fmt.Sprintf("%d", c)
		if c == 1 && i > 0 {
			coef = ""
		}

		switch i {
		case 0:
			terms = append(terms, coef)
		case 1:
			terms = append(terms, coef+"x")
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", coef, i))
		}
	}

	return strings.Join(terms, " + ")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))

	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		if len(contextAndArgs) > 0 {
			fmt.Printf(contextAndArgs[0].(string)+": %v\n", append(contextAndArgs[1:], err)...)
		} else {
			fmt.Println(err)
		}

		os.Exit(1)
	}
}
