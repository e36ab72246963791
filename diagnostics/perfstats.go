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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats snapshots wall-clock time and memory allocation at a given
// point, the way the teacher's pkg/util/perfstats.go does, and additionally
// binds to a *Counters so that Log reports the field operations a
// factorization actually performed alongside how expensive it was to run.
// Wired in behind berlekamp.Factorizer.TrackPerf, which opens one of these
// at the start of every Factorize call when enabled.
type PerfStats struct {
	startTime time.Time
	startMem  uint64
	startGc   uint32

	// counters is the Counters this snapshot reports field operations
	// against, or nil if NewPerfStats was given none (a factorizer opened
	// through TrackPerf always passes one). startCounters is its value at
	// snapshot time, so Log can report the delta even if counters is
	// reused across more than one tracked call.
	counters      *Counters
	startCounters Counters
}

// NewPerfStats creates a new snapshot of the current amount of memory
// allocated, the current time, and (if counters is non-nil) the current
// operation counts. Passing a nil counters is equivalent to the teacher's
// original behaviour: Log then reports only time and memory.
func NewPerfStats(counters *Counters) *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	stats := &PerfStats{startTime: startTime, startMem: m.TotalAlloc, startGc: m.NumGC, counters: counters}
	if counters != nil {
		stats.startCounters = *counters
	}

	return stats
}

// Log logs the difference between the state now and as it was when the
// PerfStats was created: wall time, allocation and GC deltas always, plus
// the field operations performed over the same interval when this
// PerfStats is bound to a Counters.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	allocMb := (m.TotalAlloc - p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()

	if p.counters == nil {
		log.Debugf("%s took %0.4fs using %v Mb (%v GC events)", prefix, exectime, allocMb, gcs)
		return
	}

	total := p.counters.Total() - p.startCounters.Total()
	muls := p.counters.MulCount - p.startCounters.MulCount
	divs := p.counters.DivCount - p.startCounters.DivCount
	invs := p.counters.InvCount - p.startCounters.InvCount

	log.Debugf("%s took %0.4fs using %v Mb (%v GC events), %d field operations (%d mul, %d div, %d inv)",
		prefix, exectime, allocMb, gcs, total, muls, divs, invs)
}
