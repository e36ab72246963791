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

import "testing"

func TestPerfStats_LogWithNilCounters(t *testing.T) {
	stats := NewPerfStats(nil)
	stats.Log("test: nil counters") // must not panic
}

func TestPerfStats_LogReportsCounterDelta(t *testing.T) {
	c := &Counters{}
	c.Add()

	stats := NewPerfStats(c)
	c.Mul()
	c.Mul()
	c.Div()

	stats.Log("test: with counters") // must not panic, and must see the 3 ops since the snapshot
}

func TestPerfStats_SurvivesCountersReusedAcrossSnapshots(t *testing.T) {
	c := &Counters{}
	c.Add()
	c.Add()

	first := NewPerfStats(c)
	c.Mul()
	first.Log("test: first snapshot")

	second := NewPerfStats(c)
	c.Div()
	second.Log("test: second snapshot")
}
