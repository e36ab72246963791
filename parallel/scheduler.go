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

// Package parallel provides the minimal "submit a task, wait for all"
// boundary a benchmarking harness needs to run many independent
// factorizations concurrently, plus one concrete scheduler.
//
// Nothing in berlekamp, poly or galois imports this package: a factorizer
// value is used by at most one goroutine at a time, so running many of
// them in parallel is entirely the caller's concern, satisfied by
// submitting independent calls to a Scheduler.
//
// Grounded on factorization/parallel/thead_pool.hpp, queue.hpp and
// wait_group.hpp from the original source, translated from a hand-rolled
// blocking deque plus condition variable into a Go channel, and from a
// hand-rolled WaitGroup into sync.WaitGroup.
package parallel

import "sync"

// Scheduler accepts tasks for asynchronous execution. Submit must not
// block on the task's completion; ordering between submitted tasks is
// unspecified.
type Scheduler interface {
	Submit(task func())
}

// Group runs a batch of tasks on a Scheduler and waits for every one of
// them to finish, mirroring the original's WaitGroup used alongside its
// thread pool.
type Group struct {
	scheduler Scheduler
	wg        sync.WaitGroup
}

// NewGroup returns a Group that dispatches through s.
func NewGroup(s Scheduler) *Group {
	return &Group{scheduler: s}
}

// Go submits task to the underlying scheduler and tracks it so Wait
// returns only once every task submitted through this Group has run.
func (g *Group) Go(task func()) {
	g.wg.Add(1)
	g.scheduler.Submit(func() {
		defer g.wg.Done()
		task()
	})
}

// Wait blocks until every task submitted via Go has completed.
func (g *Group) Wait() {
	g.wg.Wait()
}
