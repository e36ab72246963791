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
package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_RunsAllSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(4)

	var count atomic.Int64
	group := NewGroup(pool)

	for i := 0; i < 100; i++ {
		group.Go(func() {
			count.Add(1)
		})
	}

	group.Wait()
	pool.Stop()

	assert.Equal(t, int64(100), count.Load())
}

func TestWorkerPool_PanicsOnZeroWorkers(t *testing.T) {
	assert.Panics(t, func() { NewWorkerPool(0) })
}

func TestGroup_WaitsForEveryTask(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Stop()

	results := make([]int, 10)
	group := NewGroup(pool)

	for i := 0; i < 10; i++ {
		i := i
		group.Go(func() {
			results[i] = i * i
		})
	}

	group.Wait()

	for i, v := range results {
		assert.Equal(t, i*i, v)
	}
}
