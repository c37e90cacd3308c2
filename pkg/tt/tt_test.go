// Copyright © 2026 The Branchpoint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/tt"
	"github.com/kestrelchess/branchpoint/pkg/zobrist"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	table := tt.New(16)
	key := zobrist.Key(12345)

	table.Store(tt.Entry{Key: key, Value: eval.Score(42), Depth: 3, Bound: tt.Exact})

	entry, hit := table.Probe(key)
	require.True(t, hit)
	assert.Equal(t, eval.Score(42), entry.Value)
	assert.Equal(t, 3, entry.Depth)
	assert.Equal(t, tt.Exact, entry.Bound)
}

func TestProbeMissOnUnstoredKey(t *testing.T) {
	table := tt.New(16)
	_, hit := table.Probe(zobrist.Key(999))
	assert.False(t, hit)
}

func TestDeeperEntryIsNotReplacedByShallowerStore(t *testing.T) {
	// fill one bucket completely with depth-10 entries so any further
	// insert must go through the replacement path, not an empty slot
	table := tt.New(1)
	for i := 0; i < tt.BucketSize; i++ {
		table.Store(tt.Entry{Key: zobrist.Key(i + 1), Value: 1, Depth: 10, Bound: tt.Exact})
	}

	// a shallower entry for a brand new key must not displace any of them
	table.Store(tt.Entry{Key: zobrist.Key(999), Value: 1, Depth: 1, Bound: tt.Exact})

	for i := 0; i < tt.BucketSize; i++ {
		_, hit := table.Probe(zobrist.Key(i + 1))
		assert.True(t, hit, "depth-10 entry %d should have survived a shallower insert", i+1)
	}
}

func TestScoreToFromTTRoundTripsMateScores(t *testing.T) {
	root := eval.MatingIn(3)

	stored := tt.ScoreToTT(root, 2) // stored at ply 2
	retrieved := tt.ScoreFromTT(stored, 2)

	assert.Equal(t, root, retrieved)
}

func TestScoreToFromTTLeavesOrdinaryScoresUnchanged(t *testing.T) {
	ordinary := eval.Score(150)
	assert.Equal(t, ordinary, tt.ScoreToTT(ordinary, 5))
	assert.Equal(t, ordinary, tt.ScoreFromTT(ordinary, 5))
}
