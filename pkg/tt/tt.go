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

// Package tt implements a transposition table: a fixed bucket array
// mapping a position's Zobrist hash to cached search results, so
// transpositions encountered again during the same or a later search
// skip straight to a known bound or score.
package tt

import (
	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/zobrist"
)

// BucketSize is the number of entries probed linearly within a bucket.
const BucketSize = 5

// DefaultBuckets is the default table capacity, matching the spec's
// "~256k buckets" sizing.
const DefaultBuckets = 1 << 18

// Bound distinguishes what relationship a stored score has to the true
// minimax value.
type Bound uint8

// constants naming each bound kind
const (
	NoBound Bound = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is a single cached search result.
type Entry struct {
	Key   zobrist.Key
	Move  move.Move
	Value eval.Score
	Depth int
	Bound Bound
}

type bucket [BucketSize]Entry

// Table is a fixed-capacity set-associative transposition table. It is
// not safe for concurrent use: per the engine's single-threaded search
// model, callers provide their own synchronization if ever shared.
type Table struct {
	buckets []bucket
}

// New creates a Table with n buckets (at least one), each holding
// BucketSize entries.
func New(n int) *Table {
	if n < 1 {
		n = 1
	}
	return &Table{buckets: make([]bucket, n)}
}

// NewDefault creates a Table sized per DefaultBuckets.
func NewDefault() *Table {
	return New(DefaultBuckets)
}

// Clear resets every entry, discarding all cached results.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
}

func (t *Table) bucketFor(key zobrist.Key) *bucket {
	return &t.buckets[uint64(key)%uint64(len(t.buckets))]
}

// Probe looks up key's bucket for a full-key match, returning the entry
// and whether one was found.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	b := t.bucketFor(key)
	for i := range b {
		if b[i].Bound != NoBound && b[i].Key == key {
			return b[i], true
		}
	}
	return Entry{}, false
}

// Store inserts entry into its bucket. An empty slot is used if one is
// free; otherwise the shallowest entry still shallower than the new one
// is replaced, and the insert is discarded if no such entry exists.
func (t *Table) Store(entry Entry) {
	b := t.bucketFor(entry.Key)

	for i := range b {
		if b[i].Bound == NoBound || b[i].Key == entry.Key {
			b[i] = entry
			return
		}
	}

	shallowest := 0
	for i := 1; i < len(b); i++ {
		if b[i].Depth < b[shallowest].Depth {
			shallowest = i
		}
	}
	if b[shallowest].Depth < entry.Depth {
		b[shallowest] = entry
	}
}

// TryMakeExact promotes an existing bound entry for key to Exact once a
// complete search has confirmed value at depth; if no matching entry is
// present, it stores a new Exact entry through Store instead.
func (t *Table) TryMakeExact(key zobrist.Key, value eval.Score, depth int, best move.Move) {
	b := t.bucketFor(key)
	for i := range b {
		if b[i].Bound != NoBound && b[i].Key == key {
			b[i].Bound = Exact
			b[i].Value = value
			b[i].Depth = depth
			if !best.IsNull() {
				b[i].Move = best
			}
			return
		}
	}
	t.Store(Entry{Key: key, Move: best, Value: value, Depth: depth, Bound: Exact})
}

// ScoreFromTT converts a stored mate score ("plies to mate from this
// node") back into a root-relative score ("plies to mate from root"),
// the inverse of ScoreToTT.
func ScoreFromTT(value eval.Score, plys int) eval.Score {
	switch {
	case value > eval.WinInMaxPly:
		return value - eval.Score(plys)
	case value < eval.LoseInMaxPly:
		return value + eval.Score(plys)
	default:
		return value
	}
}

// ScoreToTT converts a root-relative mate score into one relative to the
// node being stored, so it stays meaningful if probed again at a
// different ply from a different root.
func ScoreToTT(value eval.Score, plys int) eval.Score {
	switch {
	case value > eval.WinInMaxPly:
		return value + eval.Score(plys)
	case value < eval.LoseInMaxPly:
		return value - eval.Score(plys)
	default:
		return value
	}
}
