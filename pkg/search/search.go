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

// Package search implements iterative-deepening alpha-beta (negamax)
// search with quiescence search, driven by a cooperative halt flag
// rather than forced cancellation.
package search

import (
	"sync/atomic"
	"time"

	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/ordering"
	"github.com/kestrelchess/branchpoint/pkg/position"
	"github.com/kestrelchess/branchpoint/pkg/tt"
)

// MaxPly bounds recursion depth, sized generously above any depth a
// practical time control would reach.
const MaxPly = 128

// MaxQSearchDepth bounds how many plies of check extension quiescence
// search will explore beyond captures, preventing runaway recursion in
// positions with long forcing check sequences.
const MaxQSearchDepth = 8

// Constraints bounds how long a single search may run: any of depth,
// node count, or wall-clock deadline can end it, whichever fires first.
type Constraints struct {
	MaxDepth int
	MaxNodes int
	Deadline time.Time // zero value means no deadline
	Infinite bool
}

// Inputs is everything a search needs beyond the position itself: a
// halt flag the caller can set from another goroutine, and optionally
// persistent TT/move-ordering state to reuse across searches.
type Inputs struct {
	Halt     *atomic.Bool
	Table    *tt.Table
	Ordering *ordering.State
}

// Results is what a completed (or halted) search reports back.
type Results struct {
	Evaluation        eval.Score
	PrincipalVariation move.Variation
	Depth             int
	Nodes             int
}

// Searcher runs searches against a single Position, reusing its halt
// flag, transposition table, and move-ordering state across calls.
type Searcher struct {
	pos   *position.Position
	halt  *atomic.Bool
	table *tt.Table
	order *ordering.State

	constraints Constraints
	startedAt   time.Time
	nodes       int
	stopped     bool
}

// New creates a Searcher over pos. If inputs omits a Table or Ordering
// state, a fresh private one is created; passing them explicitly is how
// a caller keeps them alive across multiple searches.
func New(pos *position.Position, inputs Inputs) *Searcher {
	s := &Searcher{pos: pos, halt: inputs.Halt, table: inputs.Table, order: inputs.Ordering}
	if s.halt == nil {
		s.halt = &atomic.Bool{}
	}
	if s.table == nil {
		s.table = tt.NewDefault()
	}
	if s.order == nil {
		s.order = ordering.New()
	}
	return s
}

// MissingKingError is returned instead of running a search against a
// position where the side not to move is already in check — an
// impossible, illegal position that can't be reached by legal play.
type MissingKingError struct{}

func (e *MissingKingError) Error() string { return "search: position is illegal, king capturable" }

// Start runs iterative deepening up to constraints, returning the best
// line found before the constraints or halt flag stopped it.
func (s *Searcher) Start(constraints Constraints) (Results, error) {
	if s.pos.InCheck(s.pos.SideToMove().Other()) {
		return Results{}, &MissingKingError{}
	}

	s.constraints = constraints
	s.startedAt = time.Now()
	s.nodes = 0
	s.stopped = false

	var pv move.Variation
	var score eval.Score
	var lastDepth int

	maxDepth := constraints.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	pvMove := move.Null
	for depth := 1; depth <= maxDepth; depth++ {
		var childPV move.Variation
		iterScore := s.negamax(0, depth, -eval.Inf, eval.Inf, &childPV, pvMove)

		if s.stopped {
			break
		}

		pv = childPV
		score = iterScore
		lastDepth = depth
		pvMove = pv.Move(0)

		if score.IsMateScore() {
			break
		}
	}

	return Results{
		Evaluation:        score,
		PrincipalVariation: pv,
		Depth:             lastDepth,
		Nodes:             s.nodes,
	}, nil
}

// Stop halts any in-progress search at its next suspension point.
func (s *Searcher) Stop() { s.stopped = true }

func (s *Searcher) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.halt.Load() {
		s.stopped = true
		return true
	}
	if s.constraints.Infinite {
		return false
	}
	if s.nodes&2047 != 0 {
		return false
	}
	if s.constraints.MaxNodes > 0 && s.nodes > s.constraints.MaxNodes {
		s.stopped = true
		return true
	}
	if !s.constraints.Deadline.IsZero() && time.Now().After(s.constraints.Deadline) {
		s.stopped = true
		return true
	}
	return false
}
