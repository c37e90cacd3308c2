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

package search

import (
	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/tt"
)

// negamax is alpha-beta search over the negamax formulation: each ply
// negates and swaps the window rather than tracking separate
// maximizing/minimizing players, since chess is zero-sum. It is
// fail-hard: a beta cutoff returns beta itself, not the (possibly
// higher) score that triggered it.
func (s *Searcher) negamax(ply, depth int, alpha, beta eval.Score, pv *move.Variation, pvMove move.Move) eval.Score {
	s.nodes++

	if s.shouldStop() {
		return eval.Draw
	}

	if s.pos.IsDrawnByHalfmoveClock() || s.pos.IsRepetition(1) {
		return eval.Draw
	}

	inCheck := s.pos.InCheck(s.pos.SideToMove())
	if inCheck {
		depth++ // check extension: don't let forcing lines hit the horizon
	}

	if depth <= 0 || ply >= MaxPly {
		return s.quiescence(ply, alpha, beta, 0)
	}

	isPVNode := beta-alpha > 1

	hash := s.pos.Hash()
	ttMove := move.Null
	if entry, hit := s.table.Probe(hash); hit {
		ttMove = entry.Move
		if !isPVNode && entry.Depth >= depth {
			value := tt.ScoreFromTT(entry.Value, ply)
			switch entry.Bound {
			case tt.Exact:
				return value
			case tt.LowerBound:
				if value >= beta {
					return value
				}
			case tt.UpperBound:
				if value <= alpha {
					return value
				}
			}
		}
	}
	if pvMove.IsNull() {
		pvMove = ttMove
	}

	moves := s.pos.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	scorer := s.order.Scorer(ply, pvMove, s.pos.GivesCheck)
	list := move.NewList(moves, scorer)

	originalAlpha := alpha
	bestMove := move.Null
	bestScore := -eval.Inf

	for i := 0; i < list.Len(); i++ {
		m := list.Pick(i)
		var childPV move.Variation

		s.pos.MakeMove(m)

		var score eval.Score
		switch {
		case i == 0:
			score = -s.negamax(ply+1, depth-1, -beta, -alpha, &childPV, move.Null)
		default:
			// null-window search first; re-search with the full window
			// only if it looks like it might actually beat alpha
			score = -s.negamax(ply+1, depth-1, -alpha-1, -alpha, &childPV, move.Null)
			if score > alpha && score < beta {
				score = -s.negamax(ply+1, depth-1, -beta, -alpha, &childPV, move.Null)
			}
		}

		s.pos.UnmakeMove(m)

		if s.stopped {
			return eval.Draw
		}

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					s.order.RecordCutoff(ply, depth, m)
					s.table.Store(tt.Entry{
						Key:   hash,
						Move:  m,
						Value: tt.ScoreToTT(beta, ply),
						Depth: depth,
						Bound: tt.LowerBound,
					})
					return beta // fail-hard
				}
			}
		}
	}

	bound := tt.UpperBound
	if bestScore > originalAlpha {
		bound = tt.Exact
	}
	s.table.Store(tt.Entry{
		Key:   hash,
		Move:  bestMove,
		Value: tt.ScoreToTT(alpha, ply),
		Depth: depth,
		Bound: bound,
	})

	return alpha
}
