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
)

// quiescence extends search past the horizon along captures, promotions
// and checking moves, so the static evaluation is never trusted in a
// position where a material swing is still pending. Captures and
// promotions are searched at any qdepth; quiet checking moves only while
// qdepth is below MaxQSearchDepth. Check evasions are always searched in
// full regardless of qdepth, since a checked side may have no noisy
// escape.
func (s *Searcher) quiescence(ply int, alpha, beta eval.Score, qdepth int) eval.Score {
	s.nodes++

	if s.shouldStop() {
		return eval.Draw
	}

	inCheck := s.pos.InCheck(s.pos.SideToMove())

	var standPat eval.Score
	if !inCheck {
		standPat = s.pos.Evaluate()
		if standPat >= beta {
			return beta // fail-hard
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	moves := s.pos.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	// out of check, only captures, promotions and (below MaxQSearchDepth)
	// checking moves extend the search; in check every legal move is a
	// forced reply and must be considered, regardless of qdepth, since a
	// checked side may have no noisy escape
	noisyOnly := !inCheck

	scorer := s.order.Scorer(ply, move.Null, s.pos.GivesCheck)
	list := move.NewList(moves, scorer)

	best := standPat
	if inCheck {
		best = -eval.Inf
	}

	for i := 0; i < list.Len(); i++ {
		m := list.Pick(i)

		if noisyOnly && m.IsQuiet() && (qdepth >= MaxQSearchDepth || !s.pos.GivesCheck(m)) {
			continue
		}

		s.pos.MakeMove(m)
		score := -s.quiescence(ply+1, -beta, -alpha, qdepth+1)
		s.pos.UnmakeMove(m)

		if s.stopped {
			return eval.Draw
		}

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					return beta // fail-hard
				}
			}
		}
	}

	return best
}
