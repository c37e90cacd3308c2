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

// Package ordering holds move-ordering state that persists across an
// entire search: killer moves and the history heuristic. Both exist to
// rank moves likely to cause a beta cutoff ahead of the rest, so
// alpha-beta prunes more of the tree sooner.
package ordering

import (
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
)

// Score is the move-ordering priority assigned to a single move; higher
// sorts first.
type Score int32

// constants for the fixed, non-heuristic components of a move's score
const (
	PVMove           Score = 1 << 20
	PromotionBonus   Score = 1 << 16
	CheckBonus       Score = 1 << 15
	CastleBonus      Score = 1 << 10
	MvvLvaOffset     Score = 1 << 12
	KillerBonus      Score = 1 << 11
	maxHistoryScore  Score = 1 << 14
	historyDecayDivisor = maxHistoryScore
)

// mvvLva ranks captures by (victim, attacker): a valuable victim taken
// by a cheap attacker ranks above a cheap victim taken by a valuable
// one.
var mvvLva = [piece.TypeN][piece.TypeN]Score{
	piece.Pawn:   {0, 10, 9, 8, 7, 6, 5},
	piece.Knight: {0, 20, 19, 18, 17, 16, 15},
	piece.Bishop: {0, 30, 29, 28, 27, 26, 25},
	piece.Rook:   {0, 40, 39, 38, 37, 36, 35},
	piece.Queen:  {0, 50, 49, 48, 47, 46, 45},
	piece.King:   {0, 60, 59, 58, 57, 56, 55},
}

// State holds the killer table and history table for one search; it is
// reset between unrelated searches but reused across iterative
// deepening iterations within one.
type State struct {
	killers [maxPly]killerSlot
	history [piece.ColorN][64][64]Score
}

const maxPly = 128

// killerSlot tracks, per ply, the two most recent quiet moves that
// caused a beta cutoff there. It is a frequency counter in spirit
// (repeated killers displace the slot 2 entry) rather than a literal
// map, since a fixed two-slot table is cheaper and just as effective.
type killerSlot struct {
	moves [2]move.Move
}

// New creates a fresh, empty ordering State.
func New() *State {
	return &State{}
}

// Clear resets every killer and history entry, used between searches on
// unrelated positions.
func (s *State) Clear() {
	*s = State{}
}

// RecordCutoff updates killer and history state after m causes a beta
// cutoff at the given ply and search depth. Only quiet (non-capture,
// non-promotion) moves are recorded: captures are already well ordered
// by MVV-LVA.
func (s *State) RecordCutoff(ply, depth int, m move.Move) {
	if !m.IsQuiet() {
		return
	}

	if ply < maxPly {
		slot := &s.killers[ply]
		if slot.moves[0] != m {
			slot.moves[1] = slot.moves[0]
			slot.moves[0] = m
		}
	}

	bonus := Score(depth * depth)
	if bonus > maxHistoryScore {
		bonus = maxHistoryScore
	}

	entry := &s.history[m.Piece.Color()][m.From][m.To]
	*entry += bonus - *entry*bonus/historyDecayDivisor
}

// Scorer returns a per-move scoring function for the given position ply,
// with pvMove (if not null) ranked above everything else.
func (s *State) Scorer(ply int, pvMove move.Move, inCheckAfter func(move.Move) bool) func(move.Move) Score {
	var killers [2]move.Move
	if ply < maxPly {
		killers = s.killers[ply].moves
	}

	return func(m move.Move) Score {
		switch {
		case !pvMove.IsNull() && m == pvMove:
			return PVMove

		case m.IsPromotion():
			bonus := PromotionBonus
			if m.IsCapture() {
				bonus += mvvLva[m.CapturedPiece.Type()][m.Piece.Type()]
			}
			return bonus

		case m.IsCapture():
			return MvvLvaOffset + mvvLva[m.CapturedPiece.Type()][m.Piece.Type()]

		case m == killers[0]:
			return KillerBonus + 1

		case m == killers[1]:
			return KillerBonus

		case m.Kind == move.Castle:
			return CastleBonus + s.history[m.Piece.Color()][m.From][m.To]

		default:
			score := s.history[m.Piece.Color()][m.From][m.To]
			if inCheckAfter != nil && inCheckAfter(m) {
				score += CheckBonus
			}
			return score
		}
	}
}
