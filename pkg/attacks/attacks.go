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

package attacks

import (
	"github.com/kestrelchess/branchpoint/pkg/bitboard"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// Of returns the attack set of p sitting on s, given the board's current
// occupancy. Occupancy is irrelevant for non-sliding pieces.
func Of(p piece.Piece, s square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks: Of called with no piece type")
	}
}
