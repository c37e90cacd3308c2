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
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// through holds, for every pair of squares sharing a file, rank,
// diagonal, or anti-diagonal, the full edge-to-edge line through both of
// them. For pairs sharing none of those, through is Empty.
var through [square.N][square.N]bitboard.Board

// between holds, for every pair of squares, the squares strictly between
// a and b plus b itself. For pairs that don't lie on a common line, it
// holds only b.
var between [square.N][square.N]bitboard.Board

func init() {
	for a := square.A1; a <= square.H8; a++ {
		for b := square.A1; b <= square.H8; b++ {
			if a == b {
				continue
			}

			var mask bitboard.Board
			switch {
			case a.File() == b.File():
				mask = bitboard.Files[a.File()]
			case a.Rank() == b.Rank():
				mask = bitboard.Ranks[a.Rank()]
			case a.Diagonal() == b.Diagonal():
				mask = bitboard.Diagonals[a.Diagonal()]
			case a.AntiDiagonal() == b.AntiDiagonal():
				mask = bitboard.AntiDiagonals[a.AntiDiagonal()]
			default:
				between[a][b] = bitboard.Squares[b]
				continue
			}

			through[a][b] = mask

			occupied := bitboard.Squares[a] | bitboard.Squares[b]
			strictlyBetween := hyperbola(a, occupied, mask) & hyperbola(b, occupied, mask)
			between[a][b] = strictlyBetween | bitboard.Squares[b]
		}
	}
}

// LineThrough returns the full line running through a and b, extended to
// both edges of the board, or Empty if the two squares don't share a
// file, rank, diagonal, or anti-diagonal.
func LineThrough(a, b square.Square) bitboard.Board {
	return through[a][b]
}

// LineBetween returns the squares strictly between a and b, plus b
// itself. If a and b don't lie on a common line, it returns just b. This
// is the set a piece moving from a to capture or block along that line
// must pass through or land on.
func LineBetween(a, b square.Square) bitboard.Board {
	return between[a][b]
}
