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

// Package attacks precomputes pseudo-attack tables for non-sliding
// pieces and, via magic bitboards, for sliding ones, plus the
// line-through/line-between tables used for pin and discovered-check
// reasoning. Every table in this package is populated once, eagerly, by
// package init().
package attacks

import (
	"github.com/kestrelchess/branchpoint/pkg/bitboard"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// Knight holds the knight pseudo-attack set for every square.
var Knight [square.N]bitboard.Board

// King holds the king pseudo-attack set for every square.
var King [square.N]bitboard.Board

// Pawn holds the pawn capture set for every (color, square) pair.
var Pawn [piece.ColorN][square.N]bitboard.Board

// knightDeltas are the eight (file, rank) offsets a knight can jump.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
	{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
}

func init() {
	for s := square.A1; s <= square.H8; s++ {
		origin := bitboard.Squares[s]

		var knight bitboard.Board
		for _, d := range knightDeltas {
			if t, ok := offsetSquare(s, d[0], d[1]); ok {
				knight.Set(t)
			}
		}
		Knight[s] = knight

		King[s] = origin.North() | origin.South() | origin.East() | origin.West() |
			origin.NorthEast() | origin.NorthWest() | origin.SouthEast() | origin.SouthWest()

		Pawn[piece.White][s] = origin.NorthEast() | origin.NorthWest()
		Pawn[piece.Black][s] = origin.SouthEast() | origin.SouthWest()
	}
}

// offsetSquare returns the square reached by moving df files and dr
// ranks from s, and whether that square lies on the board.
func offsetSquare(s square.Square, df, dr int) (square.Square, bool) {
	file := int(s.File()) + df
	rank := int(s.Rank()) + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return square.None, false
	}
	return square.New(square.File(file), square.Rank(rank)), true
}

// PawnPush returns the result of pushing every pawn in pawns forward one
// square for the given color.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.North()
	}
	return pawns.South()
}

// PawnsLeft returns the result of every pawn in pawns capturing towards
// file A, for the given color.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.NorthWest()
	}
	return pawns.SouthWest()
}

// PawnsRight returns the result of every pawn in pawns capturing towards
// file H, for the given color.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.NorthEast()
	}
	return pawns.SouthEast()
}
