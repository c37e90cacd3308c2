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

package move

import "github.com/kestrelchess/branchpoint/pkg/square"

// CastlingRights is a 4-bit flag set recording which castling moves are
// still available. It forms a semilattice under set union/intersection.
type CastlingRights uint8

// constants representing each individual castling right and their unions
const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None CastlingRights = 0

	White CastlingRights = WhiteKingside | WhiteQueenside
	Black CastlingRights = BlackKingside | BlackQueenside

	Kingside  CastlingRights = WhiteKingside | BlackKingside
	Queenside CastlingRights = WhiteQueenside | BlackQueenside

	All CastlingRights = White | Black

	// N is the number of possible CastlingRights values, used to size
	// the zobrist castling-right key table.
	N = 16
)

// NewCastlingRights parses a CastlingRights from its FEN field, a subset
// of "KQkq" or "-".
func NewCastlingRights(field string) CastlingRights {
	var rights CastlingRights

	for _, c := range field {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		case '-':
		default:
			panic("move: illegal castling right " + string(c))
		}
	}

	return rights
}

// String converts CastlingRights to its FEN field representation.
func (c CastlingRights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		return "-"
	}
	return str
}

// Has reports whether every right in want is present in c.
func (c CastlingRights) Has(want CastlingRights) bool {
	return c&want == want
}

// RookHome gives the starting square of the rook involved in a given
// castling right.
func RookHome(right CastlingRights) square.Square {
	switch right {
	case WhiteKingside:
		return square.H1
	case WhiteQueenside:
		return square.A1
	case BlackKingside:
		return square.H8
	case BlackQueenside:
		return square.A8
	default:
		panic("move: castling right has no single rook home")
	}
}

// updatesFor maps a square to the castling rights that are permanently
// lost when a king or rook moves from (or a rook is captured on) it.
var updatesFor = func() [square.N]CastlingRights {
	var table [square.N]CastlingRights
	table[square.E1] = White
	table[square.E8] = Black
	table[square.H1] = WhiteKingside
	table[square.A1] = WhiteQueenside
	table[square.H8] = BlackKingside
	table[square.A8] = BlackQueenside
	return table
}()

// RightsLostBy returns the castling rights that are unconditionally lost
// when a piece moves off of, or is captured on, square s.
func RightsLostBy(s square.Square) CastlingRights {
	return updatesFor[s]
}
