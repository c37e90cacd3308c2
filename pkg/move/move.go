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

// Package move declares the chess move representation and related
// utilities: a tagged union of seven move kinds, castling rights, and a
// principal-variation line.
//
// A Move is implemented as a single struct with a Kind discriminant
// rather than seven distinct types behind an interface: every variant's
// payload fits in a handful of fixed-size fields, so a flat struct avoids
// the allocation and indirection an interface-based sum type would cost
// on every node of the search tree, while each constructor below still
// only populates the fields its variant actually needs.
package move

import (
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// Kind discriminates the seven move variants.
type Kind uint8

// constants representing every move variant
const (
	Quiet Kind = iota
	DoublePawnPush
	Capture
	EnPassantCapture
	Castle
	Promotion
	PromotingCapture
)

// Move represents a single chess move. Exactly the fields needed to make
// and unmake the move without consulting the board are populated,
// depending on Kind.
type Move struct {
	Kind Kind

	From square.Square
	To   square.Square

	Piece piece.Piece // the moving piece, as it was before the move

	// CapturedPiece is set for Capture, EnPassantCapture and
	// PromotingCapture.
	CapturedPiece piece.Piece

	// CapturedPawnSquare is set for EnPassantCapture: the square the
	// captured pawn actually occupies (different from To).
	CapturedPawnSquare square.Square

	// CastleRight identifies which single castling right (and thus
	// which king/rook pair) a Castle move exercises.
	CastleRight CastlingRights

	// Promoted is set for Promotion and PromotingCapture: the piece
	// type the pawn becomes.
	Promoted piece.Type
}

// Null is the "do nothing" move, used as a sentinel in places that need
// to represent "no move" (failed lookups, move-ordering hints, etc).
var Null = Move{}

// IsNull reports whether m is the Null sentinel.
func (m Move) IsNull() bool {
	return m.Piece == piece.NoPiece
}

// NewQuiet creates a Quiet move of piece p from one square to another.
func NewQuiet(from, to square.Square, p piece.Piece) Move {
	return Move{Kind: Quiet, From: from, To: to, Piece: p}
}

// NewDoublePawnPush creates a double pawn push by player from the pawn's
// home rank. to is the landing square two ranks ahead.
func NewDoublePawnPush(from, to square.Square, player piece.Color) Move {
	return Move{Kind: DoublePawnPush, From: from, To: to, Piece: piece.New(piece.Pawn, player)}
}

// NewCapture creates a Capture move, removing captured at the target
// square.
func NewCapture(from, to square.Square, p, captured piece.Piece) Move {
	return Move{Kind: Capture, From: from, To: to, Piece: p, CapturedPiece: captured}
}

// NewEnPassantCapture creates an en-passant capture. from is the
// capturing pawn's square and to is the en-passant target square (the
// square skipped by the double push); this is the sole canonical
// constructor, so callers never need to separately derive the captured
// pawn's square.
func NewEnPassantCapture(from, to square.Square, player piece.Color) Move {
	// the captured pawn sits behind the ep target square, from the
	// capturing player's perspective
	capturedSq := to - square.Square(forwardSign(player)*int(square.North))
	return Move{
		Kind:               EnPassantCapture,
		From:               from,
		To:                 to,
		Piece:              piece.New(piece.Pawn, player),
		CapturedPiece:      piece.New(piece.Pawn, player.Other()),
		CapturedPawnSquare: capturedSq,
	}
}

// forwardSign returns +1 for White (ranks increase going forward) and -1
// for Black.
func forwardSign(c piece.Color) int {
	if c == piece.White {
		return 1
	}
	return -1
}

// NewCastle creates a Castle move for the given player and right (which
// also identifies king and rook start/end squares).
func NewCastle(player piece.Color, right CastlingRights) Move {
	from, to := castleKingSquares(player, right)
	return Move{Kind: Castle, From: from, To: to, Piece: piece.New(piece.King, player), CastleRight: right}
}

// NewPromotion creates a Promotion move of a pawn pushing from from to
// to on the back rank.
func NewPromotion(from, to square.Square, player piece.Color, promoted piece.Type) Move {
	return Move{Kind: Promotion, From: from, To: to, Piece: piece.New(piece.Pawn, player), Promoted: promoted}
}

// NewPromotingCapture creates a PromotingCapture move: a pawn capture
// landing on the back rank.
func NewPromotingCapture(from, to square.Square, player piece.Color, captured piece.Piece, promoted piece.Type) Move {
	return Move{
		Kind:          PromotingCapture,
		From:          from,
		To:            to,
		Piece:         piece.New(piece.Pawn, player),
		CapturedPiece: captured,
		Promoted:      promoted,
	}
}

// castleKingSquares returns the king's start and end square for a given
// castling right.
func castleKingSquares(player piece.Color, right CastlingRights) (from, to square.Square) {
	switch {
	case player == piece.White && right == WhiteKingside:
		return square.E1, square.G1
	case player == piece.White && right == WhiteQueenside:
		return square.E1, square.C1
	case player == piece.Black && right == BlackKingside:
		return square.E8, square.G8
	case player == piece.Black && right == BlackQueenside:
		return square.E8, square.C8
	default:
		panic("move: invalid player/castling right combination")
	}
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Kind {
	case Capture, EnPassantCapture, PromotingCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == PromotingCapture
}

// IsQuiet reports whether the move is neither a capture nor a promotion,
// i.e. it does not create large material swings.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move could in principle be undone by
// a later move of the same piece type (used for repetition bookkeeping
// heuristics outside the core make/unmake symmetry).
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.Piece.Type() != piece.Pawn
}

// ToPiece returns the piece occupying the target square after the move
// is played: the moving piece, or the promoted piece for promotions.
func (m Move) ToPiece() piece.Piece {
	if m.IsPromotion() {
		return piece.New(m.Promoted, m.Piece.Color())
	}
	return m.Piece
}

// String converts a move to long algebraic notation, e.g. "e2e4",
// "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}

	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promoted.String()
	}
	return s
}
