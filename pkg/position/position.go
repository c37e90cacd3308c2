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

// Package position implements the chessboard itself: bitboards plus a
// piece-on-square mailbox, legal move generation, make/unmake, and FEN
// I/O. It is the one package every other layer of the engine (evaluator,
// search, transposition table) is built around.
package position

import (
	"github.com/kestrelchess/branchpoint/pkg/attacks"
	"github.com/kestrelchess/branchpoint/pkg/bitboard"
	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
	"github.com/kestrelchess/branchpoint/pkg/zobrist"
)

// repetitionWindow bounds the hash history kept for threefold-repetition
// detection: a repetition can only reach back as far as the last
// irreversible move, and the halfmove clock never exceeds this.
const repetitionWindow = 100

// Position is a chessboard at a single point in time: bitboards and a
// mailbox kept in lockstep (the same redundancy trade the rest of the
// package relies on to answer "what's on this square?" cheaply), plus
// the reversible fields that make_move/unmake_move snapshot and restore.
type Position struct {
	pieceBB    [piece.TypeN]bitboard.Board
	colorBB    [piece.ColorN]bitboard.Board
	mailbox    [square.N]piece.Piece
	kingSquare [piece.ColorN]square.Square

	sideToMove     piece.Color
	castlingRights move.CastlingRights
	epSquare       square.Square
	halfmoveClock  int
	fullMoves      int
	hash           zobrist.Key

	undoStack   []undo
	hashHistory []zobrist.Key

	acc eval.Accumulator
}

// undo holds exactly the fields make_move cannot recover by reversing
// the move itself; everything else (piece placement, king squares) is
// undone via the move's own from/to/captured fields.
type undo struct {
	epSquare       square.Square
	castlingRights move.CastlingRights
	halfmoveClock  int
	hash           zobrist.Key
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() piece.Color { return p.sideToMove }

// CastlingRights returns the rights still available to either side.
func (p *Position) CastlingRights() move.CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or square.None.
func (p *Position) EnPassantSquare() square.Square { return p.epSquare }

// HalfmoveClock returns the number of plies since the last pawn push or
// capture.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullMoves returns the current full-move counter.
func (p *Position) FullMoves() int { return p.fullMoves }

// Hash returns the position's current Zobrist fingerprint.
func (p *Position) Hash() zobrist.Key { return p.hash }

// Evaluate returns the static evaluation from the side to move's
// perspective, kept exact by incremental per-piece updates rather than
// recomputed from the board every call.
func (p *Position) Evaluate() eval.Score { return p.acc.Score(p.sideToMove) }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c piece.Color) square.Square { return p.kingSquare[c] }

// PieceAt returns the piece occupying s, or piece.NoPiece.
func (p *Position) PieceAt(s square.Square) piece.Piece { return p.mailbox[s] }

// Occupied returns every occupied square.
func (p *Position) Occupied() bitboard.Board { return p.colorBB[piece.White] | p.colorBB[piece.Black] }

// Pieces returns every square occupied by a piece of type t and color c.
func (p *Position) Pieces(t piece.Type, c piece.Color) bitboard.Board {
	return p.pieceBB[t] & p.colorBB[c]
}

// PiecesOfType returns every square occupied by a piece of type t,
// regardless of color.
func (p *Position) PiecesOfType(t piece.Type) bitboard.Board { return p.pieceBB[t] }

// PiecesOfColor returns every square occupied by a piece of color c.
func (p *Position) PiecesOfColor(c piece.Color) bitboard.Board { return p.colorBB[c] }

// IsDrawnByHalfmoveClock reports whether the 50-move rule forces a draw.
func (p *Position) IsDrawnByHalfmoveClock() bool { return p.halfmoveClock >= 100 }

// IsRepetition reports whether the current position's hash has already
// occurred at least `count` times within the irreversible-move window,
// i.e. whether this is at least the (count+1)th occurrence.
func (p *Position) IsRepetition(count int) bool {
	n := len(p.hashHistory)
	if n == 0 {
		return false
	}

	window := n - 1 - p.halfmoveClock
	if window < 0 {
		window = 0
	}

	seen := 0
	for i := n - 1; i >= window; i-- {
		if p.hashHistory[i] == p.hash {
			seen++
			if seen > count {
				return true
			}
		}
	}
	return false
}

// addPiece places p on s, updating every derived representation and the
// hash. s must be empty.
func (pos *Position) addPiece(s square.Square, p piece.Piece) {
	c, t := p.Color(), p.Type()

	pos.colorBB[c].Set(s)
	pos.pieceBB[t].Set(s)
	pos.mailbox[s] = p
	pos.hash ^= zobrist.PieceSquare[p][s]
	pos.acc.AddPiece(s, p)

	if t == piece.King {
		pos.kingSquare[c] = s
	}
}

// removePiece clears whatever piece sits on s, updating every derived
// representation and the hash. s must not be empty.
func (pos *Position) removePiece(s square.Square) {
	p := pos.mailbox[s]
	c, t := p.Color(), p.Type()

	pos.colorBB[c].Unset(s)
	pos.pieceBB[t].Unset(s)
	pos.mailbox[s] = piece.NoPiece
	pos.hash ^= zobrist.PieceSquare[p][s]
	pos.acc.RemovePiece(s, p)
}

// movePiece relocates whatever sits on from to to, which must be empty.
// It goes through remove+add rather than a dedicated accumulator delta
// so every derived representation (including the phase-weighted eval
// accumulator) is always updated by the same two primitives.
func (pos *Position) movePiece(from, to square.Square) {
	p := pos.mailbox[from]
	pos.removePiece(from)
	pos.addPiece(to, p)
}

// updateCastlingRights folds in the rights lost because a piece left or
// was captured on s, keeping the hash in sync.
func (pos *Position) updateCastlingRights(s square.Square) {
	lost := move.RightsLostBy(s)
	if lost == move.None {
		return
	}
	pos.hash ^= zobrist.Castling[pos.castlingRights]
	pos.castlingRights &^= lost
	pos.hash ^= zobrist.Castling[pos.castlingRights]
}

// attackersTo returns every piece of color by attacking s, given board
// occupancy occ.
func (p *Position) attackersTo(s square.Square, by piece.Color, occ bitboard.Board) bitboard.Board {
	pawns := attacks.Pawn[by.Other()][s] & p.Pieces(piece.Pawn, by)
	knights := attacks.Knight[s] & p.Pieces(piece.Knight, by)
	king := attacks.King[s] & p.Pieces(piece.King, by)

	bishops := attacks.Bishop(s, occ) & (p.Pieces(piece.Bishop, by) | p.Pieces(piece.Queen, by))
	rooks := attacks.Rook(s, occ) & (p.Pieces(piece.Rook, by) | p.Pieces(piece.Queen, by))

	return pawns | knights | king | bishops | rooks
}

// IsAttacked reports whether s is attacked by any piece of color by.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	return p.attackersTo(s, by, p.Occupied()) != bitboard.Empty
}

// InCheck reports whether c's king currently sits in check.
func (p *Position) InCheck(c piece.Color) bool {
	return p.IsAttacked(p.kingSquare[c], c.Other())
}

// seenBy returns every square attacked by pieces of color by, with the
// other side's king excluded as a blocker: a king in check must flee past
// its own silhouette, not hide behind it.
func (p *Position) seenBy(by piece.Color) bitboard.Board {
	occ := p.Occupied() &^ p.Pieces(piece.King, by.Other())

	var seen bitboard.Board
	seen |= attacks.PawnsLeft(p.Pieces(piece.Pawn, by), by) | attacks.PawnsRight(p.Pieces(piece.Pawn, by), by)

	for knights := p.Pieces(piece.Knight, by); !knights.IsEmpty(); {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := p.Pieces(piece.Bishop, by) | p.Pieces(piece.Queen, by); !bishops.IsEmpty(); {
		seen |= attacks.Bishop(bishops.Pop(), occ)
	}
	for rooks := p.Pieces(piece.Rook, by) | p.Pieces(piece.Queen, by); !rooks.IsEmpty(); {
		seen |= attacks.Rook(rooks.Pop(), occ)
	}
	seen |= attacks.King[p.kingSquare[by]]

	return seen
}
