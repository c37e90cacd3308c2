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

package position

import (
	"github.com/kestrelchess/branchpoint/pkg/attacks"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
	"github.com/kestrelchess/branchpoint/pkg/zobrist"
)

// castleRookSquares returns a castling right's rook's start and end
// squares; the king's own start/end are already on the Move.
func castleRookSquares(right move.CastlingRights) (from, to square.Square) {
	switch right {
	case move.WhiteKingside:
		return square.H1, square.F1
	case move.WhiteQueenside:
		return square.A1, square.D1
	case move.BlackKingside:
		return square.H8, square.F8
	case move.BlackQueenside:
		return square.A8, square.D8
	default:
		panic("position: invalid castling right")
	}
}

// MakeMove plays m, which must be pseudo-legal in the current position.
// It mutates the Position in place; the matching UnmakeMove call (given
// the same m) restores it exactly.
func (p *Position) MakeMove(m move.Move) {
	p.undoStack = append(p.undoStack, undo{
		epSquare:       p.epSquare,
		castlingRights: p.castlingRights,
		halfmoveClock:  p.halfmoveClock,
		hash:           p.hash,
	})

	if p.epSquare != square.None {
		p.hash ^= zobrist.EnPassant[p.epSquare.File()]
	}
	p.epSquare = square.None
	p.halfmoveClock++

	switch m.Kind {
	case move.Quiet:
		p.movePiece(m.From, m.To)
		p.updateCastlingRights(m.From)
		if m.Piece.Type() == piece.Pawn {
			p.halfmoveClock = 0
		}

	case move.DoublePawnPush:
		p.movePiece(m.From, m.To)
		p.halfmoveClock = 0

		skipped := (m.From + m.To) / 2
		if p.Pieces(piece.Pawn, p.sideToMove.Other())&attacks.Pawn[m.Piece.Color()][skipped] != 0 {
			p.epSquare = skipped
			p.hash ^= zobrist.EnPassant[skipped.File()]
		}

	case move.Capture:
		p.updateCastlingRights(m.To)
		p.removePiece(m.To)
		p.movePiece(m.From, m.To)
		p.updateCastlingRights(m.From)
		p.halfmoveClock = 0

	case move.EnPassantCapture:
		p.removePiece(m.CapturedPawnSquare)
		p.movePiece(m.From, m.To)
		p.halfmoveClock = 0

	case move.Castle:
		p.movePiece(m.From, m.To)
		rookFrom, rookTo := castleRookSquares(m.CastleRight)
		p.movePiece(rookFrom, rookTo)
		p.updateCastlingRights(m.From)

	case move.Promotion:
		p.removePiece(m.From)
		p.addPiece(m.To, piece.New(m.Promoted, m.Piece.Color()))
		p.halfmoveClock = 0

	case move.PromotingCapture:
		p.updateCastlingRights(m.To)
		p.removePiece(m.To)
		p.removePiece(m.From)
		p.addPiece(m.To, piece.New(m.Promoted, m.Piece.Color()))
		p.halfmoveClock = 0
	}

	p.sideToMove = p.sideToMove.Other()
	p.hash ^= zobrist.SideToMove
	if p.sideToMove == piece.White {
		p.fullMoves++
	}

	p.hashHistory = append(p.hashHistory, p.hash)
	if len(p.hashHistory) > repetitionWindow {
		p.hashHistory = p.hashHistory[len(p.hashHistory)-repetitionWindow:]
	}
}

// UnmakeMove reverses the effect of the immediately preceding MakeMove(m)
// call. m must be the same move that was just made.
func (p *Position) UnmakeMove(m move.Move) {
	if len(p.hashHistory) > 0 {
		p.hashHistory = p.hashHistory[:len(p.hashHistory)-1]
	}

	if p.sideToMove == piece.White {
		p.fullMoves--
	}
	p.sideToMove = p.sideToMove.Other()

	switch m.Kind {
	case move.Quiet, move.DoublePawnPush:
		p.movePiece(m.To, m.From)

	case move.Capture:
		p.movePiece(m.To, m.From)
		p.addPiece(m.To, m.CapturedPiece)

	case move.EnPassantCapture:
		p.movePiece(m.To, m.From)
		p.addPiece(m.CapturedPawnSquare, m.CapturedPiece)

	case move.Castle:
		p.movePiece(m.To, m.From)
		rookFrom, rookTo := castleRookSquares(m.CastleRight)
		p.movePiece(rookTo, rookFrom)

	case move.Promotion:
		p.removePiece(m.To)
		p.addPiece(m.From, m.Piece)

	case move.PromotingCapture:
		p.removePiece(m.To)
		p.addPiece(m.From, m.Piece)
		p.addPiece(m.To, m.CapturedPiece)
	}

	last := p.undoStack[len(p.undoStack)-1]
	p.undoStack = p.undoStack[:len(p.undoStack)-1]

	p.epSquare = last.epSquare
	p.castlingRights = last.castlingRights
	p.halfmoveClock = last.halfmoveClock
	p.hash = last.hash
}

// GivesCheck reports whether playing m (which must be pseudo-legal)
// would leave the opponent's king in check. It is computed by actually
// playing the move and checking the resulting position, which correctly
// covers discovered checks, en-passant discoveries, and promotions
// without a separate geometric fast path for each.
func (p *Position) GivesCheck(m move.Move) bool {
	mover := m.Piece.Color()
	p.MakeMove(m)
	check := p.InCheck(mover.Other())
	p.UnmakeMove(m)
	return check
}
