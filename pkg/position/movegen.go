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
	"github.com/kestrelchess/branchpoint/pkg/bitboard"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// genState holds the bitboards derived once per GenerateMoves call and
// shared by every piece-specific appender: who's in check, which pieces
// are pinned and along which axis, and where pieces are even allowed to
// land. Keeping this off Position means none of it needs to survive
// between calls.
type genState struct {
	pos *Position

	us, them piece.Color

	friends, enemies, occupied bitboard.Board

	checkN    int
	checkMask bitboard.Board

	pinnedD, pinnedHV bitboard.Board

	seenByEnemy bitboard.Board

	target     bitboard.Board
	kingTarget bitboard.Board
}

// averageMoveCount sizes the initial move slice; perft sampling across
// typical middlegame positions puts the average near 31.
// https://chess.stackexchange.com/a/24325/33336
const averageMoveCount = 31

// GenerateMoves returns every legal move available to the side to move.
func (p *Position) GenerateMoves() []move.Move {
	s := p.newGenState()

	moves := make([]move.Move, 0, averageMoveCount)
	s.appendKingMoves(&moves)

	if s.checkN >= 2 {
		// double check: only the king can move
		return moves
	}

	s.appendKnightMoves(&moves)
	s.appendBishopMoves(&moves)
	s.appendRookMoves(&moves)
	s.appendQueenMoves(&moves)
	s.appendPawnMoves(&moves)

	return moves
}

func (p *Position) newGenState() *genState {
	s := &genState{
		pos:     p,
		us:      p.sideToMove,
		them:    p.sideToMove.Other(),
		friends: p.PiecesOfColor(p.sideToMove),
		enemies: p.PiecesOfColor(p.sideToMove.Other()),
	}
	s.occupied = s.friends | s.enemies

	s.calculateCheckMask()
	s.calculatePinMasks()
	s.seenByEnemy = p.seenBy(s.them)

	s.target = ^s.friends & s.checkMask
	s.kingTarget = ^s.friends &^ s.seenByEnemy

	return s
}

// calculateCheckMask finds every enemy piece directly checking our king
// and derives the check-mask: the squares a friendly piece can move to
// that would block or capture every checker. It is Universe when the
// king isn't in check, and Empty (no move but a king move helps) when
// in double check.
func (s *genState) calculateCheckMask() {
	kingSq := s.pos.kingSquare[s.us]

	pawns := s.pos.Pieces(piece.Pawn, s.them) & attacks.Pawn[s.us][kingSq]
	knights := s.pos.Pieces(piece.Knight, s.them) & attacks.Knight[kingSq]
	bishops := (s.pos.Pieces(piece.Bishop, s.them) | s.pos.Pieces(piece.Queen, s.them)) & attacks.Bishop(kingSq, s.occupied)
	rooks := (s.pos.Pieces(piece.Rook, s.them) | s.pos.Pieces(piece.Queen, s.them)) & attacks.Rook(kingSq, s.occupied)

	switch {
	case pawns != bitboard.Empty:
		s.checkMask |= pawns
		s.checkN++
	case knights != bitboard.Empty:
		s.checkMask |= knights
		s.checkN++
	}

	if bishops != bitboard.Empty {
		sq := bishops.LSB()
		s.checkMask |= attacks.LineBetween(kingSq, sq)
		s.checkN++
	}

	if s.checkN < 2 && rooks != bitboard.Empty {
		if s.checkN == 0 && rooks.Count() > 1 {
			s.checkN = 2 // double check by two rook-like sliders
		} else {
			sq := rooks.LSB()
			s.checkMask |= attacks.LineBetween(kingSq, sq)
			s.checkN++
		}
	}

	if s.checkN == 0 {
		s.checkMask = bitboard.Universe
	}
}

// calculatePinMasks finds, for each enemy slider that would attack our
// king through exactly one of our pieces, the full line from king to
// slider: a pinned piece may only move somewhere on that line.
func (s *genState) calculatePinMasks() {
	kingSq := s.pos.kingSquare[s.us]

	for sliders := (s.pos.Pieces(piece.Rook, s.them) | s.pos.Pieces(piece.Queen, s.them)) & attacks.Rook(kingSq, s.enemies); !sliders.IsEmpty(); {
		sq := sliders.Pop()
		line := attacks.LineBetween(kingSq, sq)
		if (line & s.friends).Count() == 1 {
			s.pinnedHV |= line
		}
	}

	for sliders := (s.pos.Pieces(piece.Bishop, s.them) | s.pos.Pieces(piece.Queen, s.them)) & attacks.Bishop(kingSq, s.enemies); !sliders.IsEmpty(); {
		sq := sliders.Pop()
		line := attacks.LineBetween(kingSq, sq)
		if (line & s.friends).Count() == 1 {
			s.pinnedD |= line
		}
	}
}

func (s *genState) appendKingMoves(moves *[]move.Move) {
	kingSq := s.pos.kingSquare[s.us]
	king := piece.New(piece.King, s.us)

	targets := attacks.King[kingSq] & s.kingTarget
	s.serialize(moves, king, kingSq, targets)

	if s.checkN == 0 {
		s.appendCastlingMoves(moves)
	}
}

func (s *genState) appendKnightMoves(moves *[]move.Move) {
	knight := piece.New(piece.Knight, s.us)
	for knights := s.pos.Pieces(piece.Knight, s.us) &^ (s.pinnedD | s.pinnedHV); !knights.IsEmpty(); {
		from := knights.Pop()
		s.serialize(moves, knight, from, attacks.Knight[from]&s.target)
	}
}

func (s *genState) appendBishopMoves(moves *[]move.Move) {
	s.appendDiagonalSlider(moves, piece.New(piece.Bishop, s.us), s.pos.Pieces(piece.Bishop, s.us))
}

func (s *genState) appendRookMoves(moves *[]move.Move) {
	s.appendOrthogonalSlider(moves, piece.New(piece.Rook, s.us), s.pos.Pieces(piece.Rook, s.us))
}

func (s *genState) appendQueenMoves(moves *[]move.Move) {
	queen := piece.New(piece.Queen, s.us)
	queens := s.pos.Pieces(piece.Queen, s.us)
	s.appendDiagonalSlider(moves, queen, queens)
	s.appendOrthogonalSlider(moves, queen, queens)
}

func (s *genState) appendDiagonalSlider(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= s.pinnedHV

	pinned := sliders & s.pinnedD
	for !pinned.IsEmpty() {
		from := pinned.Pop()
		s.serialize(moves, p, from, attacks.Bishop(from, s.occupied)&s.target&s.pinnedD)
	}

	unpinned := sliders &^ s.pinnedD
	for !unpinned.IsEmpty() {
		from := unpinned.Pop()
		s.serialize(moves, p, from, attacks.Bishop(from, s.occupied)&s.target)
	}
}

func (s *genState) appendOrthogonalSlider(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= s.pinnedD

	pinned := sliders & s.pinnedHV
	for !pinned.IsEmpty() {
		from := pinned.Pop()
		s.serialize(moves, p, from, attacks.Rook(from, s.occupied)&s.target&s.pinnedHV)
	}

	unpinned := sliders &^ s.pinnedHV
	for !unpinned.IsEmpty() {
		from := unpinned.Pop()
		s.serialize(moves, p, from, attacks.Rook(from, s.occupied)&s.target)
	}
}

// serialize turns a single piece's target bitboard into Quiet/Capture
// moves and appends them.
func (s *genState) serialize(moves *[]move.Move, p piece.Piece, from square.Square, targets bitboard.Board) {
	for !targets.IsEmpty() {
		to := targets.Pop()
		if s.enemies.IsSet(to) {
			*moves = append(*moves, move.NewCapture(from, to, p, s.pos.PieceAt(to)))
		} else {
			*moves = append(*moves, move.NewQuiet(from, to, p))
		}
	}
}

var promotionTargets = piece.PromotionTypes

func (s *genState) appendCastlingMoves(moves *[]move.Move) {
	rights := s.pos.castlingRights

	blocked := s.occupied | s.seenByEnemy

	switch s.us {
	case piece.White:
		kingsidePath := bitboard.Squares[square.F1] | bitboard.Squares[square.G1]
		queensidePath := bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1]
		queensideAttackPath := bitboard.Squares[square.C1] | bitboard.Squares[square.D1]

		if rights.Has(move.WhiteKingside) && blocked&kingsidePath == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(piece.White, move.WhiteKingside))
		}
		if rights.Has(move.WhiteQueenside) &&
			s.occupied&queensidePath == bitboard.Empty &&
			s.seenByEnemy&queensideAttackPath == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(piece.White, move.WhiteQueenside))
		}
	case piece.Black:
		kingsidePath := bitboard.Squares[square.F8] | bitboard.Squares[square.G8]
		queensidePath := bitboard.Squares[square.B8] | bitboard.Squares[square.C8] | bitboard.Squares[square.D8]
		queensideAttackPath := bitboard.Squares[square.C8] | bitboard.Squares[square.D8]

		if rights.Has(move.BlackKingside) && blocked&kingsidePath == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(piece.Black, move.BlackKingside))
		}
		if rights.Has(move.BlackQueenside) &&
			s.occupied&queensidePath == bitboard.Empty &&
			s.seenByEnemy&queensideAttackPath == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(piece.Black, move.BlackQueenside))
		}
	}
}

func (s *genState) appendPawnMoves(moves *[]move.Move) {
	pawns := s.pos.Pieces(piece.Pawn, s.us)

	var promotionRank, doublePushRank bitboard.Board
	if s.us == piece.White {
		promotionRank, doublePushRank = bitboard.Rank8, bitboard.Rank3
	} else {
		promotionRank, doublePushRank = bitboard.Rank1, bitboard.Rank6
	}

	captureTarget := s.enemies & s.checkMask
	pushTarget := s.checkMask &^ s.occupied

	attackers := pawns &^ s.pinnedHV
	unpinnedAttackers := attackers &^ s.pinnedD
	pinnedAttackers := attackers & s.pinnedD

	left := attacks.PawnsLeft(unpinnedAttackers, s.us) & captureTarget
	left |= attacks.PawnsLeft(pinnedAttackers, s.us) & captureTarget & s.pinnedD

	right := attacks.PawnsRight(unpinnedAttackers, s.us) & captureTarget
	right |= attacks.PawnsRight(pinnedAttackers, s.us) & captureTarget & s.pinnedD

	s.appendPawnCaptures(moves, left&^promotionRank, leftOffset(s.us))
	s.appendPawnCaptures(moves, right&^promotionRank, rightOffset(s.us))
	s.appendPawnPromotionCaptures(moves, left&promotionRank, leftOffset(s.us))
	s.appendPawnPromotionCaptures(moves, right&promotionRank, rightOffset(s.us))

	pushers := pawns &^ s.pinnedD
	unpinnedPushers := pushers &^ s.pinnedHV
	pinnedPushers := pushers & s.pinnedHV

	singleAll := attacks.PawnPush(unpinnedPushers, s.us) | (attacks.PawnPush(pinnedPushers, s.us) & s.pinnedHV)
	singleAll &^= s.occupied

	doublePush := attacks.PawnPush(singleAll&doublePushRank, s.us) & pushTarget
	single := singleAll & pushTarget

	s.appendPawnPushes(moves, single&^promotionRank, pushOffset(s.us))
	s.appendPawnPushes(moves, doublePush, 2*pushOffset(s.us))
	s.appendPawnPromotionPushes(moves, single&promotionRank, pushOffset(s.us))

	s.appendEnPassant(moves, attackers)
}

func leftOffset(c piece.Color) square.Square {
	if c == piece.White {
		return square.Square(square.NorthWest)
	}
	return square.Square(square.SouthWest)
}

func rightOffset(c piece.Color) square.Square {
	if c == piece.White {
		return square.Square(square.NorthEast)
	}
	return square.Square(square.SouthEast)
}

func pushOffset(c piece.Color) square.Square {
	if c == piece.White {
		return square.Square(square.North)
	}
	return square.Square(square.South)
}

func (s *genState) appendPawnCaptures(moves *[]move.Move, targets bitboard.Board, offset square.Square) {
	p := piece.New(piece.Pawn, s.us)
	for !targets.IsEmpty() {
		to := targets.Pop()
		from := to - offset
		*moves = append(*moves, move.NewCapture(from, to, p, s.pos.PieceAt(to)))
	}
}

func (s *genState) appendPawnPromotionCaptures(moves *[]move.Move, targets bitboard.Board, offset square.Square) {
	for !targets.IsEmpty() {
		to := targets.Pop()
		from := to - offset
		captured := s.pos.PieceAt(to)
		for _, t := range promotionTargets {
			*moves = append(*moves, move.NewPromotingCapture(from, to, s.us, captured, t))
		}
	}
}

func (s *genState) appendPawnPushes(moves *[]move.Move, targets bitboard.Board, offset square.Square) {
	isDouble := offset == 2*pushOffset(s.us)
	for !targets.IsEmpty() {
		to := targets.Pop()
		from := to - offset
		if isDouble {
			*moves = append(*moves, move.NewDoublePawnPush(from, to, s.us))
		} else {
			*moves = append(*moves, move.NewQuiet(from, to, piece.New(piece.Pawn, s.us)))
		}
	}
}

func (s *genState) appendPawnPromotionPushes(moves *[]move.Move, targets bitboard.Board, offset square.Square) {
	for !targets.IsEmpty() {
		to := targets.Pop()
		from := to - offset
		for _, t := range promotionTargets {
			*moves = append(*moves, move.NewPromotion(from, to, s.us, t))
		}
	}
}

// appendEnPassant emits the en-passant capture if the target square is
// set and the capture doesn't leave our own king in check: the ordinary
// pin filter doesn't cover it because it can expose a horizontal pin
// through both the capturing and captured pawn at once.
func (s *genState) appendEnPassant(moves *[]move.Move, attackers bitboard.Board) {
	pos := s.pos
	target := pos.epSquare
	if target == square.None {
		return
	}

	capturedSq := target - pushOffset(s.us)
	mask := bitboard.Squares[target] | bitboard.Squares[capturedSq]
	if s.checkMask&mask == bitboard.Empty {
		return
	}

	kingSq := pos.kingSquare[s.us]
	enemyRooksQueens := (pos.Pieces(piece.Rook, s.them) | pos.Pieces(piece.Queen, s.them))
	possiblePin := bitboard.Ranks[capturedSq.Rank()].IsSet(kingSq) && enemyRooksQueens&bitboard.Ranks[capturedSq.Rank()] != bitboard.Empty

	for fromBB := attacks.Pawn[s.them][target] & attackers; !fromBB.IsEmpty(); {
		from := fromBB.Pop()

		if s.pinnedD.IsSet(from) && !s.pinnedD.IsSet(target) {
			continue
		}

		if possiblePin {
			afterCapture := s.occupied &^ (bitboard.Squares[from] | bitboard.Squares[capturedSq])
			if attacks.Rook(kingSq, afterCapture)&enemyRooksQueens&bitboard.Ranks[capturedSq.Rank()] != bitboard.Empty {
				continue
			}
		}

		*moves = append(*moves, move.NewEnPassantCapture(from, target, s.us))
	}
}
