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
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
	"github.com/kestrelchess/branchpoint/pkg/zobrist"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENErrorKind enumerates every distinct way a FEN string can fail to
// parse.
type FENErrorKind int

// constants naming every FEN parse failure
const (
	MissingPosition FENErrorKind = iota
	MissingSide
	IllegalSideChar
	InvalidBoardDimensions
	IllegalCastleRights
	IllegalEnPassant
	IllegalHalfmoveClock
	IllegalFullmoveCounter
)

func (k FENErrorKind) String() string {
	switch k {
	case MissingPosition:
		return "missing position field"
	case MissingSide:
		return "missing side to move field"
	case IllegalSideChar:
		return "illegal side to move character"
	case InvalidBoardDimensions:
		return "invalid board dimensions"
	case IllegalCastleRights:
		return "illegal castling rights field"
	case IllegalEnPassant:
		return "illegal en-passant target square"
	case IllegalHalfmoveClock:
		return "illegal halfmove clock"
	case IllegalFullmoveCounter:
		return "illegal fullmove counter"
	default:
		return "unknown fen error"
	}
}

// FENError reports a single FEN parse failure, naming both the offending
// field and its kind. No partial Position is ever returned alongside it.
type FENError struct {
	Kind  FENErrorKind
	Field string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("fen: %s: %q", e.Kind, e.Field)
}

// MissingKingError reports that a FEN's otherwise well-formed placement
// is missing one side's king, which NewFromFEN refuses to build a
// Position around.
type MissingKingError struct {
	Color piece.Color
}

func (e *MissingKingError) Error() string {
	return fmt.Sprintf("position: missing king for %s", e.Color)
}

// NewFromFEN parses fen into a Position. No position is returned on
// error; every failure is one of the enumerated FENErrorKind values, or
// a MissingKingError if the board has no king for one of the colors.
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)

	if len(fields) < 1 || fields[0] == "" {
		return nil, &FENError{Kind: MissingPosition, Field: fen}
	}
	if len(fields) < 2 {
		return nil, &FENError{Kind: MissingSide, Field: fen}
	}

	var p Position
	for s := square.A1; s <= square.H8; s++ {
		p.mailbox[s] = piece.NoPiece
	}
	p.epSquare = square.None

	switch fields[1] {
	case "w":
		p.sideToMove = piece.White
	case "b":
		p.sideToMove = piece.Black
	default:
		return nil, &FENError{Kind: IllegalSideChar, Field: fields[1]}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &FENError{Kind: InvalidBoardDimensions, Field: fields[0]}
	}

	for i, rankData := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA

		for _, c := range rankData {
			if file > square.FileH {
				return nil, &FENError{Kind: InvalidBoardDimensions, Field: fields[0]}
			}

			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				continue
			}

			pc, err := pieceFromFEN(c)
			if err != nil {
				return nil, &FENError{Kind: InvalidBoardDimensions, Field: fields[0]}
			}

			p.addPiece(square.New(file, rank), pc)
			file++
		}

		if file != square.FileH+1 {
			return nil, &FENError{Kind: InvalidBoardDimensions, Field: fields[0]}
		}
	}

	if p.Pieces(piece.King, piece.White).IsEmpty() {
		return nil, &MissingKingError{Color: piece.White}
	}
	if p.Pieces(piece.King, piece.Black).IsEmpty() {
		return nil, &MissingKingError{Color: piece.Black}
	}

	if len(fields) > 2 {
		if !isValidCastleField(fields[2]) {
			return nil, &FENError{Kind: IllegalCastleRights, Field: fields[2]}
		}
		p.castlingRights = move.NewCastlingRights(fields[2])
	}
	p.hash ^= zobrist.Castling[p.castlingRights]

	if len(fields) > 3 && fields[3] != "-" {
		ep := parseSquare(fields[3])
		if ep == square.None {
			return nil, &FENError{Kind: IllegalEnPassant, Field: fields[3]}
		}
		p.epSquare = ep
		p.hash ^= zobrist.EnPassant[ep.File()]
	}

	if len(fields) > 4 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil || clock < 0 {
			return nil, &FENError{Kind: IllegalHalfmoveClock, Field: fields[4]}
		}
		p.halfmoveClock = clock
	}

	p.fullMoves = 1
	if len(fields) > 5 {
		full, err := strconv.Atoi(fields[5])
		if err != nil || full < 1 {
			return nil, &FENError{Kind: IllegalFullmoveCounter, Field: fields[5]}
		}
		p.fullMoves = full
	}

	if p.sideToMove == piece.Black {
		p.hash ^= zobrist.SideToMove
	}

	p.hashHistory = append(p.hashHistory, p.hash)

	return &p, nil
}

func pieceFromFEN(c rune) (piece.Piece, error) {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N', 'P', 'k', 'q', 'r', 'b', 'n', 'p':
		return piece.NewFromString(string(c)), nil
	default:
		return piece.NoPiece, fmt.Errorf("position: illegal piece character %q", c)
	}
}

func isValidCastleField(field string) bool {
	if field == "-" {
		return true
	}
	for _, c := range field {
		switch c {
		case 'K', 'Q', 'k', 'q':
		default:
			return false
		}
	}
	return true
}

func parseSquare(field string) square.Square {
	if len(field) != 2 {
		return square.None
	}
	file := field[0]
	rank := field[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return square.None
	}
	return square.New(square.File(file-'a'), square.Rank(rank-'1'))
}

// FEN renders the position as a standard six-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			pc := p.mailbox[square.New(file, rank)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoves))

	return sb.String()
}
