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

// Package zobrist implements incremental position fingerprinting: a
// fixed table of random 64-bit keys, one per board feature, XORed
// together to produce a stable hash. Because XOR is its own inverse,
// toggling a feature on then off again (as make/unmake does) restores
// the original hash exactly.
package zobrist

import (
	"github.com/kestrelchess/branchpoint/internal/util"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// Key is a position fingerprint.
type Key uint64

// PieceSquare holds one key per (piece, square) combination.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one key per file, used when an en-passant target on
// that file is available.
var EnPassant [square.FileN]Key

// Castling holds one key per possible CastlingRights value.
var Castling [move.N]Key

// SideToMove is XORed in whenever it is Black's turn to move.
var SideToMove Key

func init() {
	// seed borrowed from Stockfish's own zobrist initialization, chosen
	// for its long observed period under this generator
	var rng util.PRNG
	rng.Seed(1070372)

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < move.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}

// Of computes a position's hash from scratch, given its placed pieces,
// en-passant target, castling rights, and side to move. It yields the
// same value a Position maintains incrementally, so it can serve to check
// that hash for drift; no code in this repository calls it at present.
func Of(pieces func(yield func(square.Square, piece.Piece) bool), ep square.Square, rights move.CastlingRights, stm piece.Color) Key {
	var key Key

	pieces(func(s square.Square, p piece.Piece) bool {
		key ^= PieceSquare[p][s]
		return true
	})

	if ep != square.None {
		key ^= EnPassant[ep.File()]
	}

	key ^= Castling[rights]

	if stm == piece.Black {
		key ^= SideToMove
	}

	return key
}
