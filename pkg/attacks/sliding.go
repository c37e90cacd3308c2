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
	"math/bits"

	"github.com/kestrelchess/branchpoint/internal/util"
	"github.com/kestrelchess/branchpoint/pkg/bitboard"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// maxRookBlockers and maxBishopBlockers bound the number of distinct
// blocker-mask permutations a single square's magic table must hold.
const (
	maxRookBlockers   = 4096
	maxBishopBlockers = 512
)

// magic indexes a sliding piece's attack table for one square: the
// relevant blocker mask is multiplied by Number and shifted right by
// Shift to produce a dense, collision-free index.
// https://www.chessprogramming.org/Magic_Bitboards
type magic struct {
	number      uint64
	blockerMask bitboard.Board
	shift       uint8
}

func (m magic) index(blockers bitboard.Board) uint64 {
	blockers &= m.blockerMask
	return (uint64(blockers) * m.number) >> m.shift
}

var (
	rookMagics   [square.N]magic
	bishopMagics [square.N]magic

	rookMoves   [square.N][maxRookBlockers]bitboard.Board
	bishopMoves [square.N][maxBishopBlockers]bitboard.Board
)

// magicSeeds are PRNG seeds, one per rank, known to yield valid magics
// quickly; carried over from the Stockfish chess engine.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// moveFunc computes a sliding piece's attack set from s given occupancy
// occ. When mask is true it instead computes the relevant blocker mask:
// the same rays, but with the board edge squares excluded, since a piece
// sitting on the edge can never block further sliding.
type moveFunc func(s square.Square, occ bitboard.Board, mask bool) bitboard.Board

func rookRays(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	fileAttacks := hyperbola(s, occ, bitboard.Files[s.File()])
	rankAttacks := hyperbola(s, occ, bitboard.Ranks[s.Rank()])

	if mask {
		fileAttacks &^= bitboard.Rank1 | bitboard.Rank8
		rankAttacks &^= bitboard.FileA | bitboard.FileH
	}

	return fileAttacks | rankAttacks
}

func bishopRays(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	diagonal := hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	attacks := diagonal | antiDiagonal
	if mask {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}

	return attacks
}

// hyperbola computes the attack set of a slider confined to mask (a
// single rank, file, or diagonal) given board occupancy occ, using the
// o^(o-2r) trick known as Hyperbola Quintessence.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func hyperbola(s square.Square, occ, mask bitboard.Board) bitboard.Board {
	r := bitboard.Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}

func reverse(b bitboard.Board) bitboard.Board {
	return bitboard.Board(bits.Reverse64(uint64(b)))
}

// generateMagics searches, independently for each square, for a magic
// number whose multiplication hashes every permutation of that square's
// relevant blockers to a distinct table slot (or one already holding the
// same attack set). It keeps drawing fresh candidates until one works.
func generateMagics(magics *[square.N]magic, moves func(square.Square) []bitboard.Board, move moveFunc) {
	var rng util.PRNG

	for s := square.A1; s <= square.H8; s++ {
		m := &magics[s]

		m.blockerMask = move(s, bitboard.Empty, true)
		bitCount := m.blockerMask.Count()
		m.shift = uint8(64 - bitCount)

		permutations := blockerPermutations(m.blockerMask, 1<<bitCount)

		rng.Seed(magicSeeds[s.Rank()])

		table := moves(s)

	searching:
		for {
			m.number = rng.SparseUint64()

			for i := range table {
				table[i] = bitboard.Empty
			}

			for _, blockers := range permutations {
				idx := m.index(blockers)
				attacks := move(s, blockers, false)

				if table[idx] != bitboard.Empty && table[idx] != attacks {
					continue searching
				}
				table[idx] = attacks
			}

			break
		}
	}
}

// blockerPermutations enumerates every subset of mask using the
// Carry-Rippler trick, producing all 2^popcount(mask) permutations.
func blockerPermutations(mask bitboard.Board, n int) []bitboard.Board {
	permutations := make([]bitboard.Board, n)
	blockers := bitboard.Empty
	for i := 0; blockers != bitboard.Empty || i == 0; i++ {
		permutations[i] = blockers
		blockers = (blockers - mask) & mask
	}
	return permutations
}

func init() {
	generateMagics(&rookMagics, func(s square.Square) []bitboard.Board {
		return rookMoves[s][:]
	}, rookRays)

	generateMagics(&bishopMagics, func(s square.Square) []bitboard.Board {
		return bishopMoves[s][:]
	}, bishopRays)
}

// Rook returns a rook's attack set from s given board occupancy occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookMoves[s][rookMagics[s].index(occ)]
}

// Bishop returns a bishop's attack set from s given board occupancy occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopMoves[s][bishopMagics[s].index(occ)]
}

// Queen returns a queen's attack set from s given board occupancy occ,
// being the union of a rook's and a bishop's attack sets from s.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
