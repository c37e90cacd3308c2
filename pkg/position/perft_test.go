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

package position_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/branchpoint/pkg/position"
)

// kraken positions (the standard perft divide test suite) cross every
// move-generation edge case: castling through check, en-passant
// discovered check, underpromotion, and deep pin/check combinations.
func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"startpos", position.StartFEN, 5, 4_865_609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4_085_603},
		{"endgame-rook", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674_624},
		{"promotion-heavy", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15_833_292},
		{"d7-promotion", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2_103_487},
		{"castled-middlegame", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3_894_594},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if testing.Short() && c.depth >= 5 {
				t.Skip("skipping deep perft in short mode")
			}

			pos, err := position.NewFromFEN(c.fen)
			require.NoError(t, err)
			require.Equal(t, c.nodes, pos.Perft(c.depth))
		})
	}
}

// TestPerftDepthOneEqualsLegalMoveCount exercises spec.md 8's "the
// number of legal moves equals perft(P, 1)" invariant directly.
func TestPerftDepthOneEqualsLegalMoveCount(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)
	require.Equal(t, len(pos.GenerateMoves()), pos.Perft(1))
}

// TestMakeUnmakeRestoresHash exercises spec.md 8's make/unmake
// round-trip invariant: every legal move, made then unmade, restores
// the position exactly, including its hash.
func TestMakeUnmakeRestoresHash(t *testing.T) {
	pos, err := position.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	before := pos.Hash()
	for _, m := range pos.GenerateMoves() {
		pos.MakeMove(m)
		pos.UnmakeMove(m)
		require.Equal(t, before, pos.Hash(), "move %s did not restore hash", m)
	}
}
