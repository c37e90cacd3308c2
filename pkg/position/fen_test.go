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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/branchpoint/pkg/position"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		pos, err := position.NewFromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, pos.FEN())
	}
}

func TestFENErrors(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		kind position.FENErrorKind
	}{
		{"missing side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", position.MissingSide},
		{"illegal side char", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", position.IllegalSideChar},
		{"bad dimensions", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", position.InvalidBoardDimensions},
		{"bad castle rights", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZx - 0 1", position.IllegalCastleRights},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := position.NewFromFEN(c.fen)
			require.Error(t, err)

			var fenErr *position.FENError
			require.ErrorAs(t, err, &fenErr)
			assert.Equal(t, c.kind, fenErr.Kind)
		})
	}
}

func TestMissingKingIsRejected(t *testing.T) {
	_, err := position.NewFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	require.Error(t, err)

	var missing *position.MissingKingError
	require.ErrorAs(t, err, &missing)
}
