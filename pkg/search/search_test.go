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

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/branchpoint/pkg/position"
	"github.com/kestrelchess/branchpoint/pkg/search"
)

// TestFindsMateInOne exercises spec.md 8's mate-finding scenario: given
// a position where mate-in-1 is the unique best line, the searcher must
// play it.
func TestFindsMateInOne(t *testing.T) {
	pos, err := position.NewFromFEN("7r/5pk1/2Q2bpp/3p4/P2q3P/1P6/2P5/1K3R2 b - - 0 1")
	require.NoError(t, err)

	s := search.New(pos, search.Inputs{})
	results, err := s.Start(search.Constraints{MaxDepth: 4})
	require.NoError(t, err)

	best := results.PrincipalVariation.Move(0)
	require.False(t, best.IsNull())
	assert.Equal(t, "d4a1", best.String())
	assert.True(t, results.Evaluation.IsMateScore())
}

// TestSearchReportsLegalMoveFromStartpos is a smoke test that a shallow
// search from the initial position terminates and returns a legal move.
func TestSearchReportsLegalMoveFromStartpos(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	s := search.New(pos, search.Inputs{})
	results, err := s.Start(search.Constraints{MaxDepth: 3})
	require.NoError(t, err)

	best := results.PrincipalVariation.Move(0)
	require.False(t, best.IsNull())

	legal := pos.GenerateMoves()
	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	assert.True(t, found, "returned move %s is not in the legal move list", best)
}
