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

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/ordering"
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

func noCheck(move.Move) bool { return false }

func TestPVMoveOutranksEverything(t *testing.T) {
	state := ordering.New()

	pv := move.NewQuiet(square.E2, square.E4, piece.New(piece.Pawn, piece.White))
	capture := move.NewCapture(square.D2, square.D4, piece.New(piece.Pawn, piece.White), piece.New(piece.Queen, piece.Black))

	scorer := state.Scorer(0, pv, noCheck)
	assert.Greater(t, scorer(pv), scorer(capture))
}

func TestCapturesOutrankQuietMoves(t *testing.T) {
	state := ordering.New()

	quiet := move.NewQuiet(square.A2, square.A3, piece.New(piece.Pawn, piece.White))
	capture := move.NewCapture(square.D2, square.D4, piece.New(piece.Pawn, piece.White), piece.New(piece.Knight, piece.Black))

	scorer := state.Scorer(0, move.Null, noCheck)
	assert.Greater(t, scorer(capture), scorer(quiet))
}

func TestRecordCutoffPromotesQuietMoveToKiller(t *testing.T) {
	state := ordering.New()

	quiet := move.NewQuiet(square.G1, square.F3, piece.New(piece.Knight, piece.White))
	other := move.NewQuiet(square.B1, square.C3, piece.New(piece.Knight, piece.White))

	before := state.Scorer(0, move.Null, noCheck)
	assert.Equal(t, before(quiet), before(other), "both quiet moves should start level")

	state.RecordCutoff(0, 4, quiet)

	after := state.Scorer(0, move.Null, noCheck)
	assert.Greater(t, after(quiet), after(other), "a killer move must outrank an unrelated quiet move at the same ply")
}
