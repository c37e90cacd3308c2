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

package eval

import (
	"github.com/kestrelchess/branchpoint/pkg/piece"
	"github.com/kestrelchess/branchpoint/pkg/square"
)

// Accumulator keeps a position's midgame/endgame scores and game phase
// updated incrementally as pieces are added, removed, or moved, rather
// than recomputed from scratch on every Score call.
type Accumulator struct {
	mg    [piece.ColorN]Score
	eg    [piece.ColorN]Score
	phase int
}

// AddPiece places p on s in the accumulator.
func (a *Accumulator) AddPiece(s square.Square, p piece.Piece) {
	c := p.Color()
	a.mg[c] += mgTable[p][s]
	a.eg[c] += egTable[p][s]
	a.phase += phaseWeight[p.Type()]
}

// RemovePiece removes p, previously placed on s, from the accumulator.
func (a *Accumulator) RemovePiece(s square.Square, p piece.Piece) {
	c := p.Color()
	a.mg[c] -= mgTable[p][s]
	a.eg[c] -= egTable[p][s]
	a.phase -= phaseWeight[p.Type()]
}

// Score returns the tapered evaluation from the perspective of side.
func (a *Accumulator) Score(side piece.Color) Score {
	other := side.Other()

	mgScore := a.mg[side] - a.mg[other]
	egScore := a.eg[side] - a.eg[other]

	mgPhase := a.phase
	if mgPhase > totalPhase {
		mgPhase = totalPhase
	}
	egPhase := totalPhase - mgPhase

	return (mgScore*Score(mgPhase) + egScore*Score(egPhase)) / totalPhase
}
