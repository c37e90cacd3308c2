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

package bitboard

import "github.com/kestrelchess/branchpoint/pkg/square"

// DiagonalN is the number of a1-h8 style diagonals (and, separately, the
// number of a8-h1 style anti-diagonals) on the board.
const DiagonalN = 15

// Diagonals maps a square.Diagonal() index to the full mask of every
// square sharing that diagonal.
var Diagonals [DiagonalN]Board

// AntiDiagonals maps a square.AntiDiagonal() index to the full mask of
// every square sharing that anti-diagonal.
var AntiDiagonals [DiagonalN]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Diagonals[s.Diagonal()].Set(s)
		AntiDiagonals[s.AntiDiagonal()].Set(s)
	}
}
