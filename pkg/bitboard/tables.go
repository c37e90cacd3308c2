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

// useful constant bitboards
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files maps a square.File to its bitboard.
var Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// rank bitboards
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = 0x000000000000ff00
	Rank3 Board = 0x0000000000ff0000
	Rank4 Board = 0x00000000ff000000
	Rank5 Board = 0x000000ff00000000
	Rank6 Board = 0x0000ff0000000000
	Rank7 Board = 0x00ff000000000000
	Rank8 Board = 0xff00000000000000
)

// Ranks maps a square.Rank to its bitboard.
var Ranks = [square.RankN]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Squares maps every square to its single-bit mask.
var Squares [square.N]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
	}
}
