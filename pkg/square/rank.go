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

package square

// Rank represents a rank (horizontal row) on the chessboard.
type Rank int8

// constants representing every rank
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks on the board.
const RankN = 8

// String converts a Rank to its string representation.
func (r Rank) String() string {
	const rankToStr = "12345678"
	return string(rankToStr[r])
}

// RankFrom creates a Rank from its single-character identifier.
func RankFrom(id string) Rank {
	return Rank(id[0] - '1')
}
