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

// Direction represents one of the eight compass directions a sliding
// piece or pawn push can move along.
type Direction int8

// constants representing every direction, along with their offset in
// square indices. Since squares are numbered row-major from A1, moving
// north increases the index by 8 and moving east increases it by 1.
const (
	North Direction = 8
	South Direction = -8
	East  Direction = 1
	West  Direction = -1

	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Offset returns the signed square-index delta of the direction.
func (d Direction) Offset() int {
	return int(d)
}
