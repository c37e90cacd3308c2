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

package move

import "fmt"

// Variation represents a principal variation: a sequence of moves
// intended to be played one after another from some starting position.
type Variation struct {
	moves []Move
}

// Move returns the ith move of the variation, or Null if it doesn't
// exist.
func (v *Variation) Move(i int) Move {
	if i < 0 || i >= len(v.moves) {
		return Null
	}
	return v.moves[i]
}

// Len returns the number of moves in the variation.
func (v *Variation) Len() int {
	return len(v.moves)
}

// Clear empties the variation.
func (v *Variation) Clear() {
	v.moves = v.moves[:0]
}

// Update replaces the variation with parent followed by the full child
// line. Used while unwinding a search: each ply prepends its chosen move
// to the principal variation returned by the recursive call.
func (v *Variation) Update(parent Move, child Variation) {
	v.Clear()
	v.moves = append(v.moves, parent)
	v.moves = append(v.moves, child.moves...)
}

// String renders the variation as space separated long algebraic moves.
func (v Variation) String() string {
	str := fmt.Sprintf("%v", v.moves)
	if len(str) < 2 {
		return str
	}
	return str[1 : len(str)-1]
}
