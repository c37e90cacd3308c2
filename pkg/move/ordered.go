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

// score is the set of integer types usable as a move ordering score.
// 64-bit integer types are not included.
type score interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// List is a move list annotated with an ordering score per move, lazily
// selection-sorted as the search picks moves from it: since alpha-beta
// usually cuts off before the whole list is explored, fully sorting it
// up front would waste work on moves that are never visited.
type List[T score] struct {
	moves  []Move
	scores []T
}

// NewList scores every move in moves with scorer and returns the
// resulting ordered list.
func NewList[T score](moves []Move, scorer func(Move) T) List[T] {
	scores := make([]T, len(moves))
	for i, m := range moves {
		scores[i] = scorer(m)
	}
	return List[T]{moves: moves, scores: scores}
}

// Len returns the number of moves in the list; Pick reorders moves but
// never removes them.
func (l *List[T]) Len() int {
	return len(l.moves)
}

// Pick performs a single selection-sort step: it finds the
// highest-scoring move at or after index, swaps it into index, and
// returns it.
func (l *List[T]) Pick(index int) Move {
	best := index
	for i := index + 1; i < len(l.moves); i++ {
		if l.scores[i] > l.scores[best] {
			best = i
		}
	}

	l.moves[index], l.moves[best] = l.moves[best], l.moves[index]
	l.scores[index], l.scores[best] = l.scores[best], l.scores[index]

	return l.moves[index]
}
