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

package position

// Perft counts the leaves of the legal game tree rooted at p, to the
// given depth. It is a correctness tool for move generation, not a
// search: every leaf at depth 0 counts as one node regardless of
// position.
func (p *Position) Perft(depth int) int {
	if depth == 0 {
		return 1
	}

	mover := p.sideToMove
	nodes := 0
	for _, m := range p.GenerateMoves() {
		p.MakeMove(m)
		if !p.InCheck(mover) {
			nodes += p.Perft(depth - 1)
		}
		p.UnmakeMove(m)
	}
	return nodes
}

// Divide returns, for every legal move from p, the perft count of the
// subtree it roots at depth-1; a debugging aid for isolating which
// branch of a move generator diverges from a reference count.
func (p *Position) Divide(depth int) map[string]int {
	results := make(map[string]int)

	mover := p.sideToMove
	for _, m := range p.GenerateMoves() {
		p.MakeMove(m)
		if !p.InCheck(mover) {
			if depth <= 1 {
				results[m.String()] = 1
			} else {
				results[m.String()] = p.Perft(depth - 1)
			}
		}
		p.UnmakeMove(m)
	}
	return results
}
