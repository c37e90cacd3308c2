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

// Command perft runs move-generator node-count verification (perft) from
// a FEN to a given depth, reporting a per-root-move breakdown (divide)
// and a progress bar over the iterative-deepening sweep leading up to it.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/kestrelchess/branchpoint/pkg/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "maximum depth to run perft to")
	divide := flag.Bool("divide", true, "print a per-root-move node count breakdown at the final depth")
	flag.Parse()

	pos, err := position.NewFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}

	bar := progressbar.Default(int64(*depth), "perft")
	for d := 1; d <= *depth; d++ {
		nodes := pos.Perft(d)
		_ = bar.Add(1)
		fmt.Printf("depth %d: %d nodes\n", d, nodes)
	}

	if *divide {
		breakdown := pos.Divide(*depth)
		moves := make([]string, 0, len(breakdown))
		for m := range breakdown {
			moves = append(moves, m)
		}
		sort.Strings(moves)

		fmt.Println()
		total := 0
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, breakdown[m])
			total += breakdown[m]
		}
		fmt.Printf("\ntotal: %d\n", total)
	}
}
