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

// Package uci is the thin collaborator sitting between a GUI speaking
// the Universal Chess Interface and the search core: it owns line
// parsing and "info"/"bestmove" formatting, neither of which the core
// itself knows about. It handles no engine options; "setoption" and
// other unrecognised commands are ignored. The core is handed a
// (Position, Constraints, Inputs) tuple and returns Results; everything
// UCI-shaped happens in this package alone.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kestrelchess/branchpoint/pkg/eval"
	"github.com/kestrelchess/branchpoint/pkg/move"
	"github.com/kestrelchess/branchpoint/pkg/ordering"
	"github.com/kestrelchess/branchpoint/pkg/position"
	"github.com/kestrelchess/branchpoint/pkg/search"
	"github.com/kestrelchess/branchpoint/pkg/tt"
)

// Client is a single UCI session: one position, one persistent
// transposition table and move-ordering state reused across searches,
// and a halt flag the "stop" command sets.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	pos   *position.Position
	table *tt.Table
	order *ordering.State
	halt  atomic.Bool
}

// NewClient creates a Client listening on stdin/stdout, starting from
// the standard initial position.
func NewClient() *Client {
	pos, _ := position.NewFromFEN(position.StartFEN)
	return &Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		pos:    pos,
		table:  tt.NewDefault(),
		order:  ordering.New(),
	}
}

// Start runs the read-eval-print loop against the client's stdin until
// "quit" is received or the input stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if !c.dispatch(fields[0], fields[1:]) {
			return nil
		}
	}
}

// dispatch runs a single command, returning false if the session should
// end.
func (c *Client) dispatch(name string, args []string) bool {
	switch name {
	case "uci":
		fmt.Fprintln(c.stdout, "id name Branchpoint")
		fmt.Fprintln(c.stdout, "id author The Branchpoint Authors")
		fmt.Fprintln(c.stdout, "uciok")

	case "isready":
		fmt.Fprintln(c.stdout, "readyok")

	case "ucinewgame":
		c.table.Clear()
		c.order.Clear()

	case "position":
		c.cmdPosition(args)

	case "go":
		c.cmdGo(args)

	case "stop":
		c.halt.Store(true)

	case "quit":
		return false
	}

	return true
}

// cmdPosition implements "position [startpos|fen <fen>] [moves m1 m2 ...]".
func (c *Client) cmdPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var movesIdx int
	var pos *position.Position
	var err error

	switch args[0] {
	case "startpos":
		pos, err = position.NewFromFEN(position.StartFEN)
		movesIdx = 1
	case "fen":
		end := len(args)
		for i, a := range args[1:] {
			if a == "moves" {
				end = i + 1
				break
			}
		}
		pos, err = position.NewFromFEN(strings.Join(args[1:end], " "))
		movesIdx = end
	default:
		return
	}

	if err != nil {
		fmt.Fprintf(c.stdout, "info string %v\n", err)
		return
	}
	c.pos = pos

	if movesIdx < len(args) && args[movesIdx] == "moves" {
		for _, text := range args[movesIdx+1:] {
			m, ok := findMove(c.pos, text)
			if !ok {
				fmt.Fprintf(c.stdout, "info string illegal move %s\n", text)
				return
			}
			c.pos.MakeMove(m)
		}
	}
}

// findMove looks up the legal move matching long-algebraic text.
func findMove(pos *position.Position, text string) (move.Move, bool) {
	for _, candidate := range pos.GenerateMoves() {
		if candidate.String() == text {
			return candidate, true
		}
	}
	return move.Null, false
}

// cmdGo implements a useful subset of "go": depth, nodes, movetime, and
// infinite. Clock-based time management (wtime/btime/winc/binc/
// movestogo) and pondering are not implemented.
func (c *Client) cmdGo(args []string) {
	constraints := search.Constraints{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i < len(args) {
				constraints.MaxDepth, _ = strconv.Atoi(args[i])
			}
		case "nodes":
			i++
			if i < len(args) {
				constraints.MaxNodes, _ = strconv.Atoi(args[i])
			}
		case "movetime":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				constraints.Deadline = time.Now().Add(time.Duration(ms) * time.Millisecond)
			}
		case "infinite":
			constraints.Infinite = true
		}
	}

	c.halt.Store(false)
	s := search.New(c.pos, search.Inputs{Halt: &c.halt, Table: c.table, Ordering: c.order})

	start := time.Now()
	results, err := s.Start(constraints)
	if err != nil {
		fmt.Fprintf(c.stdout, "info string %v\n", err)
		fmt.Fprintln(c.stdout, "bestmove 0000")
		return
	}

	elapsed := time.Since(start)
	nps := int64(0)
	if elapsed > 0 {
		nps = int64(float64(results.Nodes) / elapsed.Seconds())
	}

	fmt.Fprintf(c.stdout, "info depth %d score %s nodes %d nps %d time %d pv %s\n",
		results.Depth, scoreString(results.Evaluation), results.Nodes, nps,
		elapsed.Milliseconds(), results.PrincipalVariation.String())

	best := results.PrincipalVariation.Move(0)
	if best.IsNull() {
		fmt.Fprintln(c.stdout, "bestmove 0000")
		return
	}
	fmt.Fprintf(c.stdout, "bestmove %s\n", best)
}

func scoreString(s eval.Score) string {
	return s.String()
}
