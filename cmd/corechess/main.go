/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/config"
	"github.com/frankkopp/corechess/internal/perft"
	"github.com/frankkopp/corechess/internal/status"
	"github.com/frankkopp/corechess/internal/tt"
	"github.com/frankkopp/corechess/internal/types"
	"github.com/frankkopp/corechess/pkg/chess"
)

var out = message.NewPrinter(language.German)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "corechess: fatal:", r)
			os.Exit(1)
		}
	}()

	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", "", "FEN of the position to use (defaults to the standard start position)")
	perftDepth := flag.Int("perft", 0, "runs perft on the given position up to this depth and prints node counts per depth")
	divideDepth := flag.Int("divide", 0, "prints a perft divide (per-root-move node count) at this depth")
	searchDepth := flag.Int("depth", 0, "search to this depth and print the best move\n(0 uses config.toml's Search.MaxDepth)")
	moveTimeMs := flag.Int("movetime", 0, "search time limit in milliseconds (0 = depth limited only)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB\n(0 uses config.toml's Search.TTSizeMB)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	var b *board.Board
	if *fen != "" {
		b = board.NewBoard(*fen)
	} else {
		b = board.NewBoard()
	}

	switch {
	case *perftDepth > 0:
		runPerft(b, *perftDepth)
	case *divideDepth > 0:
		runDivide(b, *divideDepth)
	default:
		runSearch(b, *searchDepth, *moveTimeMs, *ttSizeMB)
	}
}

func runPerft(b *board.Board, depth int) {
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := perft.Perft(board.NewBoard(b.StringFen()), d)
		elapsed := time.Since(start)
		out.Printf("Perft %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func runDivide(b *board.Board, depth int) {
	entries := perft.Divide(b, depth)
	var total uint64
	for _, e := range entries {
		out.Printf("%s: %d\n", e.Uci, e.Nodes)
		total += e.Nodes
	}
	out.Printf("Total: %d\n", total)
}

func runSearch(b *board.Board, depth int, moveTimeMs int, ttSizeMB int) {
	if depth <= 0 {
		depth = config.Settings.Search.MaxDepth
	}
	if ttSizeMB <= 0 {
		ttSizeMB = config.Settings.Search.TTSizeMB
	}
	table := tt.NewTable(ttSizeMB)

	gs := status.GetGameStatus(b, nil)
	if gs.IsGameOver {
		out.Printf("Game over: %s (%s)\n", gs.Result, gs.Reason)
		return
	}

	var timeLimit time.Duration
	if moveTimeMs > 0 {
		timeLimit = time.Duration(moveTimeMs) * time.Millisecond
	}

	result := chess.SearchRoot(b, depth, timeLimit, table)
	if result.BestMove == types.MoveNone {
		out.Println("No legal move available")
		return
	}
	out.Printf("bestmove %s score %s depth %d nodes %d\n",
		result.BestMove.StringUci(), result.Value.String(), result.Depth, result.Nodes)
	out.Println(table.String())
}

func printVersionInfo() {
	out.Println("corechess")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
