//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard correctness/performance benchmark for a move generator.
package perft

import (
	"sort"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/movegen"
	. "github.com/frankkopp/corechess/internal/types"
)

// Perft counts the number of leaf positions reachable from b in exactly
// depth plies of legal moves.
func Perft(b *board.Board, depth int) uint64 {
	return perft(b, movegen.NewMoveGen(), depth)
}

func perft(b *board.Board, mg *movegen.Movegen, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := mg.GenerateLegalMoves(b, GenAll)
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.DoMove(m)
		nodes += perft(b, mg, depth-1)
		b.UndoMove()
	}
	return nodes
}

// DivideEntry is one root move's perft contribution.
type DivideEntry struct {
	Uci   string
	Nodes uint64
}

// Divide reports, for each legal root move, the perft count of the
// resulting subtree at depth-1, sorted by UCI string for reproducible
// diffing against reference engines.
func Divide(b *board.Board, depth int) []DivideEntry {
	mg := movegen.NewMoveGen()
	moves := mg.GenerateLegalMoves(b, GenAll)
	entries := make([]DivideEntry, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.DoMove(m)
		var nodes uint64
		if depth <= 1 {
			nodes = 1
		} else {
			nodes = perft(b, mg, depth-1)
		}
		b.UndoMove()
		entries = append(entries, DivideEntry{Uci: m.StringUci(), Nodes: nodes})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Uci < entries[j].Uci })
	return entries
}
