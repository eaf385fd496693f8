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

// Package search implements iterative-deepening negamax with quiescence,
// transposition-table-assisted move ordering and mate-distance scoring.
package search

import (
	"sync/atomic"
	"time"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/movegen"
	"github.com/frankkopp/corechess/internal/repetition"
	"github.com/frankkopp/corechess/internal/tt"
	. "github.com/frankkopp/corechess/internal/types"
)

// MaxQuiescencePly caps quiescence recursion depth past the node where it
// was entered, guarding against pathological capture/promotion chains.
const MaxQuiescencePly = 32

// Result reports the outcome of one SearchRoot invocation.
type Result struct {
	BestMove Move
	Value    Value
	Depth    int
	Nodes    uint64
}

func evaluate(b *board.Board) Value {
	whiteScore := b.Material(White) - b.Material(Black)
	if b.NextPlayer() == Black {
		return -whiteScore
	}
	return whiteScore
}

// SearchRoot runs iterative deepening up to maxDepth (or until timeLimit
// elapses, when timeLimit > 0), returning the best move found at the
// deepest fully completed iteration. stop is polled between depths only -
// a search in progress at the current depth always finishes it.
func SearchRoot(b *board.Board, maxDepth int, timeLimit time.Duration, stop *int32, table *tt.Table) Result {
	mg := movegen.NewMoveGen()
	rootMoves := mg.GenerateLegalMoves(b, GenAll)
	if rootMoves.Len() == 0 {
		return Result{BestMove: MoveNone, Value: ValueDraw}
	}

	reps := repetition.NewTable()
	reps.Push(b.ZobristKey())

	var nodes uint64
	var result Result
	start := time.Now()

	for depth := 1; depth <= maxDepth; depth++ {
		if timeLimit > 0 && time.Since(start) > timeLimit {
			break
		}
		if atomic.LoadInt32(stop) != 0 {
			break
		}

		table.NewSearch()
		if result.BestMove != MoveNone {
			rootMoves.PushToFront(result.BestMove)
		}

		alpha, beta := -ValueInf, ValueInf
		bestValue := ValueNA
		bestMove := MoveNone

		for i := 0; i < rootMoves.Len(); i++ {
			m := rootMoves.At(i)
			b.DoMove(m)
			reps.Push(b.ZobristKey())
			score := -negamax(b, depth-1, -beta, -alpha, 1, stop, reps, table, mg, &nodes)
			reps.Pop()
			b.UndoMove()

			if score > bestValue {
				bestValue = score
				bestMove = m
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		}

		if bestMove == MoveNone {
			break
		}
		result = Result{BestMove: bestMove, Value: bestValue, Depth: depth, Nodes: nodes}

		if bestValue.IsCheckMateValue() {
			break
		}
	}

	return result
}

func negamax(b *board.Board, depth int, alpha, beta Value, ply int, stop *int32, reps *repetition.Table, table *tt.Table, mg *movegen.Movegen, nodes *uint64) Value {
	*nodes++

	if ply > 0 {
		if b.HalfMoveClock() >= 100 || b.HasInsufficientMaterial() || reps.IsThreefold(b.ZobristKey()) {
			return ValueDraw
		}
	}

	origAlpha := alpha
	key := b.ZobristKey()
	var ttMove Move

	if entry := table.Probe(key); entry != nil {
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			switch entry.Flag {
			case EXACT:
				return entry.Value
			case LOWERBOUND:
				if entry.Value > alpha {
					alpha = entry.Value
				}
			case UPPERBOUND:
				if entry.Value < beta {
					beta = entry.Value
				}
			}
			if alpha >= beta {
				return entry.Value
			}
		}
	}

	if depth <= 0 {
		return quiescence(b, alpha, beta, 0, mg, nodes)
	}

	moves := mg.GenerateLegalMoves(b, GenAll)
	if moves.Len() == 0 {
		if b.HasCheck() {
			return -(MateScore - Value(ply)*CheckMatePlyAdjust)
		}
		return ValueDraw
	}
	if ttMove != MoveNone {
		moves.PushToFront(ttMove)
	}

	bestValue := ValueNA
	bestMove := MoveNone
	cutoff := false

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.DoMove(m)
		reps.Push(b.ZobristKey())
		score := -negamax(b, depth-1, -beta, -alpha, ply+1, stop, reps, table, mg, nodes)
		reps.Pop()
		b.UndoMove()

		if score > bestValue {
			bestValue = score
			bestMove = m
		}
		if bestValue > alpha {
			alpha = bestValue
		}
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	switch {
	case cutoff:
		table.Put(key, bestMove, int8(depth), beta, LOWERBOUND, evaluate(b))
		return beta
	case bestValue <= origAlpha:
		table.Put(key, bestMove, int8(depth), bestValue, UPPERBOUND, evaluate(b))
		return bestValue
	default:
		table.Put(key, bestMove, int8(depth), bestValue, EXACT, evaluate(b))
		return bestValue
	}
}

func quiescence(b *board.Board, alpha, beta Value, qply int, mg *movegen.Movegen, nodes *uint64) Value {
	*nodes++

	standPat := evaluate(b)
	if qply >= MaxQuiescencePly {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := mg.GenerateLegalMoves(b, GenCap)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.DoMove(m)
		score := -quiescence(b, -beta, -alpha, qply+1, mg, nodes)
		b.UndoMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
