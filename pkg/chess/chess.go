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

// Package chess is the public surface of the engine core: a board, its
// moves, the search entry point and the game-status classifier. It exists
// so an out-of-core game manager (human/random/engine agents driving full
// games) has exactly what it needs without reaching into internal/.
package chess

import (
	"time"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/movegen"
	"github.com/frankkopp/corechess/internal/search"
	"github.com/frankkopp/corechess/internal/status"
	"github.com/frankkopp/corechess/internal/tt"
	"github.com/frankkopp/corechess/internal/types"
)

// Board is a chess position together with its move-make/unmake history.
type Board = board.Board

// Move is a packed from/to/type/promotion move.
type Move = types.Move

// Value is a centipawn evaluation or search score.
type Value = types.Value

// GameStatus reports whether a game has ended, and if so how.
type GameStatus = status.GameStatus

// SearchResult is the outcome of a SearchRoot call.
type SearchResult = search.Result

// Table is a transposition table as used by SearchRoot.
type Table = tt.Table

// NewBoard returns the standard starting position, or the position
// described by fen if one is given.
func NewBoard(fen ...string) *Board {
	return board.NewBoard(fen...)
}

// NewTable creates a transposition table sized to sizeInMByte megabytes.
// A fresh Table must be supplied per game (or cleared between games).
func NewTable(sizeInMByte int) *Table {
	return tt.NewTable(sizeInMByte)
}

// MoveFromUci resolves a UCI move string (e.g. "e2e4", "e7e8q") against the
// legal moves available in b, returning types.MoveNone if it is not legal.
func MoveFromUci(b *Board, uci string) Move {
	return movegen.NewMoveGen().MoveFromUci(b, uci)
}

// SearchRoot runs iterative deepening up to maxDepth, or until timeLimit
// elapses if timeLimit > 0, and returns the best move found together with
// its score from the searching side's perspective.
func SearchRoot(b *Board, maxDepth int, timeLimit time.Duration, table *Table) SearchResult {
	var stop int32
	return search.SearchRoot(b, maxDepth, timeLimit, &stop, table)
}

// GetGameStatus classifies b as ongoing, checkmate, stalemate or one of the
// drawn-game reasons. Pass nil for reps to skip the threefold-repetition
// check (e.g. when classifying a position outside of an active game).
func GetGameStatus(b *Board, reps status.RepetitionChecker) GameStatus {
	return status.GetGameStatus(b, reps)
}
