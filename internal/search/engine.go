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

package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/corechess/internal/board"
	myLogging "github.com/frankkopp/corechess/internal/logging"
	"github.com/frankkopp/corechess/internal/tt"
)

// Engine wraps the synchronous SearchRoot with a start/stop/running
// protocol so a caller can fire a search off in the background and ask it
// to stop early. It does not parallelize negamax itself - the semaphore
// only serializes invocations of SearchRoot.
type Engine struct {
	log       *logging.Logger
	isRunning *semaphore.Weighted
	stopFlag  int32
	table     *tt.Table
	result    Result
}

// NewEngine creates an Engine with a transposition table sized to
// ttSizeMByte megabytes.
func NewEngine(ttSizeMByte int) *Engine {
	return &Engine{
		log:       myLogging.GetLog(),
		isRunning: semaphore.NewWeighted(1),
		table:     tt.NewTable(ttSizeMByte),
	}
}

// StartSearch launches a search on a clone of b in the background. Search
// status can be polled with IsSearching(); LastResult() returns the best
// move found once the search has stopped.
func (e *Engine) StartSearch(b *board.Board, maxDepth int, timeLimit time.Duration) {
	if !e.isRunning.TryAcquire(1) {
		e.log.Warning("StartSearch called while a search is already running")
		return
	}
	atomic.StoreInt32(&e.stopFlag, 0)
	go e.run(b.Clone(), maxDepth, timeLimit)
}

func (e *Engine) run(b *board.Board, maxDepth int, timeLimit time.Duration) {
	defer e.isRunning.Release(1)
	e.result = SearchRoot(b, maxDepth, timeLimit, &e.stopFlag, e.table)
}

// StopSearch requests the running search stop at the next checked
// iterative-deepening boundary, then blocks until it has actually stopped.
func (e *Engine) StopSearch() {
	atomic.StoreInt32(&e.stopFlag, 1)
	e.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (e *Engine) IsSearching() bool {
	if !e.isRunning.TryAcquire(1) {
		return true
	}
	e.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (e *Engine) WaitWhileSearching() {
	_ = e.isRunning.Acquire(context.Background(), 1)
	e.isRunning.Release(1)
}

// LastResult returns the result of the most recently completed search.
func (e *Engine) LastResult() Result {
	return e.result
}

// NewGame clears the transposition table for a fresh game.
func (e *Engine) NewGame() {
	e.StopSearch()
	e.table.Clear()
}
