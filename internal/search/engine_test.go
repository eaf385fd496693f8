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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/corechess/internal/board"
	. "github.com/frankkopp/corechess/internal/types"
)

func TestEngineStartAndWaitProducesResult(t *testing.T) {
	e := NewEngine(4)
	b := board.NewBoard()
	e.StartSearch(b, 3, 0)
	e.WaitWhileSearching()
	assert.False(t, e.IsSearching())
	assert.NotEqual(t, MoveNone, e.LastResult().BestMove)
}

func TestEngineStopSearchStopsPromptly(t *testing.T) {
	e := NewEngine(4)
	b := board.NewBoard()
	e.StartSearch(b, 64, 0)
	time.Sleep(5 * time.Millisecond)
	e.StopSearch()
	assert.False(t, e.IsSearching())
}

func TestEngineRejectsConcurrentStart(t *testing.T) {
	e := NewEngine(4)
	b := board.NewBoard()
	e.StartSearch(b, 64, 0)
	e.StartSearch(b, 3, 0) // should be a no-op while the first is running
	e.StopSearch()
	assert.False(t, e.IsSearching())
}

func TestEngineNewGameClearsTable(t *testing.T) {
	e := NewEngine(4)
	b := board.NewBoard()
	e.StartSearch(b, 3, 0)
	e.WaitWhileSearching()
	assert.Greater(t, int(e.table.Len()), 0)
	e.NewGame()
	assert.EqualValues(t, 0, e.table.Len())
}
