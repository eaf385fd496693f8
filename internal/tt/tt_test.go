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

package tt

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/config"
	"github.com/frankkopp/corechess/internal/logging"
	. "github.com/frankkopp/corechess/internal/types"
)

var logTest *logging2.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestNewTable(t *testing.T) {
	table := NewTable(2)
	assert.Equal(t, uint64(65_536), table.maxNumberOfEntries)
	assert.Equal(t, 65_536, cap(table.data))
	logTest.Debug(table.String())

	table = NewTable(64)
	assert.Equal(t, uint64(2_097_152), table.maxNumberOfEntries)
}

func TestProbeMiss(t *testing.T) {
	table := NewTable(1)
	assert.Nil(t, table.Probe(board.Key(12345)))
	assert.EqualValues(t, 1, table.Stats.Probes)
	assert.EqualValues(t, 1, table.Stats.Misses)
}

func TestPutAndProbe(t *testing.T) {
	table := NewTable(4)
	b := board.NewBoard()
	move := CreateMove(SqE2, SqE4)
	key := b.ZobristKey()

	table.Put(key, move, 4, Value(111), EXACT, Value(100))
	assert.EqualValues(t, 1, table.Len())
	assert.EqualValues(t, 1, table.Stats.Puts)

	e := table.Probe(key)
	assert.NotNil(t, e)
	assert.EqualValues(t, key, e.Key)
	assert.EqualValues(t, move, e.Move)
	assert.EqualValues(t, 4, e.Depth)
	assert.EqualValues(t, EXACT, e.Flag)
	assert.EqualValues(t, 111, e.Value)
	assert.EqualValues(t, 100, e.Eval)
}

func TestPutUpdateSamePosition(t *testing.T) {
	table := NewTable(4)
	move := CreateMove(SqE2, SqE4)

	table.Put(board.Key(111), move, 4, Value(111), UPPERBOUND, Value(1))
	table.Put(board.Key(111), move, 5, Value(112), LOWERBOUND, Value(2))

	assert.EqualValues(t, 1, table.Len())
	assert.EqualValues(t, 2, table.Stats.Puts)
	assert.EqualValues(t, 1, table.Stats.Updates)
	assert.EqualValues(t, 0, table.Stats.Collisions)

	e := table.Probe(board.Key(111))
	assert.EqualValues(t, 5, e.Depth)
	assert.EqualValues(t, LOWERBOUND, e.Flag)
	assert.EqualValues(t, 112, e.Value)
}

func TestPutCollisionHigherDepthWins(t *testing.T) {
	table := NewTable(4)
	move := CreateMove(SqE2, SqE4)

	table.Put(board.Key(111), move, 6, Value(113), EXACT, Value(1))
	collidingKey := board.Key(111 + table.maxNumberOfEntries)
	// lower depth must not evict the deeper entry
	table.Put(collidingKey, move, 4, Value(114), LOWERBOUND, Value(2))

	assert.EqualValues(t, 1, table.Len())
	assert.EqualValues(t, 1, table.Stats.Collisions)
	assert.EqualValues(t, 0, table.Stats.Overwrites)

	assert.Nil(t, table.Probe(collidingKey))
	e := table.Probe(board.Key(111))
	assert.EqualValues(t, 6, e.Depth)
	assert.EqualValues(t, 113, e.Value)
}

func TestPutCollisionSameDepthDifferentAgeOverwrites(t *testing.T) {
	table := NewTable(4)
	move := CreateMove(SqE2, SqE4)

	table.Put(board.Key(111), move, 4, Value(113), EXACT, Value(1))
	table.NewSearch()
	collidingKey := board.Key(111 + table.maxNumberOfEntries)
	table.Put(collidingKey, move, 4, Value(114), LOWERBOUND, Value(2))

	assert.EqualValues(t, 1, table.Stats.Overwrites)
	e := table.Probe(collidingKey)
	assert.NotNil(t, e)
	assert.EqualValues(t, 114, e.Value)
}

func TestClear(t *testing.T) {
	table := NewTable(1)
	move := CreateMove(SqE2, SqE4)
	table.Put(board.Key(111), move, 4, Value(1), EXACT, Value(1))
	assert.EqualValues(t, 1, table.Len())

	table.Clear()
	assert.EqualValues(t, 0, table.Len())
	assert.Nil(t, table.Probe(board.Key(111)))
}

func TestHashfull(t *testing.T) {
	table := NewTable(1)
	assert.EqualValues(t, 0, table.Hashfull())
	for i := uint64(0); i < table.maxNumberOfEntries/10; i++ {
		table.Put(board.Key(i+1), MoveNone, 1, Value(1), EXACT, Value(1))
	}
	assert.InDelta(t, 100, table.Hashfull(), 5)
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	table := NewTable(0)
	table.Put(board.Key(1), MoveNone, 1, Value(1), EXACT, Value(1))
	assert.EqualValues(t, 0, table.Len())
	assert.Nil(t, table.Probe(board.Key(1)))
}
