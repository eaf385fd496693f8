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
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/config"
	"github.com/frankkopp/corechess/internal/tt"
	. "github.com/frankkopp/corechess/internal/types"
)

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
	os.Exit(m.Run())
}

func TestEvaluateStartPosIsZero(t *testing.T) {
	b := board.NewBoard()
	assert.EqualValues(t, 0, evaluate(b))
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	// white is up a queen
	b := board.NewBoard("4k3/8/8/8/8/8/8/3QK3 w - -")
	assert.Greater(t, int(evaluate(b)), 0)
}

func TestSearchRootFindsMateInOne(t *testing.T) {
	// white to move, Qd1-h5 is mate
	b := board.NewBoard("rnbqkbnr/ppppp2p/5p2/6p1/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -")
	table := tt.NewTable(4)
	var stop int32
	result := SearchRoot(b, 3, 0, &stop, table)
	assert.True(t, result.Value.IsCheckMateValue())
	assert.Greater(t, int(result.Value), 0)
}

func TestSearchRootKiwipeteReturnsMove(t *testing.T) {
	b := board.NewBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	table := tt.NewTable(4)
	var stop int32
	result := SearchRoot(b, 2, 0, &stop, table)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestSearchRootRespectsStopFlag(t *testing.T) {
	b := board.NewBoard()
	table := tt.NewTable(4)
	var stop int32
	stop = 1
	result := SearchRoot(b, 10, 0, &stop, table)
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestSearchRootTimeLimit(t *testing.T) {
	b := board.NewBoard()
	table := tt.NewTable(4)
	var stop int32
	result := SearchRoot(b, 64, 50*time.Millisecond, &stop, table)
	assert.NotEqual(t, MoveNone, result.BestMove)
}
