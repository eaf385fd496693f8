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

// Package repetition tracks zobrist keys visited along the current search
// path so negamax can detect a threefold repetition without rescanning the
// board's full move history.
package repetition

import "github.com/frankkopp/corechess/internal/board"

// Table is a hash-multiset of zobrist keys plus the ordered stack they were
// pushed in. Zero value is ready to use; a search_root invocation creates one
// and seeds it with the root position's key.
type Table struct {
	counts map[board.Key]int
	stack  []board.Key
}

// NewTable returns an empty repetition table.
func NewTable() *Table {
	return &Table{counts: make(map[board.Key]int)}
}

// Push records key as visited, incrementing its occurrence count.
func (t *Table) Push(key board.Key) {
	t.stack = append(t.stack, key)
	t.counts[key]++
}

// Pop removes the most recently pushed key, decrementing its occurrence
// count and forgetting it entirely once the count reaches zero.
func (t *Table) Pop() {
	n := len(t.stack)
	key := t.stack[n-1]
	t.stack = t.stack[:n-1]
	if t.counts[key] <= 1 {
		delete(t.counts, key)
	} else {
		t.counts[key]--
	}
}

// IsThreefold reports whether key has occurred three or more times.
func (t *Table) IsThreefold(key board.Key) bool {
	return t.counts[key] >= 3
}

// Len returns the number of keys currently pushed.
func (t *Table) Len() int {
	return len(t.stack)
}
