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

package types

import (
	"sort"
	"strings"

	"github.com/gammazero/deque"
)

// MoveList is an ordered sequence of moves. It is backed by a deque so that
// moves can be pushed/popped from either end cheaply - the move generator
// appends in bulk, while the search consumes from the front after sorting.
type MoveList struct {
	list deque.Deque
}

// NewMoveList creates an empty move list with pre-allocated capacity
func NewMoveList() *MoveList {
	ml := &MoveList{}
	ml.list.SetMinCapacity(uint(6)) // 2^6 = 64
	return ml
}

// PushBack appends a move to the end of the list
func (ml *MoveList) PushBack(m Move) {
	ml.list.PushBack(m)
}

// PushFront prepends a move to the front of the list
func (ml *MoveList) PushFront(m Move) {
	ml.list.PushFront(m)
}

// PopFront removes and returns the first move
func (ml *MoveList) PopFront() Move {
	return ml.list.PopFront().(Move)
}

// PopBack removes and returns the last move
func (ml *MoveList) PopBack() Move {
	return ml.list.PopBack().(Move)
}

// At returns the move at position i without removing it
func (ml *MoveList) At(i int) Move {
	return ml.list.At(i).(Move)
}

// Set replaces the move at position i
func (ml *MoveList) Set(i int, m Move) {
	ml.list.Set(i, m)
}

// Len returns the number of moves in the list
func (ml *MoveList) Len() int {
	return ml.list.Len()
}

// Clear empties the list while keeping its backing storage
func (ml *MoveList) Clear() {
	for ml.list.Len() > 0 {
		ml.list.PopBack()
	}
}

// Sort orders the moves by descending sort value (best move first), the
// order the search wants to traverse the list in
func (ml *MoveList) Sort() {
	n := ml.list.Len()
	tmp := make([]Move, n)
	for i := 0; i < n; i++ {
		tmp[i] = ml.At(i)
	}
	sort.Slice(tmp, func(i, j int) bool {
		return tmp[i].ValueOf() > tmp[j].ValueOf()
	})
	for i := 0; i < n; i++ {
		ml.Set(i, tmp[i])
	}
}

// PushToFront moves the given move (if present) to the front of the list,
// used to place a transposition table or killer move first for ordering
func (ml *MoveList) PushToFront(m Move) bool {
	n := ml.list.Len()
	for i := 0; i < n; i++ {
		if ml.At(i).MoveOf() == m.MoveOf() {
			if i == 0 {
				return true
			}
			found := ml.At(i)
			for j := i; j > 0; j-- {
				ml.Set(j, ml.At(j-1))
			}
			ml.Set(0, found)
			return true
		}
	}
	return false
}

// String returns a space separated UCI representation of the move list
func (ml *MoveList) String() string {
	var sb strings.Builder
	n := ml.list.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ml.At(i).StringUci())
	}
	return sb.String()
}
