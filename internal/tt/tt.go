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

// Package tt implements a direct-mapped transposition table for the search.
// Table is not thread safe and must be synchronized externally if accessed
// from multiple goroutines - in particular Resize and Clear must not
// overlap with a running search.
package tt

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/corechess/internal/board"
	myLogging "github.com/frankkopp/corechess/internal/logging"
	. "github.com/frankkopp/corechess/internal/types"
	"github.com/frankkopp/corechess/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest table size this engine will allocate.
	MaxSizeInMB = 65_536
	mb          = 1024 * 1024
)

// Stats holds statistical counters on table usage.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is a direct-mapped transposition cache keyed by the lower bits of
// the zobrist key. Create with NewTable.
type Table struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	age                uint8
	Stats              Stats
}

// NewTable creates a Table sized to the largest power-of-2 entry count that
// fits within sizeInMByte megabytes.
func NewTable(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize reallocates the table, clearing all entries.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	entrySize := uint64(unsafe.Sizeof(Entry{}))
	t.sizeInByte = uint64(sizeInMByte) * mb
	if t.sizeInByte == 0 {
		t.maxNumberOfEntries = 0
	} else {
		t.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(t.sizeInByte/entrySize))))
	}
	t.hashKeyMask = t.maxNumberOfEntries - 1
	t.sizeInByte = t.maxNumberOfEntries * entrySize

	t.data = make([]Entry, t.maxNumberOfEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}

	t.log.Info(out.Sprintf("TT size %d MB, capacity %d entries (%d bytes each), requested %d MB",
		t.sizeInByte/mb, t.maxNumberOfEntries, entrySize, sizeInMByte))
	t.log.Debug(util.MemStat())
}

// NewSearch advances the table's search generation. Entries written in an
// older generation lose priority over same-depth entries from this one.
func (t *Table) NewSearch() {
	t.age++
}

// Probe returns the stored entry for key, or nil on a miss.
func (t *Table) Probe(key board.Key) *Entry {
	if t.maxNumberOfEntries == 0 {
		return nil
	}
	t.Stats.Probes++
	e := &t.data[t.hash(key)]
	if e.Key == key {
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores a search result, following the replacement policy: a slot is
// overwritten when it is empty, when the new entry searches deeper, or when
// it searches to the same depth but belongs to a newer search generation.
func (t *Table) Put(key board.Key, move Move, depth int8, value Value, flag ValueType, eval Value) {
	if t.maxNumberOfEntries == 0 {
		return
	}

	e := &t.data[t.hash(key)]
	t.Stats.Puts++

	if e.IsEmpty() {
		t.numberOfEntries++
		*e = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Flag: flag, age: t.age}
		return
	}

	if e.Key != key {
		t.Stats.Collisions++
		if depth > e.Depth || (depth == e.Depth && e.age != t.age) {
			t.Stats.Overwrites++
			*e = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Flag: flag, age: t.age}
		}
		return
	}

	// same position - refresh, keeping the existing move if none was supplied
	t.Stats.Updates++
	if move != MoveNone {
		e.Move = move
	}
	if eval != ValueNA {
		e.Eval = eval
	}
	if value != ValueNA {
		e.Value = value
		e.Depth = depth
		e.Flag = flag
	}
	e.age = t.age
}

// Clear empties all entries and resets statistics.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxNumberOfEntries)
	t.numberOfEntries = 0
	t.age = 0
	t.Stats = Stats{}
}

// Hashfull reports how full the table is, in permille, as required by UCI.
func (t *Table) Hashfull() int {
	if t.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * t.numberOfEntries) / t.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.numberOfEntries
}

// String renders a locale-formatted usage summary.
func (t *Table) String() string {
	return out.Sprintf("TT: size %d MB entries %d/%d (%d%%) puts %d updates %d collisions %d "+
		"overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		t.sizeInByte/mb, t.numberOfEntries, t.maxNumberOfEntries, t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions, t.Stats.Overwrites, t.Stats.Probes,
		t.Stats.Hits, (t.Stats.Hits*100)/(1+t.Stats.Probes),
		t.Stats.Misses, (t.Stats.Misses*100)/(1+t.Stats.Probes))
}

func (t *Table) hash(key board.Key) uint64 {
	return uint64(key) & t.hashKeyMask
}
