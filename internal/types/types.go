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

// Package types contains the core value types of the chess engine - squares,
// bitboards, pieces, moves and their packed encoding - along with the
// precomputed lookup tables (attacks, magics, positional tables) that the
// board, move generator and search build on.
package types

var initialized = false

// init precomputes the package's lookup tables (bitboards, magic attack
// tables, positional value tables) when the package is loaded.
func init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}

const (
	// MaxDepth is the maximum search depth supported by ply-indexed arrays
	MaxDepth = 128

	// MaxMoves is the maximum number of moves tracked for a single game
	MaxMoves = 512

	// KB is 1024 bytes
	KB uint64 = 1024
	// MB is 1024 KB
	MB uint64 = KB * KB
	// GB is 1024 MB
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value, used to interpolate
	// between midgame and endgame positional values
	GamePhaseMax = 24
)
