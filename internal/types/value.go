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

import "fmt"

// Value is a centipawn evaluation or search score
type Value int32

// Value constants.
//
// MateScore and CheckMatePlyAdjust follow the mate-scoring contract: a mate
// found N plies from the node that reports it is scored
// MateScore - N*CheckMatePlyAdjust (or its negation for the losing side), so
// that a forced mate in fewer plies always sorts ahead of a longer one.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1

	MateScore          Value = 1_000_000
	CheckMatePlyAdjust Value = 1000

	// ValueCheckMate is the undiscounted mate score; kept as an alias since
	// it is the value callers compare against when classifying a score.
	ValueCheckMate Value = MateScore
	// ValueCheckMateThreshold is the smallest magnitude a mate score can take
	// within MaxDepth plies; any value at or beyond it encodes a forced mate
	// rather than a material/positional evaluation.
	ValueCheckMateThreshold Value = MateScore - Value(MaxDepth)*CheckMatePlyAdjust

	// ValueInf is wider than any reachable mate or material score; used as
	// the initial alpha/beta window bound.
	ValueInf Value = MateScore + Value(MaxDepth)*CheckMatePlyAdjust + 1
	ValueNA  Value = -ValueInf - 1

	// ValueMax/ValueMin bound plain material+positional evaluations (well
	// below ValueCheckMateThreshold so the two ranges never collide).
	ValueMax Value = 20000
	ValueMin Value = -ValueMax
)

// IsValid checks if v is within the representable search/eval range
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsCheckMateValue checks if v encodes a forced mate (within MaxDepth plies)
func (v Value) IsCheckMateValue() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= ValueCheckMateThreshold && abs <= MateScore
}

// String returns a UCI-style representation: "mate N", "cp N" or "N/A"
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		pliesToMate := int((MateScore - v) / CheckMatePlyAdjust)
		if v < 0 {
			pliesToMate = int((MateScore + v) / CheckMatePlyAdjust)
		}
		movesToMate := (pliesToMate + 1) / 2
		if v < 0 {
			return fmt.Sprintf("mate -%d", movesToMate)
		}
		return fmt.Sprintf("mate %d", movesToMate)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
