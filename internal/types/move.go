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
	"fmt"

	"github.com/frankkopp/corechess/internal/assert"
)

// Move is a packed representation of a chess move:
//
//	Bits 0-5:   to square      (0-63)
//	Bits 6-11:  from square    (0-63)
//	Bits 12-13: promotion type (Knight/Bishop/Rook/Queen encoded 0-3)
//	Bits 14-15: move type      (MoveType)
//	Bits 16-31: sort value     (signed, used only for move ordering)
type Move uint32

// MoveNone represents the absence of a move
const MoveNone Move = 0

const (
	squareMask    Move = 0x3F
	toShift            = 0
	fromShift          = 6
	promTypeShift      = 12
	typeShift          = 14
	valueShift         = 16
)

// promotion type is stored as a 2 bit offset from Knight
func promTypeToBits(pt PieceType) Move {
	return Move(pt - Knight)
}

func bitsToPromType(b Move) PieceType {
	return PieceType(b) + Knight
}

// CreateMove creates a normal move from `from` to `to`
func CreateMove(from Square, to Square) Move {
	return Move(to)<<toShift | Move(from)<<fromShift
}

// CreateMoveType creates a move of the given MoveType. For Promotion
// moves use CreateMovePromotion instead.
func CreateMoveType(from Square, to Square, mt MoveType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(mt)<<typeShift
}

// CreateMovePromotion creates a promotion move to the given piece type
func CreateMovePromotion(from Square, to Square, promType PieceType) Move {
	assert.Assert(promType >= Knight && promType <= Queen, "invalid promotion type %d", promType)
	return Move(to)<<toShift | Move(from)<<fromShift |
		Move(Promotion)<<typeShift | promTypeToBits(promType)<<promTypeShift
}

// CreateMoveValue creates a move carrying a sort value, used by the move
// generator to pre-order moves before they reach the search
func CreateMoveValue(from Square, to Square, mt MoveType, promType PieceType, value int16) Move {
	m := Move(to)<<toShift | Move(from)<<fromShift | Move(mt)<<typeShift
	if mt == Promotion {
		m |= promTypeToBits(promType) << promTypeShift
	}
	return m | Move(uint16(value))<<valueShift
}

// From returns the origin square of the move
func (m Move) From() Square {
	return Square(m >> fromShift & squareMask)
}

// To returns the destination square of the move
func (m Move) To() Square {
	return Square(m >> toShift & squareMask)
}

// MoveType returns the move type
func (m Move) MoveType() MoveType {
	return MoveType(m >> typeShift & 0b11)
}

// PromotionType returns the promotion piece type. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return bitsToPromType(m >> promTypeShift & 0b11)
}

// MoveOf strips the sort value, returning only from/to/type/promotion bits
func (m Move) MoveOf() Move {
	return m & 0xFFFF
}

// ValueOf returns the move's sort value
func (m Move) ValueOf() int16 {
	return int16(m >> valueShift)
}

// SetValue returns a copy of the move with its sort value replaced
func (m Move) SetValue(value int16) Move {
	return m.MoveOf() | Move(uint16(value))<<valueShift
}

// IsValid checks if the move has distinct, valid from/to squares
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String returns a human readable representation, e.g. "e2-e4" or "e7-e8=Q"
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := fmt.Sprintf("%s-%s", m.From(), m.To())
	if m.MoveType() == Promotion {
		s += "=" + m.PromotionType().Char()
	}
	return s
}

// StringUci returns the UCI long algebraic representation, e.g. "e2e4",
// "e7e8q"
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		pt := m.PromotionType()
		s += string(pieceTypeToChar[pt : pt+1])
	}
	return s
}

// StringBits returns a binary representation useful for debugging
func (m Move) StringBits() string {
	return fmt.Sprintf("Move: %032b", uint32(m))
}
