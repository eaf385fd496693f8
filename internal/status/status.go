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

// Package status classifies a position as ongoing, checkmate, stalemate or
// one of the drawn-game reasons (threefold repetition, fifty-move rule,
// insufficient material).
package status

import (
	"github.com/frankkopp/corechess/internal/board"
	"github.com/frankkopp/corechess/internal/movegen"
	. "github.com/frankkopp/corechess/internal/types"
)

// Reason identifies why a game ended, or None while still ongoing.
type Reason int

const (
	None Reason = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMove
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case FiftyMove:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "none"
	}
}

// Result is the richer winner/draw-reason pairing a GameStatus reports.
type Result int

const (
	Ongoing Result = iota
	WhiteWin
	BlackWin
	DrawStalemate
	DrawRepetition
	DrawFiftyMove
	DrawInsufficientMaterial
)

func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case DrawStalemate, DrawRepetition, DrawFiftyMove, DrawInsufficientMaterial:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// GameStatus reports whether the game has ended, and if so how.
type GameStatus struct {
	IsGameOver bool
	Result     Result
	Reason     Reason
}

// RepetitionChecker answers whether the current key has already occurred
// often enough to be a threefold repetition. internal/repetition.Table
// satisfies this.
type RepetitionChecker interface {
	IsThreefold(key board.Key) bool
}

// IsInsufficientMaterial reports true when neither side has enough material
// left to deliver checkmate: K vs K, K vs K+minor, K+B vs K+B with
// same-colour bishops, or K+N vs K+N.
func IsInsufficientMaterial(b *board.Board) bool {
	if b.PiecesBb(White, Pawn)|b.PiecesBb(Black, Pawn)|b.PiecesBb(White, Rook)|b.PiecesBb(Black, Rook)|
		b.PiecesBb(White, Queen)|b.PiecesBb(Black, Queen) != BbZero {
		return false
	}
	wb, bb := b.PiecesBb(White, Bishop), b.PiecesBb(Black, Bishop)
	wn, bn := b.PiecesBb(White, Knight), b.PiecesBb(Black, Knight)
	if (wb | wn | bb | bn).PopCount() <= 1 {
		return true
	}
	if wb.PopCount() == 1 && bb.PopCount() == 1 && (wn|bn) == BbZero {
		return (wb|bb)&SquaresBb(White) == BbZero || (wb|bb)&SquaresBb(Black) == BbZero
	}
	return wn.PopCount() == 1 && bn.PopCount() == 1 && (wb|bb) == BbZero
}

// IsFiftyMoveRule reports true once the halfmove clock reaches 100 (50 full
// moves without a pawn move or capture).
func IsFiftyMoveRule(b *board.Board) bool {
	return b.HalfMoveClock() >= 100
}

// GetGameStatus classifies b, consulting reps for threefold repetition when
// given (pass nil to skip the repetition check, e.g. for static classification
// of a position outside of an active search).
func GetGameStatus(b *board.Board, reps RepetitionChecker) GameStatus {
	mg := movegen.NewMoveGen()
	if !mg.HasLegalMove(b) {
		if b.HasCheck() {
			if b.NextPlayer() == White {
				return GameStatus{true, BlackWin, Checkmate}
			}
			return GameStatus{true, WhiteWin, Checkmate}
		}
		return GameStatus{true, DrawStalemate, Stalemate}
	}

	if reps != nil && reps.IsThreefold(b.ZobristKey()) {
		return GameStatus{true, DrawRepetition, Repetition}
	}
	if IsFiftyMoveRule(b) {
		return GameStatus{true, DrawFiftyMove, FiftyMove}
	}
	if IsInsufficientMaterial(b) {
		return GameStatus{true, DrawInsufficientMaterial, InsufficientMaterial}
	}

	return GameStatus{false, Ongoing, None}
}
