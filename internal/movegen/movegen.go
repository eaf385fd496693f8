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

// Package movegen generates pseudo-legal and legal moves for a board
// position: pawn pushes/captures/en-passant/promotions, knight/bishop/rook/
// queen/king moves via magic attacks, and castling.
package movegen

import (
	"regexp"
	"strings"

	"github.com/frankkopp/corechess/internal/board"
	. "github.com/frankkopp/corechess/internal/types"
)

// GenMode selects which subset of moves to generate.
type GenMode int

// Generation modes, combinable as a bitmask.
const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = GenCap | GenNonCap
)

// Movegen generates move lists for a board. A single instance may be reused
// across positions; it only holds scratch state (PV move hint), no position
// data.
type Movegen struct {
	pvMove Move
}

// NewMoveGen creates a new move generator.
func NewMoveGen() *Movegen {
	return &Movegen{pvMove: MoveNone}
}

// SetPvMove sets a move to be sorted to the front of subsequently generated
// legal move lists, used by the search to try the transposition-table move
// first.
func (mg *Movegen) SetPvMove(m Move) {
	mg.pvMove = m.MoveOf()
}

// GeneratePseudoLegalMoves generates moves for the side to move without
// checking whether the king is left in check or crosses an attacked square
// while castling. Piece-shape moves only; castling is generated here too but
// only its own square-occupancy precondition is checked (see
// GenerateLegalMoves for the attacked-square checks).
func (mg *Movegen) GeneratePseudoLegalMoves(b *board.Board, mode GenMode) *MoveList {
	ml := NewMoveList()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(b, GenCap, ml)
		mg.generateKingMoves(b, GenCap, ml)
		mg.generateOfficerMoves(b, GenCap, ml)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(b, GenNonCap, ml)
		mg.generateCastling(b, ml)
		mg.generateKingMoves(b, GenNonCap, ml)
		mg.generateOfficerMoves(b, GenNonCap, ml)
	}
	return ml
}

// GenerateLegalMoves generates pseudo-legal moves and filters out any that
// leave the mover's own king in check. For castling this is precisely where
// the attacked-square preconditions are enforced, since Board.IsLegalMove
// checks them for MoveType() == Castling.
func (mg *Movegen) GenerateLegalMoves(b *board.Board, mode GenMode) *MoveList {
	pseudo := mg.GeneratePseudoLegalMoves(b, mode)
	legal := NewMoveList()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if b.IsLegalMove(m) {
			legal.PushBack(m)
		}
	}
	legal.Sort()
	if mg.pvMove != MoveNone {
		legal.PushToFront(mg.pvMove)
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without generating and sorting the full move list. Used by status
// classification (checkmate/stalemate) where only emptiness matters.
func (mg *Movegen) HasLegalMove(b *board.Board) bool {
	nextPlayer := b.NextPlayer()
	ownPieces := b.OccupiedBb(nextPlayer)
	occupiedAll := b.OccupiedAll()
	oppPieces := b.OccupiedBb(nextPlayer.Flip())

	// king
	kingSquare := b.KingSquare(nextPlayer)
	tmpMoves := GetPseudoAttacks(King, kingSquare) &^ ownPieces
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if b.IsLegalMove(CreateMove(kingSquare, toSquare)) {
			return true
		}
	}

	// pawns: captures, pushes
	myPawns := b.PiecesBb(nextPlayer, Pawn)
	for _, dir := range [2]Direction{West, East} {
		tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
			if b.IsLegalMove(CreateMove(fromSquare, toSquare)) {
				return true
			}
		}
	}
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ occupiedAll
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
		if b.IsLegalMove(CreateMove(fromSquare, toSquare)) {
			return true
		}
	}

	// knights, bishops, rooks, queens
	for pt := Knight; pt <= Queen; pt++ {
		pieces := b.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedAll) &^ ownPieces
			for moves != 0 {
				toSquare := moves.PopLsb()
				if b.IsLegalMove(CreateMove(fromSquare, toSquare)) {
					return true
				}
			}
		}
	}

	// en passant
	enPassantSquare := b.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		for _, dir := range [2]Direction{West, East} {
			attacker := ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
			if attacker != 0 {
				fromSquare := attacker.PopLsb()
				toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
				if b.IsLegalMove(CreateMoveType(fromSquare, toSquare, EnPassant)) {
					return true
				}
			}
		}
	}

	return false
}

func (mg *Movegen) generatePawnMoves(b *board.Board, mode GenMode, ml *MoveList) {
	nextPlayer := b.NextPlayer()
	myPawns := b.PiecesBb(nextPlayer, Pawn)
	gamePhase := b.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)

	if mode&GenCap != 0 {
		oppPieces := b.OccupiedBb(nextPlayer.Flip())
		for _, dir := range [2]Direction{West, East} {
			tmpCaptures := ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces
			promCaptures := tmpCaptures & nextPlayer.PromotionRankBb()
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				value := b.GetPiece(toSquare).ValueOf() - b.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
				pushPromotions(ml, fromSquare, toSquare, value)
			}
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				value := b.GetPiece(toSquare).ValueOf() - b.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
			}
		}

		enPassantSquare := b.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range [2]Direction{West, East} {
				tmp := ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
				if tmp != 0 {
					fromSquare := tmp.PopLsb()
					toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
					value := PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, EnPassant, PtNone, int16(value)))
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		occupiedAll := b.OccupiedAll()
		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ occupiedAll
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()) &^ occupiedAll

		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			pushPromotions(ml, fromSquare, toSquare, Value(-10_000))
		}
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.
				To(nextPlayer.Flip().MoveDirection()).
				To(nextPlayer.Flip().MoveDirection())
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
		}
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
		}
	}
}

// pushPromotions expands a single promoting pawn move into all four
// promotion pieces, queen ordered first since it dominates in all but
// stalemate corner cases.
func pushPromotions(ml *MoveList, from, to Square, value Value) {
	ml.PushBack(CreateMoveValue(from, to, Promotion, Queen, int16(value+Queen.ValueOf())))
	ml.PushBack(CreateMoveValue(from, to, Promotion, Knight, int16(value+Knight.ValueOf())))
	ml.PushBack(CreateMoveValue(from, to, Promotion, Rook, int16(value+Rook.ValueOf()-2000)))
	ml.PushBack(CreateMoveValue(from, to, Promotion, Bishop, int16(value+Bishop.ValueOf()-2000)))
}

// generateCastling emits castling moves whose squares between king and rook
// are empty. Whether the king starts, transits, or ends in check is an
// attacked-square precondition checked by Board.IsLegalMove, not here -
// pseudo-legal generation only knows about piece shape and occupancy.
func (mg *Movegen) generateCastling(b *board.Board, ml *MoveList) {
	cr := b.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occupied := b.OccupiedAll()
	nextPlayer := b.NextPlayer()
	if nextPlayer == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupied == 0 {
			ml.PushBack(CreateMoveValue(SqE1, SqG1, Castling, PtNone, -5000))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupied == 0 {
			ml.PushBack(CreateMoveValue(SqE1, SqC1, Castling, PtNone, -5000))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupied == 0 {
			ml.PushBack(CreateMoveValue(SqE8, SqG8, Castling, PtNone, -5000))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupied == 0 {
			ml.PushBack(CreateMoveValue(SqE8, SqC8, Castling, PtNone, -5000))
		}
	}
}

func (mg *Movegen) generateKingMoves(b *board.Board, mode GenMode, ml *MoveList) {
	nextPlayer := b.NextPlayer()
	piece := MakePiece(nextPlayer, King)
	gamePhase := b.GamePhase()
	fromSquare := b.KingSquare(nextPlayer)
	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	if mode&GenCap != 0 {
		captures := pseudoMoves & b.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			value := b.GetPiece(toSquare).ValueOf() - b.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
		}
	}
	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ b.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
		}
	}
}

// generateOfficerMoves generates knight/bishop/rook/queen moves using the
// magic-backed attack tables.
func (mg *Movegen) generateOfficerMoves(b *board.Board, mode GenMode, ml *MoveList) {
	nextPlayer := b.NextPlayer()
	gamePhase := b.GamePhase()
	occupiedBb := b.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := b.PiecesBb(nextPlayer, pt)
		piece := MakePiece(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb)
			if mode&GenCap != 0 {
				captures := moves & b.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					value := b.GetPiece(toSquare).ValueOf() - b.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
				}
			}
			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, int16(value)))
				}
			}
		}
	}
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// MoveFromUci generates all legal moves and returns the one matching the
// given UCI move string, or MoveNone if there is no match.
func (mg *Movegen) MoveFromUci(b *board.Board, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToUpper(matches[2])
	}
	legal := mg.GenerateLegalMoves(b, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}
