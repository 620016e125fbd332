/*
 * Forklift - a chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Forklift Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Kind distinguishes the special handling a move needs in DoMove beyond
// "take the piece on From and put it on To". It is wider than a plain
// capture/non-capture split because castling and en passant each move a
// second piece and promotion changes the piece placed on To.
type Kind uint8

// The six move kinds.
const (
	Normal Kind = iota
	EnPassant
	CastleKing
	CastleQueen
	Promotion
	PromotionCapture
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case EnPassant:
		return "enpassant"
	case CastleKing:
		return "O-O"
	case CastleQueen:
		return "O-O-O"
	case Promotion:
		return "promotion"
	case PromotionCapture:
		return "promotion-capture"
	default:
		return "?"
	}
}

// Move packs a move into 32 bits: compact (0-63) To/From squares, the
// Kind, a promotion piece type, and a 15-bit sort value used only as a
// move-ordering key (never serialized, never part of move identity).
//
//	bits  0- 5  to       (compact square)
//	bits  6-11  from     (compact square)
//	bits 12-13  promotion piece type, offset from Knight (0=N,1=B,2=R,3=Q)
//	bits 14-16  kind
//	bits 17-31  sort value (signed, -16384..16383)
type Move uint32

const (
	moveToMask     = 0x3f
	moveFromShift  = 6
	moveFromMask   = 0x3f
	movePromoShift = 12
	movePromoMask  = 0x3
	moveKindShift  = 14
	moveKindMask   = 0x7
	moveValueShift = 17
	// moveValueBits is the field width: Move is a 32-bit word, and
	// to/from/promo/kind already consume the low 17 bits, leaving only
	// 15 for the sort value -- not 16.
	moveValueBits = 32 - moveValueShift
	moveValueMask = 1<<moveValueBits - 1 // 0x7fff
	moveValueSign = 1 << (moveValueBits - 1)
)

// MoveNone is the zero value, never produced by legal move generation.
const MoveNone Move = 0

// CreateMove packs from, to, kind and (for promotions) promoType into a
// Move with a zero sort value.
func CreateMove(from, to Square, kind Kind, promoType PieceType) Move {
	return CreateMoveValue(from, to, kind, promoType, 0)
}

// CreateMoveValue is CreateMove plus an explicit sort value, used by
// move generation to pre-seed MVV-LVA ordering.
func CreateMoveValue(from, to Square, kind Kind, promoType PieceType, value int16) Move {
	var promoBits uint32
	if kind == Promotion || kind == PromotionCapture {
		promoBits = uint32(promoType-Knight) & movePromoMask
	}
	return Move(uint32(to.Compact())&moveToMask) |
		Move((uint32(from.Compact())&moveFromMask)<<moveFromShift) |
		Move(promoBits<<movePromoShift) |
		Move((uint32(kind)&moveKindMask)<<moveKindShift) |
		Move((uint32(value)&moveValueMask)<<moveValueShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return FromCompact(int(m & moveToMask))
}

// From returns the move's origin square.
func (m Move) From() Square {
	return FromCompact(int((m >> moveFromShift) & moveFromMask))
}

// Kind returns the move's special-case kind.
func (m Move) Kind() Kind {
	return Kind((m >> moveKindShift) & moveKindMask)
}

// PromotionType returns the piece type a pawn promotes to. It is only
// meaningful when Kind is Promotion or PromotionCapture.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType((m>>movePromoShift)&movePromoMask)
}

// IsCapture reports whether m's kind marks it as a capture, i.e. whether
// it is EnPassant or PromotionCapture. It returns false for a Normal move
// that takes a piece, since that captured piece is tracked by the board,
// not by the move bits.
func (m Move) IsCapture() bool {
	k := m.Kind()
	return k == EnPassant || k == PromotionCapture
}

// Value returns the move's sort-order key. It carries no chess meaning
// on its own; move generation and the search set it to steer ordering.
// The field is 15 bits wide; WithValue/CreateMoveValue keep only the low
// 15 bits, so values outside [-16384, 16383] wrap around.
func (m Move) Value() int16 {
	raw := uint32(m>>moveValueShift) & moveValueMask
	if raw&moveValueSign != 0 {
		raw |= ^uint32(moveValueMask)
	}
	return int16(int32(raw))
}

// WithValue returns m with its sort value replaced by v.
func (m Move) WithValue(v int16) Move {
	return (m &^ (Move(moveValueMask) << moveValueShift)) | (Move(uint32(v)&moveValueMask) << moveValueShift)
}

// MoveOf returns m stripped of its sort value, so two moves that differ
// only by ordering metadata compare equal.
func (m Move) MoveOf() Move {
	return m &^ (Move(moveValueMask) << moveValueShift)
}

// IsValid reports whether m is a non-zero, well-formed move.
func (m Move) IsValid() bool {
	return m.MoveOf() != MoveNone
}

// String returns coordinate notation plus a promotion suffix, e.g.
// "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.Kind() == Promotion || m.Kind() == PromotionCapture {
		s += string(m.PromotionType().Char())
	}
	return s
}

// StringUci is an alias for String kept for symmetry with the other
// value types' naming; UCI coordinate notation is exactly String's
// output.
func (m Move) StringUci() string {
	return m.String()
}

// StringBits renders m's raw packed representation for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}
