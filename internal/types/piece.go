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

// Piece packs a Color into bit 3 and a PieceType into bits 0-2, the
// same layout the mailbox board stores directly so a lookup needs no
// further decoding.
type Piece int8

// PieceNone and the twelve colored pieces.
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = Piece(King)
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	BlackKing   Piece = Piece(8 + King)
	BlackPawn   Piece = Piece(8 + Pawn)
	BlackKnight Piece = Piece(8 + Knight)
	BlackBishop Piece = Piece(8 + Bishop)
	BlackRook   Piece = Piece(8 + Rook)
	BlackQueen  Piece = Piece(8 + Queen)
	PieceLength Piece = 16
)

// MakePiece builds the colored Piece for c and pt.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// IsValid reports whether p is a real piece (not PieceNone and not an
// unused slot in the 0-15 range).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of p, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of p in centipawns.
func (p Piece) ValueOf() int16 {
	return p.TypeOf().ValueOf()
}

var pieceChars = [PieceLength]byte{
	WhiteKing: 'K', WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q',
	BlackKing: 'k', BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q',
}

// Char returns the FEN letter for p ('.' for PieceNone).
func (p Piece) Char() byte {
	if p == PieceNone {
		return '.'
	}
	return pieceChars[p]
}

// String returns the same single-character form as Char.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar parses a FEN piece letter, returning PieceNone for '.'
// or any unrecognized byte.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	default:
		return PieceNone
	}
}
