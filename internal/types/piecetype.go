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

// PieceType identifies a chess piece irrespective of color.
type PieceType uint8

// The six piece types plus the sentinel PtNone.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// pieceTypeValue holds the standard material value of each piece type
// in centipawns. King carries a large sentinel value so that king
// "capture" scores in move ordering dominate without special-casing.
var pieceTypeValue = [PtLength]int16{PtNone: 0, King: 20000, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900}

// ValueOf returns the material value of pt in centipawns.
func (pt PieceType) ValueOf() int16 {
	return pieceTypeValue[pt]
}

var pieceTypeChars = [PtLength]byte{PtNone: '-', King: 'k', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// Char returns the lower-case algebraic letter for pt ("-" has none).
func (pt PieceType) Char() byte {
	return pieceTypeChars[pt]
}

var pieceTypeNames = [PtLength]string{PtNone: "none", King: "king", Pawn: "pawn", Knight: "knight", Bishop: "bishop", Rook: "rook", Queen: "queen"}

// String returns the piece type's name, e.g. "knight".
func (pt PieceType) String() string {
	return pieceTypeNames[pt]
}
