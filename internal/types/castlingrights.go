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

// CastlingRights is a 4-bit mask of the castling rights still available.
type CastlingRights uint8

// The four individual rights and their combinations.
const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = 2
	CastlingWhite        CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = 4
	CastlingBlackOOO     CastlingRights = 8
	CastlingBlack        CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength int            = 16
)

// Has reports whether all bits of mask are set in cr.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Add returns cr with mask's bits set.
func (cr CastlingRights) Add(mask CastlingRights) CastlingRights {
	return cr | mask
}

// Remove returns cr with mask's bits cleared.
func (cr CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// String renders cr in FEN order, e.g. "KQkq", or "-" if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if cr.Has(CastlingWhiteOO) {
		buf = append(buf, 'K')
	}
	if cr.Has(CastlingWhiteOOO) {
		buf = append(buf, 'Q')
	}
	if cr.Has(CastlingBlackOO) {
		buf = append(buf, 'k')
	}
	if cr.Has(CastlingBlackOOO) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// castlingRightsLost maps a square to the rights that are revoked when
// a king or rook leaves it (or, for the opponent's rook home squares,
// when a rook there is captured). Moving/capturing any other square
// leaves castling rights untouched.
var castlingRightsLost = map[Square]CastlingRights{
	SqE1: CastlingWhite,
	SqA1: CastlingWhiteOOO,
	SqH1: CastlingWhiteOO,
	SqE8: CastlingBlack,
	SqA8: CastlingBlackOOO,
	SqH8: CastlingBlackOO,
}

// CastlingLostBy returns the castling rights revoked by a move's piece
// leaving, or a rook being captured on, sq.
func CastlingLostBy(sq Square) CastlingRights {
	return castlingRightsLost[sq]
}
