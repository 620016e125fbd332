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

// Package zobrist holds the fixed random keys the position package XORs
// incrementally into its hash on every DoMove (UndoMove restores the
// saved key), so two
// identical positions reached by different move orders hash equal.
package zobrist

import "github.com/kylejrp/Forklift-sub000/internal/types"

// Key is a 64-bit incremental position hash.
type Key uint64

var (
	// PieceSquare[piece][compactSquare] keys every occupied square.
	PieceSquare [types.PieceLength][64]Key
	// Side is XORed in whenever the side to move flips.
	Side Key
	// Castling[rights] keys the castling-rights nibble directly, so
	// a rights change XORs out Castling[old] and in Castling[new].
	Castling [types.CastlingRightsLength]Key
	// EnPassantFile keys an en passant target by file only -- rank is
	// implied by side to move, so eight keys suffice.
	EnPassantFile [8]Key
)

// rand64 is a xorshift64star generator seeded with a fixed constant so
// the key set -- and therefore every hash computed from it -- is
// reproducible across runs and platforms.
type rand64 struct{ s uint64 }

func (r *rand64) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	r := &rand64{s: 1070372}
	for p := types.Piece(0); p < types.PieceLength; p++ {
		if !p.IsValid() {
			continue
		}
		for sq := 0; sq < 64; sq++ {
			PieceSquare[p][sq] = Key(r.next())
		}
	}
	Side = Key(r.next())
	for cr := 0; cr < types.CastlingRightsLength; cr++ {
		Castling[cr] = Key(r.next())
	}
	for f := 0; f < 8; f++ {
		EnPassantFile[f] = Key(r.next())
	}
}

// OfPieceSquare returns the key for piece p standing on sq.
func OfPieceSquare(p types.Piece, sq types.Square) Key {
	return PieceSquare[p][sq.Compact()]
}

// OfEnPassant returns the key for an en passant target on file f.
func OfEnPassant(f types.File) Key {
	return EnPassantFile[f]
}
