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

// Square is a board square encoded 0x88-style: bits 0-2 are the file,
// bits 4-6 are the rank, and bits 3 and 7 are set only on off-board
// squares. sq&0x88 != 0 means sq is off the real board, which
// lets ray-walking code (To, slidingAttack) detect board edges with a
// single mask instead of per-direction range checks.
type Square uint8

// SqNone is the out-of-board sentinel square.
const SqNone Square = 0x78

// off88 is the 0x88 off-board test mask.
const off88 Square = 0x88

// Named squares, 0x88-encoded (rank*16 + file).
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

const (
	SqA8 Square = 0x70 + iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// IsValid reports whether sq is an on-board square.
func (sq Square) IsValid() bool {
	return sq&off88 == 0
}

// SquareOf builds a 0x88 square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)<<4 | uint8(f))
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 4)
}

// Compact converts sq to a 0..63 index suitable for addressing a
// Bitboard. The conversion folds out the four always-zero high-nibble
// padding bits: compact = (sq + (sq & 7)) >> 1.
func (sq Square) Compact() int {
	return int(sq+(sq&7)) >> 1
}

// FromCompact is the inverse of Compact: it rebuilds a 0x88 square from
// a 0..63 bitboard index.
func FromCompact(c int) Square {
	return Square(c + (c &^ 7))
}

// To steps sq one square in direction d, returning SqNone if the result
// would leave the board.
func (sq Square) To(d Direction) Square {
	n := Square(int8(sq) + int8(d))
	if !n.IsValid() {
		return SqNone
	}
	return n
}

// String returns algebraic notation such as "e4", or "-" for SqNone.
func (sq Square) String() string {
	if sq == SqNone || !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// MakeSquare parses algebraic notation such as "e4" into a Square. It
// returns SqNone on malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// AllSquares lists the 64 on-board squares in 0x88 order (rank-major,
// a1..h1, a2..h2, ...), suitable for range loops over the whole board.
var AllSquares = func() [64]Square {
	var out [64]Square
	i := 0
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			out[i] = SquareOf(f, r)
			i++
		}
	}
	return out
}()
