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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of compact (0-63) board squares, one bit per
// square with a1=bit 0 running rank-major to h8=bit 63.
type Bitboard uint64

// Empty and fully-occupied bitboards.
const (
	EmptyBb Bitboard = 0
	AllBb   Bitboard = ^Bitboard(0)
)

// Bb returns the singleton bitboard containing sq.
func (sq Square) Bb() Bitboard {
	return squareBb[sq.Compact()]
}

// Has reports whether sq's bit is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sq.Bb() != 0
}

// PushSquare returns bb with sq's bit set.
func (bb Bitboard) PushSquare(sq Square) Bitboard {
	return bb | sq.Bb()
}

// PopSquare returns bb with sq's bit cleared.
func (bb Bitboard) PopSquare(sq Square) Bitboard {
	return bb &^ sq.Bb()
}

// Lsb returns the compact square index of the least significant set
// bit. The caller must ensure bb is non-zero.
func (bb Bitboard) Lsb() int {
	return bits.TrailingZeros64(uint64(bb))
}

// Msb returns the compact square index of the most significant set
// bit. The caller must ensure bb is non-zero.
func (bb Bitboard) Msb() int {
	return 63 - bits.LeadingZeros64(uint64(bb))
}

// PopLsb returns the least significant set square and bb with that bit
// cleared, for the common "iterate all squares" idiom.
func (bb Bitboard) PopLsb() (int, Bitboard) {
	lsb := bb.Lsb()
	return lsb, bb & (bb - 1)
}

// PopCount returns the number of set bits in bb.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// MoreThanOne reports whether bb has two or more bits set, a cheaper
// test than PopCount() > 1 for the single-bit-check hot path.
func (bb Bitboard) MoreThanOne() bool {
	return bb&(bb-1) != 0
}

// ShiftNorth/ShiftSouth/... shift a bitboard one step in a compact-board
// direction, masking off wraparound across the file edges.
func (bb Bitboard) ShiftNorth() Bitboard { return bb << 8 }
func (bb Bitboard) ShiftSouth() Bitboard { return bb >> 8 }
func (bb Bitboard) ShiftEast() Bitboard  { return (bb &^ fileBb[FileH]) << 1 }
func (bb Bitboard) ShiftWest() Bitboard  { return (bb &^ fileBb[FileA]) >> 1 }

// String renders bb as an 8x8 board diagram, rank 8 on top.
func (bb Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			if bb.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var (
	squareBb [64]Bitboard
	fileBb   [8]Bitboard
	rankBb   [8]Bitboard
)

func init() {
	for c := 0; c < 64; c++ {
		squareBb[c] = Bitboard(1) << uint(c)
	}
	for _, sq := range AllSquares {
		fileBb[sq.FileOf()] |= squareBb[sq.Compact()]
		rankBb[sq.RankOf()] |= squareBb[sq.Compact()]
	}
}
