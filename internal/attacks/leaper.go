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

package attacks

import "github.com/kylejrp/Forklift-sub000/internal/types"

// Leaper tables, precomputed once at package init: every square's
// knight/king destinations and every color's pawn-capture targets.
var (
	knightAttacksBb [64]types.Bitboard
	kingAttacksBb   [64]types.Bitboard
	pawnAttacksBb   [2][64]types.Bitboard
)

func init() {
	for _, sq := range types.AllSquares {
		c := sq.Compact()

		for _, d := range types.KnightDeltas {
			if to := sq.To(d); to != types.SqNone {
				knightAttacksBb[c] = knightAttacksBb[c].PushSquare(to)
			}
		}

		for _, d := range types.Directions {
			if to := sq.To(d); to != types.SqNone {
				kingAttacksBb[c] = kingAttacksBb[c].PushSquare(to)
			}
		}

		if to := sq.To(types.Northeast); to != types.SqNone {
			pawnAttacksBb[types.White][c] = pawnAttacksBb[types.White][c].PushSquare(to)
		}
		if to := sq.To(types.Northwest); to != types.SqNone {
			pawnAttacksBb[types.White][c] = pawnAttacksBb[types.White][c].PushSquare(to)
		}
		if to := sq.To(types.Southeast); to != types.SqNone {
			pawnAttacksBb[types.Black][c] = pawnAttacksBb[types.Black][c].PushSquare(to)
		}
		if to := sq.To(types.Southwest); to != types.SqNone {
			pawnAttacksBb[types.Black][c] = pawnAttacksBb[types.Black][c].PushSquare(to)
		}
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq types.Square) types.Bitboard {
	return knightAttacksBb[sq.Compact()]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq types.Square) types.Bitboard {
	return kingAttacksBb[sq.Compact()]
}

// PawnAttacks returns the squares a pawn of color c standing on sq
// attacks (diagonally forward), irrespective of whether a capturable
// piece is actually there.
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return pawnAttacksBb[c][sq.Compact()]
}

// PseudoAttacks dispatches to the leaper or slider table by piece type,
// the single entry point position.IsAttacked reverse-probes every
// piece type through. Occupied is ignored for King/Knight/Pawn.
func PseudoAttacks(pt types.PieceType, c types.Color, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.King:
		return KingAttacks(sq)
	case types.Knight:
		return KnightAttacks(sq)
	case types.Pawn:
		return PawnAttacks(c, sq)
	default:
		return SliderAttacks(pt, sq, occupied)
	}
}
