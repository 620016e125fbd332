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

// Package attacks precomputes every attack table the move generator and
// the position's IsAttacked query need: leaper tables for pawns,
// knights and kings, and magic-bitboard tables for the sliding pieces
// (bishop, rook, queen). Everything here is built once at package init
// and is read-only afterward, so it is safe for concurrent use by the
// parallel perft workers.
package attacks

import (
	"math/bits"

	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// magic holds one square's magic-multiplication attack table, the same
// shape the teacher's internal/types/magic.go Magic struct uses: a
// single backing slice shared by every square for a piece type, sliced
// per-square by offset rather than addressed via separate allocations.
type magic struct {
	mask  types.Bitboard
	magic uint64
	shift uint
	attacks []types.Bitboard
}

func (m *magic) index(occupied types.Bitboard) uint64 {
	return (uint64(occupied&m.mask) * m.magic) >> m.shift
}

var (
	bishopMagics [64]magic
	rookMagics   [64]magic

	bishopTable [0x1480]types.Bitboard
	rookTable   [0x19000]types.Bitboard
)

var bishopDirs = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}
var rookDirs = [4]types.Direction{types.North, types.East, types.South, types.West}

// slidingAttack walks every direction in dirs one 0x88 step at a time
// from sq until it falls off the board or hits an occupied square,
// OR-ing in each square it touches. It is only used offline, to build
// the magic attack tables and to verify candidate magics at init time
// -- the hot path always goes through BishopAttacks/RookAttacks.
func slidingAttack(dirs [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			s = s.To(d)
			if s == types.SqNone {
				break
			}
			attack = attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// edgeExclusionMask removes the board edges a slider's ray would
// terminate on anyway, the same trick Stockfish (and the teacher) use
// to shrink the relevant-occupancy mask before sizing the magic shift.
func edgeExclusionMask(sq types.Square) types.Bitboard {
	var edges types.Bitboard
	f, r := sq.FileOf(), sq.RankOf()
	if f != types.FileA {
		edges |= types.FileA.Bb()
	}
	if f != types.FileH {
		edges |= types.FileH.Bb()
	}
	if r != types.Rank1 {
		edges |= types.Rank1.Bb()
	}
	if r != types.Rank8 {
		edges |= types.Rank8.Bb()
	}
	return edges
}

// prnG is a xorshift64star generator seeded per-rank the way Stockfish
// seeds its magic search, so the same magics are found every run.
type prnG struct{ s uint64 }

func (p *prnG) rand64() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

// sparseRand ANDs three draws together to bias toward the sparse
// (few-bits-set) candidates that make good magic multipliers.
func (p *prnG) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}

var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics populates table (one of bishopTable/rookTable) and fills
// magics[sq] for every square, searching for a multiplier that maps
// every occupancy subset of the relevant mask to a collision-free
// index via the Carry-Rippler subset enumeration trick.
func initMagics(table []types.Bitboard, magics *[64]magic, dirs [4]types.Direction) {
	var occupancy [4096]types.Bitboard
	var reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for _, sq := range types.AllSquares {
		m := &magics[sq.Compact()]
		edges := edgeExclusionMask(sq)
		m.mask = slidingAttack(dirs, sq, types.EmptyBb) &^ edges
		m.shift = 64 - uint(m.mask.PopCount())

		if sq.Compact() == 0 {
			m.attacks = table[0:]
		} else {
			m.attacks = magics[sq.Compact()-1].attacks[size:]
		}

		size = 0
		var b types.Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}
		m.attacks = m.attacks[:size]

		prn := &prnG{s: magicSeeds[sq.RankOf()]}
		for i := 0; i < size; {
			var candidate uint64
			for {
				candidate = prn.sparseRand()
				if bits.OnesCount64(uint64(m.mask)*candidate>>56) >= 6 {
					break
				}
			}
			m.magic = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func init() {
	initMagics(bishopTable[:], &bishopMagics, bishopDirs)
	initMagics(rookTable[:], &rookMagics, rookDirs)
}

// BishopAttacks returns the bishop attack set from sq given occupied.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq.Compact()]
	return m.attacks[m.index(occupied)]
}

// RookAttacks returns the rook attack set from sq given occupied.
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &rookMagics[sq.Compact()]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks returns the queen attack set from sq given occupied.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// SliderAttacks dispatches to Bishop/Rook/QueenAttacks by piece type,
// the single entry point movegen and position.IsAttacked use so they
// never need to know which backing table a slider uses.
func SliderAttacks(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	default:
		return types.EmptyBb
	}
}
