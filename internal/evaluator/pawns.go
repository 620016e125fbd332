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

package evaluator

import "github.com/kylejrp/Forklift-sub000/internal/types"
import "github.com/kylejrp/Forklift-sub000/internal/position"

const (
	doubledPawnPenalty = -12
	isolatedPawnPenalty = -10
	passedPawnBonus     = 20
)

// pawnScore scores color c's pawn structure: doubled and isolated
// pawns are penalized, passed pawns (no enemy pawn on the same or an
// adjacent file ahead of them) are rewarded proportional to how far
// advanced they are.
func pawnScore(p *position.Position, c types.Color) int {
	ours := p.PiecesBb(c, types.Pawn)
	theirs := p.PiecesBb(c.Flip(), types.Pawn)
	score := 0

	var fileCounts [8]int
	bb := ours
	for bb != 0 {
		var sq int
		sq, bb = bb.PopLsb()
		fileCounts[types.FromCompact(sq).FileOf()]++
	}
	for f := types.FileA; f <= types.FileH; f++ {
		if fileCounts[f] > 1 {
			score += doubledPawnPenalty * (fileCounts[f] - 1)
		}
		if fileCounts[f] > 0 {
			isolated := true
			if f > types.FileA && fileCounts[f-1] > 0 {
				isolated = false
			}
			if f < types.FileH && fileCounts[f+1] > 0 {
				isolated = false
			}
			if isolated {
				score += isolatedPawnPenalty * fileCounts[f]
			}
		}
	}

	bb = ours
	for bb != 0 {
		var sqC int
		sqC, bb = bb.PopLsb()
		sq := types.FromCompact(sqC)
		if isPassed(sq, c, theirs) {
			advance := int(sq.RankOf())
			if c == types.Black {
				advance = int(types.Rank8 - sq.RankOf())
			}
			score += passedPawnBonus * advance
		}
	}

	return score
}

// isPassed reports whether a pawn on sq belonging to color c has no
// enemy pawn blocking or flanking it on the files ahead.
func isPassed(sq types.Square, c types.Color, enemyPawns types.Bitboard) bool {
	f := sq.FileOf()
	r := int(sq.RankOf())
	bb := enemyPawns
	for bb != 0 {
		var eC int
		eC, bb = bb.PopLsb()
		e := types.FromCompact(eC)
		ef := int(e.FileOf())
		if ef < int(f)-1 || ef > int(f)+1 {
			continue
		}
		er := int(e.RankOf())
		if c == types.White && er > r {
			return false
		}
		if c == types.Black && er < r {
			return false
		}
	}
	return true
}
