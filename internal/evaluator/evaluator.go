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

// Package evaluator scores a position statically: material plus a
// handful of positional terms, all from the side-to-move's point of
// view so the search can treat the result as a plain negamax value.
package evaluator

import (
	"github.com/kylejrp/Forklift-sub000/internal/attacks"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// Evaluator holds no state of its own beyond the pawn structure cache.
// Evaluate never mutates the Position it is given, but it does write
// the pawn cache without locking, so an Evaluator is not safe for
// concurrent use by several goroutines.
type Evaluator struct {
	pawnCache *pawnCache
}

// NewEvaluator returns an Evaluator with a fresh pawn structure cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{pawnCache: newPawnCache()}
}

// Evaluate returns a centipawn score for p from the side-to-move's
// point of view: positive favors the side to move.
func (e *Evaluator) Evaluate(p *position.Position) types.Value {
	white := e.evaluateSide(p, types.White)
	black := e.evaluateSide(p, types.Black)
	score := white - black
	if p.SideToMove() == types.Black {
		score = -score
	}
	return score
}

func (e *Evaluator) evaluateSide(p *position.Position, c types.Color) types.Value {
	var score types.Value
	for pt := types.King; pt < types.PtLength; pt++ {
		bb := p.PiecesBb(c, pt)
		score += types.Value(bb.PopCount()) * types.Value(pt.ValueOf())
	}
	score += types.Value(mobility(p, c))
	score += types.Value(e.pawnCache.evaluate(p, c))
	return score
}

// mobility counts, very cheaply, how many squares each minor/major
// piece attacks, as a tie-breaker between otherwise materially equal
// positions; it deliberately does not check legality (an attacked
// square pinned against check is still "mobility" for this purpose).
func mobility(p *position.Position, c types.Color) int {
	total := 0
	for pt := types.Knight; pt <= types.Queen; pt++ {
		bb := p.PiecesBb(c, pt)
		for bb != 0 {
			var sq int
			sq, bb = bb.PopLsb()
			total += attacks.PseudoAttacks(pt, c, types.FromCompact(sq), p.OccupiedBb()).PopCount()
		}
	}
	return total
}
