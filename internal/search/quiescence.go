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

package search

import (
	"context"

	"github.com/kylejrp/Forklift-sub000/internal/picker"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// quiescence extends the search along capture lines past the nominal
// leaf depth so the static evaluator is never asked to judge a
// position where a piece is hanging mid-capture -- the "horizon
// effect" a plain fixed-depth search would otherwise suffer from. It
// returns a score from the side-to-move's perspective and whether the
// subtree below it was searched to completion, the same completeness
// contract negamax follows.
//
// A side to move in check can't trust a stand-pat floor -- the king
// might already be lost -- so that case is delegated to
// quiescenceEvasions, which searches every legal response in full
// instead of only captures and promotions.
func (e *Engine) quiescence(ctx context.Context, p *position.Position, ply int, alpha, beta types.Value, limits Limits) (types.Value, bool) {
	e.nodes++
	if e.nodes&1023 == 0 && e.outOfTime(ctx, limits) {
		return e.eval.Evaluate(p), false
	}

	if p.InCheck() {
		return e.quiescenceEvasions(ctx, p, ply, alpha, beta, limits)
	}

	standPat := e.eval.Evaluate(p)
	if standPat >= beta {
		return beta, true
	}
	if standPat > alpha {
		alpha = standPat
	}

	pk := picker.NewWithStrategy(p, nil, ply, 0, picker.PseudoLegalCapturesAndPromotions)
	us := p.SideToMove()

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		p.DoMove(m)
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove()
			continue
		}
		score, complete := e.quiescence(ctx, p, ply+1, -beta, -alpha, limits)
		score = -score
		p.UndoMove()

		if !complete {
			return alpha, false
		}

		if score >= beta {
			return beta, true
		}
		if score > alpha {
			alpha = score
		}

		if e.outOfTime(ctx, limits) {
			return alpha, false
		}
	}

	return alpha, true
}

// quiescenceEvasions searches every legal move available to a side to
// move that is in check, without a stand-pat floor, mirroring negamax's
// full-search structure but with no depth counter -- the search only
// stops when every evasion has been tried or one cuts off.
func (e *Engine) quiescenceEvasions(ctx context.Context, p *position.Position, ply int, alpha, beta types.Value, limits Limits) (types.Value, bool) {
	pk := picker.NewWithStrategy(p, nil, ply, 0, picker.LegalAll)
	legalCount := 0

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		legalCount++

		p.DoMove(m)
		score, complete := e.quiescence(ctx, p, ply+1, -beta, -alpha, limits)
		score = -score
		p.UndoMove()

		if !complete {
			return alpha, false
		}

		if score >= beta {
			return beta, true
		}
		if score > alpha {
			alpha = score
		}

		if e.outOfTime(ctx, limits) {
			return alpha, false
		}
	}

	if legalCount == 0 {
		return -types.CheckmateValue + types.Value(ply), true
	}

	return alpha, true
}
