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

// Package search implements iterative-deepening alpha-beta negamax
// over the position/movegen/picker stack: null-move pruning, a
// quiescence search at the leaves, and killer/history-guided move
// ordering via internal/picker.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kylejrp/Forklift-sub000/internal/evaluator"
	"github.com/kylejrp/Forklift-sub000/internal/history"
	"github.com/kylejrp/Forklift-sub000/internal/logging"
	"github.com/kylejrp/Forklift-sub000/internal/movegen"
	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/picker"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/transpositiontable"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

var log = logging.GetLog()
var slog = logging.GetSearchLog()

// nullMoveReduction is the fixed depth reduction R applied to a
// null-move search, the standard R=2 that trades a shallower,
// unplayed-move probe for an early beta cutoff on most non-zugzwang
// positions.
const nullMoveReduction = 2

// Engine runs one search at a time; isRunning is a binary semaphore
// rather than a bool so WaitWhileSearching can block on it instead of
// busy-polling a flag.
type Engine struct {
	tt        *transpositiontable.Table
	eval      *evaluator.Evaluator
	hist      *history.History
	isRunning *semaphore.Weighted

	nodes    uint64
	deadline time.Time
	hasDeadline bool
	cancelled bool
}

// NewEngine returns an Engine with a fresh transposition table, history
// table and evaluator.
func NewEngine(ttSizeMB int) *Engine {
	return &Engine{
		tt:        transpositiontable.NewTable(ttSizeMB),
		eval:      evaluator.NewEvaluator(),
		hist:      history.NewHistory(),
		isRunning: semaphore.NewWeighted(1),
	}
}

// NewGame clears the transposition table and history heuristics,
// called between games so stale scores from an unrelated position
// never leak into a new one.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.hist.Clear()
}

// WaitWhileSearching blocks until no search is in flight.
func (e *Engine) WaitWhileSearching() {
	_ = e.isRunning.Acquire(context.Background(), 1)
	e.isRunning.Release(1)
}

// IsSearching reports whether a search is currently running.
func (e *Engine) IsSearching() bool {
	if e.isRunning.TryAcquire(1) {
		e.isRunning.Release(1)
		return false
	}
	return true
}

// FindBestMove runs iterative deepening from p's current position
// until ctx is cancelled, limits' time budget or node count is
// exhausted, or the requested depth completes. Only one search may run
// at a time; a concurrent call blocks until the first finishes.
func (e *Engine) FindBestMove(ctx context.Context, p *position.Position, limits Limits) Result {
	if err := e.isRunning.Acquire(ctx, 1); err != nil {
		return Result{}
	}
	defer e.isRunning.Release(1)

	start := time.Now()
	e.nodes = 0
	e.cancelled = false
	e.tt.NewSearch()

	if budget, ok := limits.timeBudget(p.SideToMove()); ok {
		e.deadline = start.Add(budget)
		e.hasDeadline = true
	} else {
		e.hasDeadline = false
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = types.MaxPly - 1
	}

	var fallback moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, movegen.GenAll, &fallback)
	result := Result{}
	if fallback.Len() > 0 {
		result.BestMove = fallback.At(0)
		result.Score = e.eval.Evaluate(p)
	}

	var pv []types.Move
	for depth := 1; depth <= maxDepth; depth++ {
		if e.outOfTime(ctx, limits) {
			break
		}

		score, line, ok := e.searchRoot(ctx, p, depth, limits)
		if !ok {
			break
		}

		pv = line
		result.Score = score
		result.CompletedDepth = depth
		result.Nodes = e.nodes
		result.PV = pv
		if len(pv) > 0 {
			result.BestMove = pv[0]
		}
		if len(pv) > 1 {
			result.PonderMove = pv[1]
		}

		slog.Debugf("depth=%d score=%d nodes=%d pv=%v", depth, score, e.nodes, pv)

		if score.IsMateScore() {
			break
		}
	}

	result.Elapsed = time.Since(start)
	return result
}

func (e *Engine) outOfTime(ctx context.Context, limits Limits) bool {
	if ctx.Err() != nil {
		return true
	}
	if limits.Nodes > 0 && e.nodes >= limits.Nodes {
		return true
	}
	if e.hasDeadline && time.Now().After(e.deadline) {
		return true
	}
	return false
}

// searchRoot runs one depth's negamax over every root move directly
// (rather than delegating the root ply to negamax) so it can build the
// PV and report ok=false on cancellation without corrupting result
// from a partial iteration.
func (e *Engine) searchRoot(ctx context.Context, p *position.Position, depth int, limits Limits) (types.Value, []types.Move, bool) {
	var moves moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, movegen.GenAll, &moves)
	if moves.Len() == 0 {
		if p.InCheck() {
			return -types.CheckmateValue, nil, true
		}
		return types.ValueDraw, nil, true
	}

	// Search the previous iteration's best move first.
	if prev, _, _, _, found := e.tt.Probe(p.ZobristKey(), 0); found && prev != types.MoveNone {
		for i := 1; i < moves.Len(); i++ {
			if moves.At(i).MoveOf() == prev.MoveOf() {
				first := moves.At(0)
				moves.Set(0, moves.At(i))
				moves.Set(i, first)
				break
			}
		}
	}

	alpha, beta := -types.ValueInfinite, types.ValueInfinite
	var bestMove types.Move
	var bestLine []types.Move
	bestScore := -types.ValueInfinite

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		childLine := make([]types.Move, 0, depth)
		score, complete := e.negamax(ctx, p, depth-1, 1, -beta, -alpha, limits, &childLine, false)
		score = -score
		p.UndoMove()

		if !complete || e.outOfTime(ctx, limits) {
			return 0, nil, false
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestLine = append([]types.Move{m}, childLine...)
		}
		if score > alpha {
			alpha = score
		}
	}

	if bestMove == 0 {
		return 0, nil, false
	}
	e.tt.Put(p.ZobristKey(), bestMove, bestScore, 0, depth, types.Exact)
	return bestScore, bestLine, true
}

// negamax searches one node, returning a score from the side-to-move's
// perspective and whether the subtree below it was searched to
// completion. line is filled with the principal variation below this
// node on a fail-high/improving path. parentWasNull is true only when
// this call is itself the reduced-depth search following a null move,
// so a second consecutive null move can be suppressed -- two passes in
// a row is not a sound pruning probe.
func (e *Engine) negamax(ctx context.Context, p *position.Position, depth, ply int, alpha, beta types.Value, limits Limits, line *[]types.Move, parentWasNull bool) (types.Value, bool) {
	e.nodes++
	if e.nodes&1023 == 0 && e.outOfTime(ctx, limits) {
		return e.eval.Evaluate(p), false
	}

	if p.IsRepetition() || p.IsFiftyMoveRule() {
		return types.ValueDraw, true
	}

	if depth <= 0 {
		return e.quiescence(ctx, p, ply, alpha, beta, limits)
	}

	alphaOrig := alpha
	key := p.ZobristKey()
	var ttMove types.Move
	if ttm, ttVal, ttDepth, ttType, found := e.tt.Probe(key, ply); found {
		ttMove = ttm
		if ttDepth >= depth {
			switch ttType {
			case types.Exact:
				return ttVal, true
			case types.Alpha:
				// ttVal is an upper bound: the true score is <= ttVal, so
				// it can only ever tighten beta, never raise alpha.
				if ttVal <= alpha {
					return ttVal, true
				}
				if ttVal < beta {
					beta = ttVal
				}
			case types.Beta:
				// ttVal is a lower bound: the true score is >= ttVal, so
				// it can only ever tighten alpha, never lower beta.
				if ttVal >= beta {
					return ttVal, true
				}
				if ttVal > alpha {
					alpha = ttVal
				}
			}
			if alpha >= beta {
				return ttVal, true
			}
		}
	}

	inCheck := p.InCheck()

	// Null-move pruning: skip our own move entirely and search at a
	// reduced depth. If the opponent still can't beat beta even with
	// a free move, this position is so good a real move will too.
	// Skipped when the parent itself just passed -- two consecutive
	// null moves prove nothing.
	if !parentWasNull && !inCheck && depth > nullMoveReduction && !isPawnEndgame(p) {
		p.DoNullMove()
		var discard []types.Move
		nmScore, nmComplete := e.negamax(ctx, p, depth-1-nullMoveReduction, ply+1, -beta, -beta+1, limits, &discard, true)
		p.UndoNullMove()
		if nmComplete && -nmScore >= beta {
			return beta, true
		}
	}

	pk := picker.New(p, e.hist, ply, ttMove)
	best := -types.ValueInfinite
	var bestMove types.Move
	var tried []types.Move
	legalCount := 0
	complete := true

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		p.DoMove(m)
		if p.IsAttacked(p.KingSquare(p.SideToMove().Flip()), p.SideToMove()) {
			p.UndoMove()
			continue
		}
		legalCount++

		var childLine []types.Move
		score, childComplete := e.negamax(ctx, p, depth-1, ply+1, -beta, -alpha, limits, &childLine, false)
		score = -score
		p.UndoMove()

		if !childComplete {
			complete = false
			break
		}

		if score > best {
			best = score
			bestMove = m
			*line = append((*line)[:0], m)
			*line = append(*line, childLine...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				e.hist.AddKiller(ply, m)
				e.hist.Update(p.SideToMove(), depth, m, tried)
			}
			break
		}
		if !m.IsCapture() {
			tried = append(tried, m)
		}

		if e.outOfTime(ctx, limits) {
			complete = false
			break
		}
	}

	if !complete {
		return best, false
	}

	if legalCount == 0 {
		if inCheck {
			return -types.CheckmateValue + types.Value(ply), true
		}
		return types.ValueDraw, true
	}

	vt := types.Exact
	if best <= alphaOrig {
		vt = types.Alpha
	} else if best >= beta {
		vt = types.Beta
	}
	e.tt.Put(key, bestMove, best, ply, depth, vt)

	return best, true
}

// isPawnEndgame reports whether the side to move has no non-pawn,
// non-king material, the classic null-move zugzwang trap (king-and-pawn
// endings are exactly the positions where "passing" can be illegal in
// spirit even though the rules don't forbid it).
func isPawnEndgame(p *position.Position) bool {
	side := p.SideToMove()
	for pt := types.Knight; pt <= types.Queen; pt++ {
		if p.PiecesBb(side, pt) != 0 {
			return false
		}
	}
	return true
}
