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

// Package picker hands the search moves one at a time in the order
// most likely to cause an early beta cutoff: the transposition table's
// move first, then captures/promotions ranked by MVV-LVA, then the two
// killer moves for the current ply, then the rest ordered by history
// score. Each stage is only generated and sorted when the previous
// stage runs dry, so a cutoff in an early stage never pays for later
// ones.
package picker

import (
	"github.com/kylejrp/Forklift-sub000/internal/history"
	"github.com/kylejrp/Forklift-sub000/internal/movegen"
	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

type stage int

const (
	stageTT stage = iota
	stageGenCaptures
	stageCaptures
	stageKillers
	stageGenQuiets
	stageQuiets
	stageDone
)

// Strategy selects which of the move picker's three move orderings
// Next draws from, per the search's three distinct node kinds: a
// regular negamax node wants every pseudo-legal move staged and
// ordered (PseudoLegalAll); quiescence wants only the forcing subset,
// pseudo-legal captures and promotions, ordered by MVV-LVA
// (PseudoLegalCapturesAndPromotions); and quiescence's in-check
// evasion search wants every fully legal move, since a position in
// check can't afford to discover an illegal pseudo-legal move the hard
// way (LegalAll).
type Strategy int

const (
	PseudoLegalAll Strategy = iota
	PseudoLegalCapturesAndPromotions
	LegalAll
)

// Picker is a one-shot, single-ply move iterator. Callers create one
// per node and discard it once Next returns false.
type Picker struct {
	pos      *position.Position
	hist     *history.History
	ply      int
	ttMove   types.Move
	strategy Strategy
	current  stage

	captures moveslice.MoveSlice
	quiets   moveslice.MoveSlice
	capIdx   int
	quietIdx int
	killerIdx int

	legal    moveslice.MoveSlice
	legalIdx int
	genDone  bool

	emitted map[types.Move]bool
}

// New returns a Picker for pos at the given search ply, trying ttMove
// first if it is non-zero. It uses the PseudoLegalAll strategy, the
// staged TT/MVV-LVA/killer/history ordering regular search nodes want.
func New(pos *position.Position, hist *history.History, ply int, ttMove types.Move) *Picker {
	return NewWithStrategy(pos, hist, ply, ttMove, PseudoLegalAll)
}

// NewWithStrategy returns a Picker using the given Strategy. hist may
// be nil for strategies that never consult killer/history tables
// (PseudoLegalCapturesAndPromotions, LegalAll).
func NewWithStrategy(pos *position.Position, hist *history.History, ply int, ttMove types.Move, strategy Strategy) *Picker {
	return &Picker{
		pos:      pos,
		hist:     hist,
		ply:      ply,
		ttMove:   ttMove.MoveOf(),
		strategy: strategy,
		current:  stageTT,
		emitted:  make(map[types.Move]bool, 8),
	}
}

// Next returns the next move to try, or ok=false once the strategy's
// moves are exhausted.
func (pk *Picker) Next() (m types.Move, ok bool) {
	switch pk.strategy {
	case PseudoLegalCapturesAndPromotions:
		return pk.nextCapturesAndPromotions()
	case LegalAll:
		return pk.nextLegalAll()
	default:
		return pk.nextPseudoLegalAll()
	}
}

// nextCapturesAndPromotions draws from the pseudo-legal captures and
// promotions only -- quiescence's forcing-move subset -- ordered by
// MVV-LVA.
func (pk *Picker) nextCapturesAndPromotions() (types.Move, bool) {
	if !pk.genDone {
		movegen.GeneratePseudoLegalMoves(pk.pos, movegen.GenCap, &pk.captures)
		pk.captures.Sort()
		pk.genDone = true
	}
	for pk.capIdx < pk.captures.Len() {
		cand := pk.captures.At(pk.capIdx)
		pk.capIdx++
		if pk.emitted[cand.MoveOf()] {
			continue
		}
		pk.emitted[cand.MoveOf()] = true
		return cand, true
	}
	return 0, false
}

// nextLegalAll draws from every fully legal move, for quiescence's
// in-check evasion search.
func (pk *Picker) nextLegalAll() (types.Move, bool) {
	if !pk.genDone {
		movegen.GenerateLegalMoves(pk.pos, movegen.GenAll, &pk.legal)
		pk.genDone = true
	}
	if pk.legalIdx >= pk.legal.Len() {
		return 0, false
	}
	cand := pk.legal.At(pk.legalIdx)
	pk.legalIdx++
	return cand, true
}

// nextPseudoLegalAll is the original TT/MVV-LVA/killer/history staged
// pipeline, used by regular negamax nodes.
func (pk *Picker) nextPseudoLegalAll() (m types.Move, ok bool) {
	for {
		switch pk.current {
		case stageTT:
			pk.current = stageGenCaptures
			if pk.ttMove != 0 && pk.pseudoLegalInPosition(pk.ttMove) {
				pk.emitted[pk.ttMove] = true
				return pk.ttMove, true
			}

		case stageGenCaptures:
			movegen.GeneratePseudoLegalMoves(pk.pos, movegen.GenCap, &pk.captures)
			pk.captures.Sort()
			pk.current = stageCaptures

		case stageCaptures:
			for pk.capIdx < pk.captures.Len() {
				cand := pk.captures.At(pk.capIdx)
				pk.capIdx++
				if pk.emitted[cand.MoveOf()] {
					continue
				}
				pk.emitted[cand.MoveOf()] = true
				return cand, true
			}
			pk.current = stageKillers

		case stageKillers:
			for pk.killerIdx < 2 {
				k := pk.hist.Killers[boundedPly(pk.ply)][pk.killerIdx]
				pk.killerIdx++
				if k == 0 || pk.emitted[k] || !pk.pseudoLegalInPosition(k) {
					continue
				}
				pk.emitted[k] = true
				return k, true
			}
			pk.current = stageGenQuiets

		case stageGenQuiets:
			movegen.GeneratePseudoLegalMoves(pk.pos, movegen.GenNonCap, &pk.quiets)
			side := pk.pos.SideToMove()
			pk.quiets.ForEach(func(i int, mv types.Move) {
				pk.quiets.Set(i, mv.WithValue(clampToMoveValue(pk.hist.Score(side, mv))))
			})
			pk.quiets.Sort()
			pk.current = stageQuiets

		case stageQuiets:
			for pk.quietIdx < pk.quiets.Len() {
				cand := pk.quiets.At(pk.quietIdx)
				pk.quietIdx++
				if pk.emitted[cand.MoveOf()] {
					continue
				}
				pk.emitted[cand.MoveOf()] = true
				return cand, true
			}
			pk.current = stageDone

		case stageDone:
			return 0, false
		}
	}
}

// clampToMoveValue fits a history counter (which can grow well past
// int16 over a long search) into the range Move's packed sort-value
// field can hold without wrapping.
func clampToMoveValue(v int64) int16 {
	const limit = 1<<14 - 1
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	default:
		return int16(v)
	}
}

func boundedPly(ply int) int {
	if ply < 0 {
		return 0
	}
	if ply >= types.MaxPly {
		return types.MaxPly - 1
	}
	return ply
}

// pseudoLegalInPosition re-validates a cached move (TT move or killer)
// against the current position: the piece must still be on From and
// able to reach To, since stale entries from a different position can
// share the same table slot or killer array index.
func (pk *Picker) pseudoLegalInPosition(m types.Move) bool {
	piece := pk.pos.PieceAt(m.From())
	if piece == types.PieceNone || piece.ColorOf() != pk.pos.SideToMove() {
		return false
	}
	var pseudo moveslice.MoveSlice
	movegen.GeneratePseudoLegalMoves(pk.pos, movegen.GenAll, &pseudo)
	return pseudo.Contains(m)
}
