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

// Package history tracks two move-ordering heuristics across a search:
// the history table (how often a from/to pair has caused a beta cutoff)
// and killer moves (the quiet moves that caused a cutoff at a given
// ply, tried before falling back to history order).
package history

import "github.com/kylejrp/Forklift-sub000/internal/types"

const maxPly = types.MaxPly

// History holds the per-side from/to cutoff counters and the two
// killer-move slots per ply the search consults during quiet-move
// ordering.
type History struct {
	Counter [types.ColorLength][64][64]int64
	Killers [maxPly][2]types.Move
}

// NewHistory returns a zeroed History.
func NewHistory() *History {
	return &History{}
}

// Update rewards a quiet move that caused a beta cutoff and penalizes
// the quiet moves searched before it at the same node, using the
// depth-scaled bonus the search's cutoff handling applies.
func (h *History) Update(side types.Color, depth int, cutoff types.Move, triedBefore []types.Move) {
	bonus := int64(300*depth - 250)
	from, to := cutoff.From().Compact(), cutoff.To().Compact()
	h.Counter[side][from][to] += bonus

	for _, m := range triedBefore {
		f, t := m.From().Compact(), m.To().Compact()
		h.Counter[side][f][t] -= bonus
	}
}

// Score returns the history counter for a from/to pair, the ordering
// key quiet moves are sorted by once the killer slots are exhausted.
func (h *History) Score(side types.Color, m types.Move) int64 {
	return h.Counter[side][m.From().Compact()][m.To().Compact()]
}

// AddKiller records m as the most recent killer at ply, shifting the
// previous killer into the second slot unless m is already there.
func (h *History) AddKiller(ply int, m types.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	m = m.MoveOf()
	if h.Killers[ply][0] == m {
		return
	}
	h.Killers[ply][1] = h.Killers[ply][0]
	h.Killers[ply][0] = m
}

// IsKiller reports whether m is one of ply's two killer moves.
func (h *History) IsKiller(ply int, m types.Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	mv := m.MoveOf()
	return h.Killers[ply][0] == mv || h.Killers[ply][1] == mv
}

// Clear resets both tables, called at the start of a new game.
func (h *History) Clear() {
	*h = History{}
}
