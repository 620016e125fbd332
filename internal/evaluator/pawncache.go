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

import (
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// pawnCacheSize is a power of two so indexing is a mask, not a modulo.
const pawnCacheSize = 1 << 14

// pawnCacheEntry remembers both sides' pawn bitboards and the net
// (White minus Black) pawn-structure score computed for them, so a position reached by a different move order
// with the same pawn skeleton skips recomputation. It is not indexed
// by the full Zobrist key -- only the two pawn bitboards matter to
// pawnScore, so a narrower key hits far more often.
type pawnCacheEntry struct {
	whiteKey uint64
	blackKey uint64
	score    int
	occupied bool
}

type pawnCache struct {
	entries []pawnCacheEntry
}

func newPawnCache() *pawnCache {
	return &pawnCache{entries: make([]pawnCacheEntry, pawnCacheSize)}
}

// evaluate returns pawnScore(p, c), consulting and populating the
// cache keyed by both sides' pawn bitboards (passed-pawn scoring for
// one side depends on the other side's pawns too).
func (pc *pawnCache) evaluate(p *position.Position, c types.Color) int {
	whiteKey := uint64(p.PiecesBb(types.White, types.Pawn))
	blackKey := uint64(p.PiecesBb(types.Black, types.Pawn))
	idx := (whiteKey ^ (blackKey * 0x9e3779b97f4a7c15)) & (pawnCacheSize - 1)

	e := &pc.entries[idx]
	if e.occupied && e.whiteKey == whiteKey && e.blackKey == blackKey {
		if c == types.White {
			return e.score
		}
		return -e.score
	}

	whiteScore := pawnScore(p, types.White)
	blackScore := pawnScore(p, types.Black)
	net := whiteScore - blackScore

	*e = pawnCacheEntry{whiteKey: whiteKey, blackKey: blackKey, score: net, occupied: true}
	if c == types.White {
		return net
	}
	return -net
}
