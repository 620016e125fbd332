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

package history

import (
	"testing"

	"github.com/kylejrp/Forklift-sub000/internal/types"
)

func move(from, to string) types.Move {
	return types.CreateMove(types.MakeSquare(from), types.MakeSquare(to), types.Normal, types.PtNone)
}

func TestUpdateRewardsCutoffMove(t *testing.T) {
	h := NewHistory()
	cutoff := move("e2", "e4")
	h.Update(types.White, 4, cutoff, nil)
	if got := h.Score(types.White, cutoff); got <= 0 {
		t.Fatalf("a cutoff move should get a positive history score, got %d", got)
	}
}

func TestUpdatePenalizesMovesTriedBeforeCutoff(t *testing.T) {
	h := NewHistory()
	cutoff := move("e2", "e4")
	before := move("d2", "d4")
	h.Update(types.White, 4, cutoff, []types.Move{before})
	if got := h.Score(types.White, before); got >= 0 {
		t.Fatalf("a quiet move tried before the cutoff should be penalized, got %d", got)
	}
}

func TestScoreIsZeroForUntouchedMove(t *testing.T) {
	h := NewHistory()
	if got := h.Score(types.White, move("a2", "a3")); got != 0 {
		t.Fatalf("an untouched move should score 0, got %d", got)
	}
}

func TestScoreDoesNotMixColors(t *testing.T) {
	h := NewHistory()
	cutoff := move("e2", "e4")
	h.Update(types.White, 4, cutoff, nil)
	if got := h.Score(types.Black, cutoff); got != 0 {
		t.Fatalf("white's history update should not leak into black's table, got %d", got)
	}
}

func TestUpdateAccumulatesAcrossCalls(t *testing.T) {
	h := NewHistory()
	cutoff := move("e2", "e4")
	h.Update(types.White, 4, cutoff, nil)
	first := h.Score(types.White, cutoff)
	h.Update(types.White, 4, cutoff, nil)
	second := h.Score(types.White, cutoff)
	if second <= first {
		t.Fatalf("repeated cutoffs for the same move should keep increasing its score: %d then %d", first, second)
	}
}

func TestDeeperCutoffEarnsBiggerBonus(t *testing.T) {
	h := NewHistory()
	shallow := move("e2", "e4")
	deep := move("d2", "d4")
	h.Update(types.White, 1, shallow, nil)
	h.Update(types.White, 10, deep, nil)
	if h.Score(types.White, deep) <= h.Score(types.White, shallow) {
		t.Fatalf("a cutoff found at a greater depth should earn a bigger bonus")
	}
}

func TestAddKillerRecordsMostRecentFirst(t *testing.T) {
	h := NewHistory()
	m1 := move("e2", "e4")
	m2 := move("d2", "d4")
	h.AddKiller(3, m1)
	h.AddKiller(3, m2)
	if h.Killers[3][0] != m2 {
		t.Fatalf("the most recently added killer should occupy slot 0")
	}
	if h.Killers[3][1] != m1 {
		t.Fatalf("the previous killer should be shifted into slot 1")
	}
}

func TestAddKillerIgnoresDuplicateOfMostRecent(t *testing.T) {
	h := NewHistory()
	m1 := move("e2", "e4")
	h.AddKiller(3, m1)
	h.AddKiller(3, m1)
	if h.Killers[3][0] != m1 || h.Killers[3][1] != types.MoveNone {
		t.Fatalf("adding the same killer twice in a row should not shift anything")
	}
}

func TestAddKillerIgnoresSortValueWhenComparing(t *testing.T) {
	h := NewHistory()
	plain := move("e2", "e4")
	scored := plain.WithValue(500)
	h.AddKiller(3, plain)
	h.AddKiller(3, scored)
	if h.Killers[3][1] != types.MoveNone {
		t.Fatalf("a killer differing only by sort value should be treated as the same move, not re-shifted")
	}
}

func TestAddKillerIgnoresOutOfRangePly(t *testing.T) {
	h := NewHistory()
	// should not panic
	h.AddKiller(-1, move("e2", "e4"))
	h.AddKiller(maxPly, move("e2", "e4"))
	h.AddKiller(maxPly+10, move("e2", "e4"))
}

func TestIsKillerMatchesEitherSlot(t *testing.T) {
	h := NewHistory()
	m1 := move("e2", "e4")
	m2 := move("d2", "d4")
	h.AddKiller(5, m1)
	h.AddKiller(5, m2)
	if !h.IsKiller(5, m1) || !h.IsKiller(5, m2) {
		t.Fatalf("both killer slots at a ply should report IsKiller true")
	}
	if h.IsKiller(5, move("a2", "a3")) {
		t.Fatalf("an unrelated move should not be reported as a killer")
	}
}

func TestIsKillerOutOfRangePlyIsFalse(t *testing.T) {
	h := NewHistory()
	if h.IsKiller(-1, move("e2", "e4")) || h.IsKiller(maxPly, move("e2", "e4")) {
		t.Fatalf("an out-of-range ply should never report a killer match")
	}
}

func TestClearResetsHistoryAndKillers(t *testing.T) {
	h := NewHistory()
	cutoff := move("e2", "e4")
	h.Update(types.White, 4, cutoff, nil)
	h.AddKiller(3, cutoff)
	h.Clear()
	if h.Score(types.White, cutoff) != 0 {
		t.Fatalf("Clear should reset the history counters")
	}
	if h.IsKiller(3, cutoff) {
		t.Fatalf("Clear should reset the killer-move tables")
	}
}
