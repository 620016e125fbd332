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
	"time"

	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// Limits describes when a search should stop, mirroring the handful of
// controls a UCI "go" command would carry even though this package
// exposes a synchronous Go API rather than the UCI wire protocol
// itself.
type Limits struct {
	Depth     int
	MoveTime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	Infinite  bool
	Nodes     uint64
}

// Result is what a completed (or cancelled) search returns.
type Result struct {
	BestMove       types.Move
	PonderMove     types.Move
	Score          types.Value
	CompletedDepth int
	Nodes          uint64
	PV             []types.Move
	Elapsed        time.Duration
}

// timeBudget converts Limits plus the side to move into a single
// allotted duration, the same clock-plus-increment heuristic most
// engines use: roughly 1/30th of the remaining clock plus the full
// increment, clamped to leave a safety margin before flagging.
func (l Limits) timeBudget(side types.Color) (time.Duration, bool) {
	if l.MoveTime > 0 {
		return l.MoveTime, true
	}
	if l.Infinite || l.Depth > 0 {
		return 0, false
	}
	remaining, inc := l.WhiteTime, l.WhiteInc
	if side == types.Black {
		remaining, inc = l.BlackTime, l.BlackInc
	}
	if remaining <= 0 {
		return 0, false
	}
	budget := remaining/30 + inc
	safety := remaining - 50*time.Millisecond
	if budget > safety {
		budget = safety
	}
	if budget < 0 {
		budget = 0
	}
	return budget, true
}
