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
	"testing"
	"time"

	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	// white to move: Ra8 is mate against a black king boxed in on g8.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	e := NewEngine(1)
	res := e.FindBestMove(context.Background(), p, Limits{Depth: 4})

	want := types.CreateMove(types.MakeSquare("a1"), types.MakeSquare("a8"), types.Normal, types.PtNone)
	if res.BestMove.MoveOf() != want.MoveOf() {
		t.Fatalf("expected the mating move Ra8 (%s), got %s", want, res.BestMove)
	}
	if !res.Score.IsMateScore() {
		t.Fatalf("a forced mate should be reported as a mate score, got %v", res.Score)
	}
}

func TestFindBestMoveReturnsAMoveFromStartingPosition(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)
	res := e.FindBestMove(context.Background(), p, Limits{Depth: 2})
	if res.BestMove == 0 {
		t.Fatalf("the engine should always propose a move when legal moves exist")
	}
}

func TestFindBestMoveOnStalemateReturnsNoMove(t *testing.T) {
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	e := NewEngine(1)
	res := e.FindBestMove(context.Background(), p, Limits{Depth: 2})
	if res.BestMove != 0 {
		t.Fatalf("a stalemated side has no legal move, got %s", res.BestMove)
	}
	if res.Score != types.ValueDraw {
		t.Fatalf("stalemate should evaluate as a draw, got %v", res.Score)
	}
}

func TestFindBestMoveRespectsCancelledContext(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := e.FindBestMove(ctx, p, Limits{Depth: 10})
	// a pre-cancelled context should still yield the depth-0 fallback
	// move rather than panicking or hanging.
	if res.BestMove == 0 {
		t.Fatalf("even an immediately-cancelled search should fall back to a legal move")
	}
}

func TestFindBestMoveHonorsNodeLimit(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)
	res := e.FindBestMove(context.Background(), p, Limits{Depth: types.MaxPly - 1, Nodes: 500})
	if res.Nodes == 0 {
		t.Fatalf("a node-limited search should still report some work done")
	}
}

func TestFindBestMoveHonorsMoveTime(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)
	start := time.Now()
	res := e.FindBestMove(context.Background(), p, Limits{MoveTime: 50 * time.Millisecond})
	elapsed := time.Since(start)
	if res.BestMove == 0 {
		t.Fatalf("a move-time-limited search should still return a move")
	}
	if elapsed > 2*time.Second {
		t.Fatalf("a 50ms move-time budget should not let the search run for %s", elapsed)
	}
}

func TestIsSearchingTracksInFlightSearch(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.FindBestMove(ctx, p, Limits{Infinite: true})
		close(done)
	}()

	// give the goroutine a moment to acquire the search semaphore
	time.Sleep(20 * time.Millisecond)
	if !e.IsSearching() {
		t.Fatalf("IsSearching should report true while a search is in flight")
	}

	cancel()
	<-done
	e.WaitWhileSearching()
	if e.IsSearching() {
		t.Fatalf("IsSearching should report false once the search has returned")
	}
}

func TestNewGameClearsTranspositionTableAndHistory(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(1)
	e.FindBestMove(context.Background(), p, Limits{Depth: 3})
	e.NewGame()
	if e.hist.Score(types.White, types.CreateMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.Normal, types.PtNone)) != 0 {
		t.Fatalf("NewGame should reset the history table")
	}
}

func TestIsPawnEndgameDetectsNoMinorOrMajorPieces(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	if !isPawnEndgame(p) {
		t.Fatalf("a king-and-pawn-only position should be a pawn endgame")
	}
}

func TestIsPawnEndgameFalseWithMinorPiece(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	if isPawnEndgame(p) {
		t.Fatalf("a position with a knight on the board should not be a pawn endgame")
	}
}
