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
	"testing"

	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	if got := e.Evaluate(p); got != 0 {
		t.Fatalf("a symmetric starting position should evaluate to 0, got %d", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// white has an extra queen on d4.
	fen := "rnb1kbnr/pppppppp/8/8/3Q4/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	e := NewEvaluator()
	if got := e.Evaluate(p); got <= 0 {
		t.Fatalf("white up a queen should evaluate above 0 from white's turn, got %d", got)
	}
}

func TestEvaluateFlipsSignWithSideToMove(t *testing.T) {
	// same material imbalance, but it's black's turn: the score should
	// read negative, since Evaluate always favors the side to move.
	fen := "rnb1kbnr/pppppppp/8/8/3Q4/8/PPPPPPPP/RNB1KBNR b KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	e := NewEvaluator()
	if got := e.Evaluate(p); got >= 0 {
		t.Fatalf("black to move, down a queen, should evaluate below 0, got %d", got)
	}
}

func TestEvaluateIsAntisymmetricUnderColorMirror(t *testing.T) {
	white := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	black := "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1"
	pw, err := position.NewPositionFen(white)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	pb, err := position.NewPositionFen(black)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	e := NewEvaluator()
	if e.Evaluate(pw) != e.Evaluate(pb) {
		t.Fatalf("mirrored positions with the respective side to move should evaluate identically: %d vs %d", e.Evaluate(pw), e.Evaluate(pb))
	}
}

func TestPawnScorePenalizesDoubledPawns(t *testing.T) {
	// black pawns on a7/b7 block both white a-pawns from being passed,
	// so the only thing distinguishing the two structures is doubling.
	doubled := "4k3/pp6/8/8/8/P7/PP6/4K3 w - - 0 1"
	pd, err := position.NewPositionFen(doubled)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	doubledScore := pawnScore(pd, types.White)

	connected := "4k3/pp6/8/8/8/8/PP6/4K3 w - - 0 1"
	pc, err := position.NewPositionFen(connected)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	undoubledScore := pawnScore(pc, types.White)

	if doubledScore >= undoubledScore {
		t.Fatalf("two pawns doubled on the a-file should score worse than one pawn each on a and b: %d vs %d", doubledScore, undoubledScore)
	}
}

func TestPawnScorePenalizesIsolatedPawns(t *testing.T) {
	// a black pawn on a7 blocks the lone white a-pawn from being passed
	// in both cases, isolating the comparison to the isolation penalty.
	isolated := "4k3/p7/8/8/8/8/P7/4K3 w - - 0 1"
	pi, err := position.NewPositionFen(isolated)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	isolatedScore := pawnScore(pi, types.White)

	connected := "4k3/pp6/8/8/8/8/PP6/4K3 w - - 0 1"
	pc, err := position.NewPositionFen(connected)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	notIsolatedScore := pawnScore(pc, types.White)

	if isolatedScore >= notIsolatedScore {
		t.Fatalf("a pawn with no neighbor on an adjacent file should score worse than one with company: %d vs %d", isolatedScore, notIsolatedScore)
	}
}

func TestPawnScoreRewardsAdvancedPassedPawn(t *testing.T) {
	// a lone white pawn on a6 with no black pawns at all is passed no
	// matter where it sits; compare it against the same pawn on a2.
	advanced := "4k3/8/P7/8/8/8/8/4K3 w - - 0 1"
	pa, err := position.NewPositionFen(advanced)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	back := "4k3/8/8/8/8/8/P7/4K3 w - - 0 1"
	pb, err := position.NewPositionFen(back)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	if got, want := pawnScore(pa, types.White), pawnScore(pb, types.White); got <= want {
		t.Fatalf("a passed pawn further advanced should score higher: a6=%d a2=%d", got, want)
	}
}

func TestIsPassedBlockedByAdjacentFile(t *testing.T) {
	// the white a-pawn is not passed: a black pawn on b6 can still
	// capture it as it advances.
	fen := "4k3/8/1p6/8/8/8/P7/4K3 w - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	theirs := p.PiecesBb(types.Black, types.Pawn)
	if isPassed(types.MakeSquare("a2"), types.White, theirs) {
		t.Fatalf("a pawn with an enemy pawn on an adjacent file ahead of it should not be passed")
	}
}

func TestPawnCacheReturnsConsistentScore(t *testing.T) {
	p := position.NewPosition()
	pc := newPawnCache()
	first := pc.evaluate(p, types.White)
	second := pc.evaluate(p, types.White)
	if first != second {
		t.Fatalf("evaluating the same position twice should hit the cache and agree: %d vs %d", first, second)
	}
	if opp := pc.evaluate(p, types.Black); opp != -first {
		t.Fatalf("the same pawn structure scored for the other side should be the negation: %d vs %d", opp, first)
	}
}
