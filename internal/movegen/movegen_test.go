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

package movegen

import (
	"testing"

	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

func countByKind(moves *moveslice.MoveSlice, kind types.Kind) int {
	n := 0
	moves.ForEach(func(_ int, m types.Move) {
		if m.Kind() == kind {
			n++
		}
	})
	return n
}

func TestStartingPositionLegalMoveCount(t *testing.T) {
	p := position.NewPosition()
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenAll, &moves)
	if moves.Len() != 20 {
		t.Fatalf("starting position should have 20 legal moves, got %d", moves.Len())
	}
}

func TestGenCapOnlyReturnsNothingWhenNoCapturesExist(t *testing.T) {
	// after 1.e4 e5 the pawns face off head-to-head: neither side has a
	// capture available yet.
	fen := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if moves.Len() != 0 {
		t.Fatalf("GenCap should find no captures in this position, got %d", moves.Len())
	}
}

func TestGenCapOnlyReturnsCaptures(t *testing.T) {
	// white to move can capture the black pawn on d5 with its e4 pawn.
	fen := "rnbqkbnr/ppp2ppp/8/3pp3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if moves.Len() != 1 {
		t.Fatalf("GenCap should find exactly one capture (exd5), got %d", moves.Len())
	}
	moves.ForEach(func(_ int, m types.Move) {
		if m.From() != types.MakeSquare("e4") || m.To() != types.MakeSquare("d5") {
			t.Fatalf("unexpected capture move %s", m)
		}
	})
}

func TestCastlingBothSidesAvailable(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenNonCap, &moves)
	if got := countByKind(&moves, types.CastleKing); got != 1 {
		t.Fatalf("expected 1 kingside castle, got %d", got)
	}
	if got := countByKind(&moves, types.CastleQueen); got != 1 {
		t.Fatalf("expected 1 queenside castle, got %d", got)
	}
}

func TestCastlingBlockedByPieceBetween(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R2NK2R w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenNonCap, &moves)
	if got := countByKind(&moves, types.CastleQueen); got != 0 {
		t.Fatalf("a knight on d1 should block queenside castling, got %d castle moves", got)
	}
	if got := countByKind(&moves, types.CastleKing); got != 1 {
		t.Fatalf("kingside castling should still be available, got %d", got)
	}
}

func TestCastlingBlockedByCheckOnPassThroughSquare(t *testing.T) {
	// a black rook on f8 rakes down the f-file onto f1, the square the
	// white king must pass through on its way to g1.
	fen := "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenNonCap, &moves)
	if got := countByKind(&moves, types.CastleKing); got != 0 {
		t.Fatalf("castling through an attacked square should be illegal, got %d castle moves", got)
	}
	if got := countByKind(&moves, types.CastleQueen); got != 1 {
		t.Fatalf("queenside castling should be unaffected, got %d", got)
	}
}

func TestCastlingIllegalWhileInCheck(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenNonCap, &moves)
	if got := countByKind(&moves, types.CastleKing)+countByKind(&moves, types.CastleQueen); got != 0 {
		t.Fatalf("a king in check should never be offered a castling move, got %d", got)
	}
}

func TestEnPassantGenerated(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if got := countByKind(&moves, types.EnPassant); got != 1 {
		t.Fatalf("expected exactly one en passant capture, got %d", got)
	}
}

func TestPromotionGeneratesAllFourChoices(t *testing.T) {
	fen := "8/P6k/8/8/8/8/7p/7K w - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenNonCap, &moves)
	promos := 0
	seen := map[types.PieceType]bool{}
	moves.ForEach(func(_ int, m types.Move) {
		if m.Kind() == types.Promotion {
			promos++
			seen[m.PromotionType()] = true
		}
	})
	if promos != 4 {
		t.Fatalf("a7-a8 should expand into 4 promotion moves, got %d", promos)
	}
	for _, pt := range []types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight} {
		if !seen[pt] {
			t.Fatalf("promotion to %v was not generated", pt)
		}
	}
}

func TestPromotionCaptureGeneratesAllFourChoices(t *testing.T) {
	fen := "1n5k/P7/8/8/8/8/7p/7K w - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if got := countByKind(&moves, types.PromotionCapture); got != 4 {
		t.Fatalf("axb8 should expand into 4 promotion-capture moves, got %d", got)
	}
}

func TestGenCapAloneIncludesQuietPromotionPush(t *testing.T) {
	// a8 is empty, so a7-a8 is a non-capturing promotion push. Quiescence
	// generates with GenCap alone and still needs to see it: a forcing
	// promotion isn't a "quiet" move in the sense GenNonCap is gating.
	fen := "8/P6k/8/8/8/8/7p/7K w - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if got := countByKind(&moves, types.Promotion); got != 4 {
		t.Fatalf("GenCap alone should still expand a7-a8 into 4 quiet promotion moves, got %d", got)
	}
}

func TestGenCapAloneExcludesNonPromotingQuietPush(t *testing.T) {
	fen := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var moves moveslice.MoveSlice
	GenerateLegalMoves(p, GenCap, &moves)
	if moves.Len() != 0 {
		t.Fatalf("GenCap alone should not emit an ordinary (non-promoting) pawn push, got %d moves", moves.Len())
	}
}

func TestFilterLegalRemovesPinnedPieceMoves(t *testing.T) {
	// the white knight on e3 is pinned to its king by the black rook on e8
	fen := "4r3/8/8/8/8/4N3/8/4K3 w - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	var pseudo, legal moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenAll, &pseudo)
	FilterLegal(p, &pseudo, &legal)
	legal.ForEach(func(_ int, m types.Move) {
		if m.From() == types.MakeSquare("e3") && m.To() != types.MakeSquare("e3") {
			// any legal move of the pinned knight must stay on the e-file,
			// since moving it off the file would expose the king.
			if m.To().FileOf() != types.FileE {
				t.Fatalf("pinned knight should not be able to move off the e-file, got %s", m)
			}
		}
	})
}

func TestHasLegalMoveDetectsCheckmate(t *testing.T) {
	// classic back-rank mate: the black king on g8 is boxed in by its own
	// pawns and the white rook on a8 delivers mate along the back rank.
	fen := "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	if HasLegalMove(p) {
		t.Fatalf("black should have no legal move against a back-rank rook mate")
	}
}

func TestHasLegalMoveDetectsStalemate(t *testing.T) {
	fen := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	p, err := position.NewPositionFen(fen)
	if err != nil {
		t.Fatalf("NewPositionFen: %v", err)
	}
	if p.InCheck() {
		t.Fatalf("test fixture should not be in check, that would make it checkmate not stalemate")
	}
	if HasLegalMove(p) {
		t.Fatalf("black should have no legal move in this stalemate position")
	}
}

func TestMvvLvaOrdersPawnTakesQueenAboveQueenTakesQueen(t *testing.T) {
	pawnTakesQueen := mvvLva(types.Pawn, types.Queen)
	queenTakesQueen := mvvLva(types.Queen, types.Queen)
	if pawnTakesQueen <= queenTakesQueen {
		t.Fatalf("pawn-takes-queen (%d) should score above queen-takes-queen (%d)", pawnTakesQueen, queenTakesQueen)
	}
}

func TestMvvLvaClampsToMoveValueRange(t *testing.T) {
	// a pawn-victim vs. king-attacker combination is the most negative
	// case mvvLva can be asked to score (only reachable pre-legality-
	// filter, but the packer must still not wrap).
	v := mvvLva(types.King, types.Pawn)
	if v < -16384 || v > 16383 {
		t.Fatalf("mvvLva(King, Pawn) = %d, out of Move's packed sort-value range", v)
	}
}
