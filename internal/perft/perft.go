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

// Package perft exhaustively enumerates the move tree to a fixed depth
// and counts leaves, the standard correctness check for a move
// generator: known starting positions have published node counts per
// depth, so a mismatch pinpoints a move generation bug long before it
// would show up as a subtly wrong game result.
package perft

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kylejrp/Forklift-sub000/internal/logging"
	"github.com/kylejrp/Forklift-sub000/internal/movegen"
	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

var log = logging.GetLog()

// Stats classifies the leaves a Count/Divide run reaches by the kind
// of move that produced them, beyond the raw node count.
type Stats struct {
	Nodes            uint64
	Captures         uint64
	EnPassant        uint64
	Castles          uint64
	Promotions       uint64
	Checks           uint64
	DoubleChecks     uint64
	DiscoveredChecks uint64
	Checkmates       uint64
}

// Add accumulates other into s, used to merge per-branch results from
// ParallelCount's workers.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Captures += other.Captures
	s.EnPassant += other.EnPassant
	s.Castles += other.Castles
	s.Promotions += other.Promotions
	s.Checks += other.Checks
	s.DoubleChecks += other.DoubleChecks
	s.DiscoveredChecks += other.DiscoveredChecks
	s.Checkmates += other.Checkmates
}

// Count walks the move tree rooted at p to depth and returns the leaf
// statistics. depth 0 counts the root itself as a single (non-)leaf
// with Nodes=1 and no classification.
func Count(p *position.Position, depth int) Stats {
	var s Stats
	miniMax(p, depth, &s)
	return s
}

// Divide runs Count one ply below the root for each of the root's
// legal moves, returning the per-move leaf counts -- the standard way
// to localize which root move's subtree disagrees with a reference
// engine.
func Divide(p *position.Position, depth int) map[types.Move]uint64 {
	out := make(map[types.Move]uint64)
	if depth < 1 {
		return out
	}
	var legal moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, movegen.GenAll, &legal)
	legal.ForEach(func(_ int, m types.Move) {
		p.DoMove(m)
		var s Stats
		miniMax(p, depth-1, &s)
		p.UndoMove()
		out[m.MoveOf()] = s.Nodes
	})
	return out
}

// miniMax is the recursive leaf counter. At the last ply it classifies
// each legal move by playing it, checking for check/checkmate, and
// unplaying it; at shallower plies it just recurses.
func miniMax(p *position.Position, depth int, s *Stats) {
	if depth == 0 {
		s.Nodes++
		return
	}

	var pseudo moveslice.MoveSlice
	movegen.GeneratePseudoLegalMoves(p, movegen.GenAll, &pseudo)

	us := p.SideToMove()
	pseudo.ForEach(func(_ int, m types.Move) {
		isCapture := m.Kind() == types.Normal && p.PieceAt(m.To()) != types.PieceNone

		p.DoMove(m)
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove()
			return
		}

		if depth == 1 {
			classify(p, m, isCapture, s)
		}
		miniMax(p, depth-1, s)
		p.UndoMove()
	})
}

// classify records the per-move statistics for a move that was just
// played (p now reflects the position after m). isCapture carries
// whether a Normal-kind move captured, since that information is only
// available before DoMove overwrites the target square.
func classify(p *position.Position, m types.Move, isCapture bool, s *Stats) {
	switch m.Kind() {
	case types.EnPassant:
		s.EnPassant++
		s.Captures++
	case types.CastleKing, types.CastleQueen:
		s.Castles++
	case types.Promotion:
		s.Promotions++
	case types.PromotionCapture:
		s.Promotions++
		s.Captures++
	case types.Normal:
		if isCapture {
			s.Captures++
		}
	}

	them := p.SideToMove()
	us := them.Flip()
	kingSq := p.KingSquare(them)
	if p.IsAttacked(kingSq, us) {
		s.Checks++
		attackers := p.AttackersTo(kingSq) & p.ColorBb(us)
		switch {
		case attackers.PopCount() >= 2:
			s.DoubleChecks++
		case isDiscoveredCheck(p, m, isCapture, kingSq, us):
			s.DiscoveredChecks++
		}
		if !movegen.HasLegalMove(p) {
			s.Checkmates++
		}
	}
}

// isDiscoveredCheck reports whether m revealed a check along one of the
// eight ray directions from kingSq rather than delivering it directly.
// p reflects the position after m was played. Along a ray direction it
// is a discovered check when: before the move, the first occupied
// square in that direction was the mover's own origin square (or, for
// en passant, the captured pawn's square); after the move, the first
// occupied square in that direction is a same-color slider whose attack
// pattern matches the ray (rook/queen on a straight ray, bishop/queen on
// a diagonal one); and that revealed slider is not itself the move's
// destination square.
func isDiscoveredCheck(p *position.Position, m types.Move, isCapture bool, kingSq types.Square, us types.Color) bool {
	from, to, kind := m.From(), m.To(), m.Kind()
	preOcc := preMoveOccupancy(p, m, isCapture)
	postOcc := p.OccupiedBb()

	epCapSq := types.SqNone
	if kind == types.EnPassant {
		epCapSq = types.SquareOf(to.FileOf(), from.RankOf())
	}

	for i, d := range types.Directions {
		diagonal := i >= 4

		preBlocker := firstOccupiedFrom(kingSq, d, preOcc)
		if preBlocker != from && (kind != types.EnPassant || preBlocker != epCapSq) {
			continue
		}

		postBlocker := firstOccupiedFrom(kingSq, d, postOcc)
		if postBlocker == types.SqNone || postBlocker == to {
			continue
		}
		pc := p.PieceAt(postBlocker)
		if pc == types.PieceNone || pc.ColorOf() != us {
			continue
		}
		pt := pc.TypeOf()
		isSlider := (diagonal && (pt == types.Bishop || pt == types.Queen)) ||
			(!diagonal && (pt == types.Rook || pt == types.Queen))
		if isSlider {
			return true
		}
	}
	return false
}

// firstOccupiedFrom walks from sq one step at a time in direction d and
// returns the first square that is set in occ, or SqNone if the ray
// leaves the board before finding one.
func firstOccupiedFrom(sq types.Square, d types.Direction, occ types.Bitboard) types.Square {
	cur := sq.To(d)
	for cur != types.SqNone {
		if occ.Has(cur) {
			return cur
		}
		cur = cur.To(d)
	}
	return types.SqNone
}

// preMoveOccupancy derives the occupied-squares bitboard as it was
// immediately before m was played, from p's current (post-move)
// OccupiedBb -- without undoing and redoing the move. Every move kind
// changes occupancy in a fixed, enumerable way: the origin square was
// always occupied before the move (it isn't now, except for castling's
// king square which m's own destination already accounts for), and
// exactly one square stops being the "this was empty before" case per
// kind -- the plain destination for a non-capturing Normal or Promotion
// move, the en passant victim's square for EnPassant, and the rook's
// origin/destination pair for castling.
func preMoveOccupancy(p *position.Position, m types.Move, wasCaptureAtTo bool) types.Bitboard {
	occ := p.OccupiedBb()
	from, to, kind := m.From(), m.To(), m.Kind()
	occ |= from.Bb()

	switch kind {
	case types.EnPassant:
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		occ |= capSq.Bb()
		occ &^= to.Bb()
	case types.CastleKing, types.CastleQueen:
		rookFrom, rookTo := position.CastlingRookSquares(kind, from.RankOf())
		occ |= rookFrom.Bb()
		occ &^= rookTo.Bb()
		occ &^= to.Bb()
	case types.PromotionCapture:
		// to was occupied before the move too (the captured piece);
		// occupancy there doesn't change.
	case types.Promotion:
		occ &^= to.Bb()
	default: // Normal
		if !wasCaptureAtTo {
			occ &^= to.Bb()
		}
	}
	return occ
}

// ParallelCount splits the root's legal moves across goroutines, one
// subtree per worker, and sums their Stats -- the root is the only
// place a perft tree can be split without workers touching the same
// Position concurrently, since every Position method below the root
// mutates shared state.
func ParallelCount(ctx context.Context, p *position.Position, depth int) (Stats, error) {
	if depth < 2 {
		return Count(p, depth), nil
	}

	var legal moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, movegen.GenAll, &legal)

	results := make([]Stats, legal.Len())
	g, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	legal.ForEach(func(i int, m types.Move) {
		branch := p.Copy()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			branch.DoMove(m)
			var s Stats
			miniMax(branch, depth-1, &s)
			results[i] = s
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var total Stats
	for _, s := range results {
		total.Add(s)
	}
	log.Infof("perft depth=%d nodes=%d elapsed=%s", depth, total.Nodes, time.Since(start))
	return total, nil
}

