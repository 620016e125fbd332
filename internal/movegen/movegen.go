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

// Package movegen generates moves in two stages: pseudo-legal moves
// straight from the board and attack tables, then a legality filter
// that plays each one, checks whether it leaves the mover's own king
// attacked, and unplays it. Keeping the stages separate lets perft and
// the search pick whichever one they need -- perft wants the legality
// filter applied per node, the search's quiescence stage takes only
// captures and promotions unless the side to move is in check, when it
// searches every legal move.
package movegen

import (
	"github.com/kylejrp/Forklift-sub000/internal/attacks"
	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// GenMode selects which subset of pseudo-legal moves to emit. The
// values are a bitmask so GenAll is simply GenCap|GenNonCap.
type GenMode uint8

// The three generation modes.
const (
	GenCap    GenMode = 1 << 0
	GenNonCap GenMode = 1 << 1
	GenAll            = GenCap | GenNonCap
)

// GeneratePseudoLegalMoves appends every pseudo-legal move of p's side
// to move matching mode into moves. It does not check whether the
// mover's king ends up in check -- call FilterLegal for that.
func GeneratePseudoLegalMoves(p *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	us := p.SideToMove()
	generatePawnMoves(p, us, mode, moves)
	generatePieceMoves(p, us, types.Knight, mode, moves)
	generatePieceMoves(p, us, types.Bishop, mode, moves)
	generatePieceMoves(p, us, types.Rook, mode, moves)
	generatePieceMoves(p, us, types.Queen, mode, moves)
	generateKingMoves(p, us, mode, moves)
	if mode&GenNonCap != 0 {
		generateCastling(p, us, moves)
	}
}

// GenerateLegalMoves generates pseudo-legal moves and filters out
// those that leave the mover's own king in check.
func GenerateLegalMoves(p *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	var pseudo moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, mode, &pseudo)
	FilterLegal(p, &pseudo, moves)
}

// FilterLegal copies from pseudo into legal every move that does not
// leave the mover's own king attacked, by playing and unplaying each
// candidate in turn.
func FilterLegal(p *position.Position, pseudo *moveslice.MoveSlice, legal *moveslice.MoveSlice) {
	us := p.SideToMove()
	pseudo.ForEach(func(_ int, m types.Move) {
		p.DoMove(m)
		if !p.IsAttacked(p.KingSquare(us), us.Flip()) {
			legal.PushBack(m)
		}
		p.UndoMove()
	})
}

// HasLegalMove reports whether p's side to move has at least one
// legal move, without generating (or allocating) the full list --
// used by the search and perft to cheaply distinguish checkmate and
// stalemate from a normal node.
func HasLegalMove(p *position.Position) bool {
	var pseudo moveslice.MoveSlice
	GeneratePseudoLegalMoves(p, GenAll, &pseudo)
	us := p.SideToMove()
	found := false
	pseudo.ForEach(func(_ int, m types.Move) {
		if found {
			return
		}
		p.DoMove(m)
		if !p.IsAttacked(p.KingSquare(us), us.Flip()) {
			found = true
		}
		p.UndoMove()
	})
	return found
}

func generatePieceMoves(p *position.Position, us types.Color, pt types.PieceType, mode GenMode, moves *moveslice.MoveSlice) {
	them := us.Flip()
	ownBb := p.ColorBb(us)
	theirBb := p.ColorBb(them)
	occ := p.OccupiedBb()

	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		var fromC int
		fromC, pieces = pieces.PopLsb()
		from := types.FromCompact(fromC)

		targets := attacks.PseudoAttacks(pt, us, from, occ) &^ ownBb
		if mode == GenCap {
			targets &= theirBb
		} else if mode == GenNonCap {
			targets &^= theirBb
		}

		for targets != 0 {
			var toC int
			toC, targets = targets.PopLsb()
			to := types.FromCompact(toC)
			value := int16(0)
			if theirBb.Has(to) {
				value = mvvLva(pt, p.PieceAt(to).TypeOf())
			}
			moves.PushBack(types.CreateMoveValue(from, to, types.Normal, types.PtNone, value))
		}
	}
}

func generateKingMoves(p *position.Position, us types.Color, mode GenMode, moves *moveslice.MoveSlice) {
	generatePieceMoves(p, us, types.King, mode, moves)
}

// mvvLva scores a capture by "most valuable victim, least valuable
// attacker": high victim value dominates, attacker value is a
// tiebreaker subtracted in, so e.g. pawn-takes-queen sorts far ahead
// of queen-takes-queen.
func mvvLva(attacker, victim types.PieceType) int16 {
	const limit = 1<<14 - 1 // Move's packed sort-value field is 15 bits signed
	v := int32(victim.ValueOf())*10 - int32(attacker.ValueOf())
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	default:
		return int16(v)
	}
}

func generateCastling(p *position.Position, us types.Color, moves *moveslice.MoveSlice) {
	rights := p.CastlingRights()
	them := us.Flip()
	rank := types.Rank1
	oo, ooo := types.CastlingWhiteOO, types.CastlingWhiteOOO
	if us == types.Black {
		rank = types.Rank8
		oo, ooo = types.CastlingBlackOO, types.CastlingBlackOOO
	}

	kingSq := types.SquareOf(types.FileE, rank)
	if p.KingSquare(us) != kingSq || p.IsAttacked(kingSq, them) {
		return
	}

	if rights.Has(oo) {
		f, g, h := types.SquareOf(types.FileF, rank), types.SquareOf(types.FileG, rank), types.SquareOf(types.FileH, rank)
		if p.PieceAt(f) == types.PieceNone && p.PieceAt(g) == types.PieceNone &&
			p.PieceAt(h) == types.MakePiece(us, types.Rook) &&
			!p.IsAttacked(f, them) && !p.IsAttacked(g, them) {
			moves.PushBack(types.CreateMove(kingSq, g, types.CastleKing, types.PtNone))
		}
	}
	if rights.Has(ooo) {
		b, c, d, a := types.SquareOf(types.FileB, rank), types.SquareOf(types.FileC, rank),
			types.SquareOf(types.FileD, rank), types.SquareOf(types.FileA, rank)
		if p.PieceAt(b) == types.PieceNone && p.PieceAt(c) == types.PieceNone && p.PieceAt(d) == types.PieceNone &&
			p.PieceAt(a) == types.MakePiece(us, types.Rook) &&
			!p.IsAttacked(d, them) && !p.IsAttacked(c, them) {
			moves.PushBack(types.CreateMove(kingSq, c, types.CastleQueen, types.PtNone))
		}
	}
}
