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
	"github.com/kylejrp/Forklift-sub000/internal/attacks"
	"github.com/kylejrp/Forklift-sub000/internal/moveslice"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/types"
)

var promotionTypes = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

func generatePawnMoves(p *position.Position, us types.Color, mode GenMode, moves *moveslice.MoveSlice) {
	them := us.Flip()
	occ := p.OccupiedBb()
	theirBb := p.ColorBb(them)
	promoRank := us.PromotionRank()
	startRank := us.PawnStartRank()
	pushDir := us.PawnPushDirection()

	pawns := p.PiecesBb(us, types.Pawn)
	for pawns != 0 {
		var fromC int
		fromC, pawns = pawns.PopLsb()
		from := types.FromCompact(fromC)

		if one := from.To(pushDir); one != types.SqNone && p.PieceAt(one) == types.PieceNone {
			toPromo := one.RankOf() == promoRank
			// A quiet promotion push is a forcing move quiescence must still
			// see, so it is emitted under GenCap alone too; a non-promoting
			// push needs GenNonCap.
			if toPromo || mode&GenNonCap != 0 {
				emitPawnMove(moves, from, one, promoRank, false, 0)
			}
			if !toPromo && from.RankOf() == startRank && mode&GenNonCap != 0 {
				if two := one.To(pushDir); two != types.SqNone && p.PieceAt(two) == types.PieceNone {
					moves.PushBack(types.CreateMove(from, two, types.Normal, types.PtNone))
				}
			}
		}

		if mode&GenCap != 0 {
			captures := attacks.PawnAttacks(us, from) & theirBb
			for captures != 0 {
				var toC int
				toC, captures = captures.PopLsb()
				to := types.FromCompact(toC)
				value := mvvLva(types.Pawn, p.PieceAt(to).TypeOf())
				emitPawnMove(moves, from, to, promoRank, true, value)
			}

			if ep := p.EnPassantSquare(); ep != types.SqNone {
				if attacks.PawnAttacks(us, from).Has(ep) {
					moves.PushBack(types.CreateMoveValue(from, ep, types.EnPassant, types.PtNone, mvvLva(types.Pawn, types.Pawn)))
				}
			}
		}
	}
}

// emitPawnMove appends a pawn push or capture to moves, expanding it
// into all four promotion choices when to lands on the promotion rank.
func emitPawnMove(moves *moveslice.MoveSlice, from, to types.Square, promoRank types.Rank, capture bool, value int16) {
	if to.RankOf() != promoRank {
		kind := types.Normal
		moves.PushBack(types.CreateMoveValue(from, to, kind, types.PtNone, value))
		return
	}
	kind := types.Promotion
	if capture {
		kind = types.PromotionCapture
	}
	for _, pt := range promotionTypes {
		promoValue := value + pt.ValueOf()
		moves.PushBack(types.CreateMoveValue(from, to, kind, pt, promoValue))
	}
}
