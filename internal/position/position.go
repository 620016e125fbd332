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

// Package position is the board representation: a 0x88 mailbox kept in
// lockstep with per-color, per-piece-type bitboards and an incremental
// Zobrist hash, so callers can pick whichever view (direct square
// lookup or bitboard scan) fits what they're doing.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kylejrp/Forklift-sub000/internal/attacks"
	"github.com/kylejrp/Forklift-sub000/internal/logging"
	"github.com/kylejrp/Forklift-sub000/internal/types"
	"github.com/kylejrp/Forklift-sub000/internal/zobrist"
)

var log = logging.GetLog()

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoState is the information DoMove snapshots before mutating the
// board, enough to put every field back exactly as it was -- the
// Zobrist key and castling/en-passant/halfmove-clock fields are
// restored directly from the snapshot rather than un-XORed
// incrementally, the same shortcut the teacher's UndoMove takes.
type undoState struct {
	move          types.Move
	captured      types.Piece
	castling      types.CastlingRights
	epSquare      types.Square
	halfmoveClock int
	zobristKey    zobrist.Key
}

// Position is the mutable board state the move generator, evaluator
// and search all operate on.
type Position struct {
	board [128]types.Piece

	piecesBb [types.ColorLength][types.PtLength]types.Bitboard
	colorBb  [types.ColorLength]types.Bitboard
	allBb    types.Bitboard

	kingSq [types.ColorLength]types.Square

	sideToMove     types.Color
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	zobristKey     zobrist.Key

	history    []undoState
	keyHistory []zobrist.Key
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: malformed built-in start FEN: %v", err))
	}
	return p
}

// NewPositionFen parses fen into a Position, returning an error if the
// string is not well-formed Forsyth-Edwards Notation.
func NewPositionFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: FEN %q needs at least 4 fields, has %d", fen, len(fields))
	}

	p := &Position{epSquare: types.SqNone}
	for i := range p.board {
		p.board[i] = types.PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: FEN %q board has %d ranks, want 8", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := types.Rank8 - types.Rank(i)
		f := types.FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += types.File(ch - '0')
				continue
			}
			pc := types.PieceFromChar(byte(ch))
			if pc == types.PieceNone {
				return nil, fmt.Errorf("position: FEN %q has invalid piece char %q", fen, ch)
			}
			if !f.IsValid() {
				return nil, fmt.Errorf("position: FEN %q rank %d overflows files", fen, 8-i)
			}
			p.putPiece(pc, types.SquareOf(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = types.White
	case "b":
		p.sideToMove = types.Black
	default:
		return nil, fmt.Errorf("position: FEN %q has invalid active color %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling = p.castling.Add(types.CastlingWhiteOO)
			case 'Q':
				p.castling = p.castling.Add(types.CastlingWhiteOOO)
			case 'k':
				p.castling = p.castling.Add(types.CastlingBlackOO)
			case 'q':
				p.castling = p.castling.Add(types.CastlingBlackOOO)
			default:
				return nil, fmt.Errorf("position: FEN %q has invalid castling char %q", fen, ch)
			}
		}
	}
	p.zobristKey ^= zobrist.Castling[p.castling]

	if fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if sq == types.SqNone {
			return nil, fmt.Errorf("position: FEN %q has invalid en passant square %q", fen, fields[3])
		}
		p.epSquare = sq
		p.zobristKey ^= zobrist.OfEnPassant(sq.FileOf())
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	p.fullmoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNumber = n
		}
	}

	if p.sideToMove == types.Black {
		p.zobristKey ^= zobrist.Side
	}

	p.keyHistory = append(p.keyHistory, p.zobristKey)
	log.Debugf("parsed position from fen %q", fen)
	return p, nil
}

// String renders the position as a FEN string.
func (p *Position) String() string {
	var sb strings.Builder
	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == types.Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}

// Copy returns a deep clone of p. The clone shares nothing mutable with
// p: every fixed-size field copies by value, and the two history slices
// are copied into freshly allocated backing arrays so DoMove/UndoMove on
// one Position can never alias the other's history. The only things
// genuinely shared are the package-level attack tables and Zobrist key
// tables, which are immutable and were never struct fields to begin
// with.
func (p *Position) Copy() *Position {
	clone := *p
	clone.history = append([]undoState(nil), p.history...)
	clone.keyHistory = append([]zobrist.Key(nil), p.keyHistory...)
	return &clone
}

// PieceAt returns the piece standing on sq, or PieceNone.
func (p *Position) PieceAt(sq types.Square) types.Piece {
	return p.board[sq]
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() types.Color {
	return p.sideToMove
}

// CastlingRights returns the castling rights still available.
func (p *Position) CastlingRights() types.CastlingRights {
	return p.castling
}

// EnPassantSquare returns the current en passant target, or SqNone.
func (p *Position) EnPassantSquare() types.Square {
	return p.epSquare
}

// HalfmoveClock returns the number of halfmoves since the last capture
// or pawn move, for the fifty-move rule.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current full move number.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// ZobristKey returns the position's incremental hash.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// KingSquare returns the square color c's king stands on.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSq[c]
}

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c types.Color, pt types.PieceType) types.Bitboard {
	return p.piecesBb[c][pt]
}

// ColorBb returns the bitboard of all of color c's pieces.
func (p *Position) ColorBb(c types.Color) types.Bitboard {
	return p.colorBb[c]
}

// OccupiedBb returns the bitboard of every occupied square.
func (p *Position) OccupiedBb() types.Bitboard {
	return p.allBb
}

func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PushSquare(sq)
	p.colorBb[c] = p.colorBb[c].PushSquare(sq)
	p.allBb = p.allBb.PushSquare(sq)
	if pt == types.King {
		p.kingSq[c] = sq
	}
	p.zobristKey ^= zobrist.OfPieceSquare(pc, sq)
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	pc := p.board[sq]
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = types.PieceNone
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PopSquare(sq)
	p.colorBb[c] = p.colorBb[c].PopSquare(sq)
	p.allBb = p.allBb.PopSquare(sq)
	p.zobristKey ^= zobrist.OfPieceSquare(pc, sq)
	return pc
}

// DoMove plays m, pushing enough state onto the internal history stack
// that UndoMove can reverse it exactly. The caller is responsible for
// only ever passing pseudo-legal moves generated against this exact
// position.
func (p *Position) DoMove(m types.Move) {
	from, to, kind := m.From(), m.To(), m.Kind()
	mover := p.board[from]

	u := undoState{
		move:          m,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
		zobristKey:    p.zobristKey,
	}

	if p.epSquare != types.SqNone {
		p.zobristKey ^= zobrist.OfEnPassant(p.epSquare.FileOf())
		p.epSquare = types.SqNone
	}

	isCapture := kind == types.EnPassant || kind == types.PromotionCapture ||
		(kind == types.Normal && p.board[to] != types.PieceNone)
	if mover.TypeOf() == types.Pawn || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	oldCr := p.castling
	newCr := oldCr.Remove(types.CastlingLostBy(from)).Remove(types.CastlingLostBy(to))
	if newCr != oldCr {
		p.zobristKey ^= zobrist.Castling[oldCr] ^ zobrist.Castling[newCr]
		p.castling = newCr
	}

	var captured types.Piece
	switch kind {
	case types.Normal:
		if p.board[to] != types.PieceNone {
			captured = p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(mover, to)

	case types.EnPassant:
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		captured = p.removePiece(capSq)
		p.removePiece(from)
		p.putPiece(mover, to)

	case types.CastleKing, types.CastleQueen:
		p.removePiece(from)
		p.putPiece(mover, to)
		rookFrom, rookTo := CastlingRookSquares(kind, from.RankOf())
		rook := p.removePiece(rookFrom)
		p.putPiece(rook, rookTo)

	case types.Promotion, types.PromotionCapture:
		if kind == types.PromotionCapture {
			captured = p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(types.MakePiece(mover.ColorOf(), m.PromotionType()), to)
	}
	u.captured = captured

	if mover.TypeOf() == types.Pawn {
		delta := int(to) - int(from)
		if delta == int(types.North)*2 || delta == int(types.South)*2 {
			epSq := types.Square((int(from) + int(to)) / 2)
			p.epSquare = epSq
			p.zobristKey ^= zobrist.OfEnPassant(epSq.FileOf())
		}
	}

	p.zobristKey ^= zobrist.Side
	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == types.White {
		p.fullmoveNumber++
	}

	p.history = append(p.history, u)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// CastlingRookSquares returns the rook's from/to squares for a castle
// move of kind on the back rank r.
func CastlingRookSquares(kind types.Kind, r types.Rank) (from, to types.Square) {
	if kind == types.CastleKing {
		return types.SquareOf(types.FileH, r), types.SquareOf(types.FileF, r)
	}
	return types.SquareOf(types.FileA, r), types.SquareOf(types.FileD, r)
}

// UndoMove reverses the most recent DoMove. Calling it with no prior
// DoMove is a programming error and panics via the slice index.
func (p *Position) UndoMove() {
	n := len(p.history) - 1
	u := p.history[n]
	p.history = p.history[:n]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == types.Black {
		p.fullmoveNumber--
	}

	m := u.move
	from, to, kind := m.From(), m.To(), m.Kind()

	switch kind {
	case types.Normal:
		mover := p.removePiece(to)
		p.putPiece(mover, from)
		if u.captured != types.PieceNone {
			p.putPiece(u.captured, to)
		}

	case types.EnPassant:
		mover := p.removePiece(to)
		p.putPiece(mover, from)
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		p.putPiece(u.captured, capSq)

	case types.CastleKing, types.CastleQueen:
		king := p.removePiece(to)
		p.putPiece(king, from)
		rookFrom, rookTo := CastlingRookSquares(kind, from.RankOf())
		rook := p.removePiece(rookTo)
		p.putPiece(rook, rookFrom)

	case types.Promotion, types.PromotionCapture:
		promoted := p.removePiece(to)
		p.putPiece(types.MakePiece(promoted.ColorOf(), types.Pawn), from)
		if kind == types.PromotionCapture {
			p.putPiece(u.captured, to)
		}
	}

	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfmoveClock = u.halfmoveClock
	p.zobristKey = u.zobristKey
}

// DoNullMove flips the side to move without playing a move, the
// pruning technique null-move search uses to get a cheap reduced-depth
// bound. En passant rights are cleared, same as a real move would
// clear them one ply later.
func (p *Position) DoNullMove() {
	u := undoState{castling: p.castling, epSquare: p.epSquare, halfmoveClock: p.halfmoveClock, zobristKey: p.zobristKey}
	if p.epSquare != types.SqNone {
		p.zobristKey ^= zobrist.OfEnPassant(p.epSquare.FileOf())
		p.epSquare = types.SqNone
	}
	p.zobristKey ^= zobrist.Side
	p.sideToMove = p.sideToMove.Flip()
	p.halfmoveClock++
	p.history = append(p.history, u)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.history) - 1
	u := p.history[n]
	p.history = p.history[:n]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	p.sideToMove = p.sideToMove.Flip()
	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfmoveClock = u.halfmoveClock
	p.zobristKey = u.zobristKey
}

// IsAttacked reports whether sq is attacked by any piece of color by.
// It probes every piece type's attack table in reverse from sq, the
// same trick a forward attack generator uses, exploiting the symmetry
// of each piece's move pattern.
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	occ := p.allBb

	if attacks.PawnAttacks(by.Flip(), sq)&p.piecesBb[by][types.Pawn] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.piecesBb[by][types.Knight] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.piecesBb[by][types.King] != 0 {
		return true
	}
	bishopsQueens := p.piecesBb[by][types.Bishop] | p.piecesBb[by][types.Queen]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.piecesBb[by][types.Rook] | p.piecesBb[by][types.Queen]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSq[p.sideToMove], p.sideToMove.Flip())
}

// AttackersTo returns every piece, of either color, attacking sq.
func (p *Position) AttackersTo(sq types.Square) types.Bitboard {
	occ := p.allBb
	var attackers types.Bitboard
	attackers |= attacks.KnightAttacks(sq) & (p.piecesBb[types.White][types.Knight] | p.piecesBb[types.Black][types.Knight])
	attackers |= attacks.KingAttacks(sq) & (p.piecesBb[types.White][types.King] | p.piecesBb[types.Black][types.King])
	attackers |= attacks.PawnAttacks(types.Black, sq) & p.piecesBb[types.White][types.Pawn]
	attackers |= attacks.PawnAttacks(types.White, sq) & p.piecesBb[types.Black][types.Pawn]
	bishopAtk := attacks.BishopAttacks(sq, occ)
	rookAtk := attacks.RookAttacks(sq, occ)
	attackers |= bishopAtk & (p.piecesBb[types.White][types.Bishop] | p.piecesBb[types.Black][types.Bishop] |
		p.piecesBb[types.White][types.Queen] | p.piecesBb[types.Black][types.Queen])
	attackers |= rookAtk & (p.piecesBb[types.White][types.Rook] | p.piecesBb[types.Black][types.Rook] |
		p.piecesBb[types.White][types.Queen] | p.piecesBb[types.Black][types.Queen])
	return attackers
}

// repetitionCount counts how many earlier positions in the reversible
// (halfmove-clock-bounded) part of the game history share the current
// Zobrist key.
func (p *Position) repetitionCount() int {
	n := len(p.keyHistory)
	limit := p.halfmoveClock
	if limit > n-1 {
		limit = n - 1
	}
	count := 0
	for i := 2; i <= limit; i += 2 {
		if p.keyHistory[n-1-i] == p.zobristKey {
			count++
		}
	}
	return count
}

// Repetitions returns how many earlier positions in the reversible part
// of the game history share the current Zobrist key.
func (p *Position) Repetitions() int {
	return p.repetitionCount()
}

// IsRepetition reports whether the current position has occurred at
// least once before in the reversible part of the game.
func (p *Position) IsRepetition() bool {
	return p.repetitionCount() >= 1
}

// IsThreefoldRepetition reports whether the current position is the
// third (or later) occurrence, which under FIDE rules allows a draw
// claim.
func (p *Position) IsThreefoldRepetition() bool {
	return p.repetitionCount() >= 2
}

// IsFiftyMoveRule reports whether the halfmove clock has reached the
// fifty-move-rule threshold.
func (p *Position) IsFiftyMoveRule() bool {
	return p.halfmoveClock >= 100
}
