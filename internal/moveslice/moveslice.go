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

// Package moveslice provides a reusable move buffer. NewMoveSlice
// pre-sizes it to MaxMoves and Clear() keeps the backing array, so a
// buffer that is reused never reallocates; a zero-value MoveSlice starts
// without a backing array and grows on append. The move generator,
// perft, the picker and the search declare a fresh zero-value MoveSlice
// per call rather than reusing one per ply.
package moveslice

import (
	"sort"
	"strings"

	"github.com/kylejrp/Forklift-sub000/internal/types"
)

// MaxMoves bounds the legal moves any reachable chess position can
// have; 218 is the highest known count, so 256 leaves headroom.
const MaxMoves = 256

// MoveSlice is a list of moves backed by a Go slice.
type MoveSlice struct {
	moves []types.Move
}

// NewMoveSlice returns an empty slice pre-allocated to MaxMoves.
func NewMoveSlice() *MoveSlice {
	return &MoveSlice{moves: make([]types.Move, 0, MaxMoves)}
}

// Clear empties the slice without releasing its backing array.
func (ms *MoveSlice) Clear() {
	ms.moves = ms.moves[:0]
}

// PushBack appends m.
func (ms *MoveSlice) PushBack(m types.Move) {
	ms.moves = append(ms.moves, m)
}

// Len returns the number of moves currently held.
func (ms *MoveSlice) Len() int {
	return len(ms.moves)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) types.Move {
	return ms.moves[i]
}

// Set overwrites the move at index i.
func (ms *MoveSlice) Set(i int, m types.Move) {
	ms.moves[i] = m
}

// ForEach calls f for every move in order.
func (ms *MoveSlice) ForEach(f func(i int, m types.Move)) {
	for i, m := range ms.moves {
		f(i, m)
	}
}

// Sort orders the slice by descending move value (highest-value move
// first), the ordering the move picker uses to rank captures by MVV-LVA
// and quiet moves by history score.
func (ms *MoveSlice) Sort() {
	sort.SliceStable(ms.moves, func(i, j int) bool {
		return ms.moves[i].Value() > ms.moves[j].Value()
	})
}

// Contains reports whether m (compared ignoring sort value) is present.
func (ms *MoveSlice) Contains(m types.Move) bool {
	target := m.MoveOf()
	for _, mv := range ms.moves {
		if mv.MoveOf() == target {
			return true
		}
	}
	return false
}

// String renders the slice as space-separated UCI move strings.
func (ms *MoveSlice) String() string {
	parts := make([]string, len(ms.moves))
	for i, m := range ms.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
