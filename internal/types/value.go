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

package types

// Value is a centipawn evaluation or search score, always from the
// side-to-move's point of view (negamax convention).
type Value int32

// Sentinel and mate-window values. CheckmateValue is deliberately far
// outside any real material evaluation so that "mate in N" scores
// (CheckmateValue - N) never collide with a legitimate positional
// score. ValueDraw is exactly zero so it can be compared directly.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInfinite  Value = 32000
	CheckmateValue Value = 31000
	ValueNone      Value = -32001
)

// IsMateScore reports whether v lies inside the mate-score window,
// i.e. it encodes "mate in N plies" rather than a material evaluation.
func (v Value) IsMateScore() bool {
	return v >= CheckmateValue-Value(MaxPly) || v <= -(CheckmateValue-Value(MaxPly))
}

// MaxPly bounds search depth and the history/killer tables indexed by
// ply; it also bounds how far from CheckmateValue a mate score can
// drift before it would be misread as a normal evaluation.
const MaxPly = 128

// ValueType records which bound a transposition table entry represents
// relative to the search window it was stored with.
type ValueType int8

// The three value-type classifications.
const (
	Vnone ValueType = iota
	Exact
	Alpha
	Beta
)

// IsValid reports whether vt is one of the three real classifications.
func (vt ValueType) IsValid() bool {
	return vt > Vnone && vt <= Beta
}

func (vt ValueType) String() string {
	switch vt {
	case Exact:
		return "EXACT"
	case Alpha:
		return "ALPHA"
	case Beta:
		return "BETA"
	default:
		return "NONE"
	}
}
