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

import "testing"

func TestBitboardPushPop(t *testing.T) {
	sq := MakeSquare("e4")
	bb := EmptyBb.PushSquare(sq)
	if !bb.Has(sq) {
		t.Fatalf("PushSquare did not set e4")
	}
	bb = bb.PopSquare(sq)
	if bb.Has(sq) || bb != EmptyBb {
		t.Fatalf("PopSquare did not clear e4")
	}
}

func TestBitboardPopLsbPopCount(t *testing.T) {
	var bb Bitboard
	squares := []string{"a1", "d4", "h8"}
	for _, s := range squares {
		bb = bb.PushSquare(MakeSquare(s))
	}
	if bb.PopCount() != len(squares) {
		t.Fatalf("PopCount() = %d, want %d", bb.PopCount(), len(squares))
	}

	seen := map[int]bool{}
	for bb != 0 {
		var c int
		c, bb = bb.PopLsb()
		seen[c] = true
	}
	for _, s := range squares {
		if !seen[MakeSquare(s).Compact()] {
			t.Fatalf("PopLsb never visited %s", s)
		}
	}
}

func TestBitboardMoreThanOne(t *testing.T) {
	bb := MakeSquare("a1").Bb()
	if bb.MoreThanOne() {
		t.Fatalf("single-bit board reported MoreThanOne")
	}
	bb = bb.PushSquare(MakeSquare("h8"))
	if !bb.MoreThanOne() {
		t.Fatalf("two-bit board did not report MoreThanOne")
	}
}

func TestBitboardShifts(t *testing.T) {
	a1 := MakeSquare("a1").Bb()
	if got := a1.ShiftNorth(); !got.Has(MakeSquare("a2")) {
		t.Fatalf("ShiftNorth(a1) should reach a2")
	}
	h1 := MakeSquare("h1").Bb()
	if got := h1.ShiftEast(); got != EmptyBb {
		t.Fatalf("ShiftEast off the h-file should vanish, got %v", got)
	}
	a1again := MakeSquare("a1").Bb()
	if got := a1again.ShiftWest(); got != EmptyBb {
		t.Fatalf("ShiftWest off the a-file should vanish, got %v", got)
	}
}

func TestBitboardLsbMsb(t *testing.T) {
	bb := MakeSquare("a1").Bb() | MakeSquare("h8").Bb()
	if bb.Lsb() != MakeSquare("a1").Compact() {
		t.Fatalf("Lsb() = %d, want a1's compact index", bb.Lsb())
	}
	if bb.Msb() != MakeSquare("h8").Compact() {
		t.Fatalf("Msb() = %d, want h8's compact index", bb.Msb())
	}
}
