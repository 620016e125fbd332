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

func TestPieceTypeIsValid(t *testing.T) {
	if PtNone.IsValid() {
		t.Fatalf("PtNone should not be valid")
	}
	if PtLength.IsValid() {
		t.Fatalf("PtLength should not be valid")
	}
	for pt := King; pt < PtLength; pt++ {
		if !pt.IsValid() {
			t.Fatalf("%v should be valid", pt)
		}
	}
}

func TestPieceTypeValueOrdering(t *testing.T) {
	if !(Pawn.ValueOf() < Knight.ValueOf() &&
		Knight.ValueOf() < Bishop.ValueOf() &&
		Bishop.ValueOf() < Rook.ValueOf() &&
		Rook.ValueOf() < Queen.ValueOf() &&
		Queen.ValueOf() < King.ValueOf()) {
		t.Fatalf("piece values are not strictly increasing pawn < knight < bishop < rook < queen < king")
	}
}

func TestPieceTypeString(t *testing.T) {
	if Knight.String() != "knight" {
		t.Fatalf("Knight.String() = %q, want knight", Knight.String())
	}
	if Queen.Char() != 'q' {
		t.Fatalf("Queen.Char() = %q, want 'q'", Queen.Char())
	}
}
