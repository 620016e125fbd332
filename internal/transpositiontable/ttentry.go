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

package transpositiontable

import (
	"github.com/kylejrp/Forklift-sub000/internal/types"
	"github.com/kylejrp/Forklift-sub000/internal/zobrist"
)

// entry is one transposition table slot, packed into 16 bytes: the
// full key (for collision detection on a direct-mapped table), the
// best/refutation move, the stored value, and depth/type/age packed
// into a single uint16 the same way the teacher's vmeta field does.
type entry struct {
	key   zobrist.Key
	move  types.Move
	value int16
	vmeta uint16
}

const (
	depthMask  = 0x3f
	depthShift = 0
	vtypeMask  = 0x3
	vtypeShift = 6
	ageMask    = 0x7
	ageShift   = 8
)

const entrySize = 16

func makeEntry(key zobrist.Key, move types.Move, value int16, depth int, vt types.ValueType, age uint8) entry {
	vmeta := uint16(depth&depthMask)<<depthShift |
		uint16(vt&vtypeMask)<<vtypeShift |
		uint16(age&ageMask)<<ageShift
	return entry{key: key, move: move, value: value, vmeta: vmeta}
}

func (e entry) depth() int {
	return int((e.vmeta >> depthShift) & depthMask)
}

func (e entry) valueType() types.ValueType {
	return types.ValueType((e.vmeta >> vtypeShift) & vtypeMask)
}

func (e entry) age() uint8 {
	return uint8((e.vmeta >> ageShift) & ageMask)
}

func (e entry) withAge(age uint8) entry {
	e.vmeta = (e.vmeta &^ (ageMask << ageShift)) | uint16(age&ageMask)<<ageShift
	return e
}
