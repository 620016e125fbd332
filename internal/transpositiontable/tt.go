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

// Package transpositiontable caches search results keyed by Zobrist
// hash, direct-mapped so probing and storing are a single masked
// index, with a depth-preferred replacement policy and mate-distance
// score normalization so a mate found deep in one subtree is still
// correct when reused at a shallower ply elsewhere.
package transpositiontable

import (
	"math"
	"sync"

	"github.com/kylejrp/Forklift-sub000/internal/logging"
	"github.com/kylejrp/Forklift-sub000/internal/types"
	"github.com/kylejrp/Forklift-sub000/internal/zobrist"
)

var log = logging.GetLog()

// MaxSizeInMB bounds the -hash configuration value the same way the
// teacher's table does, to keep a typo from allocating an unreasonable
// amount of memory.
const MaxSizeInMB = 65536

// Table is a fixed-size, direct-mapped transposition table.
type Table struct {
	mu              sync.RWMutex
	data            []entry
	hashKeyMask     uint64
	sizeInBytes     uint64
	numberOfEntries uint64
	age             uint8

	Hits    uint64
	Misses  uint64
	Collisions uint64
}

// NewTable allocates a table sized to at most sizeInMB megabytes,
// rounded down to the nearest power-of-two entry count so hashing is a
// mask instead of a modulo.
func NewTable(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table (discarding all entries) to the nearest
// power of two number of entries that fits within sizeInMB megabytes.
func (t *Table) Resize(sizeInMB int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sizeInMB < 1 {
		sizeInMB = 1
	}
	if sizeInMB > MaxSizeInMB {
		sizeInMB = MaxSizeInMB
	}
	bytes := uint64(sizeInMB) * 1024 * 1024
	numEntries := bytes / entrySize
	exponent := math.Floor(math.Log2(float64(numEntries)))
	t.numberOfEntries = uint64(math.Pow(2, exponent))
	t.hashKeyMask = t.numberOfEntries - 1
	t.sizeInBytes = t.numberOfEntries * entrySize
	t.data = make([]entry, t.numberOfEntries)
	log.Infof("transposition table resized to %d entries (%d MB)", t.numberOfEntries, sizeInMB)
}

// Clear zeroes every entry without reallocating.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.data {
		t.data[i] = entry{}
	}
	t.age = 0
}

// NewSearch bumps the generation counter new entries are tagged with,
// so Put's replacement policy can prefer fresh entries over ones from
// an earlier search without a full Clear.
func (t *Table) NewSearch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.age++
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.hashKeyMask
}

// Probe looks up key at ply (the current search ply, used to undo the
// mate-distance normalization Put applied) and reports whether a usable
// entry was found.
func (t *Table) Probe(key zobrist.Key, ply int) (move types.Move, value types.Value, depth int, vt types.ValueType, found bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.data[t.index(key)]
	if e.key != key {
		t.Misses++
		return 0, 0, 0, types.Vnone, false
	}
	t.Hits++
	return e.move, fromTtValue(types.Value(e.value), ply), e.depth(), e.valueType(), true
}

// Put stores a search result. An empty slot, or one holding a different
// key, is always overwritten. For the same key, the entry is replaced
// when it comes from an earlier search generation or is not deeper than
// the new result; a deeper same-generation entry for the same key is
// kept, so expensive deep results survive shallow re-searches of the
// same position.
func (t *Table) Put(key zobrist.Key, move types.Move, value types.Value, ply int, depth int, vt types.ValueType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.index(key)
	existing := t.data[idx]
	tv := int16(toTtValue(value, ply))

	if existing.key == 0 {
		t.data[idx] = makeEntry(key, move, tv, depth, vt, t.age)
		return
	}
	if existing.key != key {
		t.Collisions++
		t.data[idx] = makeEntry(key, move, tv, depth, vt, t.age)
		return
	}
	if existing.age() != t.age&ageMask || existing.depth() <= depth {
		if move == 0 {
			move = existing.move
		}
		t.data[idx] = makeEntry(key, move, tv, depth, vt, t.age)
	}
}

// Hashfull returns, in permille, how full the table's first 1000 slots
// are -- the UCI-standard estimate of table occupancy.
func (t *Table) Hashfull() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 1000
	if uint64(n) > t.numberOfEntries {
		n = int(t.numberOfEntries)
	}
	filled := 0
	for i := 0; i < n; i++ {
		if t.data[i].key != 0 {
			filled++
		}
	}
	return filled * 1000 / n
}

// toTtValue adjusts a mate score from "plies from root" to "plies from
// this node" before storing, and back again on Probe (fromTtValue),
// so a mate score discovered deep inside one search is still the
// correct distance-to-mate when the entry is reused higher up the
// tree, where it is a different number of plies from the root.
func toTtValue(v types.Value, ply int) types.Value {
	if v >= types.CheckmateValue-types.Value(types.MaxPly) {
		return v + types.Value(ply)
	}
	if v <= -types.CheckmateValue+types.Value(types.MaxPly) {
		return v - types.Value(ply)
	}
	return v
}

func fromTtValue(v types.Value, ply int) types.Value {
	if v >= types.CheckmateValue-types.Value(types.MaxPly) {
		return v - types.Value(ply)
	}
	if v <= -types.CheckmateValue+types.Value(types.MaxPly) {
		return v + types.Value(ply)
	}
	return v
}
