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

// Package util collects small diagnostic helpers shared across the
// engine: nodes-per-second arithmetic and locale-formatted printing
// for the numbers perft and search reporting print to the console.
package util

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Out is a German-locale printer (thousands separated by '.') matching
// the teacher's diagnostic number formatting.
var Out = message.NewPrinter(language.German)

// Nps computes nodes per second for a search/perft run, guarding
// against a division by a zero or negative elapsed duration.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return uint64(float64(nodes) / seconds)
}

// TimeTrack logs how long a named operation took, called via
// defer util.TimeTrack(time.Now(), "perft") at the top of the
// operation being timed.
func TimeTrack(start time.Time, name string) {
	Out.Printf("%s took %s\n", name, time.Since(start))
}
