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

// Package logging wraps github.com/op/go-logging into a small set of
// named, lazily-configured loggers, one per concern (standard, search,
// test), matching the split the teacher keeps between its general log
// and its search-specific log so a verbose search trace can be enabled
// without flooding every other component's output.
package logging

import (
	"os"

	golog "github.com/op/go-logging"
)

var (
	standardLog *golog.Logger
	searchLog   *golog.Logger
	testLog     *golog.Logger
)

var standardFormat = golog.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{shortfunc} %{message}`,
)

func newLogger(name string, level golog.Level) *golog.Logger {
	backend := golog.NewLogBackend(os.Stderr, "", 0)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level, name)
	log := golog.MustGetLogger(name)
	log.SetBackend(leveled)
	return log
}

// GetLog returns the general-purpose logger used by position,
// movegen, the transposition table and the ambient packages.
func GetLog() *golog.Logger {
	if standardLog == nil {
		standardLog = newLogger("forklift", golog.INFO)
	}
	return standardLog
}

// GetSearchLog returns the logger dedicated to iterative-deepening and
// alpha-beta tracing, kept separate so enabling DEBUG on it doesn't
// also enable it for everything else.
func GetSearchLog() *golog.Logger {
	if searchLog == nil {
		searchLog = newLogger("forklift.search", golog.INFO)
	}
	return searchLog
}

// GetTestLog returns the logger used by test suites and perft
// regression tests, defaulted quieter than the standard logger.
func GetTestLog() *golog.Logger {
	if testLog == nil {
		testLog = newLogger("forklift.test", golog.WARNING)
	}
	return testLog
}

// SetLevel reconfigures the named logger's level at runtime.
func SetLevel(log *golog.Logger, level golog.Level) {
	golog.SetLevel(level, log.Module)
}
