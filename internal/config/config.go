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

// Package config loads Forklift.toml (if present) into package-level
// settings, falling back silently to defaults so the engine runs fine
// with no config file at all -- only a file that is present but fails
// to parse is an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path Setup looks for when no explicit path is given.
var ConfFile = "Forklift.toml"

type searchConf struct {
	TtSizeMB       int `toml:"tt_size_mb"`
	MaxDepth       int `toml:"max_depth"`
	UseNullMove    bool `toml:"use_null_move"`
	UseQuiescence  bool `toml:"use_quiescence"`
}

type logConf struct {
	Level       string `toml:"level"`
	SearchLevel string `toml:"search_level"`
}

type conf struct {
	Log    logConf    `toml:"log"`
	Search searchConf `toml:"search"`
}

// Settings holds the active configuration, populated by Setup.
var Settings = conf{
	Log: logConf{Level: "info", SearchLevel: "info"},
	Search: searchConf{
		TtSizeMB:      64,
		MaxDepth:      0,
		UseNullMove:   true,
		UseQuiescence: true,
	},
}

var initialized bool

// Setup loads ConfFile into Settings. It is idempotent: a second call
// is a no-op unless Reset is called first. A missing file is not an
// error -- Settings simply keeps its defaults -- but a present,
// malformed file is.
func Setup() error {
	if initialized {
		return nil
	}
	initialized = true

	if _, err := os.Stat(ConfFile); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", ConfFile, err)
	}
	return nil
}

// Reset clears the idempotency guard, used by tests that want to load
// a different file in the same process.
func Reset() {
	initialized = false
}

// String renders the active settings for diagnostic output.
func (c conf) String() string {
	return fmt.Sprintf("log=%+v search=%+v", c.Log, c.Search)
}
