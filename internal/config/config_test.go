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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func resetSettingsToDefaults() {
	Settings = conf{
		Log: logConf{Level: "info", SearchLevel: "info"},
		Search: searchConf{
			TtSizeMB:      64,
			MaxDepth:      0,
			UseNullMove:   true,
			UseQuiescence: true,
		},
	}
}

func TestSetupFallsBackSilentlyWhenFileIsMissing(t *testing.T) {
	defer Reset()
	defer resetSettingsToDefaults()
	Reset()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")

	if err := Setup(); err != nil {
		t.Fatalf("a missing config file should not be an error, got %v", err)
	}
	if Settings.Search.TtSizeMB != 64 {
		t.Fatalf("Settings should keep its default tt_size_mb when no file is found, got %d", Settings.Search.TtSizeMB)
	}
}

func TestSetupLoadsValuesFromFile(t *testing.T) {
	defer Reset()
	defer resetSettingsToDefaults()
	Reset()

	path := filepath.Join(t.TempDir(), "Forklift.toml")
	contents := `
[log]
level = "debug"
search_level = "warn"

[search]
tt_size_mb = 128
max_depth = 12
use_null_move = false
use_quiescence = true
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ConfFile = path

	if err := Setup(); err != nil {
		t.Fatalf("Setup should succeed on a well-formed file, got %v", err)
	}
	if Settings.Log.Level != "debug" {
		t.Fatalf("Settings.Log.Level = %q, want %q", Settings.Log.Level, "debug")
	}
	if Settings.Search.TtSizeMB != 128 {
		t.Fatalf("Settings.Search.TtSizeMB = %d, want 128", Settings.Search.TtSizeMB)
	}
	if Settings.Search.MaxDepth != 12 {
		t.Fatalf("Settings.Search.MaxDepth = %d, want 12", Settings.Search.MaxDepth)
	}
	if Settings.Search.UseNullMove {
		t.Fatalf("Settings.Search.UseNullMove should be false per the file")
	}
}

func TestSetupIsIdempotentWithoutReset(t *testing.T) {
	defer Reset()
	defer resetSettingsToDefaults()
	Reset()

	path := filepath.Join(t.TempDir(), "Forklift.toml")
	if err := os.WriteFile(path, []byte("[search]\ntt_size_mb = 256\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ConfFile = path

	if err := Setup(); err != nil {
		t.Fatalf("first Setup call: %v", err)
	}
	if Settings.Search.TtSizeMB != 256 {
		t.Fatalf("first Setup should have loaded 256, got %d", Settings.Search.TtSizeMB)
	}

	// change the file and the path, then call Setup again without Reset:
	// it should be a no-op and keep the first load's values.
	otherPath := filepath.Join(t.TempDir(), "other.toml")
	if err := os.WriteFile(otherPath, []byte("[search]\ntt_size_mb = 512\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ConfFile = otherPath
	if err := Setup(); err != nil {
		t.Fatalf("second Setup call: %v", err)
	}
	if Settings.Search.TtSizeMB != 256 {
		t.Fatalf("Setup should be idempotent without Reset, got %d", Settings.Search.TtSizeMB)
	}
}

func TestSetupErrorsOnMalformedFile(t *testing.T) {
	defer Reset()
	defer resetSettingsToDefaults()
	Reset()

	path := filepath.Join(t.TempDir(), "Forklift.toml")
	if err := os.WriteFile(path, []byte("this is not valid toml [[["), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ConfFile = path

	if err := Setup(); err == nil {
		t.Fatalf("a present but malformed config file should be an error")
	}
}

func TestStringRendersSettings(t *testing.T) {
	defer resetSettingsToDefaults()
	s := Settings.String()
	if s == "" {
		t.Fatalf("String() should not return an empty string")
	}
}
