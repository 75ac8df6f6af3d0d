// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssets_Embedded(t *testing.T) {
	assets, err := Assets("")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"index.html", "script.js", "styles.css"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Errorf("Expected embedded %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("Embedded %s is empty", name)
		}
	}

	index, _ := fs.ReadFile(assets, "index.html")
	if !strings.Contains(string(index), "countdown-list") {
		t.Error("index.html should contain the countdown-list container")
	}
}

func TestAssets_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	assets, err := Assets(dir)
	if err != nil {
		t.Fatal(err)
	}

	data, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom" {
		t.Errorf("Expected directory override, got %q", data)
	}
}

func TestAssets_InvalidDirectory(t *testing.T) {
	if _, err := Assets(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Assets(file); err == nil {
		t.Error("Expected error for a file path")
	}
}

func TestScript_KeyedPolling(t *testing.T) {
	assets, err := Assets("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := fs.ReadFile(assets, "script.js")
	if err != nil {
		t.Fatal(err)
	}
	script := string(data)

	tests := []struct {
		name string
		want string
	}{
		{"cards keyed by record id", "this.cards.set(cd.id, view)"},
		{"updates look up cards by id", "this.cards.get(cd.id)"},
		{"each request takes a sequence number", "const seq = ++this.requestSeq"},
		{"stale responses are dropped", "if (seq < this.renderedSeq)"},
		{"rendered sequence advances", "this.renderedSeq = seq"},
		{"polls every second", "POLL_INTERVAL_MS = 1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(script, tt.want) {
				t.Errorf("script.js missing %q", tt.want)
			}
		})
	}
}
