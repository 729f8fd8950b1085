package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeImageDir creates a directory containing the given plain files and
// returns its path.
func writeImageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return dir
}

func TestCollectionLoad(t *testing.T) {
	dir := writeImageDir(t, "b.png", "a.jpg", "c.gif")

	var c Collection
	if err := c.Load(dir, &LexicographicSortStrategy{}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Directory() != dir {
		t.Errorf("Expected directory %s, got %s", dir, c.Directory())
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("Expected currentIndex 0, got %d", c.CurrentIndex())
	}

	expected := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.gif"),
	}
	entries := c.Entries()
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, expected[i], entries[i])
		}
	}
}

func TestCollectionLoadEmpty(t *testing.T) {
	dir := writeImageDir(t, "notes.txt")

	c := Collection{directory: "/old", entries: []string{"/old/a.png"}}
	err := c.Load(dir, &LexicographicSortStrategy{})
	if !errors.Is(err, ErrEmptyDirectory) {
		t.Fatalf("Expected ErrEmptyDirectory, got %v", err)
	}

	// A failed load must leave the collection unchanged
	if c.Directory() != "/old" || c.Len() != 1 {
		t.Errorf("Collection changed after failed load: %+v", c)
	}
}

func TestCollectionCycle(t *testing.T) {
	tests := []struct {
		name        string
		entryCount  int
		initialIdx  int
		direction   CycleDirection
		expectedIdx int
	}{
		{"Next", 5, 0, CycleNext, 1},
		{"Previous", 5, 2, CyclePrevious, 1},
		{"Wrap around next", 5, 4, CycleNext, 0},
		{"Wrap around previous", 5, 0, CyclePrevious, 4},
		{"Single entry next", 1, 0, CycleNext, 0},
		{"Single entry previous", 1, 0, CyclePrevious, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]string, tt.entryCount)
			for i := range entries {
				entries[i] = "img.png"
			}
			c := Collection{entries: entries, current: tt.initialIdx}

			if got := c.Cycle(tt.direction); got != tt.expectedIdx {
				t.Errorf("Cycle() = %d, want %d", got, tt.expectedIdx)
			}
			if c.CurrentIndex() != tt.expectedIdx {
				t.Errorf("CurrentIndex() = %d, want %d", c.CurrentIndex(), tt.expectedIdx)
			}
		})
	}
}

func TestCollectionCycleFullCircle(t *testing.T) {
	c := Collection{entries: []string{"a", "b", "c", "d", "e"}, current: 2}

	for i := 0; i < len(c.entries); i++ {
		c.Cycle(CycleNext)
	}
	if c.CurrentIndex() != 2 {
		t.Errorf("N next steps should return to start, got %d", c.CurrentIndex())
	}

	for i := 0; i < len(c.entries); i++ {
		c.Cycle(CyclePrevious)
	}
	if c.CurrentIndex() != 2 {
		t.Errorf("N previous steps should return to start, got %d", c.CurrentIndex())
	}
}

func TestCollectionCycleEmpty(t *testing.T) {
	var c Collection

	// Must not panic or divide by zero
	if got := c.Cycle(CycleNext); got != 0 {
		t.Errorf("Cycle(Next) on empty = %d, want 0", got)
	}
	if got := c.Cycle(CyclePrevious); got != 0 {
		t.Errorf("Cycle(Previous) on empty = %d, want 0", got)
	}

	if _, ok := c.Current(); ok {
		t.Error("Current() on empty collection should report not ok")
	}
}

func TestSetCurrentToFile(t *testing.T) {
	dir := writeImageDir(t, "a.png", "b.png", "c.png", "notes.txt")

	tests := []struct {
		name        string
		file        string
		expectedIdx int
	}{
		{"First entry", "a.png", 0},
		{"Middle entry", "b.png", 1},
		{"Last entry", "c.png", 2},
		{"Unsupported extension falls back to 0", "notes.txt", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collection
			path := filepath.Join(dir, tt.file)
			if err := c.SetCurrentToFile(path, &LexicographicSortStrategy{}); err != nil {
				t.Fatalf("SetCurrentToFile failed: %v", err)
			}

			if c.Directory() != dir {
				t.Errorf("Expected directory %s, got %s", dir, c.Directory())
			}
			if c.Len() != 3 {
				t.Errorf("Expected 3 entries, got %d", c.Len())
			}
			if c.CurrentIndex() != tt.expectedIdx {
				t.Errorf("Expected index %d, got %d", tt.expectedIdx, c.CurrentIndex())
			}
		})
	}
}
