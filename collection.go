package main

import (
	"path/filepath"
)

// CycleDirection represents the direction of collection navigation
type CycleDirection int

const (
	CyclePrevious CycleDirection = iota
	CycleNext
)

// Collection holds the ordered list of sibling image files in the active
// directory plus the cursor to the current one.
//
// Invariant: when entries is non-empty, 0 <= current < len(entries).
// When empty there is no current image and navigation is a no-op.
type Collection struct {
	directory string
	entries   []string
	current   int
}

// Directory returns the active directory.
func (c *Collection) Directory() string {
	return c.directory
}

// Entries returns the ordered file list. Callers must not modify it.
func (c *Collection) Entries() []string {
	return c.entries
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// CurrentIndex returns the cursor position. Meaningless when Len() == 0.
func (c *Collection) CurrentIndex() int {
	return c.current
}

// Current returns the path at the cursor, or false when the collection is
// empty.
func (c *Collection) Current() (string, bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	return c.entries[c.current], true
}

// Load scans dir and replaces the collection with its contents, cursor at
// the first entry. Fails with ErrEmptyDirectory when no viewable files are
// found; the collection is left unchanged on any failure.
func (c *Collection) Load(dir string, strategy SortStrategy) error {
	entries, err := ScanDirectory(dir, strategy)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrEmptyDirectory
	}

	c.directory = dir
	c.entries = entries
	c.current = 0
	return nil
}

// SetCurrentToFile loads the directory containing path and positions the
// cursor on path. When path is not among the scanned entries (an
// unsupported extension opened explicitly) the cursor falls back to the
// first entry.
func (c *Collection) SetCurrentToFile(path string, strategy SortStrategy) error {
	dir := filepath.Dir(path)
	entries, err := ScanDirectory(dir, strategy)
	if err != nil {
		return err
	}

	c.directory = dir
	c.entries = entries
	c.current = 0
	for i, entry := range entries {
		if entry == path {
			c.current = i
			break
		}
	}
	return nil
}

// Cycle moves the cursor one step with wraparound and returns the new
// index. An empty collection is a safe no-op.
func (c *Collection) Cycle(dir CycleDirection) int {
	if len(c.entries) == 0 {
		return c.current
	}

	switch dir {
	case CycleNext:
		c.current = (c.current + 1) % len(c.entries)
	case CyclePrevious:
		c.current--
		if c.current < 0 {
			c.current = len(c.entries) - 1
		}
	}
	return c.current
}
