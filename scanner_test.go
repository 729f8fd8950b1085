package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsSupportedExt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"PNG file", "test.png", true},
		{"JPG file", "test.jpg", true},
		{"JPEG file", "test.jpeg", true},
		{"BMP file", "test.bmp", true},
		{"GIF file", "test.gif", true},
		{"ICO file", "favicon.ico", true},
		{"PNG uppercase", "test.PNG", true},
		{"JPG mixed case", "test.Jpg", true},
		{"WebP file", "test.webp", false},
		{"Text file", "test.txt", false},
		{"No extension", "test", false},
		{"Empty string", "", false},
		{"Multiple dots", "test.backup.jpg", true},
		{"Path with directory", "/path/to/test.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isSupportedExt(tt.path)
			if result != tt.expected {
				t.Errorf("isSupportedExt(%s) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestScanDirectoryOrder(t *testing.T) {
	tempDir := t.TempDir()

	// Created out of order on purpose; the scan must return them sorted
	for _, name := range []string{"b.png", "a.jpg", "c.gif", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}

	// Files inside subdirectories must not appear (non-recursive)
	subDir := filepath.Join(tempDir, "sub")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "d.png"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create nested file: %v", err)
	}

	result, err := ScanDirectory(tempDir, &LexicographicSortStrategy{})
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	expected := []string{
		filepath.Join(tempDir, "a.jpg"),
		filepath.Join(tempDir, "b.png"),
		filepath.Join(tempDir, "c.gif"),
	}
	if len(result) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %v", len(expected), len(result), result)
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, expected[i], result[i])
		}
	}
}

func TestScanDirectoryEmpty(t *testing.T) {
	tempDir := t.TempDir()

	result, err := ScanDirectory(tempDir, &LexicographicSortStrategy{})
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected no entries, got %v", result)
	}
}

func TestScanDirectoryUnreadable(t *testing.T) {
	_, err := ScanDirectory(filepath.Join(t.TempDir(), "missing"), &LexicographicSortStrategy{})
	if !errors.Is(err, ErrDirectoryUnreadable) {
		t.Errorf("Expected ErrDirectoryUnreadable, got %v", err)
	}
}
