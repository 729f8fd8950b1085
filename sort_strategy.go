package main

import (
	"sort"

	"github.com/maruel/natural"
)

// SortStrategy defines the interface for the different entry orderings
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(paths []string) []string
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// LexicographicSortStrategy is the default ordering: plain string sort, so
// cycling through a directory is reproducible across runs and platforms.
type LexicographicSortStrategy struct{}

func (s *LexicographicSortStrategy) Sort(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)

	sort.Strings(result)
	return result
}

func (s *LexicographicSortStrategy) Name() string {
	return "Lexicographic"
}

func (s *LexicographicSortStrategy) ID() int {
	return SortLexicographic
}

// NaturalSortStrategy implements natural sorting using maruel/natural
// (file1, file2, file10 instead of file1, file10, file2)
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)

	sort.Slice(result, func(i, j int) bool {
		return natural.Less(result[i], result[j])
	})
	return result
}

func (s *NaturalSortStrategy) Name() string {
	return "Natural"
}

func (s *NaturalSortStrategy) ID() int {
	return SortNatural
}

// EntryOrderSortStrategy preserves the order the directory listing returned
type EntryOrderSortStrategy struct{}

func (s *EntryOrderSortStrategy) Sort(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)
	return result
}

func (s *EntryOrderSortStrategy) Name() string {
	return "Entry Order"
}

func (s *EntryOrderSortStrategy) ID() int {
	return SortEntryOrder
}

// GetSortStrategy returns the strategy for the given sort method ID
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortLexicographic:
		return &LexicographicSortStrategy{}
	case SortNatural:
		return &NaturalSortStrategy{}
	case SortEntryOrder:
		return &EntryOrderSortStrategy{}
	default:
		return &LexicographicSortStrategy{}
	}
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&LexicographicSortStrategy{},
		&NaturalSortStrategy{},
		&EntryOrderSortStrategy{},
	}
}
