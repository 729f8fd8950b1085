package main

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

// ImageInfo is the metadata the shell shows for the current image.
type ImageInfo struct {
	Mode   ColorMode
	Width  int
	Height int
}

// Session is the composition root the UI shell talks to. It owns the
// active collection, the decoded asset for the current entry and the
// pending transform. All methods are synchronous and must be called from
// a single goroutine; on any error the session keeps its previous state.
type Session struct {
	collection Collection
	asset      *ImageAsset
	transform  Transform
	sortMethod int

	// Decoded assets keyed by path so stepping back and forth does not
	// re-decode. The asset buffers are immutable, sharing them is safe.
	cache *lru.Cache[string, *ImageAsset]
}

// NewSession creates a Session with an asset cache of the given size.
func NewSession(cacheSize, sortMethod int) *Session {
	cache, err := lru.New[string, *ImageAsset](cacheSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to create asset cache")
		cache, _ = lru.New[string, *ImageAsset](16)
	}

	return &Session{
		sortMethod: sortMethod,
		cache:      cache,
	}
}

func (s *Session) strategy() SortStrategy {
	return GetSortStrategy(s.sortMethod)
}

func (s *Session) loadAsset(path string) (*ImageAsset, error) {
	if asset, ok := s.cache.Get(path); ok {
		log.Debug().Str("path", path).Msg("asset cache hit")
		return asset, nil
	}

	asset, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	s.cache.Add(path, asset)
	log.Debug().Str("path", path).Int("cached", s.cache.Len()).Msg("decoded")
	return asset, nil
}

// OpenImage displays the file at path and makes its directory the active
// collection, cursor on path.
func (s *Session) OpenImage(path string) error {
	asset, err := s.loadAsset(path)
	if err != nil {
		return err
	}
	if err := s.collection.SetCurrentToFile(path, s.strategy()); err != nil {
		return err
	}

	s.asset = asset
	s.transform = Identity()
	log.Debug().Str("path", path).Int("entries", s.collection.Len()).Msg("opened image")
	return nil
}

// OpenFolder makes dir the active collection and displays its first image.
func (s *Session) OpenFolder(dir string) error {
	var c Collection
	if err := c.Load(dir, s.strategy()); err != nil {
		return err
	}

	first, _ := c.Current()
	asset, err := s.loadAsset(first)
	if err != nil {
		return err
	}

	s.collection = c
	s.asset = asset
	s.transform = Identity()
	log.Debug().Str("dir", dir).Int("entries", c.Len()).Msg("opened folder")
	return nil
}

// Cycle steps to the previous or next sibling with wraparound. With an
// empty collection it is a safe no-op. The transform resets for the newly
// current image.
func (s *Session) Cycle(dir CycleDirection) error {
	if s.collection.Len() == 0 {
		return nil
	}

	// Step a scratch copy first so a failing decode leaves the cursor
	// on the image that is actually displayed.
	c := s.collection
	c.Cycle(dir)
	path, _ := c.Current()

	asset, err := s.loadAsset(path)
	if err != nil {
		return err
	}

	s.collection = c
	s.asset = asset
	s.transform = Identity()
	return nil
}

// JumpTo moves the cursor straight to the given index. Out-of-range
// indices and the empty collection are safe no-ops.
func (s *Session) JumpTo(idx int) error {
	if idx < 0 || idx >= s.collection.Len() {
		return nil
	}

	c := s.collection
	c.current = idx
	path, _ := c.Current()

	asset, err := s.loadAsset(path)
	if err != nil {
		return err
	}

	s.collection = c
	s.asset = asset
	s.transform = Identity()
	return nil
}

// Rotate adds a 90 degree step to the pending transform.
func (s *Session) Rotate(dir RotationDirection) {
	if s.asset == nil {
		return
	}
	s.transform = s.transform.Rotate(dir)
}

// Flip toggles a mirror axis on the pending transform.
func (s *Session) Flip(axis FlipAxis) {
	if s.asset == nil {
		return
	}
	s.transform = s.transform.Flip(axis)
}

// ResetTransform returns the display to the image as loaded.
func (s *Session) ResetTransform() {
	s.transform = Identity()
}

// Save renders the current asset with the pending transform and encodes
// the result to outPath, codec chosen by its extension.
func (s *Session) Save(outPath string) error {
	if s.asset == nil {
		return fmt.Errorf("%w: no image loaded", ErrWriteFailed)
	}

	buf := RenderTransform(s.asset, s.transform)
	if err := EncodeImage(buf, s.asset.Mode, outPath); err != nil {
		return err
	}
	log.Debug().Str("path", outPath).Str("transform", s.transform.String()).Msg("saved")
	return nil
}

// CurrentDisplayBitmap returns the pixels to show: the original buffer
// with the pending transform applied. Nil when nothing is loaded.
func (s *Session) CurrentDisplayBitmap() image.Image {
	if s.asset == nil {
		return nil
	}
	return RenderTransform(s.asset, s.transform)
}

// CurrentImageInfo returns metadata for the current image, or false when
// nothing is loaded. The reported dimensions are those of the source
// asset, not the transformed view.
func (s *Session) CurrentImageInfo() (ImageInfo, bool) {
	if s.asset == nil {
		return ImageInfo{}, false
	}
	return ImageInfo{Mode: s.asset.Mode, Width: s.asset.Width, Height: s.asset.Height}, true
}

// CurrentPath returns the path at the cursor, or false when the
// collection is empty.
func (s *Session) CurrentPath() (string, bool) {
	return s.collection.Current()
}

// Directory returns the active directory, empty when nothing is open.
func (s *Session) Directory() string {
	return s.collection.Directory()
}

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int {
	return s.collection.CurrentIndex()
}

// Count returns the number of entries in the active collection.
func (s *Session) Count() int {
	return s.collection.Len()
}

// Transform returns the pending transform.
func (s *Session) Transform() Transform {
	return s.transform
}

// SortMethod returns the active sort method ID for config persistence.
func (s *Session) SortMethod() int {
	return s.sortMethod
}

// SortMethodName returns the name of the active sort strategy.
func (s *Session) SortMethodName() string {
	return s.strategy().Name()
}

// CycleSortMethod switches to the next sort strategy, reorders the
// entries and keeps the cursor on the same file. Returns the name of the
// new strategy.
func (s *Session) CycleSortMethod() string {
	strategies := GetAllSortStrategies()
	s.sortMethod = (s.sortMethod + 1) % len(strategies)
	strategy := s.strategy()

	cur, ok := s.collection.Current()
	s.collection.entries = strategy.Sort(s.collection.entries)
	if ok {
		for i, e := range s.collection.entries {
			if e == cur {
				s.collection.current = i
				break
			}
		}
	}
	return strategy.Name()
}

// Refresh rescans the active directory, keeping the cursor on the current
// file when it survived the rescan. Cached decodes are dropped because
// the files may have changed on disk.
func (s *Session) Refresh() error {
	dir := s.collection.Directory()
	if dir == "" {
		return nil
	}
	cur, _ := s.collection.Current()

	var c Collection
	if err := c.Load(dir, s.strategy()); err != nil {
		return err
	}
	s.cache.Purge()

	for i, e := range c.entries {
		if e == cur {
			c.current = i
			s.collection = c
			return nil
		}
	}

	// The current file is gone; fall back to the first entry.
	first, _ := c.Current()
	asset, err := s.loadAsset(first)
	if err != nil {
		return err
	}
	s.collection = c
	s.asset = asset
	s.transform = Identity()
	return nil
}
