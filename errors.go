package main

import "errors"

// Error kinds surfaced by the session. All of them are recoverable: the
// session keeps its previous state and the shell reports the condition.
var (
	ErrDirectoryUnreadable   = errors.New("directory unreadable")
	ErrEmptyDirectory        = errors.New("no viewable images in directory")
	ErrUnsupportedImage      = errors.New("unsupported or corrupt image")
	ErrUnsupportedSaveFormat = errors.New("unsupported save format")
	ErrWriteFailed           = errors.New("write failed")
)
