package raster

import "errors"

var (
	// ErrImageAccess is wrapped by every failure to read, decode, create or
	// encode an image file.
	ErrImageAccess = errors.New("raster: unable to access image")
	// ErrUnsupportedFormat is returned by Save when the file extension
	// doesn't name a format we can write.
	ErrUnsupportedFormat = errors.New("raster: unsupported image format")
)
