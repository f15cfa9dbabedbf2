package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Reads and decodes the BMP or PNG image at path, and converts it to a
// Bitmap. Every failure wraps ErrImageAccess.
func Open(path string) (*Bitmap, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: opening %s: %s", ErrImageAccess, path, e)
	}
	defer f.Close()
	// Importing x/image/bmp registers the BMP decoder with image.Decode.
	pic, _, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("%w: decoding %s: %s", ErrImageAccess, path, e)
	}
	return FromImage(pic), nil
}

// Encodes pic to the file at path. The format is chosen from the extension:
// ".bmp" or ".png". Any other extension returns ErrUnsupportedFormat without
// creating the file.
func Save(pic image.Image, path string) error {
	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, pic) }
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, pic) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	f, e := os.Create(path)
	if e != nil {
		return fmt.Errorf("%w: creating %s: %s", ErrImageAccess, path, e)
	}
	e = encode(f)
	closeErr := f.Close()
	if e != nil {
		return fmt.Errorf("%w: writing %s: %s", ErrImageAccess, path, e)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: closing %s: %s", ErrImageAccess, path,
			closeErr)
	}
	return nil
}

// Writes the bitmap to path as an 8-bit grayscale image. See Save.
func (b *Bitmap) Save(path string) error {
	return Save(b.Gray(), path)
}
