// Package raster holds the two-color pixel grid shared by the maze generator
// and the graph extractor, along with reading and writing it as an image
// file. A pixel is either open (pure white) or a wall (anything else).
package raster

import (
	"image"
	"image/color"
	"strings"

	"github.com/yalue/image_utils"
)

// Satisfies the image.Image interface. Every pixel is either open (white) or
// a wall (black). Create using NewBitmap or FromImage.
type Bitmap struct {
	width  int
	height int
	// Row-major, true if the pixel is open.
	pixels []bool
}

// Returns a new width x height bitmap with every pixel set to a wall. Negative
// dimensions are treated as 0.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// Returns true only for pure white, ignoring alpha. This is the only pixel
// classification either pipeline uses.
func IsWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	r = r >> 8
	g = g >> 8
	b = b >> 8
	return (r == 255) && (g == 255) && (b == 255)
}

// Converts an arbitrary image into a Bitmap, classifying each pixel with
// IsWhite. The result always starts at (0, 0), regardless of pic's bounds.
func FromImage(pic image.Image) *Bitmap {
	rgba := image_utils.ToRGBA(pic)
	bounds := rgba.Bounds()
	toReturn := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < toReturn.height; y++ {
		for x := 0; x < toReturn.width; x++ {
			c := rgba.RGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
			toReturn.Set(x, y, IsWhite(c))
		}
	}
	return toReturn
}

func (b *Bitmap) inBounds(x, y int) bool {
	return (x >= 0) && (y >= 0) && (x < b.width) && (y < b.height)
}

// Returns the bitmap's width and height, in pixels.
func (b *Bitmap) Dimensions() (int, int) {
	return b.width, b.height
}

// Returns true if the pixel at (x, y) is open. Anything outside the bitmap is
// a wall.
func (b *Bitmap) Get(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.pixels[y*b.width+x]
}

// Sets the pixel at (x, y) to open or wall. Writes outside the bitmap are
// dropped.
func (b *Bitmap) Set(x, y int, open bool) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[y*b.width+x] = open
}

func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Bitmap) At(x, y int) color.Color {
	if !b.inBounds(x, y) {
		return color.Transparent
	}
	if b.pixels[y*b.width+x] {
		return color.White
	}
	return color.Black
}

// Returns an 8-bit grayscale copy of the bitmap, with 0xff for open pixels and
// 0 for walls.
func (b *Bitmap) Gray() *image.Gray {
	toReturn := image.NewGray(b.Bounds())
	for i, open := range b.pixels {
		if open {
			toReturn.Pix[i] = 0xff
		}
	}
	return toReturn
}

// Returns an ASCII sketch of the bitmap: '#' for open pixels and a space for
// walls, one line per row.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.pixels[y*b.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
