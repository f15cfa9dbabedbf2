package maze

import (
	"image"
	"image/color"

	"github.com/yalue/dfsmaze/raster"
)

// Draws the maze's cells onto a new bitmap of the originally requested size.
// Each cell is a 2x2 pixel block: the cell itself, the pixel to its right and
// the pixel below it. The latter two are only open if the cells on both sides
// are connected to each other. The entrance in the top row and the exit in
// the bottom row are always open. Pixels that would fall outside the bitmap,
// which happens with even sizes, are dropped.
func (m *DepthFirstMaze) Render() *raster.Bitmap {
	toReturn := raster.NewBitmap(m.xSize, m.ySize)
	toReturn.Set(m.xStart, 0, true)
	for row := 0; row < m.yCells; row++ {
		rowStartIdx := row * m.xCells
		for col := 0; col < m.xCells; col++ {
			index := rowStartIdx + col
			c := &(m.cells[index])
			if !c.visited {
				continue
			}
			xPixel := col*2 + 1
			yPixel := row*2 + 1
			toReturn.Set(xPixel, yPixel, true)
			// Only look right and down; the rightmost column and bottom row
			// have nothing to connect to in those directions.
			if (col < m.xCells-1) && (c.connections[East] == index+1) &&
				(m.cells[index+1].connections[West] == index) {
				toReturn.Set(xPixel+1, yPixel, true)
			}
			if (row < m.yCells-1) &&
				(c.connections[South] == index+m.xCells) &&
				(m.cells[index+m.xCells].connections[North] == index) {
				toReturn.Set(xPixel, yPixel+1, true)
			}
		}
	}
	// The row just below the last row of cells, and the last row of the image.
	// These are the same row when there's only a single border row.
	toReturn.Set(m.xEnd, 2*m.yCells, true)
	toReturn.Set(m.xEnd, m.ySize-1, true)
	return toReturn
}

func (m *DepthFirstMaze) ColorModel() color.Model {
	return color.GrayModel
}

func (m *DepthFirstMaze) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.xSize, m.ySize)
}

func (m *DepthFirstMaze) At(x, y int) color.Color {
	return m.pixels.At(x, y)
}

// Renders the maze and writes it to path. The path's extension must be .bmp
// or .png.
func (m *DepthFirstMaze) SaveImage(path string) error {
	return m.Render().Save(path)
}

// Returns an ASCII sketch of the rendered maze, one line per pixel row.
func (m *DepthFirstMaze) String() string {
	return m.pixels.String()
}
