// This defines a library for generating 2D "perfect" mazes: every cell is
// reachable and there are no loops. The generated mazes satisfy the Maze
// interface, which includes go's image.Image interface. Each maze renders to
// a two-color image where white pixels are open and black pixels are walls.
package maze

import (
	"fmt"
	"image"
)

// All mazes returned by this library will support this interface. It
// provides the Image interface so the mazes can be saved to files, even
// though SaveImage is usually more convenient.
type Maze interface {
	image.Image
	// Rebuilds the maze from a new random seed, keeping its dimensions.
	RegenerateFromSeed(seed uint64) error
	// Writes the rendered maze to the given path. The extension picks the
	// format; see raster.Save.
	SaveImage(path string) error
	// Returns a human-readable string about that maze, for providing debug
	// info such as the last set random seed.
	GetInfo() string
}

// Selects the algorithm used by New.
type Strategy uint8

const (
	// Randomized depth-first search with backtracking. Produces long,
	// winding corridors with relatively few branches.
	DepthFirst Strategy = iota
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depthFirst"
	}
	return fmt.Sprintf("Unknown Strategy: %d", uint8(s))
}

// Generates a maze that is xSize pixels wide and ySize pixels tall, using the
// given strategy. The same strategy, seed and size always produce the same
// maze.
func New(strategy Strategy, seed uint64, xSize, ySize int) (Maze, error) {
	switch strategy {
	case DepthFirst:
		toReturn, e := NewDepthFirstMaze(seed, xSize, ySize)
		if e != nil {
			return nil, e
		}
		return toReturn, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
}
