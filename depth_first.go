package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yalue/dfsmaze/raster"
)

// One of the four directions a cell can connect in. Directions are also used
// to index a cell's connections, so the order matters.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Unknown Direction: %d", uint8(d))
}

// Returns the direction pointing back the way d came.
func (d Direction) opposite() (Direction, error) {
	switch d {
	case North:
		return South, nil
	case East:
		return West, nil
	case South:
		return North, nil
	case West:
		return East, nil
	}
	return d, fmt.Errorf("%w: %d", ErrUnexpectedDirection, uint8(d))
}

// Marks an absent connection or previous cell.
const noCell = -1

// A single cell of the depth-first maze's grid.
type cell struct {
	x, y    int
	visited bool
	// Indices into the maze's cells slice, indexed by Direction. noCell if
	// there's no passage in that direction.
	connections [4]int
	// The cell we arrived from during generation. Only used to backtrack.
	previous int
}

// Clears the connections and visited state of c, and sets its position.
func initCell(c *cell, x, y int) {
	c.x = x
	c.y = y
	c.visited = false
	c.previous = noCell
	for i := range c.connections {
		c.connections[i] = noCell
	}
}

// Satisfies the Maze interface. A grid of cells, two pixels apart, carved
// into a spanning tree by a randomized depth-first search. Create using
// NewDepthFirstMaze.
type DepthFirstMaze struct {
	// The requested image size, in pixels, including the border.
	xSize, ySize int
	// Width and height in cells.
	xCells, yCells int
	// Pixel columns of the entrance (top row) and exit (bottom row).
	xStart, xEnd int
	cells        []cell
	// The rendered maze, refreshed after every generation.
	pixels *raster.Bitmap
	// The seed used for the most recent generation.
	randomSeed uint64
	// The time required for the last generation.
	generationTime float64
}

// Walls are a single pixel wide, so cells sit on every other pixel, with a
// one-pixel border around the whole maze.
const borderWidth = 2

// Generates a maze that renders to exactly xSize by ySize pixels. Both sizes
// must be greater than 2; otherwise this returns ErrTooSmall without
// allocating anything.
func NewDepthFirstMaze(seed uint64, xSize, ySize int) (*DepthFirstMaze,
	error) {
	if (xSize <= borderWidth) || (ySize <= borderWidth) {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrTooSmall, xSize, ySize)
	}
	xCells := (xSize-borderWidth)/2 + 1
	yCells := (ySize-borderWidth)/2 + 1
	cellCount := xCells * yCells
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/xCells != yCells) {
		return nil, fmt.Errorf("The maze's size was too big")
	}
	toReturn := &DepthFirstMaze{
		xSize:  xSize,
		ySize:  ySize,
		xCells: xCells,
		yCells: yCells,
		cells:  make([]cell, cellCount),
	}
	e := toReturn.RegenerateFromSeed(seed)
	if e != nil {
		return nil, fmt.Errorf("Error generating maze: %w", e)
	}
	return toReturn, nil
}

func (m *DepthFirstMaze) RegenerateFromSeed(seed uint64) error {
	for i := range m.cells {
		initCell(&(m.cells[i]), i%m.xCells, i/m.xCells)
	}
	m.randomSeed = seed
	// The RNG must be created exactly once, before any draws, so that a seed
	// always reproduces the same maze.
	rng := rand.New(rand.NewSource(int64(seed)))
	startTime := time.Now()

	// Start and end columns are pixel columns, offset by the border.
	m.xStart = rng.Intn(m.xCells)*2 + 1
	m.xEnd = rng.Intn(m.xCells)*2 + 1

	current := 0
	m.cells[current].visited = true
	options := make([]Direction, 0, 4)
	for current != noCell {
		options = m.unvisitedNeighbors(current, options[:0])
		if len(options) == 0 {
			// Dead end, so back up one step. Backing up from the first cell
			// ends the walk.
			current = m.cells[current].previous
			continue
		}
		choice := options[rng.Intn(len(options))]
		next, e := m.neighborIndex(current, choice)
		if e != nil {
			return e
		}
		back, e := choice.opposite()
		if e != nil {
			return e
		}
		m.cells[current].connections[choice] = next
		m.cells[next].connections[back] = current
		m.cells[next].previous = current
		m.cells[next].visited = true
		current = next
	}

	m.generationTime = time.Since(startTime).Seconds()
	m.pixels = m.Render()
	return nil
}

// Appends the directions of current's unvisited neighbors to options, in
// north, east, south, west order, and returns the result.
func (m *DepthFirstMaze) unvisitedNeighbors(current int,
	options []Direction) []Direction {
	c := &(m.cells[current])
	if (c.y > 0) && !m.cells[current-m.xCells].visited {
		options = append(options, North)
	}
	if (c.x < m.xCells-1) && !m.cells[current+1].visited {
		options = append(options, East)
	}
	if (c.y < m.yCells-1) && !m.cells[current+m.xCells].visited {
		options = append(options, South)
	}
	if (c.x > 0) && !m.cells[current-1].visited {
		options = append(options, West)
	}
	return options
}

// Returns the index of the cell next to the given one in the direction d.
// Doesn't check whether the neighbor is inside the grid.
func (m *DepthFirstMaze) neighborIndex(index int, d Direction) (int, error) {
	switch d {
	case North:
		return index - m.xCells, nil
	case East:
		return index + 1, nil
	case South:
		return index + m.xCells, nil
	case West:
		return index - 1, nil
	}
	return noCell, fmt.Errorf("%w: %d", ErrUnexpectedDirection, uint8(d))
}

// Returns the width and height of the maze, in cells.
func (m *DepthFirstMaze) CellDimensions() (int, int) {
	return m.xCells, m.yCells
}

// Returns true if the cell at column x, row y has a passage in direction d.
// Returns false for cells outside the grid.
func (m *DepthFirstMaze) Connected(x, y int, d Direction) bool {
	if (x < 0) || (y < 0) || (x >= m.xCells) || (y >= m.yCells) {
		return false
	}
	if d > West {
		return false
	}
	return m.cells[y*m.xCells+x].connections[d] != noCell
}

// Returns the number of passages between cells. Each passage is counted once,
// even though both of its cells record it.
func (m *DepthFirstMaze) ConnectionCount() int {
	toReturn := 0
	for i := range m.cells {
		if m.cells[i].connections[East] != noCell {
			toReturn++
		}
		if m.cells[i].connections[South] != noCell {
			toReturn++
		}
	}
	return toReturn
}

// Returns the pixel column of the entrance, in the top row.
func (m *DepthFirstMaze) StartColumn() int {
	return m.xStart
}

// Returns the pixel column of the exit, in the bottom row.
func (m *DepthFirstMaze) EndColumn() int {
	return m.xEnd
}

// Returns the seed used for the most recent generation.
func (m *DepthFirstMaze) Seed() uint64 {
	return m.randomSeed
}

func (m *DepthFirstMaze) GetInfo() string {
	return fmt.Sprintf("%dx%d pixel depth-first maze (%dx%d cells) with "+
		"random seed %d, generated in %.03f seconds", m.xSize, m.ySize,
		m.xCells, m.yCells, m.randomSeed, m.generationTime)
}
