// Package network turns a two-color maze image back into a graph. Rather than
// one node per open pixel, nodes are only placed where a path through the
// maze could change: the entrance, the exit, corners, dead ends and
// junctions. Straight corridors between them become single links.
package network

import (
	"fmt"
	"strings"
	"time"

	"github.com/yalue/dfsmaze/raster"
)

// The graph extracted from a maze image. Create using Parse or FromBitmap.
type Network struct {
	width, height int
	// All nodes, in the order the scan created them. A NodeID is an index
	// into this slice.
	nodes []Node
	start NodeID
	end   NodeID
	// The time required to scan the image.
	parseTime float64
}

// Opens the BMP or PNG image at path and extracts its graph. If the image
// can't be read, the returned error wraps raster.ErrImageAccess.
func Parse(path string) (*Network, error) {
	pic, e := raster.Open(path)
	if e != nil {
		return nil, e
	}
	toReturn, e := FromBitmap(pic)
	if e != nil {
		return nil, fmt.Errorf("Error parsing %s: %w", path, e)
	}
	return toReturn, nil
}

// Returns false if a pixel whose four neighbors are open or not as given
// doesn't need a node: one with no open neighbors at all, or one in the
// middle of a straight corridor. Every other pixel is a dead end, corner or
// junction and needs a node.
func ShouldCreateNode(n, s, e, w bool) bool {
	// Isolated. Odd, but not an error.
	if !n && !s && !e && !w {
		return false
	}
	// North-south corridor.
	if n && s && !e && !w {
		return false
	}
	// East-west corridor.
	if !n && !s && e && w {
		return false
	}
	return true
}

// Builds the graph for the given bitmap in a single top-to-bottom,
// left-to-right pass, then calculates every node's distance to the exit.
//
// The first open pixel in the top row always becomes the start node, and the
// first open pixel in the bottom row always becomes the end node. Returns
// ErrNoEntrance or ErrNoExit if either row is entirely wall.
func FromBitmap(pic *raster.Bitmap) (*Network, error) {
	startTime := time.Now()
	width, height := pic.Dimensions()
	toReturn := &Network{
		width:  width,
		height: height,
		start:  NoNode,
		end:    NoNode,
	}

	// The last node in the current row with an open pixel to its east, which
	// is waiting for the next node to connect to.
	westNeighbor := NoNode
	// For each column, the last node with an open pixel below it, waiting for
	// a node further down the same column.
	northNeighbors := make([]NodeID, width)
	for i := range northNeighbors {
		northNeighbors[i] = NoNode
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !pic.Get(x, y) {
				continue
			}
			n := pic.Get(x, y-1)
			s := pic.Get(x, y+1)
			e := pic.Get(x+1, y)
			w := pic.Get(x-1, y)
			isStart := (y == 0) && (toReturn.start == NoNode)
			isEnd := (y == height-1) && (toReturn.end == NoNode)
			if !isStart && !isEnd && !ShouldCreateNode(n, s, e, w) {
				continue
			}
			id := toReturn.addNode(x, y)
			if isStart {
				toReturn.start = id
			}
			if isEnd {
				toReturn.end = id
			}

			if w && (westNeighbor != NoNode) {
				if err := toReturn.link(id, westNeighbor, West); err != nil {
					return nil, err
				}
				westNeighbor = NoNode
			}
			if n {
				// Clear the column's entry whether or not it was set; this
				// node takes over the column from here on.
				if northNeighbors[x] != NoNode {
					err := toReturn.link(id, northNeighbors[x], North)
					if err != nil {
						return nil, err
					}
				}
				northNeighbors[x] = NoNode
			}
			if e {
				westNeighbor = id
			}
			if s {
				northNeighbors[x] = id
			}
		}
		// A corridor running off the end of the row has nothing to connect
		// to.
		westNeighbor = NoNode
	}

	if toReturn.start == NoNode {
		return nil, ErrNoEntrance
	}
	if toReturn.end == NoNode {
		return nil, ErrNoExit
	}
	toReturn.CalculateDistances()
	toReturn.parseTime = time.Since(startTime).Seconds()
	return toReturn, nil
}

// Appends a new node at (x, y) and returns its ID.
func (g *Network) addNode(x, y int) NodeID {
	id := NodeID(len(g.nodes))
	node := NewNode(id)
	node.SetLocation(x, y)
	g.nodes = append(g.nodes, node)
	return id
}

// Connects node a to node b in direction d, and b back to a in the opposite
// direction.
func (g *Network) link(a, b NodeID, d Direction) error {
	back, e := d.Opposite()
	if e != nil {
		return e
	}
	e = g.nodes[a].SetNeighbor(b, d)
	if e != nil {
		return e
	}
	return g.nodes[b].SetNeighbor(a, back)
}

// Returns the width and height of the scanned image, in pixels.
func (g *Network) Dimensions() (int, int) {
	return g.width, g.height
}

// Returns the number of nodes.
func (g *Network) Len() int {
	return len(g.nodes)
}

// Returns the node with the given ID, or nil if there's no such node.
func (g *Network) Node(id NodeID) *Node {
	if (id < 0) || (int(id) >= len(g.nodes)) {
		return nil
	}
	return &(g.nodes[id])
}

// Returns the entrance node, in the top row.
func (g *Network) Start() *Node {
	return g.Node(g.start)
}

// Returns the exit node, in the bottom row.
func (g *Network) End() *Node {
	return g.Node(g.end)
}

// Returns a dump of every node, its neighbors and its distance, followed by
// the node count.
func (g *Network) String() string {
	var sb strings.Builder
	for i := range g.nodes {
		sb.WriteString(g.nodes[i].String())
		sb.WriteByte('\n')
	}
	sb.WriteString("---------------------\n")
	fmt.Fprintf(&sb, "Node count: %d\n", len(g.nodes))
	return sb.String()
}

func (g *Network) GetInfo() string {
	return fmt.Sprintf("%dx%d pixel maze network with %d nodes, start at "+
		"(%d, %d), end at (%d, %d), parsed in %.03f seconds", g.width,
		g.height, len(g.nodes), g.Start().X(), g.Start().Y(), g.End().X(),
		g.End().Y(), g.parseTime)
}
