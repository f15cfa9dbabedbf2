package network

import (
	"fmt"
	"strings"
)

// One of the four directions a node can have a neighbor in.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Unknown Direction: %d", uint8(d))
}

// Returns the direction pointing back the way d came.
func (d Direction) Opposite() (Direction, error) {
	switch d {
	case North:
		return South, nil
	case South:
		return North, nil
	case East:
		return West, nil
	case West:
		return East, nil
	}
	return d, fmt.Errorf("%w: %d", ErrUnexpectedDirection, uint8(d))
}

// Identifies a node within its Network.
type NodeID int

// Marks a missing neighbor.
const NoNode NodeID = -1

// A node's distance before CalculateDistances has been run.
const MaxDistance uint64 = 0xffffffff

// A decision point in the maze: an entrance, exit, corner, dead end or
// junction.
type Node struct {
	id        NodeID
	x, y      int
	neighbors [4]NodeID
	distance  uint64
}

// Returns a node with no location, no neighbors and the maximum distance.
func NewNode(id NodeID) Node {
	return Node{
		id:        id,
		neighbors: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
		distance:  MaxDistance,
	}
}

func (n *Node) ID() NodeID {
	return n.id
}

func (n *Node) X() int {
	return n.x
}

func (n *Node) Y() int {
	return n.y
}

func (n *Node) SetLocation(x, y int) {
	n.x = x
	n.y = y
}

// Returns the neighbor in direction d, or NoNode if there isn't one.
func (n *Node) Neighbor(d Direction) (NodeID, error) {
	if d > West {
		return NoNode, fmt.Errorf("%w: %d", ErrUnexpectedDirection, uint8(d))
	}
	return n.neighbors[d], nil
}

// Sets the neighbor in direction d. Only this node is changed; see
// Network.link for connecting both sides.
func (n *Node) SetNeighbor(id NodeID, d Direction) error {
	if d > West {
		return fmt.Errorf("%w: %d", ErrUnexpectedDirection, uint8(d))
	}
	n.neighbors[d] = id
	return nil
}

// Returns the squared distance to the exit, or MaxDistance if it hasn't been
// calculated.
func (n *Node) Distance() uint64 {
	return n.distance
}

func (n *Node) SetDistance(distance uint64) {
	n.distance = distance
}

func (n *Node) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Node %d\n", n.id)
	fmt.Fprintf(&sb, "x:%d y:%d\n", n.x, n.y)
	for d := North; d <= West; d++ {
		if n.neighbors[d] != NoNode {
			fmt.Fprintf(&sb, "%s: %d\n", d, n.neighbors[d])
		}
	}
	fmt.Fprintf(&sb, "distance: %d\n", n.distance)
	return sb.String()
}
