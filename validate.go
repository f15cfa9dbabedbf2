package maze

import "fmt"

// Implements the disjoint set data structure from CLRS, over the integers
// 0 through n-1.
type disjointSets struct {
	parent []int
	rank   []int
}

// Returns n disjoint sets, each containing only its own index.
func newDisjointSets(n int) *disjointSets {
	toReturn := &disjointSets{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range toReturn.parent {
		toReturn.parent[i] = i
	}
	return toReturn
}

// Finds the unique "root" of the set containing i. May adjust parent indices.
func (s *disjointSets) findSet(i int) int {
	if s.parent[i] != i {
		s.parent[i] = s.findSet(s.parent[i])
	}
	return s.parent[i]
}

// Joins the sets containing a and b. Returns false if they were already the
// same set.
func (s *disjointSets) union(a, b int) bool {
	x := s.findSet(a)
	y := s.findSet(b)
	if x == y {
		return false
	}
	if s.rank[x] > s.rank[y] {
		s.parent[y] = x
		return true
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
	return true
}

// Returns true if cells a and b share an edge in the grid. Both indices must
// be valid.
func (m *DepthFirstMaze) adjacent(a, b int) bool {
	dx := m.cells[a].x - m.cells[b].x
	dy := m.cells[a].y - m.cells[b].y
	return (dx*dx + dy*dy) == 1
}

// Checks that the maze is a spanning tree over its cells: every connection is
// mirrored by the neighbor it points to, no set of passages forms a loop, and
// every cell can reach every other. Returns nil if the maze is perfect.
func (m *DepthFirstMaze) Validate() error {
	sets := newDisjointSets(len(m.cells))
	components := len(m.cells)
	for index := range m.cells {
		c := &(m.cells[index])
		for d := North; d <= West; d++ {
			other := c.connections[d]
			if other == noCell {
				continue
			}
			expected, e := m.neighborIndex(index, d)
			if e != nil {
				return e
			}
			back, e := d.opposite()
			if e != nil {
				return e
			}
			if (other != expected) || (other < 0) ||
				(other >= len(m.cells)) || !m.adjacent(index, other) ||
				(m.cells[other].connections[back] != index) {
				return fmt.Errorf("%w: cell (%d, %d) going %s",
					ErrAsymmetricPassage, c.x, c.y, d)
			}
			// Each passage is seen from both ends, so only join on one side.
			if (d != East) && (d != South) {
				continue
			}
			if !sets.union(index, other) {
				return fmt.Errorf("%w: at cell (%d, %d) going %s", ErrCycle,
					c.x, c.y, d)
			}
			components--
		}
	}
	if components != 1 {
		return fmt.Errorf("%w: %d separate regions", ErrDisconnected,
			components)
	}
	return nil
}
