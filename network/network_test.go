package network

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalue/dfsmaze/raster"
)

// Builds a bitmap from rows of text, where '#' is an open pixel.
func bitmapFromRows(rows ...string) *raster.Bitmap {
	toReturn := raster.NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			toReturn.Set(x, y, c == '#')
		}
	}
	return toReturn
}

// Returns the node at (x, y), failing the test if there isn't one.
func nodeAt(t *testing.T, g *Network, x, y int) *Node {
	t.Helper()
	for i := 0; i < g.Len(); i++ {
		n := g.Node(NodeID(i))
		if (n.X() == x) && (n.Y() == y) {
			return n
		}
	}
	t.Fatalf("no node at (%d, %d)", x, y)
	return nil
}

// Returns n's neighbor in direction d, failing the test on error.
func neighbor(t *testing.T, n *Node, d Direction) NodeID {
	t.Helper()
	id, e := n.Neighbor(d)
	require.NoError(t, e)
	return id
}

func TestShouldCreateNodeTruthTable(t *testing.T) {
	// Bits are north, south, east, west from most to least significant.
	cases := []struct {
		bits uint8
		want bool
	}{
		{0b0000, false},
		{0b0001, true},
		{0b0010, true},
		{0b0011, false},
		{0b0100, true},
		{0b0101, true},
		{0b0110, true},
		{0b0111, true},
		{0b1000, true},
		{0b1001, true},
		{0b1010, true},
		{0b1011, true},
		{0b1100, false},
		{0b1101, true},
		{0b1110, true},
		{0b1111, true},
	}
	for _, tc := range cases {
		n := (tc.bits & 0b1000) != 0
		s := (tc.bits & 0b0100) != 0
		e := (tc.bits & 0b0010) != 0
		w := (tc.bits & 0b0001) != 0
		assert.Equal(t, tc.want, ShouldCreateNode(n, s, e, w),
			"n%v s%v e%v w%v", n, s, e, w)
	}
}

func TestNodeGettersAndSetters(t *testing.T) {
	node1 := NewNode(0)
	node2 := NewNode(1)

	assert.Equal(t, MaxDistance, node1.Distance())
	for d := North; d <= West; d++ {
		assert.Equal(t, NoNode, neighbor(t, &node1, d))
	}

	node1.SetLocation(123, 456)
	node1.SetDistance(54321)
	require.NoError(t, node1.SetNeighbor(node2.ID(), North))

	assert.Equal(t, 123, node1.X())
	assert.Equal(t, 456, node1.Y())
	assert.Equal(t, uint64(54321), node1.Distance())
	assert.Equal(t, node2.ID(), neighbor(t, &node1, North))
	assert.Equal(t, NoNode, neighbor(t, &node1, South))
}

func TestUnexpectedDirection(t *testing.T) {
	node := NewNode(0)
	_, e := node.Neighbor(Direction(4))
	assert.ErrorIs(t, e, ErrUnexpectedDirection)
	assert.ErrorIs(t, node.SetNeighbor(3, Direction(17)),
		ErrUnexpectedDirection)
	_, e = Direction(4).Opposite()
	assert.ErrorIs(t, e, ErrUnexpectedDirection)

	g := &Network{start: NoNode, end: NoNode}
	a := g.addNode(0, 0)
	b := g.addNode(1, 0)
	assert.ErrorIs(t, g.link(a, b, Direction(9)), ErrUnexpectedDirection)
	assert.Equal(t, NoNode, neighbor(t, g.Node(b), West))
}

func TestDirections(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South, South: North, East: West, West: East,
	}
	for d, want := range pairs {
		got, e := d.Opposite()
		require.NoError(t, e)
		assert.Equal(t, want, got, "%s", d)
	}
	assert.Equal(t, "east", East.String())
	assert.Contains(t, Direction(8).String(), "Unknown")
}

func TestFromBitmap(t *testing.T) {
	g, e := FromBitmap(bitmapFromRows(
		".#.....",
		".#####.",
		".#...#.",
		".#.###.",
		".....#.",
	))
	require.NoError(t, e)
	require.Equal(t, 7, g.Len())
	w, h := g.Dimensions()
	assert.Equal(t, 7, w)
	assert.Equal(t, 5, h)

	start := g.Start()
	end := g.End()
	assert.Equal(t, 1, start.X())
	assert.Equal(t, 0, start.Y())
	assert.Equal(t, 5, end.X())
	assert.Equal(t, 4, end.Y())

	topLeft := nodeAt(t, g, 1, 1)
	topRight := nodeAt(t, g, 5, 1)
	deadEnd := nodeAt(t, g, 1, 3)
	stub := nodeAt(t, g, 3, 3)
	junction := nodeAt(t, g, 5, 3)

	assert.Equal(t, topLeft.ID(), neighbor(t, start, South))
	assert.Equal(t, start.ID(), neighbor(t, topLeft, North))
	assert.Equal(t, topRight.ID(), neighbor(t, topLeft, East))
	assert.Equal(t, topLeft.ID(), neighbor(t, topRight, West))
	assert.Equal(t, deadEnd.ID(), neighbor(t, topLeft, South))
	assert.Equal(t, topLeft.ID(), neighbor(t, deadEnd, North))
	assert.Equal(t, junction.ID(), neighbor(t, topRight, South))
	assert.Equal(t, topRight.ID(), neighbor(t, junction, North))
	assert.Equal(t, junction.ID(), neighbor(t, stub, East))
	assert.Equal(t, stub.ID(), neighbor(t, junction, West))
	assert.Equal(t, end.ID(), neighbor(t, junction, South))
	assert.Equal(t, junction.ID(), neighbor(t, end, North))
	assert.Equal(t, NoNode, neighbor(t, end, South))
	assert.Equal(t, NoNode, neighbor(t, start, North))

	// Squared distances to the exit at (5, 4).
	assert.Equal(t, uint64(0), end.Distance())
	assert.Equal(t, uint64(1), junction.Distance())
	assert.Equal(t, uint64(5), stub.Distance())
	assert.Equal(t, uint64(9), topRight.Distance())
	assert.Equal(t, uint64(17), deadEnd.Distance())
	assert.Equal(t, uint64(25), topLeft.Distance())
	assert.Equal(t, uint64(32), start.Distance())
}

func TestIsolatedPixelAndCorridors(t *testing.T) {
	g, e := FromBitmap(bitmapFromRows(
		"#....",
		"#....",
		"#..#.",
		"#....",
		"#....",
	))
	require.NoError(t, e)
	// The column is one long corridor, and the isolated pixel is skipped.
	require.Equal(t, 2, g.Len())
	assert.Equal(t, g.End().ID(), neighbor(t, g.Start(), South))
	assert.Equal(t, g.Start().ID(), neighbor(t, g.End(), North))
	assert.Equal(t, uint64(16), g.Start().Distance())
}

func TestCorridorAtRightEdge(t *testing.T) {
	// The corridor in the middle row runs into the image's right edge, which
	// counts as a wall, so it ends in a dead-end node.
	g, e := FromBitmap(bitmapFromRows(
		"#...",
		"####",
		"#...",
	))
	require.NoError(t, e)
	require.Equal(t, 4, g.Len())
	junction := nodeAt(t, g, 0, 1)
	deadEnd := nodeAt(t, g, 3, 1)
	assert.Equal(t, deadEnd.ID(), neighbor(t, junction, East))
	assert.Equal(t, junction.ID(), neighbor(t, deadEnd, West))
	assert.Equal(t, NoNode, neighbor(t, deadEnd, East))
	assert.Equal(t, junction.ID(), neighbor(t, g.End(), North))
}

func TestLinksStayInRowOrColumn(t *testing.T) {
	g, e := FromBitmap(bitmapFromRows(
		"##.",
		"#..",
		"#..",
	))
	require.NoError(t, e)
	start := g.Start()
	for d := North; d <= West; d++ {
		id := neighbor(t, start, d)
		if id == NoNode {
			continue
		}
		other := g.Node(id)
		assert.True(t, (other.X() == start.X()) || (other.Y() == start.Y()))
	}
	assert.Equal(t, g.End().ID(), neighbor(t, start, South))
}

func TestTwoRowImage(t *testing.T) {
	g, e := FromBitmap(bitmapFromRows(
		".#.",
		".#.",
	))
	require.NoError(t, e)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, g.End().ID(), neighbor(t, g.Start(), South))
	assert.Equal(t, uint64(1), g.Start().Distance())
	assert.Equal(t, uint64(0), g.End().Distance())

	expected := "Node 0\nx:1 y:0\nsouth: 1\ndistance: 1\n\n" +
		"Node 1\nx:1 y:1\nnorth: 0\ndistance: 0\n\n" +
		"---------------------\nNode count: 2\n"
	assert.Equal(t, expected, g.String())
	assert.Contains(t, g.GetInfo(), "3x2 pixel maze network with 2 nodes")
}

func TestOneRowImage(t *testing.T) {
	// With a single row, the first open pixel is both the entrance and the
	// exit.
	g, e := FromBitmap(bitmapFromRows("..##."))
	require.NoError(t, e)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, g.Start().ID(), g.End().ID())
	other := nodeAt(t, g, 3, 0)
	assert.Equal(t, other.ID(), neighbor(t, g.Start(), East))
	assert.Equal(t, uint64(1), other.Distance())
}

func TestMissingEntranceOrExit(t *testing.T) {
	_, e := FromBitmap(bitmapFromRows(
		"...",
		".#.",
		".#.",
	))
	assert.ErrorIs(t, e, ErrNoEntrance)

	_, e = FromBitmap(bitmapFromRows(
		".#.",
		".#.",
		"...",
	))
	assert.ErrorIs(t, e, ErrNoExit)

	_, e = FromBitmap(raster.NewBitmap(0, 0))
	assert.ErrorIs(t, e, ErrNoEntrance)
}

func TestDistanceSentinel(t *testing.T) {
	g := &Network{start: NoNode, end: NoNode}
	id := g.addNode(3, 4)
	assert.Equal(t, MaxDistance, g.Node(id).Distance())
	// Without an end node there's nothing to measure from.
	g.CalculateDistances()
	assert.Equal(t, MaxDistance, g.Node(id).Distance())

	g.end = g.addNode(3, 5)
	g.CalculateDistances()
	assert.Equal(t, uint64(1), g.Node(id).Distance())
	assert.Equal(t, uint64(0), g.End().Distance())
	assert.Nil(t, g.Node(NoNode))
	assert.Nil(t, g.Node(7))
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.bmp")
	require.NoError(t, bitmapFromRows(
		".#...",
		".###.",
		"...#.",
	).Save(path))
	g, e := Parse(path)
	require.NoError(t, e)
	assert.Equal(t, 1, g.Start().X())
	assert.Equal(t, 3, g.End().X())
	assert.Equal(t, 2, g.End().Y())

	_, e = Parse(filepath.Join(dir, "missing.bmp"))
	assert.ErrorIs(t, e, raster.ErrImageAccess)

	noExit := filepath.Join(dir, "no_exit.png")
	require.NoError(t, bitmapFromRows(".#.", "...").Save(noExit))
	g, e = Parse(noExit)
	assert.ErrorIs(t, e, ErrNoExit)
	assert.Nil(t, g)
}
