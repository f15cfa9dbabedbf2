package network

// Sets every node's distance to its squared straight-line distance from the
// end node. This is only a heuristic for ordering nodes; it ignores walls and
// never follows links. Does nothing if there's no end node.
func (g *Network) CalculateDistances() {
	end := g.End()
	if end == nil {
		return
	}
	for i := range g.nodes {
		node := &(g.nodes[i])
		xDiff := absDiff(node.x, end.x)
		yDiff := absDiff(node.y, end.y)
		// No square root, to keep this in integers.
		node.SetDistance(xDiff*xDiff + yDiff*yDiff)
	}
}

func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}
