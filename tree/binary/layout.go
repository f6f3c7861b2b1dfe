package binary

import (
	"go.lepak.sg/algotrainer/tree"
	"go.lepak.sg/algotrainer/tree/iterator"
)

const (
	DefaultNodeSize    = 40.0
	DefaultLevelHeight = 80.0

	// Spacing is the horizontal distance between neighbouring
	// in-order positions, in multiples of the node size.
	Spacing = 1.5
)

// Point is the position of a node's centre in drawing units.
type Point struct {
	X, Y float64
}

// Layout assigns every node of the tree rooted at root a position.
// X is the node's index in the in-order sequence times
// nodeSize*Spacing, so reading nodes left to right gives the in-order
// traversal. Y is the node's depth times levelHeight.
//
// The map is keyed by node identity and holds exactly one entry per
// node. It is built fresh on every call; nothing is cached on the nodes.
// The empty tree gives an empty map.
func Layout(root *tree.Node, nodeSize, levelHeight float64) map[*tree.Node]Point {
	positions := make(map[*tree.Node]Point)

	// x needs the whole in-order sequence, y only each node's depth
	assignX(positions, root, nodeSize*Spacing)
	assignY(positions, root, 0, levelHeight)

	return positions
}

func assignX(positions map[*tree.Node]Point, root *tree.Node, step float64) {
	i := iterator.NewInOrder(root, 0)
	for x := 0; i.Next(); x++ {
		positions[i.Item()] = Point{X: float64(x) * step}
	}
}

func assignY(positions map[*tree.Node]Point, n *tree.Node, depth int, levelHeight float64) {
	if n == nil {
		return
	}

	p, ok := positions[n]
	if !ok {
		panic("node missed by the in-order pass")
	}
	p.Y = float64(depth) * levelHeight
	positions[n] = p

	assignY(positions, n.Left, depth+1, levelHeight)
	assignY(positions, n.Right, depth+1, levelHeight)
}

// Box is the size of a tree in abstract units: Width in node columns
// and Height in levels.
type Box struct {
	Width, Height int
}

// BoundingBox walks the tree once, moving one column left for every
// left child and one column right for every right child, and reports
// the span of columns touched and the number of levels.
// The empty tree has a zero Box.
//
// Unlike Layout, subtrees may overlap in this model; it is meant for
// sizing a drawing surface, not for placing nodes.
func BoundingBox(root *tree.Node) Box {
	if root == nil {
		return Box{}
	}

	var minX, maxX, maxY int
	var visit func(n *tree.Node, x, y int)
	visit = func(n *tree.Node, x, y int) {
		if n == nil {
			return
		}

		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}

		visit(n.Left, x-1, y+1)
		visit(n.Right, x+1, y+1)
	}
	visit(root, 0, 0)

	return Box{
		Width:  maxX - minX + 1,
		Height: maxY + 1,
	}
}

// Extent returns the smallest and largest coordinates in positions.
// Renderers use it to centre a drawing. The empty map gives two zero
// Points.
func Extent(positions map[*tree.Node]Point) (min, max Point) {
	first := true
	for _, p := range positions {
		if first {
			min, max = p, p
			first = false
			continue
		}

		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}
