package trainer

import (
	"fmt"
	"strings"

	"go.lepak.sg/algotrainer/tree"
	"go.lepak.sg/algotrainer/tree/binary"
)

// Order is one of the three depth-first traversal orders.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// Orders lists every Order in the order exercises ask for them.
var Orders = []Order{PreOrder, InOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return "<invalid trainer.Order>"
	}
}

// Title is the name shown to people, e.g. "Pre-order".
func (o Order) Title() string {
	switch o {
	case PreOrder:
		return "Pre-order"
	case InOrder:
		return "In-order"
	case PostOrder:
		return "Post-order"
	default:
		return o.String()
	}
}

// Traverse returns the labels of root in this order.
func (o Order) Traverse(root *tree.Node) []string {
	switch o {
	case PreOrder:
		return binary.PreOrder(root)
	case InOrder:
		return binary.InOrder(root)
	case PostOrder:
		return binary.PostOrder(root)
	default:
		panic("unhandled case in Traverse")
	}
}

// ParseOrder accepts the String form, with or without a dash
// ("pre-order"), case-insensitively, and the short forms pre, in, post.
func ParseOrder(s string) (Order, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "preorder", "pre":
		return PreOrder, nil
	case "inorder", "in":
		return InOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}
