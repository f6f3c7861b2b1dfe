package tree

import "strings"

// String returns a drawing of the tree rooted at n.
// The tree A(B(D, -), C) looks like this:
//
//	A
//	├─L─B
//	│   └─L─D
//	└─R─C
//
// The empty tree is drawn as the empty string.
func (n *Node) String() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, n, "", "", true, false)
	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit(sb *strings.Builder, n *Node, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(n.Label)
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
