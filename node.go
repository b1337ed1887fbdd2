package huffman

// Node is one node of a Huffman tree.  A node either has two children or
// none; no node has exactly one.  Char is meaningful only on leaves.
type Node struct {
	// Char is the character this leaf represents.
	Char rune

	// Weight is the frequency of Char for a leaf, or the sum of the
	// children's weights for an internal node.
	Weight uint64

	// Code is the bit path from the root to this node, '0' for each left
	// descent and '1' for each right.  Empty until assigned after
	// construction; the root keeps the empty code.
	Code string

	Left  *Node
	Right *Node

	// seq is the node's creation order.  Weight ties during merging
	// resolve by lower seq, which keeps the built tree deterministic.
	seq uint32
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// assignCodes walks the tree with an explicit stack, assigning each node the
// bit path from the root.  A skewed frequency distribution produces a tree of
// depth up to n-1, so recursion is avoided on purpose.
func assignCodes(root *Node) {
	type stackItem struct {
		n    *Node
		code string
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top.n.Code = top.code
		if top.n.Leaf() {
			continue
		}
		// Push the right child first so the left is visited first.
		stack = append(stack, stackItem{top.n.Right, top.code + "1"})
		stack = append(stack, stackItem{top.n.Left, top.code + "0"})
	}
}

// leaves collects the tree's leaf nodes in pre-order, left to right.
func leaves(root *Node) []*Node {
	out := make([]*Node, 0, 32)
	stack := make([]*Node, 0, 32)
	stack = append(stack, root)
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Leaf() {
			out = append(out, n)
			continue
		}
		stack = append(stack, n.Right)
		stack = append(stack, n.Left)
	}
	return out
}
