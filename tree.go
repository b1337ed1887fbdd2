package huffman

import (
	"container/heap"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Tree is a built Huffman code tree.  Construction is a one-shot operation;
// once New returns, the tree is read-only and safe for concurrent use.
type Tree struct {
	root *Node
}

// New builds a Huffman tree from the given character frequencies.  The
// frequencies may be raw counts or scaled probabilities; only their relative
// order matters.  New fails with EmptyInputError if the map has no entries.
//
// A single-symbol alphabet yields a tree that is one leaf carrying the empty
// code, so text over that alphabet encodes to zero bits.
//
// Ties in weight during merging resolve deterministically: leaves are created
// in ascending character order before any merge, and of two equal-weight
// nodes the earlier-created one is taken first and becomes the left child.
func New(frequencies map[rune]uint64) (*Tree, error) {
	if len(frequencies) == 0 {
		return nil, EmptyInputError{}
	}

	chars := make([]rune, 0, len(frequencies))
	for ch := range frequencies {
		chars = append(chars, ch)
	}
	sort.Sort(byChar(chars))

	var seq uint32
	var total uint64
	h := weightHeap{make([]*Node, 0, len(chars))}
	for _, ch := range chars {
		weight := frequencies[ch]
		h.list = append(h.list, &Node{Char: ch, Weight: weight, seq: seq})
		seq++
		total = addSaturating(total, weight)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		merged := &Node{
			Weight: addSaturating(a.Weight, b.Weight),
			Left:   a,
			Right:  b,
			seq:    seq,
		}
		seq++
		heap.Push(&h, merged)
	}

	root := heap.Pop(&h).(*Node)
	assert.Assertf(h.Len() == 0, "heap not drained: %d nodes left", h.Len())
	assert.Assertf(root.Weight == total, "root weight %d != total weight %d", root.Weight, total)

	assignCodes(root)
	return &Tree{root: root}, nil
}

// Root returns the root node of the tree.  The returned tree must not be
// mutated.
func (t *Tree) Root() *Node {
	return t.root
}

// CodeTable derives the character-to-code mapping by traversing the tree.
// The mapping is recomputed on every call and contains exactly one entry for
// each character of the original frequency map.  The codes are prefix-free:
// only leaves carry characters, so no code is a prefix of another.
func (t *Tree) CodeTable() map[rune]string {
	assert.Assertf(t.root != nil, "tree has no root")
	ls := leaves(t.root)
	table := make(map[rune]string, len(ls))
	for _, leaf := range ls {
		table[leaf.Char] = leaf.Code
	}
	return table
}

// addSaturating adds two weights, saturating at the maximum instead of
// wrapping so that adversarial counts cannot break the heap order.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}

// type weightHeap {{{

type weightHeap struct {
	list []*Node
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}

// type byChar {{{

type byChar []rune

func (list byChar) Len() int {
	return len(list)
}

func (list byChar) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byChar) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byChar(nil)

// }}}
