package huffman

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func abcdFrequencies() map[rune]uint64 {
	return map[rune]uint64{'a': 5, 'b': 2, 'c': 1, 'd': 1}
}

func makeTestTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := New(abcdFrequencies())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tree
}

func TestNew_EmptyInput(t *testing.T) {
	for _, freq := range []map[rune]uint64{nil, {}} {
		_, err := New(freq)
		var emptyErr EmptyInputError
		if !errors.As(err, &emptyErr) {
			t.Errorf("expected EmptyInputError, got %v", err)
		}
	}
}

func TestNew_SingleSymbol(t *testing.T) {
	tree, err := New(map[rune]uint64{'x': 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	root := tree.Root()
	if !root.Leaf() {
		t.Fatal("expected a single-leaf tree")
	}
	if root.Char != 'x' {
		t.Errorf("expected leaf char 'x', got %q", root.Char)
	}
	if root.Code != "" {
		t.Errorf("expected empty code, got %q", root.Code)
	}

	expectTable := map[rune]string{'x': ""}
	actualTable := tree.CodeTable()
	if !reflect.DeepEqual(expectTable, actualTable) {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expectTable, actualTable)
	}

	bits, err := tree.EncodeToBits("xxx")
	if err != nil {
		t.Fatalf("EncodeToBits: %v", err)
	}
	if bits != "" {
		t.Errorf("expected empty bit string, got %q", bits)
	}

	data, err := tree.EncodeToBytes("xxx")
	if err != nil {
		t.Fatalf("EncodeToBytes: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected zero bytes, got %#v", data)
	}
}

func TestNew_CodeTable(t *testing.T) {
	tree := makeTestTree(t)

	expect := map[rune]string{
		'a': "1",
		'b': "00",
		'c': "010",
		'd': "011",
	}
	actual := tree.CodeTable()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestNew_SixSymbols(t *testing.T) {
	tree, err := New(map[rune]uint64{
		'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	expect := map[rune]string{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	actual := tree.CodeTable()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestWeightConservation(t *testing.T) {
	tree, err := New(map[rune]uint64{
		'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	stack := []*Node{tree.Root()}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Leaf() {
			continue
		}
		if sum := n.Left.Weight + n.Right.Weight; n.Weight != sum {
			t.Errorf("internal node weight %d != children sum %d", n.Weight, sum)
		}
		stack = append(stack, n.Left, n.Right)
	}
}

func TestLeafAndInternalCounts(t *testing.T) {
	tree := makeTestTree(t)

	var numLeaves, numInternal int
	stack := []*Node{tree.Root()}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Leaf() {
			numLeaves++
			continue
		}
		if n.Left == nil || n.Right == nil {
			t.Fatal("internal node with exactly one child")
		}
		numInternal++
		stack = append(stack, n.Left, n.Right)
	}
	if numLeaves != 4 {
		t.Errorf("expected 4 leaves, got %d", numLeaves)
	}
	if numInternal != 3 {
		t.Errorf("expected 3 internal nodes, got %d", numInternal)
	}
}

func TestPrefixFree(t *testing.T) {
	tree, err := New(map[rune]uint64{
		'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	table := tree.CodeTable()
	for x, xCode := range table {
		for y, yCode := range table {
			if x == y {
				continue
			}
			if strings.HasPrefix(yCode, xCode) {
				t.Errorf("code %q of %q is a prefix of code %q of %q", xCode, x, yCode, y)
			}
		}
	}
}

func TestCodeTableIdempotent(t *testing.T) {
	tree := makeTestTree(t)

	first := tree.CodeTable()
	second := tree.CodeTable()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("derivation not idempotent:\n\tfirst:  %#v\n\tsecond: %#v", first, second)
	}
}

func TestDeterministicRebuild(t *testing.T) {
	first, err := New(abcdFrequencies())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	second, err := New(abcdFrequencies())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !reflect.DeepEqual(first.CodeTable(), second.CodeTable()) {
		t.Error("two builds of the same frequencies disagree")
	}
}
