package huffman

import (
	"fmt"
)

// EmptyInputError is returned by New when the frequency map has no entries.
// There is no valid tree for zero symbols.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "huffman: empty frequency map"
}

// UnknownSymbolError is returned when text submitted for encoding contains a
// character that is absent from the alphabet the tree was built from.  The
// tree remains usable for other inputs.
type UnknownSymbolError struct {
	Char rune
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %q is not in the tree's alphabet", e.Char)
}
