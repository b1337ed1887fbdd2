package huffman

import (
	"fmt"
	"strings"
)

// DecodeBits decodes a string of '0' and '1' characters back into text by
// walking the tree from the root, descending left on '0' and right on '1',
// emitting a character and restarting at the root on every leaf.
//
// DecodeBits fails if the bit string ends in the middle of a code, contains a
// character other than '0' or '1', or if the tree is a single leaf: a
// zero-bit code carries no length information, so a single-symbol alphabet
// cannot be decoded.
func (t *Tree) DecodeBits(bits string) (string, error) {
	if t.root.Leaf() {
		return "", fmt.Errorf("huffman: single-symbol tree has a zero-bit code and cannot be decoded")
	}
	var sb strings.Builder
	n := t.root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", fmt.Errorf("huffman: invalid bit %q at offset %d", bits[i], i)
		}
		if n.Leaf() {
			sb.WriteRune(n.Char)
			n = t.root
		}
	}
	if n != t.root {
		return "", fmt.Errorf("huffman: bit string ends inside a code")
	}
	return sb.String(), nil
}

// DecodeBytes unpacks data and decodes exactly bitLen bits of it.  bitLen is
// the pre-padding bit count of the original encoding (see EncodedBitLen);
// the packed bytes alone are ambiguous because trailing zero padding is not
// recorded in them.
func (t *Tree) DecodeBytes(data []byte, bitLen int) (string, error) {
	if bitLen < 0 || bitLen > len(data)*8 {
		return "", fmt.Errorf("huffman: bit length %d out of range for %d bytes", bitLen, len(data))
	}
	bits := UnpackBytesToBits(data)
	return t.DecodeBits(bits[:bitLen])
}
