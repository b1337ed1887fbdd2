package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// EncodeToBits encodes text into a string of '0' and '1' characters by
// concatenating the code of each character in order.  It fails with
// UnknownSymbolError if the text contains a character that was absent from
// the frequency map the tree was built from.
func (t *Tree) EncodeToBits(text string) (string, error) {
	table := t.CodeTable()
	var sb strings.Builder
	for _, ch := range text {
		code, found := table[ch]
		if !found {
			return "", UnknownSymbolError{Char: ch}
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// EncodeToBytes encodes text and packs the resulting bit string into bytes,
// most significant bit first, padding the final byte with zero bits on the
// right.  The padding length is not recorded anywhere in the output; callers
// that intend to decode must retain the exact bit length separately (see
// EncodedBitLen and DecodeBytes).
func (t *Tree) EncodeToBytes(text string) ([]byte, error) {
	bits, err := t.EncodeToBits(text)
	if err != nil {
		return nil, err
	}
	return PackBits(bits)
}

// EncodedBitLen returns the exact number of bits EncodeToBits would produce
// for text, without building the bit string.  The count excludes padding and
// is the out-of-band length DecodeBytes needs.
func (t *Tree) EncodedBitLen(text string) (int, error) {
	table := t.CodeTable()
	var n int
	for _, ch := range text {
		code, found := table[ch]
		if !found {
			return 0, UnknownSymbolError{Char: ch}
		}
		n += len(code)
	}
	return n, nil
}

// PackBits packs a string of '0' and '1' characters into bytes, most
// significant bit first.  The last byte is padded with (8 - len mod 8) mod 8
// zero bits on the right; an empty bit string packs to zero bytes.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		var err error
		switch bits[i] {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, fmt.Errorf("huffman: invalid bit %q at offset %d", bits[i], i)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBytesToBits expands packed bytes back into a string of '0' and '1'
// characters, 8 bits per byte, most significant bit first.  Padding bits are
// indistinguishable from data; the caller truncates to the real bit length.
func UnpackBytesToBits(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	r := bitio.NewReader(bytes.NewReader(data))
	for {
		b, err := r.ReadBool()
		if err != nil {
			break
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
