// Package huffman builds optimal prefix-free binary codes from character
// frequency distributions, encodes text into packed bit streams under those
// codes, and exposes the code table needed to reverse the transform.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
