// Package huffman builds a prefix-free binary code for an alphabet of runes
// from their frequencies, and uses the resulting tree to encode text into a
// string of '0' and '1' characters and to decode it back.
//
// The pipeline is CountFrequencies -> BuildTree -> GenerateCodes -> Encode,
// with Decode walking the Tree directly.  Trees are immutable once built and
// may be shared between goroutines.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
