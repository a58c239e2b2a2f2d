package huffman

import (
	"strings"
)

// Encode concatenates the codes of symbols in input order.  A symbol with no
// entry in codes fails with ErrLookup; Pos is its index in symbols.
func Encode(symbols []rune, codes CodeTable) (string, error) {
	var sb strings.Builder
	for i, sym := range symbols {
		code, found := codes[sym]
		if !found {
			return "", &Error{Op: "encode", Pos: i, Symbol: sym, HasSymbol: true, Err: ErrLookup}
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// EncodeString is Encode over the runes of text.  Pos in a returned *Error
// is a rune index, not a byte offset.
func EncodeString(text string, codes CodeTable) (string, error) {
	return Encode([]rune(text), codes)
}

// Compress runs the whole pipeline over text and returns the encoded bits
// along with the Tree needed to decode them.
func Compress(text string) (string, *Tree, error) {
	t, err := BuildTree(CountString(text))
	if err != nil {
		return "", nil, err
	}
	bits, err := EncodeString(text, GenerateCodes(t))
	if err != nil {
		return "", nil, err
	}
	return bits, t, nil
}
