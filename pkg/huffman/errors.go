package huffman

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidInput is returned by BuildTree for an empty alphabet.
	ErrInvalidInput = errors.New("huffman: invalid input")
	// ErrLookup is returned by Encode for a symbol missing from the code table.
	ErrLookup = errors.New("huffman: symbol not in code table")
	// ErrMalformedInput is returned by Decode when the bit string is truncated
	// or holds something other than '0' and '1'.
	ErrMalformedInput = errors.New("huffman: malformed input")
	// ErrStructural is returned by Decode when a bit would descend past a leaf.
	ErrStructural = errors.New("huffman: bit string does not match tree")
)

// Error describes where an operation failed.  Err is one of the sentinel
// errors above, so errors.Is works on any *Error.
type Error struct {
	Op        string
	Pos       int  // index into the input, -1 if not applicable
	Symbol    rune // meaningful only if HasSymbol; U+0000 is a valid symbol
	HasSymbol bool
	Err       error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.HasSymbol {
		msg += " " + strconv.QuoteRune(e.Symbol)
	}
	if e.Pos >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Pos)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
