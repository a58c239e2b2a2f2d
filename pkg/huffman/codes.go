package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol to its code, written as a string of '0' and '1'.
type CodeTable map[rune]string

// GenerateCodes derives the code of every leaf from its path below the root:
// '0' for each left step and '1' for each right step.
//
// When the root is itself a leaf its path is empty, which no bit stream could
// carry, so that sole symbol is given the code "0" instead.
//
func GenerateCodes(t *Tree) CodeTable {
	codes := make(CodeTable, t.Leaves())
	t.walk(func(id NodeID, path string, _ int) {
		n := t.nodes[id]
		if !n.Leaf {
			return
		}
		if path == "" {
			path = "0"
		}
		codes[n.Symbol] = path
	})
	assert.Assertf(len(codes) == t.Leaves(), "%d codes for %d leaves", len(codes), t.Leaves())
	return codes
}

// Symbols returns the symbols in ascending order.
func (codes CodeTable) Symbols() []rune {
	out := make([]rune, 0, len(codes))
	for sym := range codes {
		out = append(out, sym)
	}
	sortRunes(out)
	return out
}

// Cost returns the number of bits needed to encode a sequence with the given
// frequencies, i.e. the sum of count × code length.  Symbols missing from the
// table are ignored.
func (codes CodeTable) Cost(freq Frequencies) int {
	total := 0
	for sym, n := range freq {
		total += n * len(codes[sym])
	}
	return total
}

// Dump writes a programmer-readable listing of the table to the given writer.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, sym := range codes.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %s\n", strconv.QuoteRune(sym), strconv.Quote(codes[sym]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a one-line form such as {'a':"00" 'b':"11"}.
func (codes CodeTable) String() string {
	parts := make([]string, 0, len(codes))
	for _, sym := range codes.Symbols() {
		parts = append(parts, strconv.QuoteRune(sym)+":"+strconv.Quote(codes[sym]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
