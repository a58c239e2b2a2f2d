package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Frequencies maps each symbol to its number of occurrences.
type Frequencies map[rune]int

// CountFrequencies counts the occurrences of each symbol.  An empty input
// yields an empty, non-nil mapping.
func CountFrequencies(symbols []rune) Frequencies {
	freq := make(Frequencies)
	for _, sym := range symbols {
		freq[sym]++
	}
	return freq
}

// CountString is CountFrequencies over the runes of text.
func CountString(text string) Frequencies {
	freq := make(Frequencies)
	for _, sym := range text {
		freq[sym]++
	}
	return freq
}

// Symbols returns the symbols in ascending order.
func (freq Frequencies) Symbols() []rune {
	out := make([]rune, 0, len(freq))
	for sym := range freq {
		out = append(out, sym)
	}
	sortRunes(out)
	return out
}

// Total returns the length of the counted sequence.
func (freq Frequencies) Total() int {
	total := 0
	for _, n := range freq {
		total += n
	}
	return total
}

// Dump writes a programmer-readable listing of the mapping, one symbol per
// line in symbol order.
func (freq Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for _, sym := range freq.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %d\n", strconv.QuoteRune(sym), freq[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func sortRunes(list []rune) {
	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})
}
