package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	tests := []struct {
		input string
		want  Frequencies
	}{
		{"", Frequencies{}},
		{"a", Frequencies{'a': 1}},
		{"abbcd", Frequencies{'a': 1, 'b': 2, 'c': 1, 'd': 1}},
		{"dcbba", Frequencies{'a': 1, 'b': 2, 'c': 1, 'd': 1}},
		{"привет мир", Frequencies{'п': 1, 'р': 2, 'и': 2, 'в': 1, 'е': 1, 'т': 1, ' ': 1, 'м': 1}},
	}
	for _, test := range tests {
		if got := CountString(test.input); !reflect.DeepEqual(got, test.want) {
			t.Errorf("CountString(%q) = %v, expected %v", test.input, got, test.want)
		}
		if got := CountFrequencies([]rune(test.input)); !reflect.DeepEqual(got, test.want) {
			t.Errorf("CountFrequencies(%q) = %v, expected %v", test.input, got, test.want)
		}
	}
}

func TestFrequencies_SymbolsAndTotal(t *testing.T) {
	freq := CountString("abbcd")
	if got, want := freq.Symbols(), []rune("abcd"); !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols() = %q, expected %q", got, want)
	}
	if got := freq.Total(); got != 5 {
		t.Errorf("Total() = %d, expected 5", got)
	}
	if got := CountString("").Total(); got != 0 {
		t.Errorf("empty Total() = %d, expected 0", got)
	}
}

func TestFrequencies_Dump(t *testing.T) {
	expect := strings.Join([]string{
		"Frequencies{\n",
		"\t'a': 1\n",
		"\t'b': 2\n",
		"\t'c': 1\n",
		"\t'd': 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = CountString("abbcd").Dump(&buf)
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
