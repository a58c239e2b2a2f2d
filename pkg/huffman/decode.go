package huffman

// Decode walks t from the root, one bit at a time, emitting a symbol and
// returning to the root whenever a leaf is reached.
//
// It fails with ErrMalformedInput if bits holds anything but '0' and '1', or
// if it ends part way down the tree.  It fails with ErrStructural if a bit
// asks for a child the tree does not have, which happens only when the root is
// a lone leaf and the bit is '1'.
//
func Decode(bits string, t *Tree) ([]rune, error) {
	var out []rune
	root := t.nodes[t.root]

	// A lone leaf has the code "0", so each '0' is one symbol.
	if root.Leaf {
		for i := 0; i < len(bits); i++ {
			switch bits[i] {
			case '0':
				out = append(out, root.Symbol)
			case '1':
				return nil, &Error{Op: "decode", Pos: i, Err: ErrStructural}
			default:
				return nil, &Error{Op: "decode", Pos: i, Err: ErrMalformedInput}
			}
		}
		return out, nil
	}

	current := t.root
	start := 0
	for i := 0; i < len(bits); i++ {
		n := t.nodes[current]
		if n.Leaf {
			return nil, &Error{Op: "decode", Pos: i, Err: ErrStructural}
		}
		switch bits[i] {
		case '0':
			current = n.Left
		case '1':
			current = n.Right
		default:
			return nil, &Error{Op: "decode", Pos: i, Err: ErrMalformedInput}
		}
		if next := t.nodes[current]; next.Leaf {
			out = append(out, next.Symbol)
			current = t.root
			start = i + 1
		}
	}

	if current != t.root {
		return nil, &Error{Op: "decode", Pos: start, Err: ErrMalformedInput}
	}
	return out, nil
}

// DecodeString is Decode returning a string.
func DecodeString(bits string, t *Tree) (string, error) {
	out, err := Decode(bits, t)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
