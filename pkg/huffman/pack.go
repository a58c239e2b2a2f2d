package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack stores a string of '0' and '1' characters as bits, most significant
// bit first, padding the last byte with zeros.  The bit count is not stored;
// callers keep len(bits) to Unpack.
func Pack(bits string) ([]byte, error) {
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
			return nil, &Error{Op: "pack", Pos: i, Err: ErrMalformedInput}
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

// Unpack reverses Pack, reading n bits from data.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 || n > 8*len(data) {
		return "", &Error{Op: "unpack", Pos: -1, Err: fmt.Errorf("%w: %d bits from %d bytes", ErrMalformedInput, n, len(data))}
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, n)
	for i := range out {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out), nil
}
