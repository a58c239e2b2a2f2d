package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		bits string
		want []byte
	}{
		{"", nil},
		{"1", []byte{0x80}},
		{"0011110110", []byte{0x3D, 0x80}},
		{"1111111100000001", []byte{0xFF, 0x01}},
	}
	for _, test := range tests {
		packed, err := Pack(test.bits)
		if err != nil {
			t.Fatalf("Pack(%q) failed: %v", test.bits, err)
		}
		if !bytes.Equal(packed, test.want) {
			t.Errorf("Pack(%q) = %#v, expected %#v", test.bits, packed, test.want)
		}
		bits, err := Unpack(packed, len(test.bits))
		if err != nil || bits != test.bits {
			t.Errorf("Unpack(%#v, %d) = %q, %v; expected %q", packed, len(test.bits), bits, err, test.bits)
		}
	}
}

func TestPack_Errors(t *testing.T) {
	if _, err := Pack("01a"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Pack: expected ErrMalformedInput, got %v", err)
	}
	if _, err := Unpack([]byte{0xFF}, 9); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Unpack: expected ErrMalformedInput, got %v", err)
	}
	if _, err := Unpack(nil, -1); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Unpack: expected ErrMalformedInput, got %v", err)
	}
}
