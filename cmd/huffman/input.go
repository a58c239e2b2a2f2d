package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
)

// readText returns the text a command works on and the number of bytes it
// was read from: its arguments joined by spaces, or all of stdin with one
// trailing newline removed.  Either source is decoded with --charset.
func readText(cmd *cobra.Command, args []string) (string, int, error) {
	var raw []byte
	if len(args) > 0 {
		raw = []byte(strings.Join(args, " "))
	} else {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(cmd.InOrStdin()); err != nil {
			return "", 0, fmt.Errorf("reading stdin: %w", err)
		}
		raw = buf.Bytes()
		raw = bytes.TrimSuffix(raw, []byte("\n"))
		raw = bytes.TrimSuffix(raw, []byte("\r"))
	}

	charset, _ := cmd.Flags().GetString("charset")
	text, err := decodeInput(raw, charset)
	if err != nil {
		return "", 0, err
	}
	log.Debugf("Read %d bytes as %d runes", len(raw), utf8.RuneCountInString(text))
	return text, len(raw), nil
}

func decodeInput(raw []byte, charset string) (string, error) {
	if charset == "" {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("input is not valid UTF-8, set --charset")
		}
		return string(raw), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s input: %w", charset, err)
	}
	return string(out), nil
}
