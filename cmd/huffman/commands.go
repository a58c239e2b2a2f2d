package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/ei-projects/huffman/pkg/huffman"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

const demoText = "abbcd"

// pipeline holds every intermediate result for one piece of text.
type pipeline struct {
	text     string
	rawBytes int // size of the text before charset decoding
	freq     huffman.Frequencies
	tree     *huffman.Tree
	codes    huffman.CodeTable
}

func buildPipeline(text string, rawBytes int) (*pipeline, error) {
	p := &pipeline{text: text, rawBytes: rawBytes}
	p.freq = huffman.CountString(text)
	log.Debugf("Counted %d symbols, %d distinct", p.freq.Total(), len(p.freq))

	tree, err := huffman.BuildTree(p.freq)
	if err != nil {
		return nil, err
	}
	p.tree = tree
	log.Debugf("Built tree of %d nodes, depth %d", tree.Len(), tree.Depth())

	p.codes = huffman.GenerateCodes(tree)
	return p, nil
}

func (p *pipeline) encode() (string, error) {
	bits, err := huffman.EncodeString(p.text, p.codes)
	if err != nil {
		return "", err
	}
	log.Debugf("Encoded %d runes into %d bits", utf8.RuneCountInString(p.text), len(bits))
	return bits, nil
}

// textCommand wraps run so it receives the pipeline for the command's text.
func textCommand(run func(w io.Writer, p *pipeline) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, rawBytes, err := readText(cmd, args)
		if err != nil {
			return err
		}
		p, err := buildPipeline(text, rawBytes)
		if err != nil {
			return err
		}
		return run(cmd.OutOrStdout(), p)
	}
}

func newCodingCmds() []*cobra.Command {
	var cmdDemo = &cobra.Command{
		Use:   "demo [text]",
		Short: "Print every stage for text (\"" + demoText + "\" if no arguments, stdin is not read)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, rawBytes := demoText, len(demoText)
			if len(args) > 0 {
				var err error
				if text, rawBytes, err = readText(cmd, args); err != nil {
					return err
				}
			}
			p, err := buildPipeline(text, rawBytes)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), p)
		},
	}

	var cmdFreq = &cobra.Command{
		Use:   "freq [text]",
		Short: "Print symbol frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readText(cmd, args)
			if err != nil {
				return err
			}
			_, err = huffman.CountString(text).Dump(cmd.OutOrStdout())
			return err
		},
	}

	var prettyTree bool
	var cmdTree = &cobra.Command{
		Use:   "tree [text]",
		Short: "Print the Huffman tree",
		RunE: textCommand(func(w io.Writer, p *pipeline) error {
			if prettyTree {
				_, err := pretty.Fprintf(w, "%# v\n", p.tree)
				return err
			}
			_, err := p.tree.Dump(w)
			return err
		}),
	}
	cmdTree.Flags().BoolVar(&prettyTree, "pretty", false, "Dump the node arena instead of drawing the tree")

	var cmdCodes = &cobra.Command{
		Use:   "codes [text]",
		Short: "Print the code table",
		RunE: textCommand(func(w io.Writer, p *pipeline) error {
			_, err := p.codes.Dump(w)
			return err
		}),
	}

	var hexOutput bool
	var cmdEncode = &cobra.Command{
		Use:   "encode [text]",
		Short: "Print the encoded bits",
		RunE: textCommand(func(w io.Writer, p *pipeline) error {
			bits, err := p.encode()
			if err != nil {
				return err
			}
			if hexOutput {
				packed, err := huffman.Pack(bits)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "%d %s\n", len(bits), hex.EncodeToString(packed))
				return err
			}
			_, err = fmt.Fprintln(w, bits)
			return err
		}),
	}
	cmdEncode.Flags().BoolVar(&hexOutput, "hex", false, "Print the bit count and the packed bits in hex")

	var cmdDecode = &cobra.Command{
		Use:   "decode BITS [text]",
		Short: "Decode BITS with the tree built from text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits := args[0]
			text, rawBytes, err := readText(cmd, args[1:])
			if err != nil {
				return err
			}
			p, err := buildPipeline(text, rawBytes)
			if err != nil {
				return err
			}
			decoded, err := huffman.DecodeString(bits, p.tree)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return err
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats [text]",
		Short: "Print compression statistics",
		RunE: textCommand(runStats),
	}

	return []*cobra.Command{cmdDemo, cmdFreq, cmdTree, cmdCodes, cmdEncode, cmdDecode, cmdStats}
}

func runDemo(w io.Writer, p *pipeline) error {
	bits, err := p.encode()
	if err != nil {
		return err
	}
	decoded, err := huffman.DecodeString(bits, p.tree)
	if err != nil {
		return err
	}
	if decoded != p.text {
		log.Errorf("Round trip mismatch: %q != %q", decoded, p.text)
	}

	for _, dumper := range []interface {
		Dump(io.Writer) (int64, error)
	}{p.freq, p.tree, p.codes} {
		if _, err := dumper.Dump(w); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Encoded: %s\nDecoded: %s\n", strconv.Quote(bits), strconv.Quote(decoded))
	return err
}

func runStats(w io.Writer, p *pipeline) error {
	bits, err := p.encode()
	if err != nil {
		return err
	}
	packed, err := huffman.Pack(bits)
	if err != nil {
		return err
	}

	rows := []struct {
		name  string
		value string
	}{
		{"Symbols", strconv.Itoa(p.freq.Total())},
		{"Distinct", strconv.Itoa(len(p.freq))},
		{"Depth", strconv.Itoa(p.tree.Depth())},
		{"Bits", strconv.Itoa(len(bits))},
		{"Packed bytes", strconv.Itoa(len(packed))},
		{"Input bytes", strconv.Itoa(p.rawBytes)},
		{"Ratio", fmt.Sprintf("%.3f", float64(len(packed))/float64(p.rawBytes))},
		{"Bits/symbol", fmt.Sprintf("%.3f", float64(len(bits))/float64(p.freq.Total()))},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-13s %s\n", row.name+":", row.value); err != nil {
			return err
		}
	}
	return nil
}
