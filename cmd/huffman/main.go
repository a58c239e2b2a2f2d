package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "master" // Replaced by linker, see Makefile
var log = logrus.New()

func newRootCmd() *cobra.Command {
	var verbose bool

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of huffman",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "huffman",
		Short: "Build Huffman codes for text and round-trip it through them",
		Long: "Build Huffman codes for text and round-trip it through them.\n\n" +
			"Commands taking [text] read it from their arguments, joined by spaces,\n" +
			"or from stdin when no arguments are given. The exception is demo, which\n" +
			"falls back to \"" + demoText + "\" instead of reading stdin.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each pipeline stage")
	rootCmd.PersistentFlags().String("charset", "",
		"Charset of the text, from arguments or stdin, e.g. windows-1251. UTF-8 if not set")

	rootCmd.AddCommand(cmdVersion)
	for _, cmd := range newCodingCmds() {
		rootCmd.AddCommand(cmd)
	}
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}
