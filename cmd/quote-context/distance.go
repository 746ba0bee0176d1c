// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	qlog "github.com/pdiddy/quote-context/internal/log"
	"github.com/pdiddy/quote-context/internal/textconvert"
)

var distanceCmd = &cobra.Command{
	Use:   "distance <a> <b>",
	Short: "Print the case-insensitive Levenshtein distance between two strings",
	Long: `Distance prints the minimum number of single-character insertions,
deletions and substitutions that turn a into b, ignoring case. Either
argument may be "-" to read it from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func runDistance(cmd *cobra.Command, args []string) error {
	if args[0] == stdinArg && args[1] == stdinArg {
		return fmt.Errorf("only one argument can be read from stdin")
	}
	a, err := argOrStdin(cmd, args, 0)
	if err != nil {
		return err
	}
	b, err := argOrStdin(cmd, args, 1)
	if err != nil {
		return err
	}
	normalise, _ := cmd.Flags().GetBool("escape")
	if normalise {
		cfg, err := escapeConfig(cmd)
		if err != nil {
			return err
		}
		c := textconvert.New(cfg)
		a, b = c.EscapeText(a), c.EscapeText(b)
	}
	return writeDistance(cmd.OutOrStdout(), a, b)
}

func writeDistance(w io.Writer, a, b string) error {
	d := textconvert.LevenshteinDistance(a, b)
	l := qlog.WithComponent(logger, "distance")
	l.Debug().Int("a_runes", len([]rune(a))).Int("b_runes", len([]rune(b))).Int("distance", d).Msg("computed distance")
	_, err := fmt.Fprintln(w, d)
	return err
}

func init() {
	distanceCmd.Flags().Bool("escape", false, "apply the text escape policy to both strings first")

	rootCmd.AddCommand(distanceCmd)
}
