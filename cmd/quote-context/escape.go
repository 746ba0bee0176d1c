// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	qlog "github.com/pdiddy/quote-context/internal/log"
	"github.com/pdiddy/quote-context/internal/textconvert"
	"github.com/pdiddy/quote-context/pkg/types"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [text]",
	Short: "Strip configured characters from quote text or a URL",
	Long: `Escape removes the configured code points and special substrings from
text, the normalisation applied to quotes before hashing. With --url the
URL policy is applied instead. Reads stdin when no text is given or the
text is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEscape,
}

func runEscape(cmd *cobra.Command, args []string) error {
	cfg, err := escapeConfig(cmd)
	if err != nil {
		return err
	}
	input, err := argOrStdin(cmd, args, 0)
	if err != nil {
		return err
	}
	asURL, _ := cmd.Flags().GetBool("url")
	return writeEscaped(cmd.OutOrStdout(), cfg, input, asURL)
}

func writeEscaped(w io.Writer, cfg types.EscapeConfig, input string, asURL bool) error {
	c := textconvert.New(cfg)
	out := c.EscapeText(input)
	policy := "text"
	if asURL {
		out = c.EscapeURL(input)
		policy = "url"
	}

	l := qlog.WithComponent(logger, "escape")
	l.Debug().Str("policy", policy).
		Int("in_bytes", len(input)).
		Int("out_bytes", len(out)).
		Msg("escaped input")

	_, err := fmt.Fprintln(w, out)
	return err
}

func init() {
	escapeCmd.Flags().Bool("url", false, "apply the URL escape policy instead of the text policy")

	rootCmd.AddCommand(escapeCmd)
}
