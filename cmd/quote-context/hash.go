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

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Build the quote record and its SHA-256 identifier",
	Long: `Hash escapes the citing quote with the text policy and both URLs with
the URL policy, joins them with "|", and prints the SHA-256 of the result
together with the full quote record.

Use --format key to print only the string that is hashed.`,
	Args: cobra.NoArgs,
	RunE: runHash,
}

// hashInput collects the hash command flags.
type hashInput struct {
	quote      string
	citedQuote string
	citingURL  string
	citedURL   string
	context    types.QuoteContext
}

func runHash(cmd *cobra.Command, args []string) error {
	cfg, err := escapeConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var in hashInput
	in.quote, _ = flags.GetString("quote")
	in.citedQuote, _ = flags.GetString("cited-quote")
	in.citingURL, _ = flags.GetString("citing-url")
	in.citedURL, _ = flags.GetString("cited-url")
	in.context.CitingBefore, _ = flags.GetString("citing-before")
	in.context.CitingAfter, _ = flags.GetString("citing-after")
	in.context.CitedBefore, _ = flags.GetString("cited-before")
	in.context.CitedAfter, _ = flags.GetString("cited-after")
	format, _ := flags.GetString("format")

	return writeHash(cmd.OutOrStdout(), cfg, in, format)
}

func writeHash(w io.Writer, cfg types.EscapeConfig, in hashInput, format string) error {
	if in.quote == "" {
		return fmt.Errorf("--quote is required")
	}
	for _, u := range []string{in.citingURL, in.citedURL} {
		if !textconvert.IsURL(u) {
			return fmt.Errorf("invalid URL %q: specify an absolute URL such as http://example.com/page_name", u)
		}
	}

	c := textconvert.New(cfg)
	if format == "key" {
		_, err := fmt.Fprintln(w, c.HashKey(in.quote, in.citingURL, in.citedURL))
		return err
	}

	q := c.NewQuote(in.quote, in.citedQuote, in.citingURL, in.citedURL, in.context)
	l := qlog.WithComponent(logger, "hash")
	l.Info().Str("sha256", q.SHA256).Str("citing_url", q.CitingURL).Msg("hashed quote")

	if format == formatText {
		_, err := fmt.Fprintln(w, q.SHA256)
		return err
	}
	return encode(w, format, q)
}

func init() {
	hashCmd.Flags().String("quote", "", "quote as written on the citing page (required)")
	hashCmd.Flags().String("cited-quote", "", "matching passage on the cited page")
	hashCmd.Flags().String("citing-url", "", "URL of the citing page (required)")
	hashCmd.Flags().String("cited-url", "", "URL of the cited page (required)")
	hashCmd.Flags().String("citing-before", "", "text before the quote on the citing page")
	hashCmd.Flags().String("citing-after", "", "text after the quote on the citing page")
	hashCmd.Flags().String("cited-before", "", "text before the passage on the cited page")
	hashCmd.Flags().String("cited-after", "", "text after the passage on the cited page")
	hashCmd.Flags().String("format", formatJSON, "output format: json, yaml, text (hash only), or key")

	rootCmd.AddCommand(hashCmd)
}
