// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quote-context/internal/httputil"
	qlog "github.com/pdiddy/quote-context/internal/log"
	"github.com/pdiddy/quote-context/internal/textconvert"
)

const defaultUserAgent = "quote-context/0.4"

var textCmd = &cobra.Command{
	Use:   "text [html]",
	Short: "Convert HTML to plain text",
	Long: `Text strips tags, attributes and comments from HTML and prints the text
content. The HTML comes from the argument, --file, a page fetched with
--url, or stdin. Malformed markup is converted on a best-effort basis.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runText,
}

func runText(cmd *cobra.Command, args []string) error {
	src, err := htmlSource(cmd, args)
	if err != nil {
		return err
	}

	text := textconvert.HTMLToText(src)
	l := qlog.WithComponent(logger, "text")
	l.Debug().Int("html_bytes", len(src)).Int("text_bytes", len(text)).Msg("converted html")

	escape, _ := cmd.Flags().GetBool("escape")
	if escape {
		cfg, err := escapeConfig(cmd)
		if err != nil {
			return err
		}
		text = textconvert.New(cfg).EscapeText(text)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// htmlSource picks the HTML input: --url, then --file, then the argument or
// stdin.
func htmlSource(cmd *cobra.Command, args []string) (string, error) {
	pageURL, _ := cmd.Flags().GetString("url")
	file, _ := cmd.Flags().GetString("file")

	switch {
	case pageURL != "" && (file != "" || len(args) > 0):
		return "", fmt.Errorf("--url cannot be combined with --file or an argument")
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("--file cannot be combined with an argument")
	case pageURL != "":
		return fetchPage(cmd, pageURL)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	default:
		return argOrStdin(cmd, args, 0)
	}
}

func fetchPage(cmd *cobra.Command, pageURL string) (string, error) {
	if !textconvert.IsURL(pageURL) {
		return "", fmt.Errorf("invalid URL %q: specify an absolute URL such as http://example.com/page_name", pageURL)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	maxBytes, _ := cmd.Flags().GetInt64("max-bytes")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := &http.Client{Timeout: timeout}
	return httputil.FetchHTML(ctx, client, pageURL, httputil.FetchOptions{
		UserAgent: userAgent,
		MaxBytes:  maxBytes,
		Logger:    qlog.WithComponent(logger, "fetch"),
	})
}

func init() {
	textCmd.Flags().String("file", "", "read HTML from a file")
	textCmd.Flags().String("url", "", "fetch HTML from a URL")
	textCmd.Flags().Duration("timeout", 30*time.Second, "HTTP timeout for --url")
	textCmd.Flags().String("user-agent", defaultUserAgent, "User-Agent header for --url")
	textCmd.Flags().Int64("max-bytes", httputil.DefaultMaxBytes, "maximum page size for --url")
	textCmd.Flags().Bool("escape", false, "apply the text escape policy to the result")

	rootCmd.AddCommand(textCmd)
}
