// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	qlog "github.com/pdiddy/quote-context/internal/log"
	"github.com/pdiddy/quote-context/internal/textconvert"
)

var diffCmd = &cobra.Command{
	Use:   "diff <original> <modified>",
	Short: "Print the text that changed between two strings",
	Long: `Diff aligns original and modified character by character and prints the
changed text: inserted and replaced text from modified, deleted text from
original. Unchanged text is omitted. The output is for reading, not a
patch. Either argument may be "-" to read it from stdin.

With --opcodes the alignment spans are listed instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	if args[0] == stdinArg && args[1] == stdinArg {
		return fmt.Errorf("only one argument can be read from stdin")
	}
	original, err := argOrStdin(cmd, args, 0)
	if err != nil {
		return err
	}
	modified, err := argOrStdin(cmd, args, 1)
	if err != nil {
		return err
	}
	opcodes, _ := cmd.Flags().GetBool("opcodes")
	format, _ := cmd.Flags().GetString("format")
	return writeDiff(cmd.OutOrStdout(), original, modified, opcodes, format)
}

func writeDiff(w io.Writer, original, modified string, opcodes bool, format string) error {
	l := qlog.WithComponent(logger, "diff")

	if !opcodes {
		out := textconvert.ShowDiff(original, modified)
		l.Debug().Int("changed_bytes", len(out)).Msg("computed diff")
		if format == formatText {
			_, err := fmt.Fprintln(w, out)
			return err
		}
		return encode(w, format, map[string]string{"diff": out})
	}

	ops := textconvert.Opcodes(original, modified)
	l.Debug().Int("opcodes", len(ops)).Msg("computed opcodes")
	if format != formatText {
		return encode(w, format, ops)
	}
	for _, op := range ops {
		if _, err := fmt.Fprintf(w, "%-7s a[%d:%d] b[%d:%d] %q -> %q\n",
			op.Tag, op.I1, op.I2, op.J1, op.J2, op.Before, op.After); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	diffCmd.Flags().Bool("opcodes", false, "list the alignment spans instead of the changed text")
	diffCmd.Flags().String("format", formatText, "output format: text, json, or yaml")

	rootCmd.AddCommand(diffCmd)
}
