// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// stdinArg marks an argument to be read from standard input.
const stdinArg = "-"

// argOrStdin returns args[i], or all of stdin when the argument is missing
// or "-". Trailing newlines from stdin are trimmed.
func argOrStdin(cmd *cobra.Command, args []string, i int) (string, error) {
	if i < len(args) && args[i] != stdinArg {
		return args[i], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
