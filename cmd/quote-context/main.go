// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quote-context CLI. It exposes the
// quote normalisation and comparison primitives as subcommands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	qlog "github.com/pdiddy/quote-context/internal/log"
	"github.com/pdiddy/quote-context/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --log-level.
var logger = zerolog.Nop()

// settings holds the viper configuration, rebuilt by initConfig.
var settings = viper.New()

// rootCmd is the base command for the quote-context CLI.
var rootCmd = &cobra.Command{
	Use:   "quote-context",
	Short: "Normalise and compare quoted text for citation lookup",
	Long: `quote-context prepares quotes for citation lookup. It escapes quote text
and URLs with the configured policy, hashes quotes, flattens HTML pages to
text, and compares a quote against the text found on the cited page.

The escape policy is read from the "escape" section of the config file:

  escape:
    text_escape_code_points: [32, 44, 8217]
    escape_special_chars: ["&nbsp;"]
    url_escape_code_points: [32]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = settings.GetString("log_level")
		}
		format, _ := cmd.Flags().GetString("log-format")
		if format != "json" && format != "console" {
			return fmt.Errorf("unsupported log format %q: use json or console", format)
		}
		logger = qlog.New(qlog.Config{
			Level:   level,
			Output:  cmd.ErrOrStderr(),
			Console: format == "console",
		})
		l := logger.With().Str(qlog.FieldCommand, cmd.Name()).Logger()
		if used := settings.ConfigFileUsed(); used != "" {
			l.Debug().Str("config", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quote-context.yaml or ~/.config/quote-context/quote-context.yaml)")
	rootCmd.PersistentFlags().String("escape-config", "", "standalone YAML file with the escape policy")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default warn, or $LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format: json or console")
}

// initConfig rebuilds settings for each execution so that a --config from
// one run does not leak into the next.
func initConfig() {
	v := viper.New()

	defaults := types.DefaultEscapeConfig()
	v.SetDefault("escape.text_escape_code_points", defaults.TextEscapeCodePoints)
	v.SetDefault("escape.escape_special_chars", defaults.EscapeSpecialChars)
	v.SetDefault("escape.url_escape_code_points", defaults.URLEscapeCodePoints)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("quote-context")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "quote-context"))
		}
	}

	v.SetEnvPrefix("QUOTE_CONTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
	settings = v
}

// escapeConfig resolves the escape policy: --escape-config wins, otherwise
// the "escape" section of the viper config on top of the defaults.
func escapeConfig(cmd *cobra.Command) (types.EscapeConfig, error) {
	path, _ := cmd.Flags().GetString("escape-config")
	if path != "" {
		return types.LoadEscapeConfig(path)
	}

	// Unmarshal merges per key, so a partial "escape" section keeps the
	// defaults for the keys it leaves out. UnmarshalKey would not.
	var decoded struct {
		Escape types.EscapeConfig `mapstructure:"escape"`
	}
	if err := settings.Unmarshal(&decoded); err != nil {
		return types.EscapeConfig{}, fmt.Errorf("decoding escape config: %w", err)
	}
	cfg := decoded.Escape
	if err := cfg.Validate(); err != nil {
		return types.EscapeConfig{}, fmt.Errorf("validating escape config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
