// Command semcore is the CLI entry point for the in-memory triple
// store: it can ingest an N-Triples-style file, answer one-shot
// queries against it, or serve it over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version is set at build time via -ldflags.
	Version = "dev"

	logLevel string
	log      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "semcore",
	Short: "In-memory semantic triple store: ingest, query, and serve.",
	Long: `semcore loads subject/predicate/object triples from an N-Triples-style
file into an in-memory, bit-indexed store and lets you query it with
pattern-ask, materialization, and shape-validation operations, either
as one-shot commands or over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = buildLogger(logLevel)
		return err
	},
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	switch level {
	case "debug":
		cfg.Level.SetLevel(zap.DebugLevel)
	case "warn":
		cfg.Level.SetLevel(zap.WarnLevel)
	case "error":
		cfg.Level.SetLevel(zap.ErrorLevel)
	default:
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	built, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return built.Named("semcore"), nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
