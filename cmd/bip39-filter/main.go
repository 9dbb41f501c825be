// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bip39-filter CLI.
// The root command filters the BIP39 English wordlist; subcommands manage
// the cached wordlist and the part-of-speech tag lookup.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/corpus"
	"github.com/pdiddy/bip39-filter/internal/logging"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitConstraint = 2
	exitDataSource = 3
)

var (
	// cfg holds the settings resolved from flags, environment, and config file.
	cfg types.Config

	// logger writes diagnostics to stderr.
	logger = zap.NewNop()
)

// rootCmd is the base command. Run on its own it filters the wordlist.
var rootCmd = &cobra.Command{
	Use:   "bip39-filter",
	Short: "Filter the BIP39 English wordlist by length, letters, and word type",
	Long: `bip39-filter narrows the 2048-word BIP39 English wordlist to the words
matching what you remember about a mnemonic word: its length, letters at
known positions, and whether it is a noun, verb, or adjective.

Positions are 1-indexed: --positions 1=a,3=e matches words whose first
letter is "a" and third letter is "e". Without --non-interactive the
result can be refined step by step; each step adds to the constraints
already given.

Word types need a tag lookup (--tags), either a YAML file mapping words to
tags or a SQLite database built with "bip39-filter tags import".`,
	Example: `  bip39-filter --length 5 --positions 1=a,3=e --non-interactive
  bip39-filter --length 4-6 --pos noun --tags tags.yaml
  bip39-filter --format json --non-interactive --positions 5=z`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		c, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c

		l, err := logging.New(cfg.LogLevel, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./bip39-filter.yaml or ~/.config/bip39-filter/bip39-filter.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	pf.String("wordlist", "", "wordlist file (default: cached copy, fetched when missing)")
	pf.String("tags", "", "part-of-speech lookup: YAML file or SQLite database")
	pf.Bool("offline", false, "never fetch the wordlist")

	f := rootCmd.Flags()
	f.String("length", "", "word length: N, N-M, -M, or N-")
	f.String("positions", "", "known letters as position=letter pairs, e.g. 1=a,3=e")
	f.String("pos", "", "word types, comma-separated: noun, verb, adjective")
	f.Bool("non-interactive", false, "print the filtered words and exit")
	f.String("format", "", "output format: lines, columns, json, yaml (default lines)")
	f.String("ui", "", "interactive front end: auto, tui, plain (default auto)")

	bindFlag("log_level", pf, "log-level")
	bindFlag("wordlist.path", pf, "wordlist")
	bindFlag("wordlist.offline", pf, "offline")
	bindFlag("tags.path", pf, "tags")
	bindFlag("format", f, "format")
	bindFlag("ui", f, "ui")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bip39-filter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bip39-filter"))
		}
	}

	configureViper(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Warning: reading config:", err)
		}
	}
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, constraint.ErrInvalidConstraint):
		return exitConstraint
	case errors.Is(err, corpus.ErrDataSource):
		return exitDataSource
	default:
		return exitFailure
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
