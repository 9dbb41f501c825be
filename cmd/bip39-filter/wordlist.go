// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/bip39-filter/internal/corpus"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Manage the local copy of the BIP39 wordlist",
}

var wordlistFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the wordlist into the cache",
	Long: `Fetch downloads the BIP39 English wordlist from wordlist.url into the
wordlist path (by default the XDG cache). An existing file is kept unless
--force is given. The download is validated before it replaces the file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return fetchWordlist(cmd.Context(), cfg.Wordlist, force, cmd.OutOrStdout(), logger)
	},
}

var wordlistPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the wordlist is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := corpus.NewFetcher(cfg.Wordlist, logger).Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func fetchWordlist(ctx context.Context, c types.WordlistConfig, force bool, out io.Writer, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := corpus.NewFetcher(c, log)
	path, err := f.Path()
	if err != nil {
		return err
	}
	if err := f.Fetch(ctx, path, force); err != nil {
		return err
	}
	words, err := corpus.LoadWordlist(path, c.Strict)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wordlist ready: %d words at %s\n", len(words), path)
	return nil
}

func init() {
	wordlistFetchCmd.Flags().Bool("force", false, "download even if the file exists")

	wordlistCmd.AddCommand(wordlistFetchCmd)
	wordlistCmd.AddCommand(wordlistPathCmd)
	rootCmd.AddCommand(wordlistCmd)
}
