// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bip39-filter/internal/corpus"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the part-of-speech tag lookup",
	Long: `Tags manages the word-to-tag lookup used by --pos. A lookup is either a
YAML file mapping each word to noun, verb, adjective, or unknown, or a
SQLite database built from such a file with "tags import".`,
}

// --- import subcommand ---

var tagsImportCmd = &cobra.Command{
	Use:   "import SRC",
	Short: "Load a YAML tag lookup into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _ := cmd.Flags().GetString("db")
		replace, _ := cmd.Flags().GetBool("replace")
		return importTags(cmd.Context(), args[0], db, replace, cmd.OutOrStdout())
	},
}

func importTags(ctx context.Context, src, db string, replace bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !corpus.IsDatabasePath(db) {
		return fmt.Errorf("--db %q must end in .db, .sqlite, or .sqlite3", db)
	}

	lookup, err := corpus.LoadLookupYAML(src)
	if err != nil {
		return err
	}

	store, err := corpus.OpenTagStore(db)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(ctx, lookup, replace)
	if err != nil {
		return err
	}
	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d tags into %s (%d new, %d updated)\n",
		summary.Total(), db, summary.Inserted, summary.Updated)
	fmt.Fprintln(out, formatCounts(counts))
	return nil
}

func formatCounts(counts map[types.POSTag]int) string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, string(tag))
	}
	sort.Strings(tags)

	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = fmt.Sprintf("%s=%d", tag, counts[types.POSTag(tag)])
	}
	return "Tags: " + strings.Join(parts, " ")
}

// --- show subcommand ---

var tagsShowCmd = &cobra.Command{
	Use:   "show WORD...",
	Short: "Print the tag of each word from the configured lookup",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showTags(cmd.Context(), cfg.Tags, args, cmd.OutOrStdout())
	},
}

func showTags(ctx context.Context, c types.TagsConfig, words []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Path == "" {
		return fmt.Errorf("no tag lookup configured: use --tags or set tags.path")
	}

	lookup, err := corpus.LoadLookup(ctx, c)
	if err != nil {
		return err
	}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		tag := string(lookup[w])
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(out, "%-10s %s\n", w, tag)
	}
	return nil
}

func init() {
	tagsImportCmd.Flags().String("db", "tags.db", "SQLite database to write")
	tagsImportCmd.Flags().Bool("replace", false, "remove words not present in SRC")

	tagsCmd.AddCommand(tagsImportCmd)
	tagsCmd.AddCommand(tagsShowCmd)
	rootCmd.AddCommand(tagsCmd)
}
