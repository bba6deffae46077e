package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgonek/draftail-anchors/htmlconverter"
)

func newFromHTMLCmd(opts *rootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "from-html <input-file>",
		Short: "Convert stored HTML to editor content state JSON",
		Long: `Convert stored HTML back to the raw editor content state.

With --db, internal page links get their parentId from the page table.

Examples:
  anchors from-html body.html
  anchors from-html --db pages.db body.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			if dbPath == "" {
				dbPath = opts.cfg.Database
			}
			resolver, closeResolver, err := openResolver(ctx, dbPath, opts.cfg.Locale)
			if err != nil {
				return err
			}
			defer closeResolver()

			conv, err := htmlconverter.New(htmlconverter.Config{Resolver: resolver})
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			result, err := conv.Convert(ctx, string(data))
			if err != nil {
				return fmt.Errorf("error converting file: %w", err)
			}
			logWarnings(ctx, result.Warnings)

			pretty, err := json.MarshalIndent(result.ContentState, "", "  ")
			if err != nil {
				return fmt.Errorf("error formatting content state JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite page database")

	return cmd
}
