package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgonek/draftail-anchors/internal/logging"
	"github.com/rgonek/draftail-anchors/richtext"
)

func newExpandCmd(opts *rootOptions) *cobra.Command {
	var (
		dbPath   string
		locale   string
		renderer string
	)

	cmd := &cobra.Command{
		Use:   "expand <input-file>",
		Short: "Expand stored HTML for the front end",
		Long: `Rewrite stored HTML for display: page links get their live URL and
anchor targets are rendered with the selected renderer.

Examples:
  anchors expand --db pages.db body.html
  anchors expand --db pages.db --locale fr --renderer span body.html`,
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
			if locale == "" {
				locale = opts.cfg.Locale
			}
			if renderer == "" {
				renderer = opts.cfg.Renderer
			}

			resolver, closeResolver, err := openResolver(ctx, dbPath, locale)
			if err != nil {
				return err
			}
			defer closeResolver()

			exp, err := richtext.NewExpander(resolver, richtext.ExpanderConfig{
				RendererName: renderer,
				Logger:       logging.FromContext(ctx),
			})
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			result, err := exp.Expand(ctx, string(data))
			if err != nil {
				return fmt.Errorf("error expanding file: %w", err)
			}
			logWarnings(ctx, result.Warnings)

			fmt.Fprintln(cmd.OutOrStdout(), result.HTML)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite page database")
	cmd.Flags().StringVar(&locale, "locale", "", "locale to resolve page translations in")
	cmd.Flags().StringVar(&renderer, "renderer", "", "anchor renderer: a|span")

	return cmd
}
