package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgonek/draftail-anchors/converter"
)

func newToHTMLCmd(opts *rootOptions) *cobra.Command {
	var (
		preset  string
		strict  bool
		syncIDs bool
	)

	cmd := &cobra.Command{
		Use:   "to-html <input-file>",
		Short: "Convert editor content state JSON to stored HTML",
		Long: `Convert a raw editor content state (JSON) to the HTML stored in the database.

Use "-" to read from stdin.

Examples:
  anchors to-html page.json
  anchors to-html --sync-ids --preset strict page.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			cfg, err := resolveConfig(preset, strict || opts.cfg.Strict, syncIDs)
			if err != nil {
				return fmt.Errorf("invalid preset: %w", err)
			}
			conv, err := converter.New(cfg)
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			result, err := conv.ConvertJSON(data)
			if err != nil {
				return fmt.Errorf("error converting file: %w", err)
			}
			logWarnings(cmd.Context(), result.Warnings)

			fmt.Fprintln(cmd.OutOrStdout(), result.HTML)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", presetBalanced, "preset: balanced|strict")
	cmd.Flags().BoolVar(&strict, "strict", false, "return an error on unknown blocks, entities and styles")
	cmd.Flags().BoolVar(&syncIDs, "sync-ids", false, "regenerate heading ids from heading text")

	return cmd
}
