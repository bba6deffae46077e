package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgonek/draftail-anchors/converter"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Print the heading id generated for text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), converter.Slug(strings.Join(args, " ")))
			return nil
		},
	}
}
