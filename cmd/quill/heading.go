package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
)

func newHeadingCmd(flags *rootFlags) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "heading TEXT...",
		Short: "Render a single heading",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			ctx, err := flags.renderContext(cmd, log)
			if err != nil {
				return err
			}

			heading, err := components.NewHeading(level, strings.Join(args, " "))
			if err != nil {
				log.Error(err, "invalid heading")
				return err
			}
			resolved, err := heading.TextStyle(ctx)
			if err != nil {
				return err
			}
			log.WithFields(map[string]any{
				"heading_level": level,
				"style":         resolved.String(),
			}).Debug("rendering heading")

			fmt.Fprintln(cmd.OutOrStdout(), heading.ViewWithContext(ctx))
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "Heading level, 0 is the most prominent")

	return cmd
}
