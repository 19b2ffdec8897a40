package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/tui/preview"
)

const defaultPreviewText = "The quick brown fox"

var errNotTerminal = errors.New("interactive preview requires a terminal")

type previewOptions struct {
	interactive bool
	text        string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show text at every heading level",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			ctx, err := flags.renderContext(cmd, log)
			if err != nil {
				return err
			}

			if opts.interactive {
				if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
					return errNotTerminal
				}
				log.Debug("launching interactive preview")
				return preview.Run(cmd.Context(), preview.NewModel(ctx, opts.text), cmd.InOrStdin(), cmd.OutOrStdout())
			}

			out, err := preview.Static(ctx, opts.text, preview.Levels(ctx.RichText.HeadingStyle))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse levels interactively")
	cmd.Flags().StringVarP(&opts.text, "text", "t", defaultPreviewText, "Text to preview")

	return cmd
}
