package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/document"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a markdown document",
		Long:  `Render a markdown document. Reads standard input when FILE is "-" or omitted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			ctx, err := flags.renderContext(cmd, log)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd, args)
			if err != nil {
				log.Error(err, "failed to read document")
				return err
			}

			out, err := document.NewRenderer(ctx, log).RenderDocument(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

func readDocument(cmd *cobra.Command, args []string) (document.Document, error) {
	if len(args) == 1 && args[0] != "-" {
		return document.ParseFile(args[0])
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return document.Document{}, quillerrors.NewParseError("<stdin>", 0, err)
	}
	return document.Parse(data), nil
}
