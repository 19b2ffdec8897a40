package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quill",
		Short:         "Quill renders rich text with heading styles in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a theme configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colors and text attributes")

	cmd.AddCommand(newHeadingCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes to the command's error stream so rendered output stays clean.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}

// renderContext loads the configured theme, or the default one when no
// config was given, and fits it to the output width.
func (f *rootFlags) renderContext(cmd *cobra.Command, log *logger.Logger) (components.RenderContext, error) {
	ctx := components.DefaultContext()
	if f.configPath != "" {
		cfg, err := config.ParseConfig(f.configPath)
		if err != nil {
			log.Error(err, "failed to load config")
			return components.RenderContext{}, err
		}
		ctx, err = cfg.RenderContext()
		if err != nil {
			log.Error(err, "failed to build render context")
			return components.RenderContext{}, err
		}
		log.WithFields(map[string]any{
			"config": f.configPath,
			"theme":  ctx.Theme.Name,
		}).Debug("loaded config")
	}

	if width, ok := terminalWidth(cmd.OutOrStdout()); ok {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}
	return ctx, nil
}
