package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tagcloud/internal/cloud"
	"tagcloud/internal/config"
	"tagcloud/internal/logging"
	"tagcloud/internal/render"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var countText string
	var outputBase string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Write an HTML tag cloud of the most frequent words in a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			ask := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			input := ""
			if len(args) > 0 {
				input = strings.TrimSpace(args[0])
			}
			if input == "" {
				if input, err = ask.ask(promptInput); err != nil {
					return err
				}
			}

			var count int
			switch {
			case cmd.Flags().Changed("count"):
				if count, err = cloud.ParseCount(countText); err != nil {
					return err
				}
			case cfg.Generate.DefaultCount > 0:
				count = cfg.Generate.DefaultCount
			default:
				answer, err := ask.ask(promptCount)
				if err != nil {
					return err
				}
				if count, err = cloud.ParseCount(answer); err != nil {
					return err
				}
			}

			base := strings.TrimSpace(outputBase)
			if base == "" {
				if base, err = ask.ask(promptOutput); err != nil {
					return err
				}
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			runCtx := logging.WithRunID(cmd.Context(), "")
			result, err := cloud.Generate(runCtx, logger, cloud.Options{
				InputPath:   input,
				Count:       count,
				OutputPath:  cfg.OutputPath(base),
				Preconnect:  preconnectHints(cfg.Render.Preconnect),
				Stylesheets: cfg.Render.Stylesheets,
			})
			if err != nil {
				logging.ErrorWithContext(logging.WithContext(runCtx, logger), "tag cloud generation failed", "generate_failed",
					logging.String("input_path", input),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, cloud.Hint(err)),
				)
				return err
			}

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), result)
			}
			writeGenerateSummary(cmd.OutOrStdout(), result, isTerminal(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&countText, "count", "n", "", "Number of words to include")
	cmd.Flags().StringVarP(&outputBase, "output", "o", "", "Output file name without extension")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func preconnectHints(origins []config.Preconnect) []render.Preconnect {
	hints := make([]render.Preconnect, 0, len(origins))
	for _, origin := range origins {
		hints = append(hints, render.Preconnect{Origin: origin.Origin, CrossOrigin: origin.CrossOrigin})
	}
	return hints
}
