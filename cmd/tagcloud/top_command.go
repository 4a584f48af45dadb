package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tagcloud/internal/cloud"
	"tagcloud/internal/logging"
)

func newTopCommand(ctx *commandContext) *cobra.Command {
	var countText string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "top <input>",
		Short: "Print the most frequent words of a file without writing a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			count := cfg.Generate.DefaultCount
			if cmd.Flags().Changed("count") || count <= 0 {
				if count, err = cloud.ParseCount(countText); err != nil {
					return err
				}
			}

			input := strings.TrimSpace(args[0])
			runCtx := logging.WithRunID(cmd.Context(), "")
			analysis, err := cloud.Analyze(runCtx, logger, input, count)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), analysis)
			}
			out := cmd.OutOrStdout()
			if len(analysis.Entries) == 0 {
				fmt.Fprintln(out, "No words found")
				return nil
			}
			fmt.Fprintln(out, rankingTable(analysis.Entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&countText, "count", "n", "10", "Number of words to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print entries as JSON")
	return cmd
}
