package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/recommender"
	"trini/internal/validation"
)

type validateOutput struct {
	Accepted bool                     `json:"accepted"`
	Reason   string                   `json:"reason,omitempty"`
	Filters  filters.ExtractedFilters `json:"filters"`
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var (
		query   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "validate <payload|->",
		Short: "Validate a model answer, falling back to deterministic extraction",
		Long: "Validate checks a language-model answer against the filter schema. " +
			"Pass the answer as an argument or \"-\" to read it from stdin. When the " +
			"answer is unusable, filters are extracted from --query with reduced confidence.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			payload, err := readArgument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			table := genre.Default()
			result := validateOutput{Accepted: true}
			if _, verr := validation.New(table).Validate(payload); verr != nil {
				result.Accepted = false
				result.Reason = verr.Error()
			}
			engine := recommender.New(recommender.Options{Genres: table, MaxQueryLength: cfg.Extraction.MaxQueryLength})
			result.Filters = engine.ValidateAndExtract(payload, query, nil)

			if jsonOut {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if result.Accepted {
				fmt.Fprintln(out, highlight("Payload accepted", ansiCyan, colorize))
			} else {
				fmt.Fprintln(out, highlight("Payload rejected: "+result.Reason, ansiYellow, colorize))
				fmt.Fprintln(out, "Filters extracted from --query instead")
			}
			fmt.Fprintln(out, renderFilters(result.Filters, table, colorize))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Original user query for the deterministic fallback")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
