package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trini/internal/ambiguity"
	"trini/internal/extraction"
	"trini/internal/filters"
	"trini/internal/genre"
)

type extractOutput struct {
	Query     string                   `json:"query"`
	Filters   filters.ExtractedFilters `json:"filters"`
	Ambiguous bool                     `json:"ambiguous"`
	Decision  string                   `json:"decision"`
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "extract <query...>",
		Short: "Show the filters extracted from a query without remote calls",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			query, err := extraction.Sanitize(strings.Join(args, " "), cfg.Extraction.MaxQueryLength)
			if err != nil {
				return err
			}
			table := genre.Default()
			f := extraction.New(table, extraction.WithMaxQueryLength(cfg.Extraction.MaxQueryLength)).Extract(query)
			decision := ambiguity.Classify(ambiguity.Calibrate(f), query)

			result := extractOutput{Query: query, Filters: f, Ambiguous: !decision.Proceed(), Decision: decision.String()}
			if jsonOut {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderFilters(f, table, shouldColorize(out)))
			fmt.Fprintf(out, "Ambiguous: %s (%s)\n", yesNo(result.Ambiguous), result.Decision)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
