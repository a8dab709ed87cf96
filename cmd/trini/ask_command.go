package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"trini/internal/config"
	"trini/internal/recommender"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var (
		limit       int
		excludes    []string
		genrePrefs  []string
		profilePath string
		jsonOut     bool
		noAI        bool
		metrics     bool
	)

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Recommend movies for a natural-language query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime(func(cfg *config.Config) {
				if noAI {
					cfg.Extraction.AIEnabled = false
				}
			})
			if err != nil {
				return err
			}
			defer ctx.close()
			preferred, err := parseGenres(rt.Engine.Genres(), genrePrefs)
			if err != nil {
				return err
			}
			user, err := loadUser(profilePath, excludes, preferred)
			if err != nil {
				return err
			}

			reqCtx, _ := requestContext(cmd)
			var opts []recommender.AskOption
			if limit > 0 {
				opts = append(opts, recommender.WithLimit(limit))
			}
			resp, err := rt.Engine.Ask(reqCtx, strings.Join(args, " "), user, opts...)
			if err != nil {
				return err
			}

			if jsonOut {
				err = writeJSON(cmd, resp)
			} else {
				printResponse(cmd, resp)
			}
			if err != nil {
				return err
			}
			if metrics {
				return dumpMetrics(cmd, rt.Registry)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of recommendations (default from config, max 20)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Movie ids to leave out (repeatable or comma separated)")
	cmd.Flags().StringSliceVar(&genrePrefs, "genre-pref", nil, "Preferred genres for the prompt context (codes or names)")
	cmd.Flags().StringVar(&profilePath, "profile", "", "User profile JSON file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip the language model and extract filters deterministically")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print cascade metrics to stderr after the run")
	return cmd
}

func printResponse(cmd *cobra.Command, resp recommender.Response) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if resp.NeedsClarification() {
		fmt.Fprintln(out, highlight(resp.Clarification, ansiYellow, colorize))
		return
	}
	fmt.Fprintf(out, "%s %s (filters: %s, confidence %.2f)\n",
		highlight("Request", ansiCyan, colorize), resp.RequestID, resp.Source, resp.Filters.Confidence)
	fmt.Fprintln(out, renderRecommendations(resp.Recommendations, colorize))
}

func dumpMetrics(cmd *cobra.Command, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	w := cmd.ErrOrStderr()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
