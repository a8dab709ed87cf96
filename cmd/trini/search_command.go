package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trini/internal/filters"
	"trini/internal/recommendation"
)

type searchOutput struct {
	RequestID string                               `json:"request_id"`
	Filters   filters.ExtractedFilters             `json:"filters"`
	Results   []recommendation.MovieRecommendation `json:"recommendations"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		genres    []string
		yearMin   int
		yearMax   int
		ratingMin float64
		keywords  []string
		excludes  []string
		limit     int
		jsonOut   bool
		metrics   bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run the retrieval cascade from explicit filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime(nil)
			if err != nil {
				return err
			}
			defer ctx.close()
			codes, err := parseGenres(rt.Engine.Genres(), genres)
			if err != nil {
				return err
			}
			f := filters.ExtractedFilters{
				Genres:     codes,
				Keywords:   splitList(keywords),
				Intent:     filters.IntentRecommendation,
				Confidence: 1,
				ExcludeIDs: splitList(excludes),
				Calibrated: true,
			}
			if yearMin != 0 || yearMax != 0 {
				f.YearRange = filters.NewYearRange(yearMin, yearMax)
			}
			if ratingMin > 0 {
				if ratingMin > filters.MaxRating {
					return fmt.Errorf("--rating-min must be at most %.0f", filters.MaxRating)
				}
				f.RatingRange = filters.NewRatingRange(&ratingMin, nil)
			}

			reqCtx, id := requestContext(cmd)
			recs := rt.Engine.Search(reqCtx, f, limit)
			if jsonOut {
				err = writeJSON(cmd, searchOutput{RequestID: id, Filters: f, Results: recs})
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderRecommendations(recs, shouldColorize(out)))
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

	cmd.Flags().StringSliceVar(&genres, "genre", nil, "Genre code or name (repeatable)")
	cmd.Flags().IntVar(&yearMin, "year-min", 0, "Earliest release year")
	cmd.Flags().IntVar(&yearMax, "year-max", 0, "Latest release year")
	cmd.Flags().Float64Var(&ratingMin, "rating-min", 0, "Minimum rating (0-10)")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Keyword (repeatable)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Movie ids to leave out")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of recommendations (default from config, max 20)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print cascade metrics to stderr after the run")
	return cmd
}
