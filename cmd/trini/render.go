package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/recommendation"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func highlight(s, color string, colorize bool) string {
	if !colorize {
		return s
	}
	return color + s + ansiReset
}

func renderRecommendations(recs []recommendation.MovieRecommendation, colorize bool) string {
	columns := []column{
		{header: "#", right: true},
		{header: "ID"},
		{header: "Title", maxWidth: 36},
		{header: "Year", right: true},
		{header: "Rating", right: true},
		{header: "Score", right: true},
		{header: "Source"},
		{header: "Reasoning", maxWidth: 60},
	}
	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		year := ""
		if y := rec.Movie.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.Movie.ID,
			rec.Movie.Title,
			year,
			fmt.Sprintf("%.1f", rec.Movie.Rating),
			fmt.Sprintf("%.3f", rec.RelevanceScore),
			string(rec.Source),
			rec.Reasoning,
		})
	}
	return renderTable(columns, rows, colorize)
}

func renderFilters(f filters.ExtractedFilters, table *genre.Table, colorize bool) string {
	rows := [][]string{
		{"genres", describeGenres(f.Genres, table)},
		{"year_range", describeYearRange(f.YearRange)},
		{"rating_range", describeRatingRange(f.RatingRange)},
		{"keywords", strings.Join(f.Keywords, ", ")},
		{"intent", string(f.Intent)},
		{"confidence", fmt.Sprintf("%.2f", f.Confidence)},
	}
	if len(f.ExcludeIDs) > 0 {
		rows = append(rows, []string{"exclude_ids", strings.Join(f.ExcludeIDs, ", ")})
	}
	return renderTable([]column{{header: "Filter"}, {header: "Value", maxWidth: 70}}, rows, colorize)
}

func describeGenres(codes []genre.Code, table *genre.Table) string {
	if len(codes) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s (%d)", table.Name(code), code))
	}
	return strings.Join(parts, ", ")
}

func describeYearRange(r *filters.YearRange) string {
	if r == nil {
		return "-"
	}
	bound := func(y int) string {
		if y == 0 {
			return "…"
		}
		return strconv.Itoa(y)
	}
	return bound(r.Min) + "–" + bound(r.Max)
}

func describeRatingRange(r *filters.RatingRange) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f–%.1f", r.Min, r.Max)
}
