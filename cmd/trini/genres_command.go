package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trini/internal/genre"
)

type genreRow struct {
	Code    genre.Code   `json:"code"`
	Name    string       `json:"name"`
	Key     string       `json:"cache_key,omitempty"`
	Terms   []string     `json:"terms"`
	Related []genre.Code `json:"related,omitempty"`
}

func newGenresCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "genres",
		Short:       "List the genre table",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			table := genre.Default()
			infos := table.All()
			if jsonOut {
				out := make([]genreRow, 0, len(infos))
				for _, info := range infos {
					out = append(out, genreRow{Code: info.Code, Name: info.Name, Key: info.Key, Terms: info.Terms, Related: info.Related})
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				key := info.Key
				if key == "" {
					key = "-"
				}
				rows = append(rows, []string{
					strconv.Itoa(int(info.Code)),
					info.Name,
					key,
					strings.Join(info.Terms, ", "),
					strings.Join(table.Names(info.Related), ", "),
				})
			}
			columns := []column{
				{header: "Code", right: true},
				{header: "Name"},
				{header: "Cache key"},
				{header: "Terms", maxWidth: 50},
				{header: "Related"},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(columns, rows, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
