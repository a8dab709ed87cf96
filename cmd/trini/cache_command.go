package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"trini/internal/candidate"
	"trini/internal/curated"
	"trini/internal/moviecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the movie cache used by the fallback tier",
	}

	cacheCmd.AddCommand(newCacheSeedCommand(ctx))
	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

// withStore opens the configured backend for the duration of fn.
func (c *commandContext) withStore(fn func(context.Context, moviecache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	store, err := moviecache.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(context.Background(), store)
}

func newCacheSeedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Load the curated catalog, or a JSON file of key -> records, into the cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				records map[string][]candidate.Raw
				source  = "curated catalog"
			)
			if len(args) == 1 {
				loaded, err := moviecache.LoadSeedFile(args[0])
				if err != nil {
					return err
				}
				records = loaded
				source = args[0]
			} else {
				records = curated.Default().SeedRecords()
			}

			return ctx.withStore(func(c context.Context, store moviecache.Store) error {
				written, err := moviecache.Seed(c, store, records)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d keys from %s\n", written, source)
				return nil
			})
		},
	}
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cache keys and record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(c context.Context, store moviecache.Store) error {
				keys, err := store.Keys(c)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, keys)
				}
				out := cmd.OutOrStdout()
				if len(keys) == 0 {
					fmt.Fprintln(out, "Cache is empty")
					return nil
				}
				rows := make([][]string, 0, len(keys))
				total := 0
				for _, k := range keys {
					total += k.Count
					rows = append(rows, []string{k.Key, strconv.Itoa(k.Count), formatUpdated(k.UpdatedAt)})
				}
				columns := []column{{header: "Key"}, {header: "Records", right: true}, {header: "Updated"}}
				fmt.Fprintln(out, renderTable(columns, rows, shouldColorize(out)))
				fmt.Fprintf(out, "%d keys, %d records\n", len(keys), total)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cache entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(c context.Context, store moviecache.Store) error {
				if err := store.Clear(c); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
				return nil
			})
		},
	}
}

func formatUpdated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
