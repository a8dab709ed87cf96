package moviecache

import (
	"context"
	"fmt"
	"os"
	"sort"

	"trini/internal/candidate"
)

// Seed writes every key in records to store and returns the number of
// records written. Keys are written in sorted order.
func Seed(ctx context.Context, store Store, records map[string][]candidate.Raw) (int, error) {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	total := 0
	for _, key := range keys {
		if err := store.Put(ctx, key, records[key]); err != nil {
			return total, fmt.Errorf("seed %s: %w", key, err)
		}
		total += len(records[key])
	}
	return total, nil
}

// LoadSeedFile reads a seed document from disk.
func LoadSeedFile(path string) (map[string][]candidate.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return DecodeSeed(data)
}
