package moviecache

import (
	"fmt"

	"github.com/goccy/go-json"

	"trini/internal/candidate"
)

func encodeRecords(records []candidate.Raw) ([]byte, error) {
	if records == nil {
		records = []candidate.Raw{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

func decodeRecords(data []byte) ([]candidate.Raw, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []candidate.Raw
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// DecodeSeed parses a seed document: a JSON object mapping cache keys to
// arrays of movie records.
func DecodeSeed(data []byte) (map[string][]candidate.Raw, error) {
	var seed map[string][]candidate.Raw
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}
