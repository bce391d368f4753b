package candidate

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/mitchellh/mapstructure"
)

//go:embed candidates.json
var embeddedDataset []byte

// Default returns the built-in sample dataset.
func Default() (*Set, error) {
	return decode(embeddedDataset)
}

// LoadFile reads a candidate dataset from a JSON file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	set, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset file %q: %w", path, err)
	}
	return set, nil
}

func decode(data []byte) (*Set, error) {
	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	var records []*Record
	cfg := &mapstructure.DecoderConfig{
		Result:  &records,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding candidate records: %w", err)
	}

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}
	}

	return &Set{Items: records}, nil
}
