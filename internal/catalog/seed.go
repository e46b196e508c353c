package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// SeedRecords returns the bundled starter catalog.
func SeedRecords() ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(seedJSON, &records); err != nil {
		return nil, fmt.Errorf("decoding seed catalog: %w", err)
	}
	return records, nil
}
