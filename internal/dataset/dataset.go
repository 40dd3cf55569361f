// Package dataset carries the embedded Class 10 curriculum dataset.
// The data is read-only: the rest of the program treats the parsed
// structure as immutable.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Biniyan/sociomap/internal/model"
)

//go:embed nepal.json
var seedJSON []byte

// Seed parses the embedded dataset. Each call returns a fresh copy, so
// callers cannot corrupt the seed for one another.
func Seed() (*model.Dataset, error) {
	var ds model.Dataset
	if err := json.Unmarshal(seedJSON, &ds); err != nil {
		return nil, fmt.Errorf("parsing embedded dataset: %w", err)
	}
	return &ds, nil
}
