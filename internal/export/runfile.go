// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubfetch/pkg/types"
)

// RunFile is the on-disk representation of one fetch run. A run can be
// saved alongside (or instead of) the CSV export and reloaded later
// without re-querying the API.
type RunFile struct {
	Query     string              `yaml:"query"`
	Timestamp time.Time           `yaml:"timestamp"`
	Total     int                 `yaml:"total"`
	Records   []types.PaperRecord `yaml:"records"`
}

// WriteRunFile saves the query and its records to a YAML file.
func WriteRunFile(path, query string, records []types.PaperRecord) error {
	rf := RunFile{
		Query:     query,
		Timestamp: time.Now(),
		Total:     len(records),
		Records:   records,
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
