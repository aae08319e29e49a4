// Package output serializes triage results to their final destination,
// either a JSON document or a single-file SQLite database.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felo/inbox-triage/internal/pipeline"
)

// WriteJSON writes results to path as an indented JSON array, preserving
// their order. The write happens after all processing is finished, so a
// failure here loses nothing silently: the error carries the path and is
// surfaced to the caller for retry.
func WriteJSON(path string, results []pipeline.Result) error {
	// Marshal an empty array rather than null for zero results.
	if results == nil {
		results = []pipeline.Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}

	return nil
}

// ReadJSON reads back a results file written by WriteJSON.
func ReadJSON(path string) ([]pipeline.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results from %s: %w", path, err)
	}

	var results []pipeline.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}

	return results, nil
}
