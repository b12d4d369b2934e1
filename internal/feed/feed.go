// Package feed reads the job listings written by the external schedule scraper.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xolan/shiftbook/internal/shift"
)

// Parse decodes a JSON array of scraped job records
func Parse(r io.Reader) ([]shift.RawExternalRecord, error) {
	var records []shift.RawExternalRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []shift.RawExternalRecord{}, nil
		}
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	if records == nil {
		records = []shift.RawExternalRecord{}
	}
	return records, nil
}

// Load reads the feed file at path. A missing file or an empty path is an
// empty feed, since the scraper may not have run yet.
func Load(path string) ([]shift.RawExternalRecord, error) {
	if path == "" {
		return []shift.RawExternalRecord{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []shift.RawExternalRecord{}, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}
