package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// Blob file names inside the data directory
const (
	ExcludedDatesFile      = "excluded_dates.json"
	ExcludedIdentitiesFile = "excluded_identities.json"
	OverridesFile          = "salary_overrides.json"
	LocationsFile          = "locations.json"
)

// ReadJSON decodes the JSON document at path into v.
// A missing file leaves v untouched and reports found == false.
func ReadJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

// WriteJSON replaces the file at path with the indented JSON encoding of v,
// writing to a temporary file first and renaming it over the original.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return WriteFileAtomic(path, append(data, '\n'))
}

// WriteFileAtomic replaces the file at path with data by writing a
// temporary file next to it and renaming it into place
func WriteFileAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
