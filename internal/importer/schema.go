package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for wellness data import
// and export.
type ImportSchema struct {
	Habits        []HabitImport       `json:"habits"`
	StressEntries []StressEntryImport `json:"stress_entries,omitempty"`
}

// HabitImport defines one tracked habit in the import file.
type HabitImport struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Streak      int      `json:"streak,omitempty"`
	Completions []string `json:"completions,omitempty"`
}

// StressEntryImport defines one stress log entry in the import file.
type StressEntryImport struct {
	Level      string `json:"level"`
	Note       string `json:"note,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// LoadImportSchema reads and parses a wellness import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// WriteSchema serializes the schema as indented JSON to the given path.
func WriteSchema(path string, schema *ImportSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
