// Package dump reads activity exports for import into the local store.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bullsharks/internal/activity"
)

// LoadFromPath reads an activity dump (YAML or JSON) from path.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) ([]activity.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// LoadReader reads a whole dump from r and detects the format from content.
func LoadReader(r io.Reader) ([]activity.Activity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	return Load(data, "")
}

// Load parses a dump. ext is the file extension used as a format hint; empty
// means detect: a leading '[' is JSON, anything else YAML.
func Load(data []byte, ext string) ([]activity.Activity, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".json":
		return loadJSON(data)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		return loadJSON(data)
	}
	return loadYAML(data)
}

func loadJSON(data []byte) ([]activity.Activity, error) {
	var records []activity.Activity
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse dump json: %w", err)
	}
	return records, nil
}

func loadYAML(data []byte) ([]activity.Activity, error) {
	var records []activity.Activity
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse dump yaml: %w", err)
	}
	return records, nil
}
