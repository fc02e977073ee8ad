package cfgone

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DumpYAML serializes the flattened Object as YAML. The extends chain is
// already collapsed, so the output is a standalone config file equivalent to
// the resolved result.
func (o *Object) DumpYAML() ([]byte, error) {
	data, err := yaml.Marshal(o.ToMap())
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// DumpJSON serializes the flattened Object as indented JSON.
func (o *Object) DumpJSON() ([]byte, error) {
	data, err := json.MarshalIndent(o.ToMap(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// SaveFile writes the flattened Object to path, creating parent directories
// as needed. The format follows the file extension: .json for JSON, anything
// else for YAML. Files are written 0o600, directories 0o700.
func (o *Object) SaveFile(path string) error {
	var data []byte
	var err error
	if filepath.Ext(path) == ".json" {
		data, err = o.DumpJSON()
	} else {
		data, err = o.DumpYAML()
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o600)
}
