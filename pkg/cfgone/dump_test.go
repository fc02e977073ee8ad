package cfgone_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/cfgone/pkg/cfgone"
)

// TestDumpYAML verifies YAML serialization of the flattened Object.
func TestDumpYAML(t *testing.T) {
	obj := newObject(t, map[string]any{
		"host": "localhost",
		"database": map[string]any{
			"name": "app",
		},
		"tags": []any{"web", "api"},
	})

	data, err := obj.DumpYAML()
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, obj.ToMap(), back)
}

// TestDumpJSON verifies JSON serialization of the flattened Object.
func TestDumpJSON(t *testing.T) {
	obj := newObject(t, map[string]any{"port": 8080, "debug": true})

	data, err := obj.DumpJSON()
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, float64(8080), back["port"])
	assert.Equal(t, true, back["debug"])
}

// TestSaveFile verifies writing the resolved config back to disk.
func TestSaveFile(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		dir := t.TempDir()
		obj := newObject(t, map[string]any{"a": 1})
		path := filepath.Join(dir, "resolved.yaml")

		require.NoError(t, obj.SaveFile(path))

		back, err := cfgone.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, back)
	})

	t.Run("json file by extension", func(t *testing.T) {
		dir := t.TempDir()
		obj := newObject(t, map[string]any{"a": "v"})
		path := filepath.Join(dir, "resolved.json")

		require.NoError(t, obj.SaveFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var back map[string]any
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, map[string]any{"a": "v"}, back)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		dir := t.TempDir()
		obj := newObject(t, map[string]any{"a": 1})
		path := filepath.Join(dir, "deep", "nested", "resolved.yaml")

		require.NoError(t, obj.SaveFile(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("collapsed extends chain round trips", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "base.yaml", "a: 1\nb: 2\n")
		src := writeFile(t, dir, "config.yaml", "extends:\n  - base.yaml\nb: 3\n")

		resolved, err := cfgone.LoadFile(src)
		require.NoError(t, err)
		obj, err := cfgone.New(resolved)
		require.NoError(t, err)

		out := filepath.Join(dir, "flat.yaml")
		require.NoError(t, obj.SaveFile(out))

		back, err := cfgone.LoadFile(out)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 3}, back)
	})
}
