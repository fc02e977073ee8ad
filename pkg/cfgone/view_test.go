package cfgone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetString verifies string extraction with defaults.
func TestGetString(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		key  string
		want string
	}{
		{"key exists", map[string]any{"name": "alice"}, "name", "alice"},
		{"key missing", map[string]any{"other": "value"}, "name", "default"},
		{"empty string", map[string]any{"name": ""}, "name", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default"},
		{"wrong type bool", map[string]any{"name": true}, "name", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetString(tt.key, "default"))
		})
	}
}

// TestGetBool verifies bool extraction with defaults.
func TestGetBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"enabled": true}, false, true},
		{"false value", map[string]any{"enabled": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"wrong type", map[string]any{"enabled": "yes"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetBool("enabled", tt.defaultVal))
		})
	}
}

// TestGetInt verifies integer extraction and conversions.
func TestGetInt(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want int
	}{
		{"int", map[string]any{"n": 42}, 42},
		{"int64", map[string]any{"n": int64(42)}, 42},
		{"whole float", map[string]any{"n": 42.0}, 42},
		{"fractional float rejected", map[string]any{"n": 42.5}, -1},
		{"missing", map[string]any{}, -1},
		{"wrong type", map[string]any{"n": "42"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetInt("n", -1))
		})
	}
}

// TestGetFloat verifies float extraction and conversions.
func TestGetFloat(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want float64
	}{
		{"float", map[string]any{"n": 1.5}, 1.5},
		{"int", map[string]any{"n": 3}, 3.0},
		{"int64", map[string]any{"n": int64(7)}, 7.0},
		{"missing", map[string]any{}, -1.0},
		{"wrong type", map[string]any{"n": "1.5"}, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetFloat("n", -1.0))
		})
	}
}

// TestGetDuration verifies duration extraction with various input types.
func TestGetDuration(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want time.Duration
	}{
		{"string duration", map[string]any{"timeout": "30s"}, 30 * time.Second},
		{"string complex duration", map[string]any{"timeout": "1h30m"}, 90 * time.Minute},
		{"int seconds", map[string]any{"timeout": 60}, 60 * time.Second},
		{"int64 seconds", map[string]any{"timeout": int64(45)}, 45 * time.Second},
		{"float64 seconds", map[string]any{"timeout": 30.5}, 30*time.Second + 500*time.Millisecond},
		{"duration directly", map[string]any{"timeout": 5 * time.Minute}, 5 * time.Minute},
		{"missing", map[string]any{}, 10 * time.Second},
		{"invalid string", map[string]any{"timeout": "soon"}, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetDuration("timeout", 10*time.Second))
		})
	}
}

// TestGetStringSlice verifies string slice extraction.
func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want []string
	}{
		{"any slice of strings", map[string]any{"tags": []any{"a", "b"}}, []string{"a", "b"}},
		{"empty slice", map[string]any{"tags": []any{}}, []string{}},
		{"mixed elements rejected", map[string]any{"tags": []any{"a", 1}}, []string{"default"}},
		{"missing", map[string]any{}, []string{"default"}},
		{"wrong type", map[string]any{"tags": "a,b"}, []string{"default"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObject(t, tt.data)
			assert.Equal(t, tt.want, obj.GetStringSlice("tags", []string{"default"}))
		})
	}
}

// TestGetObject verifies nested Object extraction.
func TestGetObject(t *testing.T) {
	obj := newObject(t, map[string]any{
		"database": map[string]any{"name": "app"},
		"plain":    "scalar",
	})

	db := obj.GetObject("database")
	if assert.NotNil(t, db) {
		assert.Equal(t, "app", db.GetString("name", ""))
	}
	assert.Nil(t, obj.GetObject("plain"))
	assert.Nil(t, obj.GetObject("missing"))
}
