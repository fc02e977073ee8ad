package cfgone

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// extendsKey is the reserved top-level key naming parent config files.
// It is metadata and is removed from the mapping before merging.
const extendsKey = "extends"

// ResolvePath resolves an extends path against baseDir. Absolute paths are
// returned unchanged; relative paths are joined onto baseDir. Existence is
// not checked here; the loader validates it.
func ResolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// LoadFile loads a single config file and resolves its extends chain,
// returning the merged mapping. Relative extends paths, at any depth of the
// chain, are resolved against the directory containing path.
//
// An empty or null file yields an empty mapping. Extends cycles are rejected
// with ErrCircularExtends; diamond-shaped inheritance is fine.
func LoadFile(path string) (map[string]any, error) {
	return loadFile(path, make(map[string]struct{}), "", nil)
}

// loadFile implements the recursive load. visited holds the absolute paths
// on the active extends chain: a path is added on entry and removed on exit,
// so a file may be reached twice through independent branches but never
// through itself. baseDir is the directory of the originally loaded file and
// is propagated unchanged through the recursion; the top-level call passes
// "" and derives it here.
func loadFile(path string, visited map[string]struct{}, baseDir string, obs *observer) (map[string]any, error) {
	start := time.Now()
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	if baseDir == "" {
		baseDir = filepath.Dir(absPath)
	}

	if _, seen := visited[absPath]; seen {
		return nil, fmt.Errorf("%w: %s", ErrCircularExtends, absPath)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	visited[absPath] = struct{}{}
	endSpan := obs.fileSpan(absPath)

	data, err := os.ReadFile(path)
	if err != nil {
		readErr := fmt.Errorf("read config file %s: %w", path, err)
		endSpan(readErr)
		return nil, readErr
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		parseErr := fmt.Errorf("%w: %s: %v", ErrMalformedConfig, path, err)
		obs.fileParsed(absPath, time.Since(start), parseErr)
		endSpan(parseErr)
		return nil, parseErr
	}
	obs.fileParsed(absPath, time.Since(start), nil)
	endSpan(nil)
	if config == nil {
		config = map[string]any{}
	}

	extends, declared := config[extendsKey]
	delete(config, extendsKey)

	if !declared || extends == nil {
		delete(visited, absPath)
		return config, nil
	}

	parents, ok := extends.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list in %s, got %T", ErrInvalidExtends, extendsKey, path, extends)
	}

	// Fold the parents left to right, later entries overriding earlier ones.
	merged := map[string]any{}
	for _, parent := range parents {
		parentPath, ok := parent.(string)
		if !ok {
			return nil, fmt.Errorf("%w: all %q entries must be strings in %s, got %T", ErrInvalidExtends, extendsKey, path, parent)
		}
		parentConfig, err := loadFile(ResolvePath(parentPath, baseDir), visited, baseDir, obs)
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, parentConfig)
	}

	// The file's own keys override everything inherited.
	final := DeepMerge(merged, config)

	delete(visited, absPath)
	return final, nil
}
