package cfgone

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename is the config file name Load searches for.
const DefaultFilename = "config.yaml"

// DefaultRootMarkers are the file and directory names whose presence marks a
// directory as a project root.
var DefaultRootMarkers = []string{
	"go.mod",
	"go.sum",
	".git",
	".gitignore",
	"pyproject.toml",
}

// FindProjectRoot walks startDir and each of its ancestors, closest first,
// and returns the first directory that directly contains any of the marker
// names as a file or directory. ok is false when the filesystem root is
// reached without a match.
func FindProjectRoot(startDir string, markers []string) (root string, ok bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DiscoverPath locates the config file named filename, starting from
// startDir. Three tiers are tried in order, each short-circuiting on the
// first hit:
//
//  1. startDir itself.
//  2. The project root (FindProjectRoot with DefaultRootMarkers).
//  3. Every ancestor of startDir, walking outward.
//
// Returns ErrNotFound when all tiers are exhausted.
func DiscoverPath(filename, startDir string) (string, error) {
	return discoverPath(filename, startDir, DefaultRootMarkers)
}

func discoverPath(filename, startDir string, markers []string) (string, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("%w: %q starting from %q: %v", ErrNotFound, filename, startDir, err)
	}

	// Prefer an explicit config in the start directory.
	candidate := filepath.Join(start, filename)
	if isFile(candidate) {
		return candidate, nil
	}

	// Fall back to the detected project root, if any.
	if root, ok := FindProjectRoot(start, markers); ok {
		rootCandidate := filepath.Join(root, filename)
		if isFile(rootCandidate) {
			return rootCandidate, nil
		}
	}

	// As a last resort, search ancestor directories for a match.
	for dir := filepath.Dir(start); ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, filename)
		if isFile(candidate) {
			return candidate, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	return "", fmt.Errorf("%w: %q starting from %q", ErrNotFound, filename, start)
}

// isFile reports whether path exists and is a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
