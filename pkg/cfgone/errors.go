package cfgone

import (
	"errors"
)

// Sentinel errors for discovery and loading.
var (
	// ErrNotFound indicates the config file, or an extends target, does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrCircularExtends indicates an extends chain revisits one of its own ancestors.
	ErrCircularExtends = errors.New("circular extends dependency")

	// ErrMalformedConfig indicates the YAML parser rejected the file content.
	ErrMalformedConfig = errors.New("malformed config file")

	// ErrInvalidExtends indicates "extends" is not a list of strings.
	ErrInvalidExtends = errors.New("invalid extends value")
)

// Sentinel errors for Object access.
var (
	// ErrNoSuchField indicates a read of a field that was never set.
	ErrNoSuchField = errors.New("no such field")

	// ErrNotMapping indicates an Object was constructed from a non-mapping value.
	ErrNotMapping = errors.New("value is not a mapping")
)

// sentinels lists every error kind that must propagate unchanged through
// the generic wrapping in Load.
var sentinels = []error{
	ErrNotFound,
	ErrCircularExtends,
	ErrMalformedConfig,
	ErrInvalidExtends,
	ErrNoSuchField,
	ErrNotMapping,
}

// isConfigError reports whether err wraps one of the package's sentinel errors.
func isConfigError(err error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
