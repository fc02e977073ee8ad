package cfgone

import (
	"time"
)

// Typed getters over Object fields. All of them return the supplied default
// when the field is missing or cannot be converted to the requested type,
// so callers can read settings without type assertions and nil checks.

// GetString returns the string value for name, or defaultVal if missing or
// not a string.
func (o *Object) GetString(name, defaultVal string) string {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// GetBool returns the boolean value for name, or defaultVal if missing or
// not a bool.
func (o *Object) GetBool(name string, defaultVal bool) bool {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// GetInt returns the integer value for name, or defaultVal if missing or
// not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted only when there is no fractional part
func (o *Object) GetInt(name string, defaultVal int) int {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// GetFloat returns the float64 value for name, or defaultVal if missing or
// not convertible.
func (o *Object) GetFloat(name string, defaultVal float64) float64 {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// GetDuration returns the duration value for name, or defaultVal if missing
// or invalid.
//
// Accepts:
//   - string: parsed with time.ParseDuration
//   - int, int64, float64: interpreted as seconds
//   - time.Duration: used directly
func (o *Object) GetDuration(name string, defaultVal time.Duration) time.Duration {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case float64:
		return time.Duration(val * float64(time.Second))
	case int:
		return time.Duration(val) * time.Second
	case int64:
		return time.Duration(val) * time.Second
	case time.Duration:
		return val
	}
	return defaultVal
}

// GetStringSlice returns the string slice for name, or defaultVal if missing
// or any element is not a string.
func (o *Object) GetStringSlice(name string, defaultVal []string) []string {
	v, ok := o.fields[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, s)
		}
		return result
	}
	return defaultVal
}

// GetObject returns the nested Object for name, or nil if missing or the
// field is not a mapping.
func (o *Object) GetObject(name string) *Object {
	if child, ok := o.fields[name].(*Object); ok {
		return child
	}
	return nil
}
