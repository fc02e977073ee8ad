package cfgone

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Marker strings substituted by ToMap when flattening hits a reference
// cycle or exceeds the depth ceiling.
const (
	circularMarker = "<circular reference>"
	maxDepthMarker = "<max depth exceeded>"
)

// Object is a field-addressable view over a resolved config mapping.
//
// An Object holds an explicit ordered field table: nested mappings are
// wrapped as child Objects at construction, and mapping elements inside
// slices are wrapped the same way. Scalars pass through unchanged.
//
// Objects are freely mutable after construction via Set; no validation is
// applied. They carry no internal locking.
type Object struct {
	keys   []string
	fields map[string]any
}

// New constructs an Object from a mapping. Any other value, including nil,
// fails with ErrNotMapping.
//
// Field order is deterministic: construction inserts keys in sorted order;
// keys added later via Set append in call order.
func New(value any) (*Object, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected map[string]any, got %T", ErrNotMapping, value)
	}
	return fromMap(m, 0), nil
}

// fromMap wraps a mapping, recursing into nested mappings and slices.
// Values below the depth ceiling are stored raw rather than wrapped.
func fromMap(m map[string]any, depth int) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := &Object{
		keys:   keys,
		fields: make(map[string]any, len(m)),
	}
	for _, k := range keys {
		obj.fields[k] = wrapValue(m[k], depth+1)
	}
	return obj
}

// wrapValue converts raw mappings into Objects and rewraps slice elements.
func wrapValue(v any, depth int) any {
	if depth > maxDepth {
		return v
	}
	switch val := v.(type) {
	case map[string]any:
		return fromMap(val, depth)
	case []any:
		wrapped := make([]any, len(val))
		for i, item := range val {
			wrapped[i] = wrapValue(item, depth+1)
		}
		return wrapped
	default:
		return v
	}
}

// Get returns the value of the named field. Reading a field that was never
// set fails with ErrNoSuchField. A field explicitly set to nil returns
// (nil, nil).
func (o *Object) Get(name string) (any, error) {
	v, ok := o.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}
	return v, nil
}

// GetDefault returns the value of the named field, or def when the field
// was never set. It never fails.
func (o *Object) GetDefault(name string, def any) any {
	if v, ok := o.fields[name]; ok {
		return v
	}
	return def
}

// Set sets or overwrites a field. Raw mappings and slices are wrapped the
// same way construction wraps them; Objects and scalars are stored as-is,
// so reference structures built from existing Objects are preserved.
func (o *Object) Set(name string, value any) {
	if _, ok := o.fields[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = wrapValue(value, 0)
}

// Has reports whether the named field is set.
func (o *Object) Has(name string) bool {
	_, ok := o.fields[name]
	return ok
}

// Keys returns the field names in their stable order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// ToMap flattens the Object graph back into plain map/slice/scalar form.
//
// Flattening is cycle-safe: mutation after construction can attach reference
// cycles (a.Set("ref", b); b.Set("ref", a)), so any Object already being
// flattened on the active path is replaced by a circular-reference marker
// string. Depth is bounded the same way, substituting a max-depth marker.
func (o *Object) ToMap() map[string]any {
	// The top-level call starts below the ceiling with an empty path, so the
	// result is always a mapping.
	return o.toValue(make(map[*Object]struct{}), 0).(map[string]any)
}

// toValue flattens one node. seen holds the Objects on the active path;
// entries are removed on the way back up so DAG-shaped sharing flattens
// each occurrence normally.
func (o *Object) toValue(seen map[*Object]struct{}, depth int) any {
	if depth > maxDepth {
		return maxDepthMarker
	}
	if _, active := seen[o]; active {
		return circularMarker
	}
	seen[o] = struct{}{}
	defer delete(seen, o)

	result := make(map[string]any, len(o.fields))
	for _, key := range o.keys {
		result[key] = flattenValue(o.fields[key], seen, depth+1)
	}
	return result
}

// flattenValue flattens nested Objects and slice elements.
func flattenValue(v any, seen map[*Object]struct{}, depth int) any {
	if depth > maxDepth {
		return maxDepthMarker
	}
	switch val := v.(type) {
	case *Object:
		return val.toValue(seen, depth)
	case []any:
		flat := make([]any, len(val))
		for i, item := range val {
			flat[i] = flattenValue(item, seen, depth+1)
		}
		return flat
	default:
		return v
	}
}

// String renders the Object as indented, key-sorted JSON, suitable for logs.
// Field values that cannot be serialized are rendered via their default
// textual form; an unexpected rendering failure degrades to an inline error
// marker rather than propagating.
func (o *Object) String() string {
	data, err := json.MarshalIndent(jsonSafe(o.ToMap()), "", "  ")
	if err != nil {
		return fmt.Sprintf("<Object - serialization error: %v>", err)
	}
	return string(data)
}

// GoString renders a debug form naming the constructor and the field map.
func (o *Object) GoString() string {
	return fmt.Sprintf("cfgone.Object(%v)", o.ToMap())
}

// jsonSafe replaces values encoding/json cannot serialize with their
// fmt-rendered form, so String never fails on exotic field values.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case map[string]any:
		safe := make(map[string]any, len(val))
		for k, item := range val {
			safe[k] = jsonSafe(item)
		}
		return safe
	case []any:
		safe := make([]any, len(val))
		for i, item := range val {
			safe[i] = jsonSafe(item)
		}
		return safe
	default:
		if _, err := json.Marshal(val); err != nil {
			return fmt.Sprint(val)
		}
		return val
	}
}
