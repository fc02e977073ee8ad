package cfgone

// maxDepth bounds every recursive traversal over user-supplied structures.
// Past the ceiling, merging stops recursing and flattening substitutes a
// marker string instead of overflowing the stack.
const maxDepth = 100

// DeepMerge combines two mappings, with values from override taking
// precedence over base.
//
// Rules:
//   - Keys present in both where both values are mappings merge recursively.
//   - Sequences replace wholesale; there is no element-wise merge.
//   - Any other conflict is won by the override value outright.
//
// Neither input is mutated; the result shares no mutable containers with
// either argument's modified paths. Nil inputs are treated as empty.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := mergeValue(base, override, 0)
	if m, ok := merged.(map[string]any); ok {
		return m
	}
	// Only reachable when both inputs are nil.
	return map[string]any{}
}

// mergeValue merges two arbitrary values. Non-mapping inputs are won by
// override, which also serves as the fail-soft path past the depth ceiling.
func mergeValue(base, override any, depth int) any {
	if depth > maxDepth {
		return override
	}

	baseMap, baseOK := base.(map[string]any)
	overrideMap, overrideOK := override.(map[string]any)
	if base == nil && overrideOK {
		return copyMap(overrideMap)
	}
	if !baseOK || !overrideOK {
		if override == nil && baseOK {
			// DeepMerge(x, nil) keeps x; nil override inside a mapping
			// still replaces (handled by the caller's key loop).
			return copyMap(baseMap)
		}
		return override
	}

	result := copyMap(baseMap)
	for key, value := range overrideMap {
		existing, present := result[key]
		if !present {
			result[key] = value
			continue
		}
		existingMap, eOK := existing.(map[string]any)
		valueMap, vOK := value.(map[string]any)
		if eOK && vOK {
			result[key] = mergeValue(existingMap, valueMap, depth+1)
			continue
		}
		// Sequences and scalars alike: override replaces wholesale.
		result[key] = value
	}
	return result
}

// copyMap returns a shallow copy of m, never nil.
func copyMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
