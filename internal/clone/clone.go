// Package clone implements the structural deep copy used for model snapshots.
// The walk recognizes exactly two container shapes, map[string]any and []any,
// and duplicates them recursively. Every other value is copied by plain
// assignment: scalars by value, pointers/maps/slices of other types by
// reference. That shallow-leaf boundary is intentional and part of the
// snapshot contract.
package clone

// Map returns a deep copy of m. A nil map copies to nil.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

// Value copies recognized containers recursively and returns any other value
// as-is.
func Value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Map(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Value(t[i])
		}
		return out
	default:
		return v
	}
}
