package gomodel

import "sort"

// Reserved model surface names. Every name except Subscribe carries the "$"
// marker; Subscribe is deliberately bare so store-style consumers that look
// for a method with that exact name keep working.
const (
	KeyDirty     = "$dirty"
	KeyIsDirty   = "$isDirty"
	KeyIsValid   = "$isValid"
	KeyOriginal  = "$original"
	KeyInitial   = "$initial"
	KeyErrors    = "$errors"
	KeyValidate  = "$validate"
	KeyClean     = "$clean"
	KeyRestore   = "$restore"
	KeyUpdate    = "$update"
	KeySubscribe = "subscribe"
)

var reservedNames = map[string]struct{}{
	KeyDirty:     {},
	KeyIsDirty:   {},
	KeyIsValid:   {},
	KeyOriginal:  {},
	KeyInitial:   {},
	KeyErrors:    {},
	KeyValidate:  {},
	KeyClean:     {},
	KeyRestore:   {},
	KeyUpdate:    {},
	KeySubscribe: {},
}

// IsReserved reports whether name is intercepted by the facade instead of
// being passed through to the underlying model.
func IsReserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// ReservedNames returns the reserved name set in sorted order.
func ReservedNames() []string {
	out := make([]string, 0, len(reservedNames))
	for k := range reservedNames {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// checkCollisions scans source keys in sorted order so the reported offender
// is deterministic when there is more than one.
func checkCollisions(source map[string]any) error {
	keys := make([]string, 0, len(source))
	for k := range source {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if IsReserved(k) {
			return &NameCollisionError{Key: k}
		}
	}
	return nil
}
