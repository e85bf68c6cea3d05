package gomodel

import "reflect"

// identical reports whether old and new are the same value for dirty-diff
// purposes. Comparable values compare by ==; maps, slices and funcs compare
// by reference identity. Values that are not comparable at runtime (structs
// or interfaces whose contents hold a slice, map, or func) always count as
// changed. Empty slices share the runtime's zero-size allocation and
// therefore compare identical to each other.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	// Comparability must be decided on the dynamic values, not the type: a
	// comparable struct type can still carry uncomparable contents through
	// an interface field, and == would panic on it.
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return false
}
