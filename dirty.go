package gomodel

// dirtySet tracks modified keys, unique, in first-write order.
type dirtySet struct {
	keys  []string
	index map[string]struct{}
}

func newDirtySet() *dirtySet {
	return &dirtySet{index: make(map[string]struct{})}
}

func (d *dirtySet) add(key string) {
	if _, ok := d.index[key]; ok {
		return
	}
	d.index[key] = struct{}{}
	d.keys = append(d.keys, key)
}

func (d *dirtySet) size() int { return len(d.keys) }

func (d *dirtySet) list() []string {
	return append([]string(nil), d.keys...)
}

func (d *dirtySet) clear() {
	d.keys = nil
	d.index = make(map[string]struct{})
}
