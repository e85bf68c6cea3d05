package gomodel

import (
	"sort"

	"github.com/gomodel-dev/gomodel/internal/clone"
	"github.com/gomodel-dev/gomodel/pubsub"
)

// changeEvent is the single event name the wrapper publishes on.
const changeEvent = "change"

// Model wraps a plain key-value model with dirty tracking, lazy validation
// and change notifications. The source map is referenced, not copied: every
// accepted write mutates it in place, so other holders of the same map
// observe the changes. Writes that bypass the wrapper bypass dirty tracking
// and notification entirely; that is a documented escape hatch.
//
// Model assumes a single logical thread of control. Reads, writes,
// validation and notification all run to completion synchronously.
type Model struct {
	data    map[string]any
	initial map[string]any
	dirty   *dirtySet
	last    Issues
	cfg     config
	bus     *pubsub.Broker[*Model]
}

// Wrap builds a wrapper around source. It fails with NameCollisionError if
// any source key is in the reserved name set. A nil source wraps a fresh
// empty model.
func Wrap(source map[string]any, opts ...Option) (*Model, error) {
	if source == nil {
		source = map[string]any{}
	}
	if err := checkCollisions(source); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Model{
		data:    source,
		initial: clone.Map(source),
		dirty:   newDirtySet(),
		cfg:     cfg,
		bus:     pubsub.New[*Model](),
	}, nil
}

// Get reads a key. Reserved names dispatch to the derived accessors below
// instead of the model: the accessor names return their value ($dirty,
// $isDirty, $isValid, $original, $initial, $errors), the operation names
// ($validate, $clean, $restore, $update, subscribe) return the bound method.
// Any other key reads the underlying model; absent keys read as nil.
func (m *Model) Get(key string) any {
	if IsReserved(key) {
		return m.reserved(key)
	}
	return m.data[key]
}

func (m *Model) reserved(name string) any {
	switch name {
	case KeyDirty:
		return m.Dirty()
	case KeyIsDirty:
		return m.IsDirty()
	case KeyIsValid:
		return m.IsValid()
	case KeyOriginal:
		return m.Original()
	case KeyInitial:
		return m.Initial()
	case KeyErrors:
		return m.Errors()
	case KeyValidate:
		return m.Validate
	case KeyClean:
		return m.Clean
	case KeyRestore:
		return m.Restore
	case KeyUpdate:
		return m.Update
	case KeySubscribe:
		return m.Subscribe
	}
	return nil
}

// Has reports whether the underlying model has the key. Reserved names are
// not model keys.
func (m *Model) Has(key string) bool {
	if IsReserved(key) {
		return false
	}
	_, ok := m.data[key]
	return ok
}

// Set writes a key. Reserved names fail with ReservedPropertyError; under
// strict mode a key the model does not already have fails with
// UnknownPropertyError. An accepted write always lands in the model; the
// key is marked dirty and one change notification published only when the
// new value is not identical to the old one. Introducing a key under
// non-strict mode is always a change, whatever the value.
func (m *Model) Set(key string, v any) error {
	if IsReserved(key) {
		return &ReservedPropertyError{Key: key}
	}
	old, existed := m.data[key]
	if m.cfg.strict && !existed {
		return &UnknownPropertyError{Key: key}
	}
	m.data[key] = v
	if !existed || !identical(old, v) {
		m.dirty.add(key)
		m.publish()
	}
	return nil
}

// Delete removes a key from the model. Strict mode forbids every delete.
// A permitted delete publishes one notification unconditionally and leaves
// the dirty set untouched: deletion and dirty tracking are independent
// concerns here.
func (m *Model) Delete(key string) error {
	if IsReserved(key) {
		return &ReservedPropertyError{Key: key}
	}
	if m.cfg.strict {
		return &StrictModeError{Op: "delete", Key: key}
	}
	delete(m.data, key)
	m.publish()
	return nil
}

// Update applies a batch of writes with single-write semantics per key but
// exactly one notification for the whole batch, empty batches included.
// Keys are processed in sorted order. A reserved or (under strict mode)
// unknown key aborts the batch; keys already applied stay applied, nothing
// is rolled back, and no notification is published for an aborted batch.
func (m *Model) Update(changes map[string]any, opts ...UpdateOpt) error {
	var opt UpdateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if IsReserved(k) {
			return &ReservedPropertyError{Key: k}
		}
		old, existed := m.data[k]
		if m.cfg.strict && !existed {
			return &UnknownPropertyError{Key: k}
		}
		v := changes[k]
		m.data[k] = v
		if !existed || !identical(old, v) {
			m.dirty.add(k)
		}
	}
	if opt.ResetDirty {
		m.dirty.clear()
	}
	m.publish()
	return nil
}

// Clean clears the dirty set, leaving values as they are, and publishes one
// notification.
func (m *Model) Clean() {
	m.dirty.clear()
	m.publish()
}

// Restore assigns a deep copy of every snapshot value back into the model.
// This is a trusted internal path: strict-mode and dirty-diff logic do not
// apply. Keys added after construction are left untouched. The dirty set is
// cleared and one notification published.
func (m *Model) Restore() {
	for k, v := range m.initial {
		m.data[k] = clone.Value(v)
	}
	m.dirty.clear()
	m.publish()
}

// Subscribe invokes fn once immediately with the wrapper, so a fresh
// subscriber observes current state without waiting for a mutation, then
// registers it for every subsequent change. The returned function cancels
// the subscription.
func (m *Model) Subscribe(fn func(*Model)) (unsubscribe func()) {
	fn(m)
	return m.bus.Subscribe(changeEvent, fn)
}

// Dirty returns the modified keys in first-write order. The slice is a copy.
func (m *Model) Dirty() []string { return m.dirty.list() }

// IsDirty reports whether any key changed since the last clean point.
func (m *Model) IsDirty() bool { return m.dirty.size() > 0 }

// Original returns the exact underlying model reference.
func (m *Model) Original() map[string]any { return m.data }

// Initial returns the snapshot taken at construction. Callers must treat it
// as read-only.
func (m *Model) Initial() map[string]any { return m.initial }

func (m *Model) publish() { m.bus.Publish(changeEvent, m) }
