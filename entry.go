package typemap

import "reflect"

// Entry is a view onto the slot for a single key type, used for
// in-place manipulation without repeated lookups.  Obtain one with
// EntryOf.
type Entry[V any] struct {
	m   *Map
	key reflect.Type
}

// EntryOf returns a view onto the slot for the key type K.
func EntryOf[K Key[V], V any](m *Map) Entry[V] {
	return Entry[V]{m: m, key: reflect.TypeFor[K]()}
}

// Exists reports whether the slot currently holds a value.
func (e Entry[V]) Exists() bool {
	_, ok := e.m.entries[e.key]
	return ok
}

// OrInsert stores value when the slot is vacant, then returns a pointer
// to the stored value either way.
func (e Entry[V]) OrInsert(value V) *V {
	return e.OrInsertWith(func() V { return value })
}

// OrInsertWith stores fn's result when the slot is vacant, then returns
// a pointer to the stored value either way.  fn is not called for an
// occupied slot.
func (e Entry[V]) OrInsertWith(fn func() V) *V {
	if raw, ok := e.m.entries[e.key]; ok {
		return unbox[V](e.key, raw)
	}
	if e.m.entries == nil {
		e.m.entries = make(map[reflect.Type]any)
	}
	value := fn()
	e.m.entries[e.key] = &value
	return &value
}
