package typemap

import (
	"fmt"
	"reflect"
)

// Map is a store keyed by types.  It holds at most one value per key
// type, and the value type of each entry is the one fixed by the key's
// Binding declaration.  The zero Map is ready to use.
//
// A Map is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally, as with an ordinary map.
type Map struct {
	entries map[reflect.Type]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: make(map[reflect.Type]any)}
}

// Insert stores value under the key type K, replacing any existing
// entry.  It returns the previous value, with ok reporting whether one
// existed.
func Insert[K Key[V], V any](m *Map, value V) (prev V, ok bool) {
	key := reflect.TypeFor[K]()
	if raw, found := m.entries[key]; found {
		prev, ok = *unbox[V](key, raw), true
	}
	if m.entries == nil {
		m.entries = make(map[reflect.Type]any)
	}
	m.entries[key] = &value
	return prev, ok
}

// Get returns a copy of the value stored under K, with ok reporting
// whether an entry existed.  Use GetMut to manipulate the stored value
// in place.
func Get[K Key[V], V any](m *Map) (value V, ok bool) {
	key := reflect.TypeFor[K]()
	raw, found := m.entries[key]
	if !found {
		return value, false
	}
	return *unbox[V](key, raw), true
}

// GetMut returns a pointer to the value stored under K, or nil when the
// map has no entry for K.  Mutations through the pointer are visible to
// subsequent lookups.
func GetMut[K Key[V], V any](m *Map) *V {
	key := reflect.TypeFor[K]()
	raw, found := m.entries[key]
	if !found {
		return nil
	}
	return unbox[V](key, raw)
}

// Contains reports whether the map has an entry for the key type K.
func Contains[K Key[V], V any](m *Map) bool {
	_, ok := m.entries[reflect.TypeFor[K]()]
	return ok
}

// Remove deletes the entry for K and returns the removed value, with ok
// reporting whether an entry existed.  Removing an absent key is a
// no-op.
func Remove[K Key[V], V any](m *Map) (value V, ok bool) {
	key := reflect.TypeFor[K]()
	raw, found := m.entries[key]
	if !found {
		return value, false
	}
	delete(m.entries, key)
	return *unbox[V](key, raw), true
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map contains no entries.
func (m *Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Clear removes all entries from the map.
func (m *Map) Clear() {
	clear(m.entries)
}

// unbox recovers the concrete value stored under key.  The Binding
// mechanism guarantees that whatever was erased under a key type is
// recovered as that key's bound value type, so a failed assertion here
// means the erasure boundary itself is broken, never a caller mistake.
func unbox[V any](key reflect.Type, raw any) *V {
	box, ok := raw.(*V)
	if !ok {
		panic(fmt.Sprintf("typemap: entry for key %v holds %T, want %v", key, raw, reflect.TypeFor[*V]()))
	}
	return box
}
