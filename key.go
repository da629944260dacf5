package typemap

// Key constrains the key types usable with a Map.  A key type declares,
// once, the single value type stored under it by embedding Binding:
//
//	type Age struct{ typemap.Binding[int] }
//
// Every Map operation on Age now accepts or returns int, checked at
// compile time.  The marker method is unexported, so embedding Binding
// is the only way to satisfy Key; embedding two Bindings with different
// value types makes the promoted method ambiguous and the key type
// unusable, which keeps each key type bound to at most one value type
// across the whole program.
type Key[V any] interface {
	bindValue(V)
}

// Binding associates the key type embedding it with the value type V.
// It carries no state; key types exist only as compile-time indices and
// are never instantiated by the Map.
type Binding[V any] struct{}

func (Binding[V]) bindValue(V) {}
