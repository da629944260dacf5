// Package typemap provides a store keyed by types: one value per key
// type, with the value type of every entry fixed at compile time.  A key
// type is a small marker struct that names its value type by embedding
// Binding; the generic operations then accept and return exactly that
// type, so heterogeneous data shares a single container without callers
// ever handling an untyped box or a failed cast.
package typemap
