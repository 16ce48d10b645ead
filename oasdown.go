// Package oasdown converts OpenAPI 3.1.0 documents to 3.0.2.
//
// The conversion is a structural rewrite of the document tree: null-typed
// anyOf branches become a nullable flag, and 3.1 examples lists collapse to
// the single example field 3.0 supports. Documents are decoded into ordered
// types (D, A, E) so key order survives the round trip.
package oasdown

// D represents a document object, defined as an ordered collection of
// key-value pairs. Each entry in the document is represented by an E.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document object. It consists of a string
// key and an associated value of any type.
type E struct {
	Key   string
	Value any
}

// index returns the position of key in d, or -1 when absent. First match
// wins; parsed documents have unique keys.
func (d D) index(key string) int {
	for i, e := range d {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key and whether the key is present.
func (d D) Get(key string) (any, bool) {
	if i := d.index(key); i >= 0 {
		return d[i].Value, true
	}
	return nil, false
}

// Has reports whether key is present in d.
func (d D) Has(key string) bool {
	return d.index(key) >= 0
}

// Set replaces the value for key in place when present, preserving its
// position, and appends a new entry otherwise. The (possibly grown) document
// is returned.
func (d D) Set(key string, value any) D {
	if i := d.index(key); i >= 0 {
		d[i].Value = value
		return d
	}
	return append(d, E{Key: key, Value: value})
}

// Delete removes the entry for key, returning the shrunk document, the
// removed value, and whether the key was present.
func (d D) Delete(key string) (D, any, bool) {
	i := d.index(key)
	if i < 0 {
		return d, nil, false
	}
	removed := d[i].Value
	return append(d[:i], d[i+1:]...), removed, true
}
