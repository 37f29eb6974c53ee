// Package properties defines the query surface of the external property
// database: per-dbid property bags and a recursive ancestor lookup. The
// database's storage format is owned by its reader; consumers only see this
// interface, and a nil database everywhere behaves as an empty one.
package properties

// Database answers property queries for scene dbids. Implementations must
// treat unknown dbids as known-but-empty.
type Database interface {
	// GetProperties returns the property bag for a dbid. Keys are
	// category-qualified (e.g. "Element:IfcExportAs"). Never nil.
	GetProperties(dbid int64) map[string]string

	// FindPropertyRecursive walks the dbid's ancestor chain (the node itself
	// first) looking for the first candidate key. Precedence is
	// candidate-key-major: only when the first key is absent at every
	// ancestor is the next key tried. Returns the first matched value.
	FindPropertyRecursive(dbid int64, keys []string) (string, bool)
}

// Set is an in-memory Database with an explicit parent relation. It backs
// the JSON property snapshot loader and tests.
type Set struct {
	props   map[int64]map[string]string
	parents map[int64]int64
}

// NewSet returns an empty property set.
func NewSet() *Set {
	return &Set{
		props:   make(map[int64]map[string]string),
		parents: make(map[int64]int64),
	}
}

// Put sets one property on a dbid.
func (s *Set) Put(dbid int64, key, value string) {
	bag, ok := s.props[dbid]
	if !ok {
		bag = make(map[string]string)
		s.props[dbid] = bag
	}
	bag[key] = value
}

// SetParent records dbid's parent in the ancestor chain.
func (s *Set) SetParent(dbid, parent int64) {
	s.parents[dbid] = parent
}

// GetProperties returns the property bag for a dbid, empty for unknown ids.
func (s *Set) GetProperties(dbid int64) map[string]string {
	if bag, ok := s.props[dbid]; ok {
		return bag
	}
	return map[string]string{}
}

// FindPropertyRecursive implements the candidate-key-major ancestor lookup.
// The walk tracks visited ids so a cyclic parent relation in the snapshot
// terminates instead of hanging the conversion.
func (s *Set) FindPropertyRecursive(dbid int64, keys []string) (string, bool) {
	for _, key := range keys {
		id := dbid
		seen := make(map[int64]bool)
		for !seen[id] {
			seen[id] = true
			if value, ok := s.props[id][key]; ok {
				return value, true
			}
			parent, ok := s.parents[id]
			if !ok {
				break
			}
			id = parent
		}
	}
	return "", false
}
