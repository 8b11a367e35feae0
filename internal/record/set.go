package record

import "github.com/elliotchance/orderedmap/v2"

// Set is an insertion-ordered set of records keyed by UserID.
// When two records share a key the first one added is kept.
type Set struct {
	entries    *orderedmap.OrderedMap[string, Record]
	duplicates int
}

// NewSet builds a Set from records in order.
func NewSet(records ...Record) *Set {
	s := &Set{entries: orderedmap.NewOrderedMap[string, Record]()}
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// Add inserts r unless a record with the same key is already present.
// It reports whether r was inserted.
func (s *Set) Add(r Record) bool {
	if _, exists := s.entries.Get(r.Key()); exists {
		s.duplicates++
		return false
	}
	s.entries.Set(r.Key(), r)
	return true
}

// Contains reports whether a record with r's key is in the set.
func (s *Set) Contains(r Record) bool {
	_, ok := s.entries.Get(r.Key())
	return ok
}

// Get returns the record stored under userID.
func (s *Set) Get(userID string) (Record, bool) {
	return s.entries.Get(userID)
}

// Len returns the number of distinct records.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.entries.Len()
}

// Duplicates returns how many added records were absorbed by an existing key.
func (s *Set) Duplicates() int {
	return s.duplicates
}

// Records returns the records in insertion order.
func (s *Set) Records() []Record {
	if s == nil {
		return nil
	}
	out := make([]Record, 0, s.entries.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Difference returns the records of s whose key is absent from other,
// preserving the order of s.
func (s *Set) Difference(other *Set) *Set {
	diff := NewSet()
	for el := s.entries.Front(); el != nil; el = el.Next() {
		if other != nil && other.Contains(el.Value) {
			continue
		}
		diff.entries.Set(el.Key, el.Value)
	}
	return diff
}
