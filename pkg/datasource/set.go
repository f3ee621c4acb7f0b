package datasource

import (
	"slices"
)

// Set groups the sources of one or more inputs by category.
// It is read-only after construction and safe for concurrent use.
type Set struct {
	byCategory map[ID][]Source
}

// NewSet builds a set from the given inputs. Snapshot order (input order,
// then source order) is preserved within each category.
func NewSet(inputs ...Input) *Set {
	s := &Set{byCategory: make(map[ID][]Source)}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		for _, src := range in.Sources() {
			id := src.Category()
			s.byCategory[id] = append(s.byCategory[id], src)
		}
	}
	return s
}

// Has reports whether any source of the category was collected, even if it
// holds no records. Checks use it to tell missing evidence from a non-match.
func (s *Set) Has(id ID) bool {
	if s == nil {
		return false
	}
	_, ok := s.byCategory[id]
	return ok
}

// HasAny reports whether at least one of the categories was collected.
func (s *Set) HasAny(ids ...ID) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Categories returns the collected categories, sorted.
func (s *Set) Categories() []ID {
	if s == nil {
		return nil
	}
	ids := make([]ID, 0, len(s.byCategory))
	for id := range s.byCategory {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Sources returns every source of the category.
func (s *Set) Sources(id ID) []Source {
	if s == nil {
		return nil
	}
	return slices.Clone(s.byCategory[id])
}

// Lookup returns the sources of category id implementing capability T.
// It returns an empty slice, never an error, when none exist.
func Lookup[T Source](s *Set, id ID) []T {
	if s == nil {
		return nil
	}
	var out []T
	for _, src := range s.byCategory[id] {
		if c, ok := src.(T); ok {
			out = append(out, c)
		}
	}
	return out
}
