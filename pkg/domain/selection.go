package domain

import "sort"

// StringSet is an unordered set of strings
type StringSet map[string]struct{}

// NewStringSet makes a set from the given values
func NewStringSet(values ...string) StringSet {
	res := make(StringSet, len(values))
	for _, v := range values {
		res[v] = struct{}{}
	}
	return res
}

// Has reports whether v is in the set. Safe on a nil set.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Add puts v into the set
func (s StringSet) Add(v string) { s[v] = struct{}{} }

// Remove drops v from the set
func (s StringSet) Remove(v string) { delete(s, v) }

// HasAny reports whether any of values is in the set
func (s StringSet) HasAny(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Sorted returns set members in ascending order, never nil
func (s StringSet) Sorted() []string {
	res := make([]string, 0, len(s))
	for v := range s {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

// Clone returns an independent copy of the set
func (s StringSet) Clone() StringSet {
	res := make(StringSet, len(s))
	for v := range s {
		res[v] = struct{}{}
	}
	return res
}

// Selection holds active facet constraints. Tags are OR-ed within a facet and
// facets are AND-ed together; an empty facet does not constrain anything.
type Selection struct {
	Regions StringSet
	Stages  StringSet
	Sectors StringSet
}

// Of returns the selected tags for the facet
func (s Selection) Of(f Facet) StringSet {
	switch f {
	case FacetRegion:
		return s.Regions
	case FacetStage:
		return s.Stages
	case FacetSector:
		return s.Sectors
	}
	return nil
}

// IsEmpty reports whether no facet has a constraint
func (s Selection) IsEmpty() bool {
	return len(s.Regions) == 0 && len(s.Stages) == 0 && len(s.Sectors) == 0
}
