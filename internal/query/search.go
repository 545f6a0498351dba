package query

import (
	"sort"
	"strings"
)

// Search is a set of field→substring criteria. Entries with a blank value are
// dropped on Add. A Search is mutable while being built; Query keeps its own copy.
type Search struct {
	criteria map[string]string
}

// EmptySearch returns a Search without criteria.
func EmptySearch() *Search {
	return &Search{criteria: make(map[string]string)}
}

// Add sets field to value unless value is blank, overwriting any previous value.
func (s *Search) Add(field, value string) *Search {
	if strings.TrimSpace(value) == "" {
		return s
	}
	if s.criteria == nil {
		s.criteria = make(map[string]string)
	}
	s.criteria[field] = value
	return s
}

// HasCriteria reports whether at least one criterion is present.
func (s *Search) HasCriteria() bool {
	return s != nil && len(s.criteria) > 0
}

// Len returns the number of criteria.
func (s *Search) Len() int {
	if s == nil {
		return 0
	}
	return len(s.criteria)
}

// Value returns the criterion for field.
func (s *Search) Value(field string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.criteria[field]
	return v, ok
}

// Fields returns the criterion keys in lexical order.
func (s *Search) Fields() []string {
	if s == nil {
		return nil
	}
	fields := make([]string, 0, len(s.criteria))
	for f := range s.criteria {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Criteria returns a copy of the criteria map.
func (s *Search) Criteria() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for k, v := range s.criteria {
		out[k] = v
	}
	return out
}

// CopyOf returns a snapshot of other; later changes to other do not affect it.
// A nil other yields an empty Search.
func CopyOf(other *Search) *Search {
	return &Search{criteria: other.Criteria()}
}
