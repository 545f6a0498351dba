package query

import (
	"fmt"
	"sort"
)

// FieldSet is an immutable set of field names.
type FieldSet struct {
	names map[string]struct{}
}

// NewFieldSet builds a FieldSet.
func NewFieldSet(names ...string) FieldSet {
	set := FieldSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		set.names[n] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (f FieldSet) Contains(name string) bool {
	_, ok := f.names[name]
	return ok
}

// Len returns the number of names.
func (f FieldSet) Len() int {
	return len(f.names)
}

// Names returns the names in lexical order.
func (f FieldSet) Names() []string {
	names := make([]string, 0, len(f.names))
	for n := range f.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Field declares one attribute of an entity and the storage column behind it.
// Hidden fields are never searchable.
type Field struct {
	Name   string
	Column string
	Hidden bool
}

// Schema is the static description of an entity's fields, declared once at startup.
type Schema struct {
	entity     string
	fields     []Field
	byName     map[string]Field
	searchable FieldSet
}

// NewSchema registers fields for entity. It panics on an empty or duplicate field
// name, which can only come from a broken declaration.
func NewSchema(entity string, fields ...Field) *Schema {
	s := &Schema{
		entity: entity,
		fields: append([]Field(nil), fields...),
		byName: make(map[string]Field, len(fields)),
	}

	var searchable []string
	for _, f := range fields {
		if f.Name == "" || f.Column == "" {
			panic(fmt.Sprintf("query: %s schema has a field without name or column", entity))
		}
		if _, dup := s.byName[f.Name]; dup {
			panic(fmt.Sprintf("query: %s schema declares %q twice", entity, f.Name))
		}
		s.byName[f.Name] = f
		if !f.Hidden {
			searchable = append(searchable, f.Name)
		}
	}
	s.searchable = NewFieldSet(searchable...)

	return s
}

// Entity returns the entity name.
func (s *Schema) Entity() string {
	return s.entity
}

// SearchableFields returns the cached set of field names accepted in a Search.
func (s *Schema) SearchableFields() FieldSet {
	return s.searchable
}

// Column returns the storage column of a declared field.
func (s *Schema) Column(name string) (string, bool) {
	f, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return f.Column, true
}

// Columns returns every column in declaration order.
func (s *Schema) Columns() []string {
	cols := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		cols = append(cols, f.Column)
	}
	return cols
}
