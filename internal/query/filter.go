package query

// Operator is a filter comparison.
type Operator string

// OpContainsCI matches when the field contains the value, ignoring case.
const OpContainsCI Operator = "CONTAINS_CI"

// Condition is one storage-agnostic filter term.
type Condition struct {
	Field string
	Op    Operator
	Value string
}

// Filter is a conjunction of conditions.
type Filter []Condition

// FilterFromSearch turns every criterion into a CONTAINS_CI condition, ordered by
// field name.
func FilterFromSearch(search *Search) Filter {
	if !search.HasCriteria() {
		return nil
	}
	filter := make(Filter, 0, search.Len())
	for _, field := range search.Fields() {
		value, _ := search.Value(field)
		filter = append(filter, Condition{Field: field, Op: OpContainsCI, Value: value})
	}
	return filter
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return len(f) == 0
}

// Order is one resolved ordering key over a storage column.
type Order struct {
	Column     string
	Descending bool
}
