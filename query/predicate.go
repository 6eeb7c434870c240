package query

// ComparisonPredicate is one filter term: a field path compared against a
// constant value by Operator.
type ComparisonPredicate struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// NewPredicate builds a ComparisonPredicate.
func NewPredicate(field string, op Operator, value interface{}) ComparisonPredicate {
	return ComparisonPredicate{Field: field, Operator: op, Value: value}
}

// SortDescriptor orders results by a single field, ascending or descending.
type SortDescriptor struct {
	Field     string
	Ascending bool
}

// Asc builds an ascending SortDescriptor.
func Asc(field string) SortDescriptor { return SortDescriptor{Field: field, Ascending: true} }

// Desc builds a descending SortDescriptor.
func Desc(field string) SortDescriptor { return SortDescriptor{Field: field, Ascending: false} }
