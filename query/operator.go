// Package query implements the composable, transport-agnostic Query value:
// a resource type, id selector, includes, filter predicates, sparse
// fieldsets, sort descriptors and pagination, compiled into a URL by
// package router.
package query

// Operator identifies a comparison used by a ComparisonPredicate. Only
// OpEqual is currently emitted by the router (see Router.URLForQuery); the
// others are modeled so callers building a Query against a richer backend
// have somewhere to put them, and so router gains them as a pure extension
// rather than a breaking change.
type Operator struct {
	name string
}

func (o Operator) String() string { return o.name }

var (
	OpEqual        = Operator{"="}
	OpNotEqual     = Operator{"!="}
	OpLessThan     = Operator{"<"}
	OpLessEqual    = Operator{"<="}
	OpGreaterThan  = Operator{">"}
	OpGreaterEqual = Operator{">="}
)
