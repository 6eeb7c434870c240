package query

// Query is a composable, declarative selector for one read or write
// operation: it names a resource type and optional id set, the related
// resources to include, the filters and sparse fieldsets to apply, the sort
// order, and a pagination window. Router.URLForQuery compiles a Query into
// a URL; nothing in this package talks to a transport.
type Query struct {
	// ResourceType is the primary resource type this query targets.
	ResourceType string
	// ResourceIDs selects specific resources by id. A single id routes to
	// the canonical singular URL; two or more route to the filter form
	// (see Router.URLForQuery).
	ResourceIDs []string
	// URL is an escape hatch: a server-provided href (e.g. a pagination
	// link) that, when set, bypasses URL composition entirely.
	URL string

	Includes        []string
	Filters         []ComparisonPredicate
	Fields          map[string][]string
	SortDescriptors []SortDescriptor
	Pagination      *Pagination
}

// New builds a Query for resourceType.
func New(resourceType string) *Query {
	return &Query{ResourceType: resourceType}
}

// ForIDs builds a Query selecting specific resources of resourceType by id.
func ForIDs(resourceType string, ids ...string) *Query {
	return &Query{ResourceType: resourceType, ResourceIDs: ids}
}

// ForURL builds a Query that bypasses composition and routes to url
// verbatim, for following a server-provided link (pagination, a
// relationship's related endpoint, and so on).
func ForURL(url string) *Query {
	return &Query{URL: url}
}

// Include appends relationship names to fetch as compound-document
// includes.
func (q *Query) Include(names ...string) *Query {
	q.Includes = append(q.Includes, names...)
	return q
}

// Filter appends a comparison predicate.
func (q *Query) Filter(p ComparisonPredicate) *Query {
	q.Filters = append(q.Filters, p)
	return q
}

// SelectFields restricts the named resourceType's attributes/relationships
// to fieldNames in the response.
func (q *Query) SelectFields(resourceType string, fieldNames ...string) *Query {
	if q.Fields == nil {
		q.Fields = make(map[string][]string)
	}
	q.Fields[resourceType] = fieldNames
	return q
}

// Sort appends sort descriptors, applied in the order given.
func (q *Query) Sort(descriptors ...SortDescriptor) *Query {
	q.SortDescriptors = append(q.SortDescriptors, descriptors...)
	return q
}

// Paginate sets the pagination window.
func (q *Query) Paginate(p Pagination) *Query {
	q.Pagination = &p
	return q
}
