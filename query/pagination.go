package query

// PaginationKind distinguishes the two pagination strategies URLForQuery
// knows how to render. Additional strategies are pluggable by implementing
// the same shape and having router grow a case for them.
type PaginationKind int

const (
	// PaginationPage renders page[number]/page[size].
	PaginationPage PaginationKind = iota
	// PaginationOffset renders page[offset]/page[limit].
	PaginationOffset
)

// Pagination selects one page of a collection. Exactly one of the two field
// pairs is meaningful, per Kind.
type Pagination struct {
	Kind PaginationKind

	PageNumber int
	PageSize   int

	Offset int
	Limit  int
}

// NewPagedPagination builds a page-based Pagination.
func NewPagedPagination(pageNumber, pageSize int) Pagination {
	return Pagination{Kind: PaginationPage, PageNumber: pageNumber, PageSize: pageSize}
}

// NewOffsetPagination builds an offset-based Pagination.
func NewOffsetPagination(offset, limit int) Pagination {
	return Pagination{Kind: PaginationOffset, Offset: offset, Limit: limit}
}
