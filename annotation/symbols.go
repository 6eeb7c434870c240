// Package annotation defines the wire-level member names of a JSON:API
// document (the keys the deserializer reads and the serializer writes) and
// the query-string parameter names the router emits.
package annotation

// Top level document members.
const (
	Data     = "data"
	Errors   = "errors"
	Meta     = "meta"
	Included = "included"
	Links    = "links"
	JSONAPI  = "jsonapi"
)

// Resource object members.
const (
	Type          = "type"
	ID            = "id"
	Attributes    = "attributes"
	Relationships = "relationships"
)

// Relationship object members.
const (
	RelationshipData = "data"
	RelationshipSelf = "self"
	Related          = "related"
)

// Top level link names.
const (
	LinkSelf     = "self"
	LinkNext     = "next"
	LinkPrev     = "prev"
	LinkPrevious = "previous"
	LinkFirst    = "first"
	LinkLast     = "last"
)

// Error object members.
const (
	ErrorID     = "id"
	ErrorStatus = "status"
	ErrorCode   = "code"
	ErrorTitle  = "title"
	ErrorDetail = "detail"
	ErrorSource = "source"
	ErrorMeta   = "meta"
)

// Error source object members.
const (
	ErrorSourcePointer   = "pointer"
	ErrorSourceParameter = "parameter"
)

// Query-string parameter names and prefixes.
const (
	ParamInclude     = "include"
	ParamFilter      = "filter"
	ParamFields      = "fields"
	ParamSort        = "sort"
	ParamPageNumber  = "page[number]"
	ParamPageSize    = "page[size]"
	ParamPageOffset  = "page[offset]"
	ParamPageLimit   = "page[limit]"
	ParamFilterIDKey = "id"
)

// Separators used when composing query-string values.
const (
	// Separator joins multiple values within one query parameter, e.g.
	// "filter[id]=1,2" or "sort=+a,-b".
	Separator = ","
	// OpenedBracket and ClosedBracket delimit a bracketed parameter key,
	// e.g. "filter[string-attribute]" or "fields[foos]".
	OpenedBracket = "["
	ClosedBracket = "]"
	// SortAscending and SortDescending prefix a sort descriptor's field.
	SortAscending  = "+"
	SortDescending = "-"
)
