// Package router compiles a query.Query into a URL against a base address,
// and builds the relationship-endpoint URLs a save cascade PATCH/POST/DELETEs
// to. It owns no state beyond the base URL and the KeyFormatter used to
// serialize field and relationship names into the wire's dashed (or
// whatever the caller configures) convention; resource type names are
// written as given.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neuronlabs/jsonapi-client/annotation"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/query"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// Router compiles queries and resources into URLs rooted at BaseURL.
type Router struct {
	BaseURL      string
	KeyFormatter namer.KeyFormatter
}

// New creates a Router. A nil formatter defaults to namer.Default.
func New(baseURL string, formatter namer.KeyFormatter) *Router {
	if formatter == nil {
		formatter = namer.Default
	}
	return &Router{BaseURL: strings.TrimRight(baseURL, "/"), KeyFormatter: formatter}
}

// URLForResourceType returns the collection URL for resourceType.
func (rt *Router) URLForResourceType(resourceType string) string {
	return rt.BaseURL + "/" + resourceType
}

// URLForRelationship returns the relationship endpoint URL for res's field
// named by rel, used for the self link a save cascade's
// RelationshipOperation writes to.
func (rt *Router) URLForRelationship(res resource.Resource, rel mapping.RelationshipDescriptor) string {
	return rt.BaseURL + "/" + res.ResourceType() + "/" + res.ID() + "/relationships/" + rel.SerializedName()
}

// URLForQuery compiles q into a complete URL: q.URL verbatim if set, else a
// path built from resource type and ids followed by query-string parameters
// in the fixed order the wire format requires (filter[id], include, filter,
// fields, sort, pagination).
func (rt *Router) URLForQuery(q *query.Query) string {
	if q.URL != "" {
		return q.URL
	}

	var b strings.Builder
	b.WriteString(rt.BaseURL)
	b.WriteByte('/')
	b.WriteString(q.ResourceType)

	var filterID string
	switch len(q.ResourceIDs) {
	case 0:
	case 1:
		b.WriteByte('/')
		b.WriteString(q.ResourceIDs[0])
	default:
		filterID = strings.Join(q.ResourceIDs, annotation.Separator)
	}

	var params []string
	if filterID != "" {
		params = append(params, bracketed(annotation.ParamFilter, annotation.ParamFilterIDKey)+"="+filterID)
	}
	if len(q.Includes) > 0 {
		names := make([]string, len(q.Includes))
		for i, name := range q.Includes {
			names[i] = rt.KeyFormatter(name)
		}
		params = append(params, annotation.ParamInclude+"="+strings.Join(names, annotation.Separator))
	}
	for _, p := range q.Filters {
		if p.Operator != query.OpEqual {
			continue
		}
		key := bracketed(annotation.ParamFilter, rt.KeyFormatter(p.Field))
		params = append(params, key+"="+valueToString(p.Value))
	}
	for _, resourceType := range orderedFieldTypes(q.Fields) {
		names := make([]string, len(q.Fields[resourceType]))
		for i, name := range q.Fields[resourceType] {
			names[i] = rt.KeyFormatter(name)
		}
		key := bracketed(annotation.ParamFields, resourceType)
		params = append(params, key+"="+strings.Join(names, annotation.Separator))
	}
	if len(q.SortDescriptors) > 0 {
		descriptors := make([]string, len(q.SortDescriptors))
		for i, d := range q.SortDescriptors {
			prefix := annotation.SortDescending
			if d.Ascending {
				prefix = annotation.SortAscending
			}
			descriptors[i] = prefix + rt.KeyFormatter(d.Field)
		}
		params = append(params, annotation.ParamSort+"="+strings.Join(descriptors, annotation.Separator))
	}
	if q.Pagination != nil {
		params = append(params, paginationParams(*q.Pagination)...)
	}

	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(params, "&"))
	}
	return b.String()
}

func bracketed(param, key string) string {
	return param + annotation.OpenedBracket + key + annotation.ClosedBracket
}

func paginationParams(p query.Pagination) []string {
	switch p.Kind {
	case query.PaginationPage:
		return []string{
			annotation.ParamPageNumber + "=" + strconv.Itoa(p.PageNumber),
			annotation.ParamPageSize + "=" + strconv.Itoa(p.PageSize),
		}
	case query.PaginationOffset:
		return []string{
			annotation.ParamPageOffset + "=" + strconv.Itoa(p.Offset),
			annotation.ParamPageLimit + "=" + strconv.Itoa(p.Limit),
		}
	default:
		return nil
	}
}

// orderedFieldTypes returns fields' keys sorted so URLForQuery's output is
// deterministic (map iteration order is not).
func orderedFieldTypes(fields map[string][]string) []string {
	if len(fields) == 0 {
		return nil
	}
	types := make([]string, 0, len(fields))
	for t := range fields {
		types = append(types, t)
	}
	for i := 1; i < len(types); i++ {
		for j := i; j > 0 && types[j-1] > types[j]; j-- {
			types[j-1], types[j] = types[j], types[j-1]
		}
	}
	return types
}

func valueToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
