// Package collection implements ResourceCollection (an iterable, paginated
// list of resources) and LinkedResourceCollection (a lazily loadable
// relationship collection with linkage and tracked add/remove deltas).
package collection

import "github.com/neuronlabs/jsonapi-client/resource"

// ResourceCollection is an ordered list of resources together with the
// pagination links of the response it was built from.
type ResourceCollection struct {
	Resources    []resource.Resource
	ResourcesURL string
	NextURL      string
	PreviousURL  string
	Meta         map[string]interface{}
}

// New creates a ResourceCollection from a slice of resources and its
// originating URL.
func New(resources []resource.Resource, resourcesURL string) *ResourceCollection {
	return &ResourceCollection{Resources: resources, ResourcesURL: resourcesURL}
}

// Count returns the number of resources currently held; iteration order is
// the server's.
func (c *ResourceCollection) Count() int {
	return len(c.Resources)
}

// First returns the first resource in the collection, or nil if empty.
func (c *ResourceCollection) First() resource.Resource {
	if len(c.Resources) == 0 {
		return nil
	}
	return c.Resources[0]
}

// AppendPage appends resources fetched from a "next" page response to the
// collection and adopts that response's own links in full, including
// selfURL: ResourcesURL moves to the page just fetched, so a later hop
// computes its previous/next URLs from where the walk now is, not from
// where it started.
func (c *ResourceCollection) AppendPage(resources []resource.Resource, selfURL, nextURL, previousURL string) {
	c.Resources = append(c.Resources, resources...)
	c.ResourcesURL = selfURL
	c.NextURL = nextURL
	c.PreviousURL = previousURL
}

// PrependPage prepends resources fetched from a "previous" page response to
// the collection and adopts that response's own links in full, for the same
// reason AppendPage does.
func (c *ResourceCollection) PrependPage(resources []resource.Resource, selfURL, nextURL, previousURL string) {
	c.Resources = append(append([]resource.Resource{}, resources...), c.Resources...)
	c.ResourcesURL = selfURL
	c.NextURL = nextURL
	c.PreviousURL = previousURL
}
