package collection

import "github.com/neuronlabs/jsonapi-client/resource"

// LinkedResourceCollection is the to-many relationship slot value: it
// carries the relationship endpoint URL, the authoritative linkage when
// the server disclosed it, whether a full fetch has happened, and the
// pending add/remove deltas a save cascade must replay.
//
// Deltas are modeled as a small state machine: pristine resources came from
// the server (or a prior successful save) and sit only in Resources; added
// and removed track what user code has changed since. AddResourceAsExisting
// moves a resource into Resources without enqueuing an add, for marking
// linkage that is already known to be correct server-side.
type LinkedResourceCollection struct {
	Resources []resource.Resource
	// ResourcesURL is links.related: the relationship's related resource
	// endpoint.
	ResourcesURL string
	// LinkURL is links.self: the relationship's own endpoint, used for
	// PATCH/POST/DELETE to /relationships/<name>.
	LinkURL string
	// Linkage holds the disclosed (type,id) pairs, nil when the server
	// didn't send a "data" array for this relationship.
	Linkage []resource.Identifier
	// HasLinkage is true iff the server sent a "data" array, even an
	// empty one.
	HasLinkage bool
	isLoaded   bool

	added   []resource.Resource
	removed []resource.Resource
}

// NewLinked creates a LinkedResourceCollection for one relationship slot.
func NewLinked(resourcesURL, linkURL string) *LinkedResourceCollection {
	return &LinkedResourceCollection{ResourcesURL: resourcesURL, LinkURL: linkURL}
}

// IsLoaded is true only after a full fetch of the related endpoint, or
// after the deserializer's resolution pass matched every linkage entry
// against the pool.
func (c *LinkedResourceCollection) IsLoaded() bool {
	return c.isLoaded
}

// SetLoaded marks the collection as loaded (or not), used by the
// deserializer's resolution pass and by a full relationship fetch.
func (c *LinkedResourceCollection) SetLoaded(loaded bool) {
	c.isLoaded = loaded
}

// AddResource enqueues r to be added on the next save cascade.
func (c *LinkedResourceCollection) AddResource(r resource.Resource) {
	c.Resources = append(c.Resources, r)
	c.added = append(c.added, r)
}

// AddResourceAsExisting records r as already linked server-side without
// enqueuing an add operation.
func (c *LinkedResourceCollection) AddResourceAsExisting(r resource.Resource) {
	c.Resources = append(c.Resources, r)
}

// RemoveResource removes r from the in-memory collection and enqueues it to
// be removed on the next save cascade, unless it was only a pending add (in
// which case the add is simply cancelled).
func (c *LinkedResourceCollection) RemoveResource(r resource.Resource) {
	c.Resources = removeResource(c.Resources, r)
	if removedFromAdded := removeResource(c.added, r); len(removedFromAdded) != len(c.added) {
		c.added = removedFromAdded
		return
	}
	c.removed = append(c.removed, r)
}

func removeResource(list []resource.Resource, target resource.Resource) []resource.Resource {
	out := list[:0:0]
	for _, r := range list {
		if r != target {
			out = append(out, r)
		}
	}
	return out
}

// AddedResources returns the resources queued to be linked on the next
// save cascade's to-many POST.
func (c *LinkedResourceCollection) AddedResources() []resource.Resource {
	return c.added
}

// RemovedResources returns the resources queued to be unlinked on the next
// save cascade's to-many DELETE.
func (c *LinkedResourceCollection) RemovedResources() []resource.Resource {
	return c.removed
}

// ClearDeltas discards the pending add/remove deltas, called once a save
// cascade completes successfully.
func (c *LinkedResourceCollection) ClearDeltas() {
	c.added = nil
	c.removed = nil
}
