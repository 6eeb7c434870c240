// Package resource defines the typed in-memory resource graph: the
// Resource/Instance pair carrying identity, attribute slots, raw
// relationship data and the loaded flag, plus the factory and identity
// pool that guarantee a single instance per (type, id) within one
// deserialization.
package resource

// Resource is implemented by every in-memory resource instance. Library
// users normally don't implement it directly: they embed *Instance in a
// named Go type and write typed accessor methods over its Attr/SetAttr,
// the pattern recommended for declarative, reflection-free field access
// (option (a) of the field-access design notes).
type Resource interface {
	// ResourceType is the resource's wire type name, e.g. "foos".
	ResourceType() string
	SetResourceType(resourceType string)

	// ID is the resource's identifier. Empty means unsaved.
	ID() string
	SetID(id string)

	// URL is the resource's canonical self URL, when known.
	URL() string
	SetURL(url string)

	// IsLoaded is true iff the attributes reflect a successful
	// fetch/create/update; false for stub instances built only from
	// linkage.
	IsLoaded() bool
	SetLoaded(loaded bool)

	// Meta is the resource-level free-form meta object.
	Meta() map[string]interface{}
	SetMeta(meta map[string]interface{})

	// Attr reads an attribute slot by domain field name.
	Attr(name string) (interface{}, bool)
	// SetAttr writes an attribute slot by domain field name.
	SetAttr(name string, value interface{})

	// Relationship reads the raw wire-level RelationshipData recorded for
	// a relationship field, if any was ever set.
	Relationship(name string) (*RelationshipData, bool)
	// SetRelationship records the raw wire-level RelationshipData for a
	// relationship field.
	SetRelationship(name string, data *RelationshipData)

	// Slot reads the resolved in-memory value of a relationship field: a
	// Resource for a to-one, or a *collection.LinkedResourceCollection
	// (stored opaquely, see the collection package) for a to-many.
	Slot(name string) (interface{}, bool)
	// SetSlot writes the resolved in-memory value of a relationship
	// field.
	SetSlot(name string, value interface{})

	// Unload clears every attribute and relationship slot and sets
	// IsLoaded to false, preserving ID, ResourceType and URL.
	Unload()
}

// LinkageState distinguishes the three states a relationship's linkage can
// be in on the wire: undisclosed (no "data" key), empty (a disclosed empty
// relationship) and list (a disclosed, non-trivial set of identifiers, one
// element for a to-one).
type LinkageState int

const (
	// LinkageUndisclosed means the server did not send a "data" member for
	// this relationship at all.
	LinkageUndisclosed LinkageState = iota
	// LinkageEmpty means the server sent "data: null" (to-one) or
	// "data: []" (to-many): a confirmed empty relationship.
	LinkageEmpty
	// LinkageList means the server sent one ("data: {type,id}") or more
	// identifiers.
	LinkageList
)

// Identifier is a bare (type, id) pair as carried in relationship linkage.
type Identifier struct {
	Type string
	ID   string
}

// RelationshipData is the raw wire-level relationship record: the
// relationship object's links and linkage, independent of whether the
// linked resource(s) have been resolved against the identity pool.
type RelationshipData struct {
	SelfURL    string
	RelatedURL string
	Linkage    LinkageState
	Identifiers []Identifier
}
