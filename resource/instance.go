package resource

// Instance is the default, concrete implementation of Resource: an
// attribute-slot map keyed by field name, per the field-access design
// note's recommended alternative to runtime reflection. A resource type
// author embeds *Instance in a named Go struct and writes typed getters
// and setters over Attr/SetAttr; the descriptors in package mapping never
// need to know about that wrapper type.
type Instance struct {
	resourceType string
	id           string
	url          string
	isLoaded     bool
	meta         map[string]interface{}

	attributes    map[string]interface{}
	relationships map[string]*RelationshipData
	slots         map[string]interface{}
}

var _ Resource = (*Instance)(nil)

// NewInstance creates an empty, unloaded Instance of the given resource
// type.
func NewInstance(resourceType string) *Instance {
	return &Instance{resourceType: resourceType}
}

func (i *Instance) ResourceType() string { return i.resourceType }

func (i *Instance) SetResourceType(resourceType string) { i.resourceType = resourceType }

func (i *Instance) ID() string { return i.id }

func (i *Instance) SetID(id string) { i.id = id }

func (i *Instance) URL() string { return i.url }

func (i *Instance) SetURL(url string) { i.url = url }

func (i *Instance) IsLoaded() bool { return i.isLoaded }

func (i *Instance) SetLoaded(loaded bool) { i.isLoaded = loaded }

func (i *Instance) Meta() map[string]interface{} { return i.meta }

func (i *Instance) SetMeta(meta map[string]interface{}) { i.meta = meta }

func (i *Instance) Attr(name string) (interface{}, bool) {
	if i.attributes == nil {
		return nil, false
	}
	v, ok := i.attributes[name]
	return v, ok
}

func (i *Instance) SetAttr(name string, value interface{}) {
	if i.attributes == nil {
		i.attributes = make(map[string]interface{})
	}
	i.attributes[name] = value
}

func (i *Instance) Relationship(name string) (*RelationshipData, bool) {
	if i.relationships == nil {
		return nil, false
	}
	v, ok := i.relationships[name]
	return v, ok
}

func (i *Instance) SetRelationship(name string, data *RelationshipData) {
	if i.relationships == nil {
		i.relationships = make(map[string]*RelationshipData)
	}
	i.relationships[name] = data
}

func (i *Instance) Slot(name string) (interface{}, bool) {
	if i.slots == nil {
		return nil, false
	}
	v, ok := i.slots[name]
	return v, ok
}

func (i *Instance) SetSlot(name string, value interface{}) {
	if i.slots == nil {
		i.slots = make(map[string]interface{})
	}
	i.slots[name] = value
}

// Unload implements the unload law: every attribute and relationship slot
// is cleared and IsLoaded becomes false; ID, ResourceType and URL survive.
func (i *Instance) Unload() {
	i.attributes = nil
	i.relationships = nil
	i.slots = nil
	i.meta = nil
	i.isLoaded = false
}
