package mapping

import "github.com/neuronlabs/jsonapi-client/resource"

// ModelStruct is the declarative, immutable schema for one resource type:
// its wire type name, the constructor producing fresh instances, and its
// ordered field list. Instances hold only state, never schema; every
// instance of a type shares the same *ModelStruct.
type ModelStruct struct {
	resourceType string
	constructor  resource.Constructor
	fields       []FieldDescriptor
	fieldsByName map[string]FieldDescriptor
}

// NewModelStruct declares a resource type's schema.
func NewModelStruct(resourceType string, constructor resource.Constructor, fields ...FieldDescriptor) *ModelStruct {
	m := &ModelStruct{
		resourceType: resourceType,
		constructor:  constructor,
		fields:       fields,
		fieldsByName: make(map[string]FieldDescriptor, len(fields)),
	}
	for _, f := range fields {
		m.fieldsByName[f.Name()] = f
	}
	return m
}

// ResourceType returns the wire type name this schema describes.
func (m *ModelStruct) ResourceType() string { return m.resourceType }

// Fields returns the ordered field list.
func (m *ModelStruct) Fields() []FieldDescriptor { return m.fields }

// FieldByName looks up a field descriptor by its domain name.
func (m *ModelStruct) FieldByName(name string) (FieldDescriptor, bool) {
	f, ok := m.fieldsByName[name]
	return f, ok
}

// Relationships returns the subset of Fields that are relationships.
func (m *ModelStruct) Relationships() []RelationshipDescriptor {
	var rels []RelationshipDescriptor
	for _, f := range m.fields {
		if rel, ok := f.(RelationshipDescriptor); ok {
			rels = append(rels, rel)
		}
	}
	return rels
}

// New constructs a fresh, empty instance of this type.
func (m *ModelStruct) New() resource.Resource {
	r := m.constructor()
	r.SetResourceType(m.resourceType)
	return r
}
