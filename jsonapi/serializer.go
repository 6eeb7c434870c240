package jsonapi

import (
	"github.com/neuronlabs/jsonapi-client/annotation"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// Serializer builds request bodies: full resource representations for
// POST/PATCH, and linkage-only bodies for the relationship endpoints a save
// cascade writes to.
type Serializer struct {
	Registry   *mapping.Registry
	Formatters *mapping.ValueFormatterRegistry
}

// NewSerializer builds a Serializer over registry.
func NewSerializer(registry *mapping.Registry) *Serializer {
	return &Serializer{Registry: registry, Formatters: mapping.NewValueFormatterRegistry(nil)}
}

// SerializeResources builds the top-level {"data": ...} body for one or
// more resources, honoring options. A single resource serializes to a
// singular "data" object; more than one serializes to an array.
func (s *Serializer) SerializeResources(resources []resource.Resource, options mapping.SerializationOptions) (map[string]interface{}, error) {
	if len(resources) == 1 {
		obj, err := s.serializeResource(resources[0], options)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{annotation.Data: obj}, nil
	}
	items := make([]interface{}, 0, len(resources))
	for _, res := range resources {
		obj, err := s.serializeResource(res, options)
		if err != nil {
			return nil, err
		}
		items = append(items, obj)
	}
	return map[string]interface{}{annotation.Data: items}, nil
}

func (s *Serializer) serializeResource(res resource.Resource, options mapping.SerializationOptions) (map[string]interface{}, error) {
	obj := map[string]interface{}{annotation.Type: res.ResourceType()}
	if options.IncludeID && res.ID() != "" {
		obj[annotation.ID] = res.ID()
	}

	model, ok := s.Registry.ModelFor(res.ResourceType())
	if !ok {
		return obj, nil
	}

	ctx := &mapping.SerializeContext{
		Attributes:    map[string]interface{}{},
		Relationships: map[string]interface{}{},
		Formatters:    s.Formatters,
		Options:       options,
	}
	for _, field := range model.Fields() {
		if field.IsReadOnly() {
			continue
		}
		if err := field.Serialize(res, ctx); err != nil {
			return nil, err
		}
	}
	if len(ctx.Attributes) > 0 {
		obj[annotation.Attributes] = ctx.Attributes
	}
	if len(ctx.Relationships) > 0 {
		obj[annotation.Relationships] = ctx.Relationships
	}
	return obj, nil
}

// SerializeLinkData builds the linkage-only body used for
// PATCH/POST/DELETE to a relationship endpoint: {"data": null} for a single
// nil resource, otherwise an array of {type,id} (empty when no resources
// are given). The single-object form is built by SerializeLinkDatum.
func SerializeLinkData(resources ...resource.Resource) map[string]interface{} {
	if len(resources) == 0 {
		return map[string]interface{}{annotation.Data: []interface{}{}}
	}
	if len(resources) == 1 && resources[0] == nil {
		return map[string]interface{}{annotation.Data: nil}
	}
	items := make([]interface{}, len(resources))
	for i, res := range resources {
		items[i] = map[string]interface{}{annotation.Type: res.ResourceType(), annotation.ID: res.ID()}
	}
	return map[string]interface{}{annotation.Data: items}
}

// SerializeLinkDatum builds the linkage-only body for a single to-one
// relationship write: {"data": {type,id}} or {"data": null}.
func SerializeLinkDatum(id *resource.Identifier) map[string]interface{} {
	if id == nil {
		return map[string]interface{}{annotation.Data: nil}
	}
	return map[string]interface{}{annotation.Data: map[string]interface{}{annotation.Type: id.Type, annotation.ID: id.ID}}
}
