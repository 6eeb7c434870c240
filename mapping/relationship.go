package mapping

import (
	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// RelationshipDescriptor is implemented by ToOneRelationship and
// ToManyRelationship in addition to FieldDescriptor: the post-deserialize
// resolution pass and the save cascade both need relationship-specific
// behavior a plain attribute doesn't have.
type RelationshipDescriptor interface {
	FieldDescriptor
	// RelatedType is the wire type name of resources this relationship
	// points at.
	RelatedType() string
	// Resolve fills in-memory references for this relationship's slot
	// from the current pool, used by the deserializer's post-pass for
	// to-many linkage that arrived before its targets were dispensed.
	Resolve(res resource.Resource, pool *resource.Pool) error
	// UpdateOperations returns the relationship mutations a save cascade
	// must replay for res, skipping any with nothing to do.
	UpdateOperations(res resource.Resource) []RelationshipUpdate
}

// RelationshipUpdateKind distinguishes the three relationship write
// operations the save cascade can schedule.
type RelationshipUpdateKind int

const (
	// RelationshipReplace is a PATCH to /relationships/<name> with a
	// single {type,id} or null, for a to-one relationship.
	RelationshipReplace RelationshipUpdateKind = iota
	// RelationshipAdd is a POST to /relationships/<name> with the
	// to-many collection's added resources.
	RelationshipAdd
	// RelationshipRemove is a DELETE to /relationships/<name> with the
	// to-many collection's removed resources.
	RelationshipRemove
)

// RelationshipUpdate is one relationship mutation a save cascade must
// issue.
type RelationshipUpdate struct {
	Kind             RelationshipUpdateKind
	RelationshipName string
	// Identifier is set for RelationshipReplace; nil means "data: null".
	Identifier *resource.Identifier
	// Resources is set for RelationshipAdd/RelationshipRemove.
	Resources []resource.Resource
}

// ToOneRelationship models exactly one related resource, or none.
type ToOneRelationship struct {
	base
	relatedType string
}

// NewToOneRelationship declares a to-one relationship field named name,
// pointing at relatedType.
func NewToOneRelationship(name, relatedType string, formatter namer.KeyFormatter, opts ...Option) *ToOneRelationship {
	return &ToOneRelationship{base: newBase(name, formatter, opts), relatedType: relatedType}
}

func (r *ToOneRelationship) Kind() FieldKind      { return KindToOneRelationship }
func (r *ToOneRelationship) RelatedType() string  { return r.relatedType }

func (r *ToOneRelationship) Extract(ctx *ExtractContext, res resource.Resource) error {
	raw, present := ctx.Relationships[r.serializedName]
	if !present {
		return nil
	}
	obj, _ := raw.(map[string]interface{})

	data := &resource.RelationshipData{Linkage: resource.LinkageUndisclosed}
	if links, ok := obj["links"].(map[string]interface{}); ok {
		if self, ok := links["self"].(string); ok {
			data.SelfURL = self
		}
		if related, ok := links["related"].(string); ok {
			data.RelatedURL = related
		}
	}

	dataValue, hasData := obj["data"]
	var stub resource.Resource
	if hasData {
		if dataValue == nil {
			data.Linkage = resource.LinkageEmpty
		} else if ref, ok := dataValue.(map[string]interface{}); ok {
			relType, _ := ref["type"].(string)
			relID, _ := ref["id"].(string)
			data.Linkage = resource.LinkageList
			data.Identifiers = []resource.Identifier{{Type: relType, ID: relID}}

			dispensed, err := ctx.Factory.Dispense(relType, relID, ctx.Pool, 0, false)
			if err != nil {
				return err
			}
			if data.RelatedURL != "" {
				dispensed.SetURL(data.RelatedURL)
			}
			stub = dispensed
		}
	}
	res.SetRelationship(r.name, data)

	existing, hasSlot := res.Slot(r.name)
	slotEmpty := !hasSlot || existing == nil
	slotUnloaded := false
	if !slotEmpty {
		if existingRes, ok := existing.(resource.Resource); ok {
			slotUnloaded = !existingRes.IsLoaded()
		}
	}
	if hasData && (slotEmpty || slotUnloaded) {
		res.SetSlot(r.name, stub)
	}
	return nil
}

func (r *ToOneRelationship) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if r.isReadOnly || !ctx.Options.IncludeToOne {
		return nil
	}
	slot, ok := res.Slot(r.name)
	if !ok || slot == nil {
		ctx.Relationships[r.serializedName] = map[string]interface{}{"data": nil}
		return nil
	}
	related, ok := slot.(resource.Resource)
	if !ok {
		return errInvalidAttributeType(r.name, "resource.Resource", slot)
	}
	if related.ID() == "" {
		ctx.Relationships[r.serializedName] = map[string]interface{}{"data": nil}
		return nil
	}
	ctx.Relationships[r.serializedName] = map[string]interface{}{
		"data": map[string]interface{}{"type": related.ResourceType(), "id": related.ID()},
	}
	return nil
}

// Resolve is a no-op for to-one relationships: linkage already points at
// the dispensed stub during Extract, per the data model's invariant that no
// extra resolution pass is needed.
func (r *ToOneRelationship) Resolve(res resource.Resource, pool *resource.Pool) error {
	return nil
}

func (r *ToOneRelationship) UpdateOperations(res resource.Resource) []RelationshipUpdate {
	update := RelationshipUpdate{Kind: RelationshipReplace, RelationshipName: r.name}
	slot, ok := res.Slot(r.name)
	if ok && slot != nil {
		if related, ok := slot.(resource.Resource); ok && related.ID() != "" {
			update.Identifier = &resource.Identifier{Type: related.ResourceType(), ID: related.ID()}
		}
	}
	return []RelationshipUpdate{update}
}

// ToManyRelationship models a homogeneous collection of related resources.
type ToManyRelationship struct {
	base
	relatedType string
}

// NewToManyRelationship declares a to-many relationship field named name,
// pointing at relatedType.
func NewToManyRelationship(name, relatedType string, formatter namer.KeyFormatter, opts ...Option) *ToManyRelationship {
	return &ToManyRelationship{base: newBase(name, formatter, opts), relatedType: relatedType}
}

func (r *ToManyRelationship) Kind() FieldKind     { return KindToManyRelationship }
func (r *ToManyRelationship) RelatedType() string { return r.relatedType }

func (r *ToManyRelationship) Extract(ctx *ExtractContext, res resource.Resource) error {
	raw, present := ctx.Relationships[r.serializedName]
	if !present {
		return nil
	}
	obj, _ := raw.(map[string]interface{})

	var resourcesURL, linkURL string
	if links, ok := obj["links"].(map[string]interface{}); ok {
		if self, ok := links["self"].(string); ok {
			linkURL = self
		}
		if related, ok := links["related"].(string); ok {
			resourcesURL = related
		}
	}

	linked := collection.NewLinked(resourcesURL, linkURL)
	data := &resource.RelationshipData{Linkage: resource.LinkageUndisclosed}

	dataValue, hasData := obj["data"]
	if hasData {
		items, _ := dataValue.([]interface{})
		linked.HasLinkage = true
		if len(items) == 0 {
			data.Linkage = resource.LinkageEmpty
		} else {
			data.Linkage = resource.LinkageList
		}
		for _, item := range items {
			ref, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			relType, _ := ref["type"].(string)
			relID, _ := ref["id"].(string)
			data.Identifiers = append(data.Identifiers, resource.Identifier{Type: relType, ID: relID})
			linked.Linkage = append(linked.Linkage, resource.Identifier{Type: relType, ID: relID})
		}
	}
	res.SetRelationship(r.name, data)

	existing, hasSlot := res.Slot(r.name)
	slotEmpty := !hasSlot || existing == nil
	if hasData || slotEmpty {
		res.SetSlot(r.name, linked)
	}
	return nil
}

func (r *ToManyRelationship) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if r.isReadOnly || !ctx.Options.IncludeToMany {
		return nil
	}
	slot, ok := res.Slot(r.name)
	if !ok || slot == nil {
		ctx.Relationships[r.serializedName] = map[string]interface{}{"data": []interface{}{}}
		return nil
	}
	linked, ok := slot.(*collection.LinkedResourceCollection)
	if !ok {
		return errInvalidAttributeType(r.name, "*collection.LinkedResourceCollection", slot)
	}
	items := make([]interface{}, 0, len(linked.Resources))
	for _, related := range linked.Resources {
		if related.ID() == "" {
			continue
		}
		items = append(items, map[string]interface{}{"type": related.ResourceType(), "id": related.ID()})
	}
	ctx.Relationships[r.serializedName] = map[string]interface{}{"data": items}
	return nil
}

// Resolve intersects the linked collection's disclosed linkage against
// pool: if every identifier resolves to a pooled resource, the collection's
// Resources is replaced with the resolved set and marked loaded.
func (r *ToManyRelationship) Resolve(res resource.Resource, pool *resource.Pool) error {
	slot, ok := res.Slot(r.name)
	if !ok || slot == nil {
		return nil
	}
	linked, ok := slot.(*collection.LinkedResourceCollection)
	if !ok || !linked.HasLinkage {
		return nil
	}
	resolved := make([]resource.Resource, 0, len(linked.Linkage))
	for _, id := range linked.Linkage {
		match, found := pool.Get(id.Type, id.ID)
		if !found {
			return nil
		}
		resolved = append(resolved, match)
	}
	linked.Resources = resolved
	linked.SetLoaded(true)
	return nil
}

func (r *ToManyRelationship) UpdateOperations(res resource.Resource) []RelationshipUpdate {
	slot, ok := res.Slot(r.name)
	if !ok || slot == nil {
		return nil
	}
	linked, ok := slot.(*collection.LinkedResourceCollection)
	if !ok {
		return nil
	}
	var updates []RelationshipUpdate
	if added := linked.AddedResources(); len(added) > 0 {
		updates = append(updates, RelationshipUpdate{Kind: RelationshipAdd, RelationshipName: r.name, Resources: added})
	}
	if removed := linked.RemovedResources(); len(removed) > 0 {
		updates = append(updates, RelationshipUpdate{Kind: RelationshipRemove, RelationshipName: r.name, Resources: removed})
	}
	return updates
}
