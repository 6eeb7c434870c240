package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/resource"
)

func newTestFactory(types ...string) (*mapping.Registry, *resource.Factory) {
	reg := mapping.NewRegistry()
	for _, ty := range types {
		ty := ty
		reg.Register(mapping.NewModelStruct(ty, func() resource.Resource { return resource.NewInstance(ty) }))
	}
	return reg, resource.NewFactory(reg)
}

func TestToOneRelationshipExtractDispensesStub(t *testing.T) {
	_, factory := newTestFactory("bars")
	field := mapping.NewToOneRelationship("toOneAttribute", "bars", namer.Kebab)

	res := resource.NewInstance("foos")
	pool := resource.NewPool()
	ctx := &mapping.ExtractContext{
		Relationships: map[string]interface{}{
			"to-one-attribute": map[string]interface{}{
				"data":  map[string]interface{}{"type": "bars", "id": "10"},
				"links": map[string]interface{}{"related": "http://example.com/bars/10"},
			},
		},
		Pool:    pool,
		Factory: factory,
	}
	require.NoError(t, field.Extract(ctx, res))

	slot, ok := res.Slot("toOneAttribute")
	require.True(t, ok)
	stub := slot.(resource.Resource)
	assert.Equal(t, "10", stub.ID())
	assert.False(t, stub.IsLoaded())
	assert.Equal(t, "http://example.com/bars/10", stub.URL())
}

func TestToOneRelationshipExtractNullIsKnownEmpty(t *testing.T) {
	_, factory := newTestFactory("bars")
	field := mapping.NewToOneRelationship("toOneAttribute", "bars", namer.Kebab)

	res := resource.NewInstance("foos")
	ctx := &mapping.ExtractContext{
		Relationships: map[string]interface{}{
			"to-one-attribute": map[string]interface{}{"data": nil},
		},
		Pool:    resource.NewPool(),
		Factory: factory,
	}
	require.NoError(t, field.Extract(ctx, res))

	slot, ok := res.Slot("toOneAttribute")
	assert.True(t, ok)
	assert.Nil(t, slot)
}

func TestToManyRelationshipResolvesAgainstPool(t *testing.T) {
	_, factory := newTestFactory("foos", "bars")
	field := mapping.NewToManyRelationship("toManyAttribute", "bars", namer.Kebab)

	res := resource.NewInstance("foos")
	pool := resource.NewPool()
	bar1, _ := factory.Dispense("bars", "1", pool, 0, false)
	bar1.SetLoaded(true)

	ctx := &mapping.ExtractContext{
		Relationships: map[string]interface{}{
			"to-many-attribute": map[string]interface{}{
				"data": []interface{}{
					map[string]interface{}{"type": "bars", "id": "1"},
					map[string]interface{}{"type": "bars", "id": "2"},
				},
			},
		},
		Pool:    pool,
		Factory: factory,
	}
	require.NoError(t, field.Extract(ctx, res))

	require.NoError(t, field.Resolve(res, pool))
	slot, ok := res.Slot("toManyAttribute")
	require.True(t, ok)
	linked := slot.(*collection.LinkedResourceCollection)
	assert.False(t, linked.IsLoaded(), "bar 2 isn't pooled yet, resolution must not declare loaded")

	factory.Dispense("bars", "2", pool, 0, false)
	require.NoError(t, field.Resolve(res, pool))
	assert.True(t, linked.IsLoaded())
	assert.Len(t, linked.Resources, 2)
}

func TestToManyRelationshipUpdateOperations(t *testing.T) {
	field := mapping.NewToManyRelationship("toManyAttribute", "bars", namer.Kebab)
	res := resource.NewInstance("foos")

	bar13 := resource.NewInstance("bars")
	bar13.SetID("13")
	bar11 := resource.NewInstance("bars")
	bar11.SetID("11")

	linked := collection.NewLinked("", "http://example.com/foos/1/relationships/to-many-attribute")
	linked.AddResourceAsExisting(bar11)
	linked.AddResource(bar13)
	linked.RemoveResource(bar11)
	res.SetSlot("toManyAttribute", linked)

	updates := field.UpdateOperations(res)
	require.Len(t, updates, 2)
	assert.Equal(t, mapping.RelationshipAdd, updates[0].Kind)
	assert.Equal(t, "13", updates[0].Resources[0].ID())
	assert.Equal(t, mapping.RelationshipRemove, updates[1].Kind)
	assert.Equal(t, "11", updates[1].Resources[0].ID())
}

func TestToOneRelationshipUpdateOperations(t *testing.T) {
	field := mapping.NewToOneRelationship("toOneAttribute", "bars", namer.Kebab)
	res := resource.NewInstance("foos")
	bar10 := resource.NewInstance("bars")
	bar10.SetID("10")
	res.SetSlot("toOneAttribute", resource.Resource(bar10))

	updates := field.UpdateOperations(res)
	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].Identifier)
	assert.Equal(t, "10", updates[0].Identifier.ID)
	assert.Equal(t, "bars", updates[0].Identifier.Type)
}
