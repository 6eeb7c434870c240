package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/resource"
)

type fakeRegistry struct {
	types map[string]bool
}

func (f *fakeRegistry) New(resourceType string) (resource.Resource, error) {
	if !f.types[resourceType] {
		return nil, errors.New(resource.ClassTypeUnregistered, resourceType)
	}
	return resource.NewInstance(resourceType), nil
}

func newFakeRegistry(types ...string) *fakeRegistry {
	r := &fakeRegistry{types: make(map[string]bool)}
	for _, t := range types {
		r.types[t] = true
	}
	return r
}

func TestFactoryInstantiateUnregistered(t *testing.T) {
	f := resource.NewFactory(newFakeRegistry("foos"))
	_, err := f.Instantiate("bars")
	require.Error(t, err)
	assert.True(t, errors.Is(err, resource.ClassTypeUnregistered))
}

func TestPoolDedupByTypeID(t *testing.T) {
	f := resource.NewFactory(newFakeRegistry("foos"))
	pool := resource.NewPool()

	first, err := f.Dispense("foos", "1", pool, 0, false)
	require.NoError(t, err)

	second, err := f.Dispense("foos", "1", pool, 0, false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, pool.Len())
}

func TestDispensePositionalTarget(t *testing.T) {
	f := resource.NewFactory(newFakeRegistry("foos"))
	target := resource.NewInstance("foos")
	pool := resource.NewPool(target)

	dispensed, err := f.Dispense("foos", "42", pool, 0, true)
	require.NoError(t, err)

	assert.Same(t, target, dispensed)
	assert.Equal(t, "42", target.ID())

	byID, ok := pool.Get("foos", "42")
	require.True(t, ok)
	assert.Same(t, target, byID)
}

func TestDispenseFreshWhenNoMatch(t *testing.T) {
	f := resource.NewFactory(newFakeRegistry("foos"))
	pool := resource.NewPool()

	r, err := f.Dispense("foos", "9", pool, 0, false)
	require.NoError(t, err)
	assert.Equal(t, "9", r.ID())
	assert.Equal(t, 1, pool.Len())
}
