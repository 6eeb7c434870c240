package resource

import (
	"github.com/neuronlabs/jsonapi-client/errors/class"
)

// Error classes raised by this package.
var (
	// ClassTypeUnregistered is the class a Registry implementation may use
	// for a resource type that was never registered. Factory.Instantiate and
	// Factory.Dispense return the Registry's error unchanged, so with
	// mapping.Registry the class is mapping.ClassTypeUnregistered instead.
	ClassTypeUnregistered = class.New(class.Client, "resource.type_unregistered")
)

// Constructor returns a fresh, empty Resource instance for one resource
// type. Registries (see package mapping) bind one Constructor per type
// name; Factory calls it to produce unpopulated instances during
// deserialization.
type Constructor func() Resource

// Registry is the minimal type-name-to-constructor lookup Factory needs.
// mapping.Registry implements this interface; Factory depends only on the
// interface so this package stays independent of the schema package.
type Registry interface {
	// New returns a fresh Resource for resourceType, or an error if the
	// type was never registered.
	New(resourceType string) (Resource, error)
}

// Factory instantiates resources by registered type.
type Factory struct {
	registry Registry
}

// NewFactory creates a Factory backed by the given Registry.
func NewFactory(registry Registry) *Factory {
	return &Factory{registry: registry}
}

// Instantiate returns a fresh, empty Resource of the given type, fed by the
// registry's constructor for that type.
func (f *Factory) Instantiate(resourceType string) (Resource, error) {
	r, err := f.registry.New(resourceType)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Dispense implements the three-step identity-pool lookup described by the
// data model: reuse an existing (type,id) match in pool; else, if index is
// given and the pool already holds at least index+1 resources of
// resourceType, reuse the index-th one positionally (this is how a
// caller-supplied mapping target receives a server-assigned id); else
// instantiate a fresh resource, assign id, append it to pool and return it.
func (f *Factory) Dispense(resourceType, id string, pool *Pool, index int, hasIndex bool) (Resource, error) {
	if id != "" {
		if existing, ok := pool.Get(resourceType, id); ok {
			return existing, nil
		}
	}
	if hasIndex {
		if target, ok := pool.NthOfType(resourceType, index); ok {
			if id != "" {
				target.SetID(id)
				pool.index(target)
			}
			return target, nil
		}
	}
	r, err := f.Instantiate(resourceType)
	if err != nil {
		return nil, err
	}
	if id != "" {
		r.SetID(id)
	}
	pool.Add(r)
	return r, nil
}
