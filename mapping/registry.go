package mapping

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// Registry is the process-wide store of resource type
// schemas. It implements resource.Registry, so a *resource.Factory can be
// built directly over it. A Registry is initialized during client
// construction and treated as effectively immutable once the first
// operation is issued.
type Registry struct {
	models map[string]*ModelStruct
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*ModelStruct)}
}

var _ resource.Registry = (*Registry)(nil)

// Register binds resourceType to a ModelStruct. Registering the same type
// twice replaces the previous schema.
func (r *Registry) Register(model *ModelStruct) {
	r.models[model.ResourceType()] = model
}

// ModelFor looks up the schema registered for resourceType.
func (r *Registry) ModelFor(resourceType string) (*ModelStruct, bool) {
	m, ok := r.models[resourceType]
	return m, ok
}

// New implements resource.Registry: it instantiates a fresh, empty resource
// of resourceType, failing with ClassTypeUnregistered if the type was never
// registered.
func (r *Registry) New(resourceType string) (resource.Resource, error) {
	model, ok := r.models[resourceType]
	if !ok {
		return nil, errors.Newf(ClassTypeUnregistered, "resource type %q is not registered", resourceType)
	}
	return model.New(), nil
}

// PluralizedTypeName derives a default wire resource type name from a Go
// value's bare type name by pluralizing it (e.g. &Foo{} -> "foos"),
// lower-casing the first letter so callers that don't want to spell out a
// wire type string explicitly at registration still get a reasonable
// JSON:API default.
func PluralizedTypeName(model interface{}) string {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	lower := string(unicode.ToLower(first)) + name[size:]
	return inflection.Plural(lower)
}
