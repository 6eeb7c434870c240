package mapping

import (
	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/errors/class"
)

// Error classes raised while registering or resolving a resource schema.
var (
	// ClassTypeUnregistered mirrors resource.ClassTypeUnregistered for the
	// Registry's own resource.Registry implementation.
	ClassTypeUnregistered = class.New(class.Client, "mapping.type_unregistered")
	// ClassInvalidFieldValue is raised when an attribute's in-memory value
	// doesn't match the Go type its descriptor expects during Serialize.
	ClassInvalidFieldValue = class.New(class.Client, "mapping.invalid_field_value")
	// ClassUnknownRelatedType classifies a relationship descriptor naming a
	// related resource type the registry doesn't know. No code in this
	// module raises it.
	ClassUnknownRelatedType = class.New(class.Client, "mapping.unknown_related_type")
)

func errInvalidAttributeType(field, wantType string, got interface{}) error {
	return errors.Newf(ClassInvalidFieldValue, "field %q expects a %s value, got %T", field, wantType, got)
}
