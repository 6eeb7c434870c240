package mapping

import (
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// FieldKind distinguishes the six field descriptor variants a resource
// type's schema is built from.
type FieldKind int

const (
	KindPlainAttribute FieldKind = iota
	KindBooleanAttribute
	KindDateAttribute
	KindURLAttribute
	KindToOneRelationship
	KindToManyRelationship
)

func (k FieldKind) String() string {
	switch k {
	case KindPlainAttribute:
		return "PlainAttribute"
	case KindBooleanAttribute:
		return "BooleanAttribute"
	case KindDateAttribute:
		return "DateAttribute"
	case KindURLAttribute:
		return "URLAttribute"
	case KindToOneRelationship:
		return "ToOneRelationship"
	case KindToManyRelationship:
		return "ToManyRelationship"
	default:
		return "Unknown"
	}
}

// ExtractContext carries everything a descriptor's Extract needs to read
// one field out of a parsed resource representation: the already-narrowed
// "attributes" and "relationships" members (each a generic value tree, per
// this module's assumption that raw JSON parsing happens upstream), the
// active key formatter and value formatter registry, the in-flight
// identity pool, and the factory used to dispense relationship stubs.
type ExtractContext struct {
	Attributes    map[string]interface{}
	Relationships map[string]interface{}
	KeyFormatter  namer.KeyFormatter
	Formatters    *ValueFormatterRegistry
	Pool          *resource.Pool
	Factory       *resource.Factory
	BaseURL       string
}

// SerializeContext carries the output attribute/relationship maps a
// descriptor's Serialize writes into, plus the formatting and option
// context.
type SerializeContext struct {
	Attributes    map[string]interface{}
	Relationships map[string]interface{}
	KeyFormatter  namer.KeyFormatter
	Formatters    *ValueFormatterRegistry
	Options       SerializationOptions
}

// SerializationOptions controls what Serializer.SerializeResources (and, by
// extension, every descriptor's Serialize) emits.
type SerializationOptions struct {
	// IncludeID emits the resource's "id" member. POST bodies for new
	// resources normally omit it; PATCH bodies and client-generated-id
	// creates include it.
	IncludeID bool
	// DirtyFieldsOnly restricts attribute serialization to fields the
	// caller has marked dirty (see Resource dirty-tracking, an open
	// question the source only partially implements; this module accepts
	// the flag but, absent a dirty-tracking resource, treats it as a
	// no-op passthrough).
	DirtyFieldsOnly bool
	// IncludeToOne emits to-one relationship linkage.
	IncludeToOne bool
	// IncludeToMany emits to-many relationship linkage.
	IncludeToMany bool
	// OmitNullValues leaves out the key of an attribute whose in-memory
	// value is absent; when unset, such an attribute is written as a wire
	// null.
	OmitNullValues bool
}

// FullOptions is the SerializationOptions used for a full resource body
// (POST of a new resource, or the round-trip scenario in the testable
// properties): both relationship kinds and no field filtering. It leaves
// IncludeID off; callers that need the id in the body set it on a copy.
var FullOptions = SerializationOptions{IncludeToOne: true, IncludeToMany: true}

// FieldDescriptor is implemented by every field kind. Relationships
// implement RelationshipDescriptor in addition.
type FieldDescriptor interface {
	// Name is the domain identifier used on the Go side.
	Name() string
	// SerializedName is the wire identifier; defaults to Name.
	SerializedName() string
	// IsReadOnly excludes the field from Serialize when true.
	IsReadOnly() bool
	// Kind reports which of the six variants this descriptor is.
	Kind() FieldKind
	// Extract reads this field's wire value out of ctx into res.
	Extract(ctx *ExtractContext, res resource.Resource) error
	// Serialize writes this field's in-memory value out of res into ctx,
	// honoring ctx.Options. Read-only descriptors must be no-ops here.
	Serialize(res resource.Resource, ctx *SerializeContext) error
}

// base holds the fields every descriptor shares.
type base struct {
	name           string
	serializedName string
	isReadOnly     bool
}

func newBase(name string, formatter namer.KeyFormatter, opts []Option) base {
	b := base{name: name}
	for _, o := range opts {
		o(&b)
	}
	if b.serializedName == "" {
		if formatter != nil {
			b.serializedName = formatter(name)
		} else {
			b.serializedName = name
		}
	}
	return b
}

func (b base) Name() string           { return b.name }
func (b base) SerializedName() string { return b.serializedName }
func (b base) IsReadOnly() bool       { return b.isReadOnly }

// Option configures a field descriptor at construction time.
type Option func(*base)

// SerializedAs overrides a descriptor's wire name, instead of deriving it
// from the active KeyFormatter.
func SerializedAs(name string) Option {
	return func(b *base) { b.serializedName = name }
}

// ReadOnly marks a descriptor as excluded from Serialize.
func ReadOnly() Option {
	return func(b *base) { b.isReadOnly = true }
}
