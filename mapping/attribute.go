package mapping

import (
	"net/url"
	"time"

	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// PlainAttribute is an opaque scalar/string attribute: its wire value is
// copied to and from the resource's slot without transformation.
type PlainAttribute struct {
	base
}

// NewPlainAttribute declares a plain attribute field named name.
func NewPlainAttribute(name string, formatter namer.KeyFormatter, opts ...Option) *PlainAttribute {
	return &PlainAttribute{base: newBase(name, formatter, opts)}
}

func (a *PlainAttribute) Kind() FieldKind { return KindPlainAttribute }

func (a *PlainAttribute) Extract(ctx *ExtractContext, res resource.Resource) error {
	wire, ok := ctx.Attributes[a.serializedName]
	if !ok || wire == nil {
		return nil
	}
	res.SetAttr(a.name, wire)
	return nil
}

func (a *PlainAttribute) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if a.isReadOnly {
		return nil
	}
	value, ok := res.Attr(a.name)
	writeAttribute(ctx, a.serializedName, value, ok)
	return nil
}

// writeAttribute writes the attribute's wire value, honoring
// OmitNullValues for an absent in-memory value.
func writeAttribute(ctx *SerializeContext, wireKey string, value interface{}, ok bool) {
	if !ok {
		if !ctx.Options.OmitNullValues {
			ctx.Attributes[wireKey] = nil
		}
		return
	}
	ctx.Attributes[wireKey] = value
}

// BooleanAttribute coerces its wire value to a Go bool.
type BooleanAttribute struct {
	base
}

// NewBooleanAttribute declares a boolean attribute field named name.
func NewBooleanAttribute(name string, formatter namer.KeyFormatter, opts ...Option) *BooleanAttribute {
	return &BooleanAttribute{base: newBase(name, formatter, opts)}
}

func (a *BooleanAttribute) Kind() FieldKind { return KindBooleanAttribute }

func (a *BooleanAttribute) Extract(ctx *ExtractContext, res resource.Resource) error {
	wire, ok := ctx.Attributes[a.serializedName]
	if !ok || wire == nil {
		return nil
	}
	b, err := ctx.Formatters.ParseBoolean(wire)
	if err != nil {
		return err
	}
	res.SetAttr(a.name, b)
	return nil
}

func (a *BooleanAttribute) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if a.isReadOnly {
		return nil
	}
	value, ok := res.Attr(a.name)
	writeAttribute(ctx, a.serializedName, value, ok)
	return nil
}

// DateAttribute round-trips a time.Time through Format, UTC by default.
type DateAttribute struct {
	base
	Format string
}

// NewDateAttribute declares a date attribute field named name with the
// given layout; an empty layout defaults to DefaultDateFormat.
func NewDateAttribute(name, format string, formatter namer.KeyFormatter, opts ...Option) *DateAttribute {
	if format == "" {
		format = DefaultDateFormat
	}
	return &DateAttribute{base: newBase(name, formatter, opts), Format: format}
}

func (a *DateAttribute) Kind() FieldKind { return KindDateAttribute }

func (a *DateAttribute) Extract(ctx *ExtractContext, res resource.Resource) error {
	wire, ok := ctx.Attributes[a.serializedName]
	if !ok || wire == nil {
		return nil
	}
	t, err := ctx.Formatters.ParseDate(wire, a.Format)
	if err != nil {
		return err
	}
	res.SetAttr(a.name, t)
	return nil
}

func (a *DateAttribute) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if a.isReadOnly {
		return nil
	}
	wire, ok := res.Attr(a.name)
	if !ok {
		writeAttribute(ctx, a.serializedName, nil, false)
		return nil
	}
	t, ok := wire.(time.Time)
	if !ok {
		return errInvalidAttributeType(a.name, "time.Time", wire)
	}
	ctx.Attributes[a.serializedName] = ctx.Formatters.FormatDate(t, a.Format)
	return nil
}

// URLAttribute parses its wire value as an absolute URL, or resolves it
// against BaseURL when relative.
type URLAttribute struct {
	base
	BaseURL *url.URL
}

// NewURLAttribute declares a URL attribute field named name, optionally
// resolving relative wire values against baseURL.
func NewURLAttribute(name string, baseURL *url.URL, formatter namer.KeyFormatter, opts ...Option) *URLAttribute {
	return &URLAttribute{base: newBase(name, formatter, opts), BaseURL: baseURL}
}

func (a *URLAttribute) Kind() FieldKind { return KindURLAttribute }

func (a *URLAttribute) Extract(ctx *ExtractContext, res resource.Resource) error {
	wire, ok := ctx.Attributes[a.serializedName]
	if !ok || wire == nil {
		return nil
	}
	u, err := ctx.Formatters.ParseURL(wire, a.BaseURL)
	if err != nil {
		return err
	}
	res.SetAttr(a.name, u)
	return nil
}

func (a *URLAttribute) Serialize(res resource.Resource, ctx *SerializeContext) error {
	if a.isReadOnly {
		return nil
	}
	wire, ok := res.Attr(a.name)
	if !ok {
		writeAttribute(ctx, a.serializedName, nil, false)
		return nil
	}
	u, ok := wire.(*url.URL)
	if !ok {
		return errInvalidAttributeType(a.name, "*url.URL", wire)
	}
	ctx.Attributes[a.serializedName] = u.String()
	return nil
}
