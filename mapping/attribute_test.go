package mapping_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/resource"
)

func newExtractCtx(attrs map[string]interface{}) *mapping.ExtractContext {
	return &mapping.ExtractContext{
		Attributes: attrs,
		Formatters: mapping.NewValueFormatterRegistry(nil),
	}
}

func TestPlainAttributeRoundTrip(t *testing.T) {
	field := mapping.NewPlainAttribute("stringAttribute", namer.Kebab)
	assert.Equal(t, "string-attribute", field.SerializedName())

	res := resource.NewInstance("foos")
	ctx := newExtractCtx(map[string]interface{}{"string-attribute": "hello"})
	require.NoError(t, field.Extract(ctx, res))

	v, _ := res.Attr("stringAttribute")
	assert.Equal(t, "hello", v)

	out := &mapping.SerializeContext{Attributes: map[string]interface{}{}, Options: mapping.FullOptions}
	require.NoError(t, field.Serialize(res, out))
	assert.Equal(t, "hello", out.Attributes["string-attribute"])
}

func TestAttributeExtractNullLeavesSlotUntouched(t *testing.T) {
	field := mapping.NewPlainAttribute("stringAttribute", namer.Kebab)
	res := resource.NewInstance("foos")
	res.SetAttr("stringAttribute", "original")

	ctx := newExtractCtx(map[string]interface{}{"string-attribute": nil})
	require.NoError(t, field.Extract(ctx, res))

	v, ok := res.Attr("stringAttribute")
	assert.True(t, ok)
	assert.Equal(t, "original", v)
}

func TestAttributeSerializeOmitsReadOnly(t *testing.T) {
	field := mapping.NewPlainAttribute("computed", namer.Kebab, mapping.ReadOnly())
	res := resource.NewInstance("foos")
	res.SetAttr("computed", "value")

	out := &mapping.SerializeContext{Attributes: map[string]interface{}{}, Options: mapping.FullOptions}
	require.NoError(t, field.Serialize(res, out))
	assert.NotContains(t, out.Attributes, "computed")
}

func TestBooleanAttributeCoercion(t *testing.T) {
	field := mapping.NewBooleanAttribute("isActive", namer.Kebab)
	res := resource.NewInstance("foos")
	ctx := newExtractCtx(map[string]interface{}{"is-active": "true"})
	require.NoError(t, field.Extract(ctx, res))

	v, _ := res.Attr("isActive")
	assert.Equal(t, true, v)
}

func TestDateAttributeDefaultFormatUTC(t *testing.T) {
	field := mapping.NewDateAttribute("createdAt", "", namer.Kebab)
	res := resource.NewInstance("foos")
	ctx := newExtractCtx(map[string]interface{}{"created-at": "2021-05-06T10:00:00.000+02:00"})
	require.NoError(t, field.Extract(ctx, res))

	v, ok := res.Attr("createdAt")
	require.True(t, ok)
	tm := v.(time.Time)
	assert.Equal(t, 8, tm.Hour())
	assert.Equal(t, time.UTC, tm.Location())

	out := &mapping.SerializeContext{Attributes: map[string]interface{}{}, Options: mapping.FullOptions}
	require.NoError(t, field.Serialize(res, out))
	assert.Equal(t, "2021-05-06T08:00:00.000Z", out.Attributes["created-at"])
}

func TestURLAttributeResolvesRelative(t *testing.T) {
	base, err := url.Parse("http://example.com/")
	require.NoError(t, err)
	field := mapping.NewURLAttribute("avatar", base, namer.Kebab)

	res := resource.NewInstance("foos")
	ctx := newExtractCtx(map[string]interface{}{"avatar": "/images/1.png"})
	ctx.Formatters = mapping.NewValueFormatterRegistry(base)
	require.NoError(t, field.Extract(ctx, res))

	v, ok := res.Attr("avatar")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/images/1.png", v.(*url.URL).String())
}
