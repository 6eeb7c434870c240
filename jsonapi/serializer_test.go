package jsonapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/resource"
)

func TestSerializeResourcesNewOmitsID(t *testing.T) {
	reg := newTestRegistry()
	s := jsonapi.NewSerializer(reg)

	foo := resource.NewInstance("foos")
	foo.SetAttr("stringAttribute", "hello")

	body, err := s.SerializeResources([]resource.Resource{foo}, mapping.FullOptions)
	require.NoError(t, err)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "foos", data["type"])
	assert.NotContains(t, data, "id")
	attrs := data["attributes"].(map[string]interface{})
	assert.Equal(t, "hello", attrs["string-attribute"])
}

func TestSerializeResourcesExistingIncludesID(t *testing.T) {
	reg := newTestRegistry()
	s := jsonapi.NewSerializer(reg)

	foo := resource.NewInstance("foos")
	foo.SetID("1")
	foo.SetAttr("stringAttribute", "hello")

	opts := mapping.FullOptions
	opts.IncludeID = true
	body, err := s.SerializeResources([]resource.Resource{foo}, opts)
	require.NoError(t, err)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "1", data["id"])
}

func TestSerializeResourcesMultipleEmitsArray(t *testing.T) {
	reg := newTestRegistry()
	s := jsonapi.NewSerializer(reg)

	a := resource.NewInstance("foos")
	a.SetID("1")
	b := resource.NewInstance("foos")
	b.SetID("2")

	body, err := s.SerializeResources([]resource.Resource{a, b}, mapping.FullOptions)
	require.NoError(t, err)
	items := body["data"].([]interface{})
	assert.Len(t, items, 2)
}

func TestSerializeLinkDatumNull(t *testing.T) {
	body := jsonapi.SerializeLinkDatum(nil)
	assert.Nil(t, body["data"])
}

func TestSerializeLinkDatumSingle(t *testing.T) {
	body := jsonapi.SerializeLinkDatum(&resource.Identifier{Type: "bars", ID: "10"})
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "bars", data["type"])
	assert.Equal(t, "10", data["id"])
}

func TestSerializeLinkDataList(t *testing.T) {
	bar13 := resource.NewInstance("bars")
	bar13.SetID("13")
	body := jsonapi.SerializeLinkData(bar13)
	items := body["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "13", items[0].(map[string]interface{})["id"])
}
