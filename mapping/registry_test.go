package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/resource"
)

type foo struct {
	*resource.Instance
}

func TestRegistryNewUnregisteredType(t *testing.T) {
	reg := mapping.NewRegistry()
	_, err := reg.New("foos")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapping.ClassTypeUnregistered))
}

func TestRegistryNewReturnsConstructedInstance(t *testing.T) {
	reg := mapping.NewRegistry()
	reg.Register(mapping.NewModelStruct("foos", func() resource.Resource {
		return &foo{Instance: resource.NewInstance("")}
	}))

	res, err := reg.New("foos")
	require.NoError(t, err)
	assert.Equal(t, "foos", res.ResourceType())
}

func TestPluralizedTypeName(t *testing.T) {
	assert.Equal(t, "foos", mapping.PluralizedTypeName(&foo{}))
	assert.Equal(t, "", mapping.PluralizedTypeName(struct{}{}))
}
