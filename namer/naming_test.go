package namer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neuronlabs/jsonapi-client/namer"
)

func TestKebab(t *testing.T) {
	assert.Equal(t, "to-one-attribute", namer.Kebab("toOneAttribute"))
	assert.Equal(t, "string-attribute", namer.Kebab("StringAttribute"))
}

func TestParse(t *testing.T) {
	assert.Equal(t, "to_one_attribute", namer.Parse("snake")("toOneAttribute"))
	assert.Equal(t, "ToOneAttribute", namer.Parse("camel")("to_one_attribute"))
	assert.Equal(t, "toOneAttribute", namer.Parse("lower_camel")("to_one_attribute"))

	// unknown falls back to the default (kebab) formatter.
	assert.Equal(t, "to-one-attribute", namer.Parse("unknown")("toOneAttribute"))
}
