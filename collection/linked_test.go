package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/resource"
)

func TestLinkedAddResourceQueuesAdd(t *testing.T) {
	linked := collection.NewLinked("http://example.com/foos/1/bars", "http://example.com/foos/1/relationships/bars")
	bar := resource.NewInstance("bars")
	bar.SetID("1")

	linked.AddResource(bar)

	assert.Equal(t, []resource.Resource{bar}, linked.Resources)
	assert.Equal(t, []resource.Resource{bar}, linked.AddedResources())
	assert.Empty(t, linked.RemovedResources())
}

func TestLinkedAddResourceAsExistingSkipsDelta(t *testing.T) {
	linked := collection.NewLinked("", "")
	bar := resource.NewInstance("bars")
	bar.SetID("1")

	linked.AddResourceAsExisting(bar)

	assert.Equal(t, []resource.Resource{bar}, linked.Resources)
	assert.Empty(t, linked.AddedResources())
}

func TestLinkedRemoveResourceCancelsPendingAdd(t *testing.T) {
	linked := collection.NewLinked("", "")
	bar := resource.NewInstance("bars")
	bar.SetID("1")

	linked.AddResource(bar)
	linked.RemoveResource(bar)

	assert.Empty(t, linked.Resources)
	assert.Empty(t, linked.AddedResources(), "an add cancelled before save must not appear in the add delta")
	assert.Empty(t, linked.RemovedResources(), "cancelling a pending add must not enqueue a remove")
}

func TestLinkedRemoveResourceQueuesRemoveForExisting(t *testing.T) {
	linked := collection.NewLinked("", "")
	bar := resource.NewInstance("bars")
	bar.SetID("1")

	linked.AddResourceAsExisting(bar)
	linked.RemoveResource(bar)

	assert.Empty(t, linked.Resources)
	assert.Equal(t, []resource.Resource{bar}, linked.RemovedResources())
}

func TestLinkedClearDeltasDiscardsAddAndRemove(t *testing.T) {
	linked := collection.NewLinked("", "")
	bar1 := resource.NewInstance("bars")
	bar1.SetID("1")
	bar2 := resource.NewInstance("bars")
	bar2.SetID("2")

	linked.AddResourceAsExisting(bar2)
	linked.AddResource(bar1)
	linked.RemoveResource(bar2)

	linked.ClearDeltas()

	assert.Empty(t, linked.AddedResources())
	assert.Empty(t, linked.RemovedResources())
}

func TestLinkedSetLoaded(t *testing.T) {
	linked := collection.NewLinked("", "")
	assert.False(t, linked.IsLoaded())
	linked.SetLoaded(true)
	assert.True(t, linked.IsLoaded())
}
