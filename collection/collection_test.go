package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/resource"
)

func TestAppendPageUpdatesLinks(t *testing.T) {
	foo1 := resource.NewInstance("foos")
	foo1.SetID("1")
	c := collection.New([]resource.Resource{foo1}, "http://example.com/foos?page=1")
	c.NextURL = "http://example.com/foos?page=2"

	foo2 := resource.NewInstance("foos")
	foo2.SetID("2")
	c.AppendPage([]resource.Resource{foo2}, "http://example.com/foos?page=2", "http://example.com/foos?page=3", "http://example.com/foos?page=1")

	assert.Equal(t, 2, c.Count())
	assert.Equal(t, "http://example.com/foos?page=2", c.ResourcesURL)
	assert.Equal(t, "http://example.com/foos?page=1", c.PreviousURL)
	assert.Equal(t, "http://example.com/foos?page=3", c.NextURL)
}

func TestAppendPageSecondHopUsesJustFetchedPageAsResourcesURL(t *testing.T) {
	foo1 := resource.NewInstance("foos")
	foo1.SetID("1")
	c := collection.New([]resource.Resource{foo1}, "http://example.com/foos?page=1")
	c.NextURL = "http://example.com/foos?page=2"

	foo2 := resource.NewInstance("foos")
	foo2.SetID("2")
	c.AppendPage([]resource.Resource{foo2}, "http://example.com/foos?page=2", "http://example.com/foos?page=3", "http://example.com/foos?page=1")

	foo3 := resource.NewInstance("foos")
	foo3.SetID("3")
	c.AppendPage([]resource.Resource{foo3}, "http://example.com/foos?page=3", "", "http://example.com/foos?page=2")

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "http://example.com/foos?page=3", c.ResourcesURL)
	assert.Equal(t, "http://example.com/foos?page=2", c.PreviousURL, "the second hop's previous must be page 2, not the frozen original ResourcesURL")
	assert.Empty(t, c.NextURL)
}

func TestLinkedResourceCollectionDeltas(t *testing.T) {
	bar10 := resource.NewInstance("bars")
	bar10.SetID("10")
	bar11 := resource.NewInstance("bars")
	bar11.SetID("11")
	bar13 := resource.NewInstance("bars")
	bar13.SetID("13")

	linked := collection.NewLinked("", "http://example.com/foos/1/relationships/to-many-attribute")
	linked.AddResourceAsExisting(bar10)
	linked.AddResourceAsExisting(bar11)

	linked.AddResource(bar13)
	linked.RemoveResource(bar11)

	assert.ElementsMatch(t, []string{"10", "13"}, idsOf(linked.Resources))
	assert.ElementsMatch(t, []string{"13"}, idsOf(linked.AddedResources()))
	assert.ElementsMatch(t, []string{"11"}, idsOf(linked.RemovedResources()))

	linked.ClearDeltas()
	assert.Empty(t, linked.AddedResources())
	assert.Empty(t, linked.RemovedResources())
}

func idsOf(resources []resource.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID())
	}
	return ids
}
