package client

import (
	"context"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/config"
	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/namer"
	"github.com/neuronlabs/jsonapi-client/query"
	"github.com/neuronlabs/jsonapi-client/resource"
	"github.com/neuronlabs/jsonapi-client/router"
)

// Client is the thin, synchronous-feeling facade over the operation
// lifecycle: every method issues an operation and waits on its Future, so
// callers don't need to interact with Future/Status directly unless they
// want manual cancellation.
type Client struct {
	Router       *router.Router
	Transport    Transport
	Registry     *mapping.Registry
	Serializer   *jsonapi.Serializer
	Deserializer *jsonapi.Deserializer
	// Config holds the runtime options that shape operation behavior
	// (ClientGeneratedIDs, StrictMode); callers may mutate it after New
	// before issuing the first operation.
	Config *config.Config
}

// New builds a Client against baseURL, using formatter (namer.Default if
// nil) to format the field and relationship names the Router writes into
// query strings; resource type names are used as given. The
// Registry and the value-formatter registry it implies are process-wide
// and treated as immutable once the first operation is issued.
func New(baseURL string, transport Transport, registry *mapping.Registry, formatter namer.KeyFormatter) *Client {
	cfg := config.Default()
	cfg.BaseURL = baseURL
	deserializer := jsonapi.NewDeserializer(registry, baseURL)
	deserializer.StrictMode = cfg.StrictMode
	return &Client{
		Router:       router.New(baseURL, formatter),
		Transport:    transport,
		Registry:     registry,
		Serializer:   jsonapi.NewSerializer(registry),
		Deserializer: deserializer,
		Config:       cfg,
	}
}

// Find issues q and returns the matching collection, optionally mapping
// responses onto mappingTargets positionally.
func (c *Client) Find(ctx context.Context, q *query.Query, mappingTargets ...resource.Resource) (*collection.ResourceCollection, error) {
	c.Deserializer.StrictMode = c.Config.StrictMode
	op := NewFetchOperation(c.Router, c.Transport, c.Deserializer, q, mappingTargets...)
	return op.Execute(ctx).Wait(ctx)
}

// FindByType fetches every resource of resourceType.
func (c *Client) FindByType(ctx context.Context, resourceType string) (*collection.ResourceCollection, error) {
	return c.Find(ctx, query.New(resourceType))
}

// FindByIDs fetches the given ids of resourceType.
func (c *Client) FindByIDs(ctx context.Context, resourceType string, ids ...string) (*collection.ResourceCollection, error) {
	return c.Find(ctx, query.ForIDs(resourceType, ids...))
}

// FindOne issues q and returns its first result, failing with
// ClassResourceNotFound if the collection comes back empty.
func (c *Client) FindOne(ctx context.Context, q *query.Query, mappingTargets ...resource.Resource) (resource.Resource, error) {
	coll, err := c.Find(ctx, q, mappingTargets...)
	if err != nil {
		return nil, err
	}
	if coll.Count() == 0 {
		return nil, errors.New(ClassResourceNotFound, "query matched no resources").SetOperation("FindOne")
	}
	return coll.First(), nil
}

// FindOneByID fetches a single resourceType by id, optionally mapping the
// response onto mappingTarget.
func (c *Client) FindOneByID(ctx context.Context, resourceType, id string, mappingTarget ...resource.Resource) (resource.Resource, error) {
	return c.FindOne(ctx, query.ForIDs(resourceType, id), mappingTarget...)
}

// Save creates or updates res, per SaveOperation. Whether an id-carrying,
// not-yet-loaded res is POSTed as a client-generated-id create or PATCHed
// as an update is governed by c.Config.ClientGeneratedIDs.
func (c *Client) Save(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	c.Deserializer.StrictMode = c.Config.StrictMode
	op := NewSaveOperation(c.Router, c.Transport, c.Serializer, c.Deserializer, c.Registry, res)
	op.ClientGeneratedIDs = c.Config.ClientGeneratedIDs
	return op.Execute(ctx).Wait(ctx)
}

// Delete removes res.
func (c *Client) Delete(ctx context.Context, res resource.Resource) error {
	op := NewDeleteOperation(c.Router, c.Transport, res)
	_, err := op.Execute(ctx).Wait(ctx)
	return err
}

// LoadNextPageOfCollection fetches coll.NextURL and appends its resources,
// failing with ClassNextPageNotAvailable if coll has no next page.
func (c *Client) LoadNextPageOfCollection(ctx context.Context, coll *collection.ResourceCollection) error {
	if coll.NextURL == "" {
		return errors.New(ClassNextPageNotAvailable, "collection has no next page").SetOperation("LoadNextPageOfCollection")
	}
	op := NewFetchOperation(c.Router, c.Transport, c.Deserializer, query.ForURL(coll.NextURL))
	next, err := op.Execute(ctx).Wait(ctx)
	if err != nil {
		return err
	}
	coll.AppendPage(next.Resources, next.ResourcesURL, next.NextURL, next.PreviousURL)
	return nil
}

// LoadPreviousPageOfCollection fetches coll.PreviousURL and prepends its
// resources, failing with ClassPreviousPageNotAvailable if coll has no
// previous page.
func (c *Client) LoadPreviousPageOfCollection(ctx context.Context, coll *collection.ResourceCollection) error {
	if coll.PreviousURL == "" {
		return errors.New(ClassPreviousPageNotAvailable, "collection has no previous page").SetOperation("LoadPreviousPageOfCollection")
	}
	op := NewFetchOperation(c.Router, c.Transport, c.Deserializer, query.ForURL(coll.PreviousURL))
	prev, err := op.Execute(ctx).Wait(ctx)
	if err != nil {
		return err
	}
	coll.PrependPage(prev.Resources, prev.ResourcesURL, prev.NextURL, prev.PreviousURL)
	return nil
}

// Ensure fetches res if it isn't already loaded, using res itself as the
// fetch's mapping target. queryCallback, if given, can add includes or
// sparse fieldsets to the query before it's issued.
func (c *Client) Ensure(ctx context.Context, res resource.Resource, queryCallback func(*query.Query)) error {
	if res.IsLoaded() {
		return nil
	}
	q := query.ForIDs(res.ResourceType(), res.ID())
	if queryCallback != nil {
		queryCallback(q)
	}
	_, err := c.Find(ctx, q, res)
	return err
}
