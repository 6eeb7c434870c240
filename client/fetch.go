package client

import (
	"context"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/log"
	"github.com/neuronlabs/jsonapi-client/query"
	"github.com/neuronlabs/jsonapi-client/resource"
	"github.com/neuronlabs/jsonapi-client/router"
)

// FetchOperation issues a GET for a Query and deserializes the response
// into a ResourceCollection, optionally mapping onto caller-supplied
// targets.
type FetchOperation struct {
	lifecycle

	Query          *query.Query
	Router         *router.Router
	Transport      Transport
	Deserializer   *jsonapi.Deserializer
	MappingTargets []resource.Resource
}

// NewFetchOperation builds a Ready FetchOperation for q.
func NewFetchOperation(rt *router.Router, transport Transport, deserializer *jsonapi.Deserializer, q *query.Query, mappingTargets ...resource.Resource) *FetchOperation {
	return &FetchOperation{Router: rt, Transport: transport, Deserializer: deserializer, Query: q, MappingTargets: mappingTargets}
}

// Execute transitions the operation to Executing and returns a Future that
// resolves once the GET completes and its response is deserialized.
func (op *FetchOperation) Execute(ctx context.Context) *Future[*collection.ResourceCollection] {
	future := newFuture[*collection.ResourceCollection]()
	opCtx, ok := op.begin(ctx)
	if !ok {
		future.resolve(nil, errors.New(ClassCancelled, "operation is not Ready").SetOperation("FetchOperation"))
		return future
	}

	go func() {
		defer op.finish()

		url := op.Router.URLForQuery(op.Query)
		log.Debugf("client: GET %s", url)
		status, body, err := op.Transport.Do(opCtx, "GET", url, nil)
		if opCtx.Err() != nil {
			future.resolve(nil, errors.New(ClassCancelled, "operation cancelled").SetOperation("FetchOperation"))
			return
		}
		if err != nil {
			future.resolve(nil, &NetworkError{Cause: err})
			return
		}
		if status >= 400 && status <= 599 {
			future.resolve(nil, &ServerError{StatusCode: status, Errors: jsonapi.ParseErrors(body)})
			return
		}

		doc, derr := op.Deserializer.Deserialize(body, op.MappingTargets...)
		if derr != nil {
			future.resolve(nil, derr)
			return
		}
		if len(doc.Errors) > 0 {
			future.resolve(nil, &ServerError{StatusCode: status, Errors: doc.Errors})
			return
		}

		coll := collection.New(doc.Data, doc.Links["self"])
		coll.NextURL = doc.Links["next"]
		coll.PreviousURL = doc.Links["previous"]
		coll.Meta = doc.Meta
		future.resolve(coll, nil)
	}()

	return future
}
