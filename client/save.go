package client

import (
	"context"
	"encoding/json"

	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/log"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/query"
	"github.com/neuronlabs/jsonapi-client/resource"
	"github.com/neuronlabs/jsonapi-client/router"
)

// SaveOperation creates (POST) or updates (PATCH) a single resource. On
// success, the response body is deserialized into the same instance so
// server-assigned ids and attributes flow back; for an existing resource it
// then chains a RelationshipOperation and adopts its result.
type SaveOperation struct {
	lifecycle

	Resource     resource.Resource
	Router       *router.Router
	Transport    Transport
	Serializer   *jsonapi.Serializer
	Deserializer *jsonapi.Deserializer
	Registry     *mapping.Registry
	// ClientGeneratedIDs, when true, treats a not-yet-loaded Resource that
	// already carries an id as a create (POST, with the id included in the
	// body) rather than an update (PATCH), per JSON:API's client-generated-
	// id extension.
	ClientGeneratedIDs bool
}

// NewSaveOperation builds a Ready SaveOperation for res.
func NewSaveOperation(rt *router.Router, transport Transport, serializer *jsonapi.Serializer, deserializer *jsonapi.Deserializer, registry *mapping.Registry, res resource.Resource) *SaveOperation {
	return &SaveOperation{
		Resource: res, Router: rt, Transport: transport,
		Serializer: serializer, Deserializer: deserializer, Registry: registry,
	}
}

func (op *SaveOperation) Execute(ctx context.Context) *Future[resource.Resource] {
	future := newFuture[resource.Resource]()
	opCtx, ok := op.begin(ctx)
	if !ok {
		future.resolve(nil, errors.New(ClassCancelled, "operation is not Ready").SetOperation("SaveOperation"))
		return future
	}

	go func() {
		defer op.finish()

		clientGeneratedCreate := op.ClientGeneratedIDs && op.Resource.ID() != "" && !op.Resource.IsLoaded()
		isNew := op.Resource.ID() == "" || clientGeneratedCreate
		var method, url string
		options := mapping.FullOptions
		if isNew {
			method, url = "POST", op.Router.URLForResourceType(op.Resource.ResourceType())
			options.IncludeID = clientGeneratedCreate
		} else {
			method = "PATCH"
			url = op.Router.URLForQuery(query.ForIDs(op.Resource.ResourceType(), op.Resource.ID()))
			options.IncludeID = true
			options.DirtyFieldsOnly = true
		}

		body, serr := op.Serializer.SerializeResources([]resource.Resource{op.Resource}, options)
		if serr != nil {
			future.resolve(nil, serr)
			return
		}
		raw, _ := json.Marshal(body)

		log.Debugf("client: %s %s", method, url)
		status, respBody, err := op.Transport.Do(opCtx, method, url, raw)
		if opCtx.Err() != nil {
			future.resolve(nil, errors.New(ClassCancelled, "operation cancelled").SetOperation("SaveOperation"))
			return
		}
		if err != nil {
			future.resolve(nil, &NetworkError{Cause: err})
			return
		}
		if status >= 400 && status <= 599 {
			future.resolve(nil, &ServerError{StatusCode: status, Errors: jsonapi.ParseErrors(respBody)})
			return
		}

		if len(respBody) > 0 {
			if _, derr := op.Deserializer.Deserialize(respBody, op.Resource); derr != nil {
				future.resolve(nil, derr)
				return
			}
		}

		if !isNew {
			relOp := NewRelationshipOperation(op.Router, op.Transport, op.Registry, op.Resource)
			if _, err := relOp.Execute(opCtx).Wait(opCtx); err != nil {
				future.resolve(nil, err)
				return
			}
		}

		future.resolve(op.Resource, nil)
	}()

	return future
}
