package client

import (
	"context"

	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/log"
	"github.com/neuronlabs/jsonapi-client/query"
	"github.com/neuronlabs/jsonapi-client/resource"
	"github.com/neuronlabs/jsonapi-client/router"
)

// DeleteOperation issues a DELETE for a single resource.
type DeleteOperation struct {
	lifecycle

	Resource  resource.Resource
	Router    *router.Router
	Transport Transport
}

// NewDeleteOperation builds a Ready DeleteOperation for res.
func NewDeleteOperation(rt *router.Router, transport Transport, res resource.Resource) *DeleteOperation {
	return &DeleteOperation{Resource: res, Router: rt, Transport: transport}
}

// Execute issues the DELETE; success is any 2xx status with no transport
// error.
func (op *DeleteOperation) Execute(ctx context.Context) *Future[struct{}] {
	future := newFuture[struct{}]()
	opCtx, ok := op.begin(ctx)
	if !ok {
		future.resolve(struct{}{}, errors.New(ClassCancelled, "operation is not Ready").SetOperation("DeleteOperation"))
		return future
	}

	go func() {
		defer op.finish()

		url := op.Router.URLForQuery(query.ForIDs(op.Resource.ResourceType(), op.Resource.ID()))
		log.Debugf("client: DELETE %s", url)
		status, body, err := op.Transport.Do(opCtx, "DELETE", url, nil)
		if opCtx.Err() != nil {
			future.resolve(struct{}{}, errors.New(ClassCancelled, "operation cancelled").SetOperation("DeleteOperation"))
			return
		}
		if err != nil {
			future.resolve(struct{}{}, &NetworkError{Cause: err})
			return
		}
		if status < 200 || status >= 300 {
			future.resolve(struct{}{}, &ServerError{StatusCode: status, Errors: jsonapi.ParseErrors(body)})
			return
		}
		future.resolve(struct{}{}, nil)
	}()

	return future
}
