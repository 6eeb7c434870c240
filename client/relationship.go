package client

import (
	"context"
	"encoding/json"

	"github.com/neuronlabs/jsonapi-client/collection"
	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
	"github.com/neuronlabs/jsonapi-client/log"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/resource"
	"github.com/neuronlabs/jsonapi-client/router"
)

// pendingUpdate pairs a relationship update with the descriptor that
// produced it, needed to build its URL once updates are regrouped across
// relationships.
type pendingUpdate struct {
	rel    mapping.RelationshipDescriptor
	update mapping.RelationshipUpdate
}

// RelationshipOperation walks every relationship descriptor on a resource
// and replays its pending updates (a to-one replace, or a to-many add
// followed by a to-many remove) against the wire, sequentially, halting on
// the first failure. It is what a SaveOperation chains after a successful
// PATCH of an existing resource.
type RelationshipOperation struct {
	lifecycle

	Resource  resource.Resource
	Router    *router.Router
	Transport Transport
	Registry  *mapping.Registry
}

// NewRelationshipOperation builds a Ready RelationshipOperation for res.
func NewRelationshipOperation(rt *router.Router, transport Transport, registry *mapping.Registry, res resource.Resource) *RelationshipOperation {
	return &RelationshipOperation{Resource: res, Router: rt, Transport: transport, Registry: registry}
}

// Execute replays every descriptor's pending RelationshipUpdate, but not in
// field-registration order: all to-one replaces are issued first, then
// every to-many add, then every to-many remove, regardless of which field
// each belongs to, matching the cascade ordering invariant independent of
// how a ModelStruct happens to declare its fields. On success, every
// to-many collection it touched has its pending deltas cleared.
func (op *RelationshipOperation) Execute(ctx context.Context) *Future[struct{}] {
	future := newFuture[struct{}]()
	opCtx, ok := op.begin(ctx)
	if !ok {
		future.resolve(struct{}{}, errors.New(ClassCancelled, "operation is not Ready").SetOperation("RelationshipOperation"))
		return future
	}

	go func() {
		defer op.finish()

		model, ok := op.Registry.ModelFor(op.Resource.ResourceType())
		if !ok {
			future.resolve(struct{}{}, nil)
			return
		}

		var replaces, adds, removes []pendingUpdate
		for _, rel := range model.Relationships() {
			for _, update := range rel.UpdateOperations(op.Resource) {
				pu := pendingUpdate{rel: rel, update: update}
				switch update.Kind {
				case mapping.RelationshipReplace:
					replaces = append(replaces, pu)
				case mapping.RelationshipAdd:
					adds = append(adds, pu)
				case mapping.RelationshipRemove:
					removes = append(removes, pu)
				}
			}
		}

		ordered := make([]pendingUpdate, 0, len(replaces)+len(adds)+len(removes))
		ordered = append(ordered, replaces...)
		ordered = append(ordered, adds...)
		ordered = append(ordered, removes...)

		for _, pu := range ordered {
			if opCtx.Err() != nil {
				future.resolve(struct{}{}, errors.New(ClassCancelled, "operation cancelled").SetOperation("RelationshipOperation"))
				return
			}
			method, body := relationshipWriteRequest(pu.update)
			url := op.Router.URLForRelationship(op.Resource, pu.rel)
			log.Debugf("client: %s %s", method, url)
			status, respBody, err := op.Transport.Do(opCtx, method, url, body)
			if opCtx.Err() != nil {
				future.resolve(struct{}{}, errors.New(ClassCancelled, "operation cancelled").SetOperation("RelationshipOperation"))
				return
			}
			if err != nil {
				future.resolve(struct{}{}, &NetworkError{Cause: err})
				return
			}
			if status < 200 || status >= 300 {
				future.resolve(struct{}{}, &ServerError{StatusCode: status, Errors: jsonapi.ParseErrors(respBody)})
				return
			}
		}

		for _, rel := range model.Relationships() {
			slot, ok := op.Resource.Slot(rel.Name())
			if !ok {
				continue
			}
			if linked, ok := slot.(*collection.LinkedResourceCollection); ok {
				linked.ClearDeltas()
			}
		}

		future.resolve(struct{}{}, nil)
	}()

	return future
}

func relationshipWriteRequest(update mapping.RelationshipUpdate) (method string, body []byte) {
	switch update.Kind {
	case mapping.RelationshipReplace:
		body, _ = json.Marshal(jsonapi.SerializeLinkDatum(update.Identifier))
		return "PATCH", body
	case mapping.RelationshipAdd:
		body, _ = json.Marshal(jsonapi.SerializeLinkData(update.Resources...))
		return "POST", body
	case mapping.RelationshipRemove:
		body, _ = json.Marshal(jsonapi.SerializeLinkData(update.Resources...))
		return "DELETE", body
	default:
		return "", nil
	}
}
