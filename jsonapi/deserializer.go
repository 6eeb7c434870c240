package jsonapi

import (
	"encoding/json"

	"github.com/neuronlabs/jsonapi-client/annotation"
	"github.com/neuronlabs/jsonapi-client/errors"
	"github.com/neuronlabs/jsonapi-client/log"
	"github.com/neuronlabs/jsonapi-client/mapping"
	"github.com/neuronlabs/jsonapi-client/resource"
)

// Deserializer parses response bodies into Documents of pooled resources.
// A Deserializer is stateless across calls; the identity pool belongs to
// one Deserialize invocation, never shared between them.
type Deserializer struct {
	Registry   *mapping.Registry
	Factory    *resource.Factory
	Formatters *mapping.ValueFormatterRegistry
	BaseURL    string
	// StrictMode rejects a document carrying any top-level member besides
	// data, errors, meta, included, links and jsonapi, instead of silently
	// ignoring it.
	StrictMode bool
}

var knownTopLevelMembers = map[string]bool{
	annotation.Data:     true,
	annotation.Errors:   true,
	annotation.Meta:     true,
	annotation.Included: true,
	annotation.Links:    true,
	annotation.JSONAPI:  true,
}

// NewDeserializer builds a Deserializer over registry.
func NewDeserializer(registry *mapping.Registry, baseURL string) *Deserializer {
	return &Deserializer{
		Registry:   registry,
		Factory:    resource.NewFactory(registry),
		Formatters: mapping.NewValueFormatterRegistry(nil),
		BaseURL:    baseURL,
	}
}

// Deserialize parses body into a Document. mappingTargets, if given, are
// seeded into the identity pool positionally: the i-th primary resource
// representation is dispensed onto mappingTargets[i] when it doesn't
// already carry an id the pool recognizes, letting a save response flow
// back into the same instance the caller issued the write with.
func (d *Deserializer) Deserialize(body []byte, mappingTargets ...resource.Resource) (*Document, error) {
	var tree map[string]interface{}
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, errors.Newf(ClassInvalidDocumentStructure, "decoding response body: %v", err).SetOperation("Deserialize")
	}

	_, hasData := tree[annotation.Data]
	rawErrors, hasErrors := tree[annotation.Errors]
	_, hasMeta := tree[annotation.Meta]
	if !hasData && !hasErrors && !hasMeta {
		return nil, errors.New(ClassTopLevelEntryMissing, "document must have one of data, errors or meta").SetOperation("Deserialize")
	}
	if hasData && hasErrors {
		return nil, errors.New(ClassTopLevelDataAndErrorsCoexist, "document cannot carry both data and errors").SetOperation("Deserialize")
	}
	if d.StrictMode {
		for member := range tree {
			if !knownTopLevelMembers[member] {
				return nil, errors.Newf(ClassUnknownTopLevelMember, "unknown top-level member %q", member).SetOperation("Deserialize")
			}
		}
	}

	pool := resource.NewPool(mappingTargets...)
	doc := &Document{}

	if hasData {
		data := tree[annotation.Data]
		switch v := data.(type) {
		case nil:
			doc.Singular = true
		case map[string]interface{}:
			doc.Singular = true
			res, err := d.deserializeResource(v, pool, 0, true)
			if err != nil {
				return nil, err
			}
			doc.Data = append(doc.Data, res)
		case []interface{}:
			for i, item := range v {
				obj, ok := item.(map[string]interface{})
				if !ok {
					return nil, errors.New(ClassInvalidResourceStructure, "primary resource representation must be an object").SetOperation("Deserialize")
				}
				res, err := d.deserializeResource(obj, pool, i, true)
				if err != nil {
					return nil, err
				}
				doc.Data = append(doc.Data, res)
			}
		default:
			return nil, errors.New(ClassInvalidResourceStructure, "data must be an object, array, or null").SetOperation("Deserialize")
		}
	}

	if included, ok := tree[annotation.Included].([]interface{}); ok {
		for i, item := range included {
			obj, ok := item.(map[string]interface{})
			if !ok {
				return nil, errors.New(ClassInvalidResourceStructure, "included resource representation must be an object").SetOperation("Deserialize")
			}
			res, err := d.deserializeResource(obj, pool, i, false)
			if err != nil {
				return nil, err
			}
			doc.Included = append(doc.Included, res)
		}
	}

	if rawErrors != nil {
		items, _ := rawErrors.([]interface{})
		for _, item := range items {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			doc.Errors = append(doc.Errors, deserializeError(obj))
		}
	}

	if meta, ok := tree[annotation.Meta].(map[string]interface{}); ok {
		doc.Meta = meta
	}
	if links, ok := tree[annotation.Links].(map[string]interface{}); ok {
		doc.Links = stringLinks(links)
	}
	if jsonapiMember, ok := tree[annotation.JSONAPI].(map[string]interface{}); ok {
		doc.JSONAPI = jsonapiMember
	}

	for _, res := range doc.Data {
		if err := d.resolve(res, pool); err != nil {
			return nil, err
		}
	}
	for _, res := range doc.Included {
		if err := d.resolve(res, pool); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (d *Deserializer) deserializeResource(obj map[string]interface{}, pool *resource.Pool, index int, hasIndex bool) (resource.Resource, error) {
	resourceType, ok := obj[annotation.Type].(string)
	if !ok || resourceType == "" {
		return nil, errors.New(ClassResourceTypeMissing, "resource object missing type").SetOperation("Deserialize")
	}
	id, _ := obj[annotation.ID].(string)
	if id == "" {
		return nil, errors.New(ClassResourceIDMissing, "resource object missing id").SetOperation("Deserialize")
	}

	res, err := d.Factory.Dispense(resourceType, id, pool, index, hasIndex)
	if err != nil {
		return nil, err
	}

	if links, ok := obj[annotation.Links].(map[string]interface{}); ok {
		if self, ok := links[annotation.LinkSelf].(string); ok {
			res.SetURL(self)
		}
	}
	if meta, ok := obj[annotation.Meta].(map[string]interface{}); ok {
		res.SetMeta(meta)
	}

	model, ok := d.Registry.ModelFor(resourceType)
	if !ok {
		log.Warningf("jsonapi: deserializing unregistered resource type %q, attributes and relationships will be skipped", resourceType)
		res.SetLoaded(true)
		return res, nil
	}

	attrs, _ := obj[annotation.Attributes].(map[string]interface{})
	rels, _ := obj[annotation.Relationships].(map[string]interface{})
	ctx := &mapping.ExtractContext{
		Attributes:    attrs,
		Relationships: rels,
		Formatters:    d.Formatters,
		Pool:          pool,
		Factory:       d.Factory,
		BaseURL:       d.BaseURL,
	}
	for _, field := range model.Fields() {
		if err := field.Extract(ctx, res); err != nil {
			return nil, err
		}
	}
	res.SetLoaded(true)
	return res, nil
}

func (d *Deserializer) resolve(res resource.Resource, pool *resource.Pool) error {
	model, ok := d.Registry.ModelFor(res.ResourceType())
	if !ok {
		return nil
	}
	for _, rel := range model.Relationships() {
		if err := rel.Resolve(res, pool); err != nil {
			return err
		}
	}
	return nil
}

// ParseErrors best-effort extracts a response body's top-level errors[]
// array, for callers (the client package's write operations) that only
// need the error list out of a failure response and don't want to pay for
// full resource deserialization.
func ParseErrors(body []byte) []*APIError {
	var tree map[string]interface{}
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil
	}
	items, _ := tree[annotation.Errors].([]interface{})
	var out []*APIError
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, deserializeError(obj))
	}
	return out
}

func deserializeError(obj map[string]interface{}) *APIError {
	e := &APIError{}
	e.ID, _ = obj[annotation.ErrorID].(string)
	e.Status, _ = obj[annotation.ErrorStatus].(string)
	e.Code, _ = obj[annotation.ErrorCode].(string)
	e.Title, _ = obj[annotation.ErrorTitle].(string)
	e.Detail, _ = obj[annotation.ErrorDetail].(string)
	if source, ok := obj[annotation.ErrorSource].(map[string]interface{}); ok {
		e.SourcePointer, _ = source[annotation.ErrorSourcePointer].(string)
		e.SourceParameter, _ = source[annotation.ErrorSourceParameter].(string)
	}
	if meta, ok := obj[annotation.ErrorMeta].(map[string]interface{}); ok {
		e.Meta = meta
	}
	return e
}

func stringLinks(raw map[string]interface{}) map[string]string {
	links := make(map[string]string, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			links[name] = v
		case map[string]interface{}:
			if href, ok := v["href"].(string); ok {
				links[name] = href
			}
		}
	}
	if prev, ok := links[annotation.LinkPrev]; ok {
		if _, hasPrevious := links[annotation.LinkPrevious]; !hasPrevious {
			links[annotation.LinkPrevious] = prev
		}
		delete(links, annotation.LinkPrev)
	}
	return links
}
