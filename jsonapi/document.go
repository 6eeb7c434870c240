// Package jsonapi implements the wire codec: Deserializer turns a JSON:API
// response body into a Document of pooled resource.Resource instances,
// Serializer turns a resource (or a relationship linkage) into a request
// body, following the subset of the JSON:API media type this client
// speaks.
package jsonapi

import "github.com/neuronlabs/jsonapi-client/resource"

// APIError is one entry of a JSON:API error document.
type APIError struct {
	ID              string
	Status          string
	Code            string
	Title           string
	Detail          string
	SourcePointer   string
	SourceParameter string
	Meta            map[string]interface{}
}

// Error implements the error interface so an APIError can be returned and
// wrapped like any other Go error.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Title + ": " + e.Detail
	}
	return e.Title
}

// Document is the result of deserializing one JSON:API response body: the
// primary data (possibly empty), any compound-document includes, any
// top-level errors, and the document's meta/links/jsonapi members.
type Document struct {
	// Data holds the primary resources, in wire order. Singular reports
	// whether the wire "data" member was a single object rather than an
	// array, so callers can tell one-or-many apart.
	Data     []resource.Resource
	Singular bool

	Included []resource.Resource
	Errors   []*APIError

	Meta    map[string]interface{}
	Links   map[string]string
	JSONAPI map[string]interface{}
}

// First returns the first primary resource, or nil if Data is empty.
func (d *Document) First() resource.Resource {
	if len(d.Data) == 0 {
		return nil
	}
	return d.Data[0]
}
