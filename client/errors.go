package client

import (
	"fmt"

	"github.com/neuronlabs/jsonapi-client/errors/class"
	"github.com/neuronlabs/jsonapi-client/jsonapi"
)

// Error classes raised by the client package itself, as opposed to a
// NetworkError/ServerError carrying a transport or server-originated
// failure.
var (
	ClassResourceNotFound         = class.New(class.Client, "client.resource_not_found")
	ClassNextPageNotAvailable     = class.New(class.Client, "client.next_page_not_available")
	ClassPreviousPageNotAvailable = class.New(class.Client, "client.previous_page_not_available")
	ClassCancelled                = class.New(class.Client, "client.cancelled")

	classNetworkError = class.New(class.Client, "client.network_error")
	classServerError  = class.New(class.Server, "client.server_error")
)

// NetworkError wraps a transport-level failure: the Transport collaborator
// itself returned an error, as opposed to a non-2xx status with a body.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// Class implements errors.ClassError.
func (e *NetworkError) Class() class.Class { return classNetworkError }

// ServerError wraps a failed response: a status in [400, 599], any status
// outside 2xx for a delete or relationship write, or a fetch response whose
// document carried errors[]. Errors holds whatever the response body's
// errors[] array parsed to, which may be empty if the body carried none.
type ServerError struct {
	StatusCode int
	Errors     []*jsonapi.APIError
}

func (e *ServerError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Errors[0].Error())
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

// Class implements errors.ClassError.
func (e *ServerError) Class() class.Class { return classServerError }
