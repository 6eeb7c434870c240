// Package client implements the operations FetchOperation,
// DeleteOperation, SaveOperation and RelationshipOperation, each of which
// runs its transport call to completion inside its own goroutine and
// publishes a Future-like result, and Client, the thin facade wrapping them
// for everyday use. There is no shared operation queue: operations issued
// from different goroutines run concurrently.
package client

import "context"

// Transport is the collaborator every operation issues its HTTP call
// through. The core interprets only transport error (surfaced as-is) and
// status codes in [400, 599] (treated as an API failure, triggering an
// attempt to parse errors[] from body).
type Transport interface {
	Do(ctx context.Context, method, url string, body []byte) (status int, respBody []byte, err error)
}
