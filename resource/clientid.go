package resource

import "github.com/google/uuid"

// NewClientID generates a random identifier suitable for the JSON:API
// client-generated-id extension: a caller sets it on a new resource before
// Save so the server receives a POST body that already carries an id,
// instead of waiting for the server to assign one.
func NewClientID() string {
	return uuid.New().String()
}
