package mapping

import (
	"net/url"
	"time"
)

// ValueFormatterRegistry transforms attribute values between their wire and
// domain representations. Date attributes round-trip through the
// descriptor's own format in UTC; boolean attributes coerce truthy wire
// values; URL attributes resolve relative URLs against a base. A registry
// is shared process-wide, the same way the resource-type registry is.
type ValueFormatterRegistry struct {
	BaseURL *url.URL
}

// NewValueFormatterRegistry creates a registry resolving relative URL
// attributes against baseURL (may be nil).
func NewValueFormatterRegistry(baseURL *url.URL) *ValueFormatterRegistry {
	return &ValueFormatterRegistry{BaseURL: baseURL}
}

// ParseBoolean coerces a wire value into a bool.
func (v *ValueFormatterRegistry) ParseBoolean(wire interface{}) (bool, error) {
	return formatBoolean(wire)
}

// ParseDate parses a wire date string against layout, in UTC.
func (v *ValueFormatterRegistry) ParseDate(wire interface{}, layout string) (time.Time, error) {
	return parseDate(wire, layout)
}

// FormatDate renders t against layout, in UTC.
func (v *ValueFormatterRegistry) FormatDate(t time.Time, layout string) string {
	return formatDate(t, layout)
}

// ParseURL parses a wire URL string, resolving relative URLs against base
// if given, falling back to the registry's BaseURL.
func (v *ValueFormatterRegistry) ParseURL(wire interface{}, base *url.URL) (*url.URL, error) {
	if base == nil {
		base = v.BaseURL
	}
	return parseURL(wire, base)
}
