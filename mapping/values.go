package mapping

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// DefaultDateFormat is the ISO-8601 layout used by DateAttribute when none
// is given, matching the wire format JSON:API services overwhelmingly use.
const DefaultDateFormat = "2006-01-02T15:04:05.000Z07:00"

// formatBoolean coerces a wire value (bool, string, or number) into a Go
// bool, the way a JSON:API service's "truthy" boolean attribute might be
// encoded.
func formatBoolean(wire interface{}) (bool, error) {
	switch v := wire.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("value %q is not a valid boolean", v)
		}
		return b, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("value %v (%T) is not a valid boolean", wire, wire)
	}
}

// parseDate parses a wire date string against layout and returns it in
// UTC; a layout without zone offset information reads the value as UTC.
func parseDate(wire interface{}, layout string) (time.Time, error) {
	s, ok := wire.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("date value %v (%T) is not a string", wire, wire)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// formatDate renders t in layout, in UTC.
func formatDate(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}

// parseURL parses a wire URL string, resolving it against baseURL if it is
// relative and baseURL is non-empty.
func parseURL(wire interface{}, base *url.URL) (*url.URL, error) {
	s, ok := wire.(string)
	if !ok {
		return nil, fmt.Errorf("url value %v (%T) is not a string", wire, wire)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() && base != nil {
		u = base.ResolveReference(u)
	}
	return u, nil
}
