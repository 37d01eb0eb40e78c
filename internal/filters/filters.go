// Package filters builds query parameters for market data endpoints.
//
// Filters are plain values: optional parameters are pointers, and a nil
// pointer means "absent". Absent parameters never reach the query string, not
// even as an empty value.
package filters

import (
	"net/url"
	"strconv"
	"time"
)

const dateLayout = time.DateOnly

// Sort orders accepted by the EOD endpoint.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Query is a serialized filter: parameter name to value.
type Query map[string]string

// Values converts q into url.Values suitable for a request URL.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q))
	for key, val := range q {
		v.Set(key, val)
	}
	return v
}

// FromValues is the inverse of Values, keeping the first value per key.
func FromValues(v url.Values) Query {
	q := make(Query, len(v))
	for key := range v {
		q[key] = v.Get(key)
	}
	return q
}

// Int returns a pointer to n, for filling optional filter fields.
func Int(n int) *int { return &n }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Date returns a pointer to the calendar day of t.
func Date(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func setInt(q Query, key string, v *int) {
	if v != nil {
		q[key] = strconv.Itoa(*v)
	}
}

func setString(q Query, key string, v *string) {
	if v != nil {
		q[key] = *v
	}
}

func setDate(q Query, key string, v *time.Time) {
	if v != nil {
		q[key] = v.Format(dateLayout)
	}
}
