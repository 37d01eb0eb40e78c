package schema

import (
	"fmt"
	"time"
)

// DateTimeLayout is the timestamp format used by the market data API.
const DateTimeLayout = "2006-01-02T15:04:05-0700"

var dateTimeLayouts = []string{
	DateTimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDateTime parses s using the API layout, falling back to RFC 3339 and
// bare dates.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}
