package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/guttosm/marketprobe/internal/schema"
)

// Timestamp is a point in time encoded the way the market data API writes it,
// e.g. "2025-06-27T00:00:00+0000".
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.UTC().Format(schema.DateTimeLayout))
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := schema.ParseDateTime(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
