package filters

import "time"

// EOD holds the parameters of GET /eod.
//
// Symbols is required and passed through untouched (comma-separated for
// several symbols); invalid values are the remote API's to reject.
//
// A filter is a value: build it once and do not change what its pointers
// reference afterwards. Query copies the values, so a serialized Query is
// never affected.
type EOD struct {
	Symbols string

	Limit    *int
	Offset   *int
	Sort     *string
	DateFrom *time.Time
	DateTo   *time.Time
	Exchange *string
}

// Query serializes the filter, dropping absent fields.
func (f EOD) Query() Query {
	q := Query{"symbols": f.Symbols}
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	setString(q, "sort", f.Sort)
	setDate(q, "date_from", f.DateFrom)
	setDate(q, "date_to", f.DateTo)
	setString(q, "exchange", f.Exchange)
	return q
}
