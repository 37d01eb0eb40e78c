package filters

// Timezones holds the parameters of GET /timezones. All of them are optional.
// Like EOD, it must not be changed once built.
type Timezones struct {
	Limit  *int
	Offset *int
}

// Query serializes the filter, dropping absent fields.
func (f Timezones) Query() Query {
	q := Query{}
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	return q
}
