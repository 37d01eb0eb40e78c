package schema

import (
	"testing"
	"time"
)

var itemShape = StrictObject("item",
	String("symbol"),
	Float("close"),
	Float("adj_high").Nullable(),
	Int("volume"),
	String("note").Optional(),
	DateTime("date"),
)

var pageShape = Object("page",
	Int("limit"),
	Int("total"),
)

var envelopeShape = Object("envelope",
	Nested("pagination", pageShape),
	List("data", itemShape),
)

func TestValidate_TableDriven(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		shape *Shape
		want  []FieldError
	}{
		{
			name:  "valid item",
			body:  `{"symbol":"AAPL","close":1.5,"adj_high":null,"volume":10,"date":"2025-06-27T00:00:00+0000"}`,
			shape: itemShape,
		},
		{
			name:  "optional present",
			body:  `{"symbol":"AAPL","close":1,"adj_high":2,"volume":10,"note":"x","date":"2025-06-27"}`,
			shape: itemShape,
		},
		{
			name:  "missing required and nullable",
			body:  `{"close":1.5,"volume":10,"date":"2025-06-27T00:00:00+0000"}`,
			shape: itemShape,
			want: []FieldError{
				{Path: "symbol", Reason: ReasonMissing},
				{Path: "adj_high", Reason: ReasonMissing},
			},
		},
		{
			name:  "null on non-nullable",
			body:  `{"symbol":null,"close":1.5,"adj_high":null,"volume":10,"date":"2025-06-27T00:00:00+0000"}`,
			shape: itemShape,
			want:  []FieldError{{Path: "symbol", Reason: ReasonNull}},
		},
		{
			name:  "unknown field in strict shape",
			body:  `{"symbol":"AAPL","close":1.5,"adj_high":null,"volume":10,"date":"2025-06-27T00:00:00+0000","foo":1}`,
			shape: itemShape,
			want:  []FieldError{{Path: "foo", Reason: ReasonUnknown}},
		},
		{
			name:  "wrong kinds",
			body:  `{"symbol":1,"close":"1.5","adj_high":"x","volume":1.5,"date":"yesterday"}`,
			shape: itemShape,
			want: []FieldError{
				{Path: "symbol", Reason: ReasonString},
				{Path: "close", Reason: ReasonFloat},
				{Path: "adj_high", Reason: ReasonFloat},
				{Path: "volume", Reason: ReasonInt},
				{Path: "date", Reason: ReasonDateTime},
			},
		},
		{
			name:  "whole numbers in decimal and exponent form are integers",
			body:  `{"limit":100.0,"total":1e2}`,
			shape: pageShape,
		},
		{
			name:  "integer out of int64 range",
			body:  `{"limit":1e19,"total":-1.0e3}`,
			shape: pageShape,
			want:  []FieldError{{Path: "limit", Reason: ReasonInt}},
		},
		{
			name:  "unknown field tolerated in lenient shape",
			body:  `{"limit":1,"total":2,"extra":true}`,
			shape: pageShape,
		},
		{
			name:  "not an object",
			body:  `[1,2]`,
			shape: pageShape,
			want:  []FieldError{{Path: "", Reason: ReasonObject}},
		},
		{
			name:  "invalid json",
			body:  `{"limit":`,
			shape: pageShape,
			want:  []FieldError{{Path: "", Reason: ReasonInvalidJSON}},
		},
		{
			name: "nested errors carry paths",
			body: `{"pagination":{"limit":-1},"data":[
				{"symbol":"AAPL","close":1,"adj_high":null,"volume":1,"date":"2025-06-27"},
				{"symbol":"AAPL","close":1,"adj_high":null,"volume":1,"date":"2025-06-27","foo":"bar"}
			]}`,
			shape: envelopeShape,
			want: []FieldError{
				{Path: "pagination.total", Reason: ReasonMissing},
				{Path: "data[1].foo", Reason: ReasonUnknown},
			},
		},
		{
			name:  "data is not a list",
			body:  `{"pagination":{"limit":1,"total":1},"data":{}}`,
			shape: envelopeShape,
			want:  []FieldError{{Path: "data", Reason: ReasonList}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate([]byte(tc.body), tc.shape)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d errors %v, want %d %v", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("error[%d]=%v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestField_RequiredAndNullableAreIndependent(t *testing.T) {
	f := Float("x")
	if !f.IsRequired() || f.IsNullable() {
		t.Fatalf("default field should be required and non-nullable: %+v", f)
	}
	n := f.Nullable()
	if !n.IsRequired() || !n.IsNullable() {
		t.Fatalf("nullable field should stay required: %+v", n)
	}
	o := f.Optional()
	if o.IsRequired() || o.IsNullable() {
		t.Fatalf("optional field should not become nullable: %+v", o)
	}
	if !f.IsRequired() {
		t.Fatalf("builders must not mutate the receiver")
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-06-27T00:00:00+0000", time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC), true},
		{"2025-06-27T10:30:00Z", time.Date(2025, 6, 27, 10, 30, 0, 0, time.UTC), true},
		{"2025-06-27", time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC), true},
		{"27/06/2025", time.Time{}, false},
	}
	for _, c := range cases {
		got, err := ParseDateTime(c.in)
		if c.ok != (err == nil) {
			t.Fatalf("ParseDateTime(%q) err=%v, want ok=%v", c.in, err, c.ok)
		}
		if c.ok && !got.Equal(c.want) {
			t.Fatalf("ParseDateTime(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidationError_Messages(t *testing.T) {
	err := &ValidationError{Shape: "eod", Errors: []FieldError{
		{Path: "data[0].foo", Reason: ReasonUnknown},
		{Path: "data[0].foo", Reason: ReasonString},
		{Path: "pagination.total", Reason: ReasonMissing},
	}}
	msgs := err.Messages()
	if len(msgs["data[0].foo"]) != 2 || len(msgs["pagination.total"]) != 1 {
		t.Fatalf("unexpected grouping: %v", msgs)
	}
	if !err.Has("pagination.total", ReasonMissing) || !err.Has("data[0].foo", "") || err.Has("nope", "") {
		t.Fatalf("Has returned unexpected results")
	}
	if got := err.Error(); got == "" {
		t.Fatalf("empty error string")
	}
}
