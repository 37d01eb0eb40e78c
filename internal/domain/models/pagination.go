package models

import "github.com/guttosm/marketprobe/internal/schema"

// Pagination describes the result window of a list response.
//
// Fields:
//   - Limit: page size requested (or the API default, 100).
//   - Offset: number of records skipped.
//   - Count: number of records in this page.
//   - Total: number of records matching the query.
type Pagination struct {
	Limit  int `json:"limit" validate:"gte=0"`
	Offset int `json:"offset" validate:"gte=0"`
	Count  int `json:"count" validate:"gte=0"`
	Total  int `json:"total" validate:"gte=0"`
}

// PaginationShape requires all four counters, none of them nullable.
var PaginationShape = schema.Object("pagination",
	schema.Int("limit"),
	schema.Int("offset"),
	schema.Int("count"),
	schema.Int("total"),
)

// ListResponse is the envelope returned by paginated endpoints.
type ListResponse[T any] struct {
	Pagination Pagination `json:"pagination"`
	Data       []T        `json:"data" validate:"dive"`
}

// listShape builds the envelope shape around an item shape.
func listShape(name string, strict bool, item *schema.Shape) *schema.Shape {
	fields := []schema.Field{
		schema.Nested("pagination", PaginationShape),
		schema.List("data", item),
	}
	if strict {
		return schema.StrictObject(name, fields...)
	}
	return schema.Object(name, fields...)
}
