// Package schema validates raw JSON responses against declarative shapes and
// decodes them into typed records.
//
// A Shape lists the fields a JSON object must carry. Each field has a kind,
// and is required and non-nullable unless marked otherwise:
//
//	var Pagination = schema.Object("pagination",
//		schema.Int("limit"),
//		schema.Int("offset"),
//		schema.Int("count"),
//		schema.Int("total"),
//	)
//
// Required and nullable are independent. A Nullable field must still appear in
// the payload but may be null; an Optional field may be missing entirely.
package schema

// Kind is the JSON type a field is checked against.
type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindDateTime
	KindObject
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDateTime:
		return "datetime"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Field declares one key of a Shape.
type Field struct {
	Name string
	Kind Kind
	// Shape describes the nested object for KindObject, or each element for
	// KindList. A nil Shape only checks the container type.
	Shape *Shape

	optional bool
	nullable bool
}

// Nullable marks the field as present-but-possibly-null.
func (f Field) Nullable() Field {
	f.nullable = true
	return f
}

// Optional lets the field be absent from the payload.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// IsRequired reports whether the key must be present.
func (f Field) IsRequired() bool { return !f.optional }

// IsNullable reports whether null is an accepted value.
func (f Field) IsNullable() bool { return f.nullable }

func String(name string) Field   { return Field{Name: name, Kind: KindString} }
func Int(name string) Field      { return Field{Name: name, Kind: KindInt} }
func Float(name string) Field    { return Field{Name: name, Kind: KindFloat} }
func DateTime(name string) Field { return Field{Name: name, Kind: KindDateTime} }

// Nested declares a field holding a single object of the given shape.
func Nested(name string, s *Shape) Field {
	return Field{Name: name, Kind: KindObject, Shape: s}
}

// List declares a field holding an array whose elements match s.
func List(name string, s *Shape) Field {
	return Field{Name: name, Kind: KindList, Shape: s}
}

// Shape is the expected layout of one JSON object.
type Shape struct {
	Name string
	// Strict shapes reject keys that are not declared.
	Strict bool

	fields []Field
	index  map[string]struct{}
}

// Object builds a lenient shape: undeclared keys are ignored.
func Object(name string, fields ...Field) *Shape {
	s := &Shape{Name: name, fields: fields, index: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		s.index[f.Name] = struct{}{}
	}
	return s
}

// StrictObject builds a shape that fails on any undeclared key.
func StrictObject(name string, fields ...Field) *Shape {
	s := Object(name, fields...)
	s.Strict = true
	return s
}

// Fields returns the declared fields in declaration order.
func (s *Shape) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Declares reports whether key is part of the shape.
func (s *Shape) Declares(key string) bool {
	_, ok := s.index[key]
	return ok
}
