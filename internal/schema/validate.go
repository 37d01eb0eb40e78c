package schema

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/tidwall/gjson"
)

// Validate walks body against s and returns every mismatch it finds.
// A nil result means the payload conforms.
func Validate(body []byte, s *Shape) []FieldError {
	return walk(body, s).errs
}

func walk(body []byte, s *Shape) *walker {
	w := &walker{}
	if !gjson.ValidBytes(body) {
		w.fail("", ReasonInvalidJSON)
		return w
	}
	w.object(gjson.ParseBytes(body), s, "")
	return w
}

type walker struct {
	errs []FieldError
	// integral numbers written as decimals or exponents (100.0, 1e2),
	// rewritten to plain integers before decoding
	coerce []coercion
}

type coercion struct {
	index int
	raw   string
	value string
}

func (w *walker) fail(path, reason string) {
	w.errs = append(w.errs, FieldError{Path: path, Reason: reason})
}

func (w *walker) object(v gjson.Result, s *Shape, path string) {
	if !v.IsObject() {
		w.fail(path, ReasonObject)
		return
	}

	var keys []string
	values := make(map[string]gjson.Result)
	v.ForEach(func(k, val gjson.Result) bool {
		name := k.String()
		if _, dup := values[name]; !dup {
			keys = append(keys, name)
		}
		values[name] = val
		return true
	})

	for _, f := range s.fields {
		p := join(path, f.Name)
		val, ok := values[f.Name]
		switch {
		case !ok:
			if f.IsRequired() {
				w.fail(p, ReasonMissing)
			}
		case val.Type == gjson.Null:
			if !f.nullable {
				w.fail(p, ReasonNull)
			}
		default:
			w.value(val, f, p)
		}
	}

	if s.Strict {
		for _, k := range keys {
			if !s.Declares(k) {
				w.fail(join(path, k), ReasonUnknown)
			}
		}
	}
}

func (w *walker) value(v gjson.Result, f Field, path string) {
	switch f.Kind {
	case KindString:
		if v.Type != gjson.String {
			w.fail(path, ReasonString)
		}
	case KindFloat:
		if v.Type != gjson.Number {
			w.fail(path, ReasonFloat)
		}
	case KindInt:
		if v.Type != gjson.Number {
			w.fail(path, ReasonInt)
			return
		}
		if _, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return
		}
		n, ok := integral(v.Num)
		if !ok {
			w.fail(path, ReasonInt)
			return
		}
		w.coerce = append(w.coerce, coercion{index: v.Index, raw: v.Raw, value: strconv.FormatInt(n, 10)})
	case KindDateTime:
		if v.Type != gjson.String {
			w.fail(path, ReasonDateTime)
			return
		}
		if _, err := ParseDateTime(v.Str); err != nil {
			w.fail(path, ReasonDateTime)
		}
	case KindObject:
		if f.Shape == nil {
			if !v.IsObject() {
				w.fail(path, ReasonObject)
			}
			return
		}
		w.object(v, f.Shape, path)
	case KindList:
		if !v.IsArray() {
			w.fail(path, ReasonList)
			return
		}
		if f.Shape == nil {
			return
		}
		for i, item := range v.Array() {
			w.object(item, f.Shape, path+"["+strconv.Itoa(i)+"]")
		}
	}
}

// integral reports whether f holds a whole number that fits in an int64.
func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// apply returns body with every coercion spliced in. body is not modified.
func (w *walker) apply(body []byte) []byte {
	if len(w.coerce) == 0 {
		return body
	}
	slices.SortFunc(w.coerce, func(a, b coercion) int { return cmp.Compare(a.index, b.index) })

	out := make([]byte, 0, len(body))
	last := 0
	for _, c := range w.coerce {
		end := c.index + len(c.raw)
		if c.index < last || end > len(body) || string(body[c.index:end]) != c.raw {
			continue
		}
		out = append(out, body[last:c.index]...)
		out = append(out, c.value...)
		last = end
	}
	return append(out, body[last:]...)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
