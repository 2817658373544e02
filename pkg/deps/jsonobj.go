package deps

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Entry is one key/value pair of a JSON object, kept in document order.
type Entry struct {
	Key   string
	Value *fastjson.Value
}

// MergeObjects collects the members of the named object fields of doc in
// document order. Later fields override earlier ones on key collision; the
// overridden key keeps the position of its first occurrence. A missing
// field is skipped, while a field that is present but not an object is an
// error.
func MergeObjects(doc *fastjson.Value, fields ...string) ([]Entry, error) {
	if doc.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("top-level value is %s, want object", doc.Type())
	}

	var out []Entry
	index := make(map[string]int)
	for _, field := range fields {
		v := doc.Get(field)
		if v == nil {
			continue
		}
		obj, err := v.Object()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		obj.Visit(func(key []byte, val *fastjson.Value) {
			k := string(key)
			if i, ok := index[k]; ok {
				out[i].Value = val
				return
			}
			index[k] = len(out)
			out = append(out, Entry{Key: k, Value: val})
		})
	}
	return out, nil
}

// StringValue returns the string content of v, or its raw JSON text when v
// is not a string.
func StringValue(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	if b, err := v.StringBytes(); err == nil {
		return string(b)
	}
	return v.String()
}
