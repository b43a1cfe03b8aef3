package javascript

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/matzehuels/surepatch/pkg/errors"
)

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object with its members in document order.
// Values are Object, []any, string, float64, bool or nil. A key that
// occurs more than once is kept once, at its last position, with its last
// value.
type Object []Member

// Get returns the value of the member named key.
func (o Object) Get(key string) (any, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Object returns the member named key when it is itself an object.
func (o Object) Object(key string) (Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(Object)
	return obj, ok
}

// Scalar returns the member named key rendered as text. ok is false when
// the member is missing or is an object or array.
func (o Object) Scalar(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	return scalar(v)
}

// scalar renders JSON scalars as text. Objects and arrays are not scalars.
func scalar(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	case nil:
		return "", true
	}
	return "", false
}

// Decode reads a single JSON document whose top level is an object and
// keeps member order at every level.
func Decode(r io.Reader) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read json")
	}
	m := orderedmap.New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode json")
	}
	return fromOrdered(m), nil
}

// DecodeString is Decode over an in-memory document.
func DecodeString(s string) (Object, error) {
	return Decode(strings.NewReader(s))
}

func fromOrdered(m *orderedmap.OrderedMap) Object {
	keys := m.Keys()
	obj := make(Object, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		obj = append(obj, Member{Key: k, Value: fromValue(v)})
	}
	return obj
}

// fromValue converts nested ordered maps, which the library stores by
// value, into Objects.
func fromValue(v any) any {
	switch val := v.(type) {
	case orderedmap.OrderedMap:
		return fromOrdered(&val)
	case *orderedmap.OrderedMap:
		return fromOrdered(val)
	case []any:
		arr := make([]any, len(val))
		for i, e := range val {
			arr[i] = fromValue(e)
		}
		return arr
	}
	return v
}
