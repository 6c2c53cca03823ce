package service

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// FlexBool is a boolean that accepts native, numeric and string forms on input.
// It always marshals as a JSON boolean.
type FlexBool bool

// UnmarshalJSON coerces any JSON scalar with CoerceBool
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*b = FlexBool(CoerceBool(v))
	return nil
}

// Bool returns the plain value
func (b FlexBool) Bool() bool { return bool(b) }

// CoerceBool converts a transport value to a boolean:
//   - strings: "1", "true", "yes", "on" are true; anything else is false
//   - integers: true only when exactly 1
//   - other numbers and values: true when non-zero / non-empty
//   - nil: false
func CoerceBool(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return parseBoolString(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i == 1
		}
		f, err := t.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case *string:
		return t != nil && parseBoolString(*t)
	case *bool:
		return t != nil && *t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 1
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func parseBoolString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
