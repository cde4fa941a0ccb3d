package core

import "reflect"

// UnwrapArray returns the first element when value is a slice or array, otherwise value
// itself. If the result is empty (nil or a zero value) and defaultValue is not, defaultValue
// is returned instead.
func UnwrapArray(value, defaultValue any) any {
	if rv := reflect.ValueOf(value); rv.IsValid() {
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Len() == 0 {
				value = nil
			} else {
				value = rv.Index(0).Interface()
			}
		}
	}
	if isEmptyValue(value) && !isEmptyValue(defaultValue) {
		return defaultValue
	}
	return value
}

// IsPlainObject reports whether v is a string-keyed map, the Go analogue of an object literal.
func IsPlainObject(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return false
	}
	return rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
