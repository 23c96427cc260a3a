package pickle

import (
	"fmt"
	"math"
	"reflect"
	"time"

	ogórek "github.com/kisielk/og-rek"
)

// normalize converts v into values the pickle encoder handles natively:
// dicts, lists, strings, int64, float64, bool, bytes, and None.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return ogórek.None{}
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return x.String()
	case []byte:
		return x
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return fmt.Sprint(u)
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Map:
		m := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[normalizeKey(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = normalize(rv.Index(i).Interface())
		}
		return s
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ogórek.None{}
		}
		return normalize(rv.Elem().Interface())
	case reflect.Struct:
		rt := rv.Type()
		m := make(map[any]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			m[rt.Field(i).Name] = normalize(rv.Field(i).Interface())
		}
		return m
	default:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v)
	}
}

// normalizeKey produces a hashable dict key.
func normalizeKey(k any) any {
	n := normalize(k)
	switch n.(type) {
	case map[any]any, []any, []byte:
		return fmt.Sprint(k)
	}
	return n
}
