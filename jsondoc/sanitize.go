package jsondoc

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/dsrkit/dsrfiles/dataset"
)

// Sanitize recursively converts a value into a form that encoding/json can
// always serialize. It is applied to every value passed to Save.
//
// Conversions:
//   - maps of any key type become map[string]any (keys via fmt.Sprint)
//   - slices and arrays become []any; []byte becomes a string
//   - time.Time becomes an RFC 3339 string; time.Duration its String form
//   - NaN and ±Inf floats become the strings "NaN", "+Inf", "-Inf"
//   - errors become their message
//   - structs become field maps, honoring json tags
//   - *dataset.Table becomes its list of records
//   - values encoding/json cannot handle fall back to their string form
func Sanitize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return x.String()
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case *dataset.Table:
		if x == nil {
			return nil
		}
		return Sanitize(x.Records())
	case json.Marshaler:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return sanitizeFloat(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = Sanitize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = Sanitize(rv.Index(i).Interface())
		}
		return s
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Sanitize(rv.Elem().Interface())
	case reflect.Struct:
		return sanitizeStruct(rv)
	default:
		// Chan, Func, Complex, UnsafePointer: string fallback.
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v)
	}
}

func sanitizeFloat(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return f
	}
}

func sanitizeStruct(rv reflect.Value) map[string]any {
	rt := rv.Type()
	m := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		m[name] = Sanitize(rv.Field(i).Interface())
	}
	return m
}
