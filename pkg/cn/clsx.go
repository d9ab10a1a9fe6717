package cn

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ClassValue is any value accepted by Clsx and Merge.
type ClassValue = any

// Map includes each key whose value is true.
type Map map[string]bool

// Cond is a group of class values included only when OK is set.
type Cond struct {
	OK     bool
	Values []ClassValue
}

// When returns values wrapped so that they are included only when ok is true.
func When(ok bool, values ...ClassValue) Cond {
	return Cond{OK: ok, Values: values}
}

// Clsx flattens class values into a single space separated list. Strings are
// split on whitespace, slices are flattened recursively, map keys are
// included when their value is true (in key order), non-zero numbers are
// included as text and everything else (nil, bools, zero values, unknown
// types) is ignored.
func Clsx(inputs ...ClassValue) string {
	var b strings.Builder
	for _, in := range inputs {
		appendValue(&b, in)
	}
	return b.String()
}

func appendValue(b *strings.Builder, v ClassValue) {
	switch x := v.(type) {
	case nil, bool:
	case string:
		appendFields(b, x)
	case []string:
		for _, s := range x {
			appendFields(b, s)
		}
	case []any:
		for _, e := range x {
			appendValue(b, e)
		}
	case Map:
		appendMap(b, x)
	case map[string]bool:
		appendMap(b, x)
	case Cond:
		if x.OK {
			for _, e := range x.Values {
				appendValue(b, e)
			}
		}
	case *string:
		if x != nil {
			appendFields(b, *x)
		}
	case fmt.Stringer:
		if isNilPointer(x) {
			return
		}
		appendFields(b, x.String())
	default:
		appendReflect(b, reflect.ValueOf(v))
	}
}

func appendMap(b *strings.Builder, m map[string]bool) {
	keys := make([]string, 0, len(m))
	for k, ok := range m {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendFields(b, k)
	}
}

func appendReflect(b *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n != 0 {
			appendFields(b, strconv.FormatInt(n, 10))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n := rv.Uint(); n != 0 {
			appendFields(b, strconv.FormatUint(n, 10))
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f != 0 && !math.IsNaN(f) {
			appendFields(b, strconv.FormatFloat(f, 'f', -1, 64))
		}
	case reflect.String:
		appendFields(b, rv.String())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendValue(b, rv.Index(i).Interface())
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			appendValue(b, rv.Elem().Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.Type().Elem().Kind() != reflect.Bool {
			return
		}
		m := make(map[string]bool, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Bool()
		}
		appendMap(b, m)
	}
}

func appendFields(b *strings.Builder, s string) {
	for _, f := range strings.Fields(s) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
