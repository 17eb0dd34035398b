package core

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Stringify renders an arbitrary message or argument value into a
// display string. The rules, in order:
//
//   - strings pass through unchanged
//   - errors render their diagnostic trace (%+v, so wrapped errors
//     carry their stacks)
//   - nil, numbers, and booleans render their canonical form
//   - fmt.Stringer values render via String()
//   - maps, structs, slices, and arrays render a deterministic
//     JSON-like debug string: double-quoted keys, comma separation,
//     and nested structured values quoted as strings
//
// The structured rendering is a best-effort debugging aid for humans.
// It is deliberately not a parseable encoding and its exact quoting is
// not a compatibility surface.
func Stringify(v any) string {
	return render(v)
}

func render(v any) string {
	if v == nil {
		return "<nil>"
	}
	switch t := v.(type) {
	case string:
		return t
	case error:
		return fmt.Sprintf("%+v", t)
	case bool:
		return strconv.FormatBool(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "<nil>"
		}
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	case reflect.Pointer, reflect.Interface:
		return render(rv.Elem().Interface())
	}

	switch rv.Kind() {
	case reflect.Map:
		return renderMap(rv)
	case reflect.Struct:
		return renderStruct(rv)
	case reflect.Slice, reflect.Array:
		return renderSeq(rv)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// member renders a value appearing inside a structured container.
// Structured members are rendered first and then quoted as a string,
// so the outer container stays a flat, single-line form.
func member(v any) string {
	if isStructured(v) {
		return strconv.Quote(render(v))
	}
	return render(v)
}

func isStructured(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(error); ok {
		return false
	}
	if _, ok := v.(fmt.Stringer); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// renderMap writes {"k": v, ...} with keys sorted for determinism.
// Go maps carry no insertion order, so lexicographic key order stands
// in for it.
func renderMap(rv reflect.Value) string {
	keys := make([]string, 0, rv.Len())
	byKey := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := fmt.Sprintf("%v", iter.Key().Interface())
		keys = append(keys, k)
		byKey[k] = iter.Value()
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(member(byKey[k].Interface()))
	}
	b.WriteByte('}')
	return b.String()
}

// renderStruct writes exported fields in declaration order.
func renderStruct(rv reflect.Value) string {
	t := rv.Type()
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Quote(f.Name))
		b.WriteString(": ")
		b.WriteString(member(rv.Field(i).Interface()))
	}
	b.WriteByte('}')
	return b.String()
}

func renderSeq(rv reflect.Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(member(rv.Index(i).Interface()))
	}
	b.WriteByte(']')
	return b.String()
}
