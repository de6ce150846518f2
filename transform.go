// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// transform.go — reflective pre-pass over value graphs. Two jobs, both
// optional: rewrite integer enums that implement fmt.Stringer into their
// string form, and handle reference cycles (error with the offending path,
// or prune the back-edge to null). The default serialize path only runs the
// lightweight cycle scan; everything else is delegated untouched.

package sera

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// walker traverses a value graph. With scan set it builds nothing and only
// reports cycles; otherwise it produces a maps-and-slices shadow of the
// input for the engine to encode.
type walker struct {
	enums bool
	prune bool
	scan  bool
	seen  map[uintptr]struct{}
}

// normalize returns a shadow of v with enum stringification and cycle
// handling applied, ready to hand to the engine.
func (s *Serializer) normalize(v any) (any, error) {
	w := &walker{
		enums: s.cfg.EnumsAsStrings,
		prune: s.cfg.Cycles == CycleIgnore,
		seen:  make(map[uintptr]struct{}),
	}
	return w.walk(reflect.ValueOf(v), "$")
}

// detectCycle walks v without building anything and returns
// ErrCyclicReference naming the path of the first cycle found.
func detectCycle(v any) error {
	w := &walker{scan: true, seen: make(map[uintptr]struct{})}
	_, err := w.walk(reflect.ValueOf(v), "$")
	return err
}

// isOpaque reports whether the engine encodes t itself, making the value a
// leaf for the walk. Covers time.Time, json.RawMessage, custom marshalers.
func isOpaque(t reflect.Type) bool {
	return t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType)
}

func (w *walker) walk(v reflect.Value, path string) (any, error) {
	switch v.Kind() {
	case reflect.Invalid:
		return nil, nil

	case reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		if isOpaque(v.Type()) {
			return w.leaf(v), nil
		}
		p := v.Pointer()
		if _, ok := w.seen[p]; ok {
			return w.cycle(path)
		}
		w.seen[p] = struct{}{}
		out, err := w.walk(v.Elem(), path)
		delete(w.seen, p)
		return out, err

	case reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return w.walk(v.Elem(), path)
	}

	if isOpaque(v.Type()) {
		return w.leaf(v), nil
	}

	switch v.Kind() {
	case reflect.Struct:
		var m map[string]any
		if !w.scan {
			m = make(map[string]any, v.NumField())
		}
		if err := w.mergeStruct(m, v, path, false); err != nil {
			return nil, err
		}
		return m, nil

	case reflect.Map:
		return w.walkMap(v, path)

	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		// []byte stays as-is: JSON engines base64 it themselves.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return w.leaf(v), nil
		}
		p := v.Pointer()
		if _, ok := w.seen[p]; ok {
			return w.cycle(path)
		}
		w.seen[p] = struct{}{}
		out, err := w.walkList(v, path)
		delete(w.seen, p)
		return out, err

	case reflect.Array:
		return w.walkList(v, path)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if w.enums && v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String(), nil
		}
		return w.leaf(v), nil

	default:
		return w.leaf(v), nil
	}
}

func (w *walker) leaf(v reflect.Value) any {
	if w.scan {
		return nil
	}
	return v.Interface()
}

func (w *walker) cycle(path string) (any, error) {
	if w.prune {
		return nil, nil
	}
	return nil, fmt.Errorf("%w at %s", ErrCyclicReference, path)
}

// mergeStruct writes the fields of v into m, flattening untagged embedded
// structs the way encoding/json promotes them. Embedded structs merge after
// the direct fields and never overwrite an existing key, so the shallower
// field wins regardless of declaration order, matching encoding/json.
// promoted marks v itself as a flattened embedded struct.
func (w *walker) mergeStruct(m map[string]any, v reflect.Value, path string, promoted bool) error {
	t := v.Type()
	var embedded []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := parseJSONTag(tag)
		fv := v.Field(i)

		if f.Anonymous && name == "" {
			ev := fv
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct && !isOpaque(ev.Type()) {
				embedded = append(embedded, ev)
				continue
			}
		}

		if opts.omitempty && isEmptyValue(fv) {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if promoted {
			if _, exists := m[name]; exists {
				continue
			}
		}
		out, err := w.walk(fv, path+"."+name)
		if err != nil {
			return err
		}
		if opts.quoted {
			out, err = quoteValue(fv, out)
			if err != nil {
				return err
			}
		}
		if !w.scan {
			m[name] = out
		}
	}
	for _, ev := range embedded {
		if err := w.mergeStruct(m, ev, path, true); err != nil {
			return err
		}
	}
	return nil
}

// quoteValue applies the `json:",string"` option: the encoded form of the
// field value is emitted as a JSON string. As in encoding/json the option
// only applies to strings, booleans, and numeric kinds.
func quoteValue(fv reflect.Value, out any) (any, error) {
	qv := fv
	for qv.Kind() == reflect.Pointer {
		if qv.IsNil() {
			return out, nil
		}
		qv = qv.Elem()
	}
	switch qv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
	default:
		return out, nil
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *walker) walkMap(v reflect.Value, path string) (any, error) {
	if v.IsNil() {
		return nil, nil
	}
	p := v.Pointer()
	if _, ok := w.seen[p]; ok {
		return w.cycle(path)
	}
	w.seen[p] = struct{}{}
	defer delete(w.seen, p)

	var m map[string]any
	if !w.scan {
		m = make(map[string]any, v.Len())
	}
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		var ks string
		switch {
		case k.Kind() == reflect.String:
			ks = k.String()
		case k.Type().Implements(textMarshalerType):
			b, err := k.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return nil, err
			}
			ks = string(b)
		default:
			ks = fmt.Sprint(k.Interface())
		}
		out, err := w.walk(iter.Value(), path+"."+ks)
		if err != nil {
			return nil, err
		}
		if !w.scan {
			m[ks] = out
		}
	}
	return m, nil
}

func (w *walker) walkList(v reflect.Value, path string) (any, error) {
	var list []any
	if !w.scan {
		list = make([]any, v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		out, err := w.walk(v.Index(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		if !w.scan {
			list[i] = out
		}
	}
	return list, nil
}

type tagOptions struct {
	omitempty bool
	quoted    bool
}

// parseJSONTag splits a `json` struct tag into its name and options.
func parseJSONTag(tag string) (string, tagOptions) {
	name, rest, _ := strings.Cut(tag, ",")
	var opts tagOptions
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		switch opt {
		case "omitempty":
			opts.omitempty = true
		case "string":
			opts.quoted = true
		}
	}
	return name, opts
}

// isEmptyValue mirrors encoding/json's notion of emptiness for omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v.IsZero()
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
