// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// std.go — JSON engine wrapping the standard library encoding/json; the
// default engine when Config.Engine is left empty.

package engine

import (
	"bytes"
	"encoding/json"
)

// Std is the default engine using standard library encoding/json.
type Std struct{}

// Marshal serializes v to JSON bytes.
func (Std) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (Std) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns "json".
func (Std) Name() string { return "json" }

// Indent reformats data via json.Indent.
func (Std) Indent(data []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact removes insignificant whitespace via json.Compact.
func (Std) Compact(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Valid reports whether data is well-formed JSON.
func (Std) Valid(data []byte) bool { return json.Valid(data) }

func init() {
	if err := Register("json", Std{}); err != nil {
		panic(err)
	}
}
