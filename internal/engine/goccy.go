// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// goccy.go — JSON engine wrapping github.com/goccy/go-json; drop-in
// replacement for encoding/json with better throughput on large documents.

package engine

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// Goccy is a high-performance JSON engine using goccy/go-json.
type Goccy struct{}

// Marshal serializes v to JSON bytes.
func (Goccy) Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (Goccy) Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

// Name returns "goccy".
func (Goccy) Name() string { return "goccy" }

// Indent reformats data via goccy's stdlib-compatible Indent.
func (Goccy) Indent(data []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact removes insignificant whitespace.
func (Goccy) Compact(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := gojson.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Valid reports whether data is well-formed JSON.
func (Goccy) Valid(data []byte) bool { return gojson.Valid(data) }

func init() {
	if err := Register("goccy", Goccy{}); err != nil {
		panic(err)
	}
}
