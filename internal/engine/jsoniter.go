// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// jsoniter.go — JSON engine wrapping github.com/json-iterator/go in its
// stdlib-compatible configuration. jsoniter exposes no Indent/Compact, so
// reformatting delegates to encoding/json on the already-encoded bytes.

package engine

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var iterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONIter is a JSON engine using json-iterator/go.
type JSONIter struct{}

// Marshal serializes v to JSON bytes.
func (JSONIter) Marshal(v any) ([]byte, error) {
	return iterAPI.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (JSONIter) Unmarshal(data []byte, v any) error {
	return iterAPI.Unmarshal(data, v)
}

// Name returns "jsoniter".
func (JSONIter) Name() string { return "jsoniter" }

// Indent reformats data; jsoniter has no Indent so encoding/json does it.
func (JSONIter) Indent(data []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact removes insignificant whitespace.
func (JSONIter) Compact(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Valid reports whether data is well-formed JSON.
func (JSONIter) Valid(data []byte) bool { return iterAPI.Valid(data) }

func init() {
	if err := Register("jsoniter", JSONIter{}); err != nil {
		panic(err)
	}
}
