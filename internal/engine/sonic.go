//go:build sonic

// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// sonic.go — JSON engine wrapping github.com/bytedance/sonic. Gated behind
// the `sonic` build tag because sonic's JIT path is amd64/arm64 specific;
// default builds stay portable without it.

package engine

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Sonic is a JIT-accelerated JSON engine using bytedance/sonic.
type Sonic struct{}

// Marshal serializes v to JSON bytes.
func (Sonic) Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (Sonic) Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Name returns "sonic".
func (Sonic) Name() string { return "sonic" }

// Indent reformats data; sonic has no Indent so encoding/json does it.
func (Sonic) Indent(data []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact removes insignificant whitespace.
func (Sonic) Compact(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Valid reports whether data is well-formed JSON.
func (Sonic) Valid(data []byte) bool { return sonic.ConfigStd.Valid(data) }

func init() {
	if err := Register("sonic", Sonic{}); err != nil {
		panic(err)
	}
}
