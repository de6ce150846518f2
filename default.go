// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// default.go — lazily constructed shared Serializer and the package-level
// convenience functions that forward to it. Construction happens at most
// once: an atomic pointer serves the fast path, a mutex serializes the
// first call.

package sera

import (
	"sync"
	"sync/atomic"
)

var (
	defaultMu  sync.Mutex
	defaultSer atomic.Pointer[Serializer]
)

// Default returns the shared Serializer, constructing it with a zero Config
// on first use.
func Default() *Serializer {
	if s := defaultSer.Load(); s != nil {
		return s
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if s := defaultSer.Load(); s != nil {
		return s
	}
	s, err := New(Config{})
	if err != nil {
		// Unreachable: a zero Config resolves the built-in json engine.
		panic(err)
	}
	defaultSer.Store(s)
	return s
}

// SetDefault replaces the shared Serializer used by the package-level
// functions. A nil s resets to lazy zero-Config construction.
func SetDefault(s *Serializer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSer.Store(s)
}

// Serialize encodes v with the shared Serializer.
func Serialize(v any) ([]byte, error) { return Default().Serialize(v) }

// SerializeString encodes v to a string with the shared Serializer.
func SerializeString(v any) (string, error) { return Default().SerializeString(v) }

// Deserialize decodes data into v with the shared Serializer.
func Deserialize(data []byte, v any) error { return Default().Deserialize(data, v) }

// DeserializeString decodes the string form of data into v with the shared
// Serializer.
func DeserializeString(data string, v any) error { return Default().DeserializeString(data, v) }

// SerializeToFile encodes v and writes it to path with the shared
// Serializer.
func SerializeToFile(path string, v any) error { return Default().SerializeToFile(path, v) }

// DeserializeFromFile reads and decodes path into v with the shared
// Serializer.
func DeserializeFromFile(path string, v any) error { return Default().DeserializeFromFile(path, v) }

// PrettyPrint reformats a raw JSON document with the shared Serializer.
func PrettyPrint(data []byte) ([]byte, error) { return Default().PrettyPrint(data) }

// PrettyPrintString reformats a raw JSON string with the shared Serializer.
func PrettyPrintString(data string) (string, error) { return Default().PrettyPrintString(data) }

// Compact removes insignificant whitespace with the shared Serializer.
func Compact(data []byte) ([]byte, error) { return Default().Compact(data) }

// Valid reports whether data is well-formed JSON per the shared Serializer.
func Valid(data []byte) bool { return Default().Valid(data) }
