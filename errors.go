// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public Sera API,
// covering engine resolution, configuration, target validation, and
// encode/decode failures.

// Package sera is a serialization toolkit: it serializes and deserializes
// object graphs to and from JSON text and files by delegating to a pluggable
// engine (encoding/json, goccy/go-json, json-iterator, sonic, or msgpack),
// and reformats JSON for human consumption.
package sera

import "errors"

// Engine errors
var (
	ErrUnknownEngine   = errors.New("sera: engine not registered")
	ErrDuplicateEngine = errors.New("sera: engine already registered")
	ErrNotJSONEngine   = errors.New("sera: engine does not produce JSON")
)

// Data errors
var (
	ErrEncodeFailed     = errors.New("sera: failed to encode value")
	ErrDecodeFailed     = errors.New("sera: failed to decode data")
	ErrInvalidTarget    = errors.New("sera: target must be a non-nil pointer")
	ErrCyclicReference  = errors.New("sera: value contains a cyclic reference")
	ErrMalformedPayload = errors.New("sera: encrypted payload is malformed")
)

// Config errors
var (
	ErrInvalidConfig = errors.New("sera: invalid configuration")
)
