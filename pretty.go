// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// pretty.go — reformatting helpers for raw JSON documents: pretty-print,
// compact, and validity checking, all forwarded to the engine's JSON
// surface.

package sera

import "fmt"

// defaultIndent is used by PrettyPrint when Config.Indent is empty.
const defaultIndent = "  "

// PrettyPrint reformats a raw JSON document with the configured indent
// (two spaces when Config.Indent is empty). Returns ErrNotJSONEngine for
// binary engines.
func (s *Serializer) PrettyPrint(data []byte) ([]byte, error) {
	if s.jeng == nil {
		return nil, fmt.Errorf("%w: PrettyPrint is not supported by engine %q", ErrNotJSONEngine, s.eng.Name())
	}
	indent := s.cfg.Indent
	if indent == "" {
		indent = defaultIndent
	}
	out, err := s.jeng.Indent(data, "", indent)
	if err != nil {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("pretty")
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return out, nil
}

// PrettyPrintString is PrettyPrint over strings.
func (s *Serializer) PrettyPrintString(data string) (string, error) {
	out, err := s.PrettyPrint([]byte(data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compact removes insignificant whitespace from a raw JSON document.
// Returns ErrNotJSONEngine for binary engines.
func (s *Serializer) Compact(data []byte) ([]byte, error) {
	if s.jeng == nil {
		return nil, fmt.Errorf("%w: Compact is not supported by engine %q", ErrNotJSONEngine, s.eng.Name())
	}
	out, err := s.jeng.Compact(data)
	if err != nil {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("compact")
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return out, nil
}

// Valid reports whether data is a well-formed JSON document. Always false
// for binary engines.
func (s *Serializer) Valid(data []byte) bool {
	if s.jeng == nil {
		return false
	}
	return s.jeng.Valid(data)
}

// TryPrettyPrint is PrettyPrint with the error swallowed.
func (s *Serializer) TryPrettyPrint(data []byte) ([]byte, bool) {
	out, err := s.PrettyPrint(data)
	if err != nil {
		s.cfg.Logger.Debug("pretty print failed", "error", err)
		return nil, false
	}
	return out, true
}
