// Package engine provides encode/decode interfaces for serialization and a
// name-keyed registry of implementations.
package engine

import (
	"errors"
	"sort"
	"sync"
)

// Engine encodes and decodes values.
type Engine interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the engine identifier used for registry lookup and
	// diagnostics.
	Name() string
}

// JSONEngine is an Engine whose output is JSON text and which can therefore
// reformat and validate raw documents.
type JSONEngine interface {
	Engine
	// Indent reformats data with the given prefix and indent string.
	Indent(data []byte, prefix, indent string) ([]byte, error)
	// Compact removes insignificant whitespace from data.
	Compact(data []byte) ([]byte, error)
	// Valid reports whether data is a well-formed document.
	Valid(data []byte) bool
}

// ErrNotRegistered is returned by Lookup for unknown engine names.
var ErrNotRegistered = errors.New("engine: not registered")

// ErrDuplicate is returned by Register when the name is already taken.
var ErrDuplicate = errors.New("engine: duplicate registration")

var (
	mu       sync.RWMutex
	registry = make(map[string]Engine)
)

// Register adds e to the registry under name. Built-in engines register
// themselves at init; callers may add their own before first use.
func Register(name string, e Engine) error {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		return ErrDuplicate
	}
	registry[name] = e
	return nil
}

// Lookup resolves a registered engine by name. The empty name resolves to
// Default.
func Lookup(name string) (Engine, error) {
	if name == "" {
		return Default, nil
	}
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return nil, ErrNotRegistered
	}
	return e, nil
}

// Names returns the sorted names of all registered engines.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the engine Lookup resolves for the empty name.
var Default Engine = Std{}
