// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// sera.go — Serializer configuration and core serialize/deserialize
// operations. All encoding and decoding is delegated to the configured
// engine; this file only resolves the engine, applies the optional
// reflective pre-pass, and records stats and metrics around the call.

package sera

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync/atomic"

	"github.com/AndrewDonelson/sera/internal/clock"
	"github.com/AndrewDonelson/sera/internal/engine"
	"github.com/AndrewDonelson/sera/internal/metrics"
)

// Re-export types so callers only import this package.
type MetricsRecorder = metrics.MetricsRecorder
type Engine = engine.Engine
type JSONEngine = engine.JSONEngine

// ────────────────────────────────────────────────────────────────────────────
// Engine registry
// ────────────────────────────────────────────────────────────────────────────

// RegisterEngine makes a custom engine available under name for use in
// Config.Engine. Built-in engines ("json", "goccy", "jsoniter", "msgpack",
// and "sonic" when built with the sonic tag) are registered automatically.
func RegisterEngine(name string, e Engine) error {
	if err := engine.Register(name, e); err != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateEngine, name)
	}
	return nil
}

// Engines returns the sorted names of all registered engines.
func Engines() []string { return engine.Names() }

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// CycleHandling controls what happens when a value graph contains a
// reference cycle.
type CycleHandling int

const (
	// CycleError reports ErrCyclicReference naming the offending path.
	// This is checked before the engine runs so behavior is uniform across
	// engines (some would otherwise overflow the stack).
	CycleError CycleHandling = iota
	// CycleIgnore prunes the back-edge: the repeated reference encodes as
	// null and serialization proceeds.
	CycleIgnore
)

// Config contains all Serializer configuration.
type Config struct {
	// Engine is the registered engine name. Empty selects the registry
	// default (standard library encoding/json).
	Engine string

	// Indent enables pretty output from every serialize operation using
	// the given indent string. Requires a JSON engine.
	Indent string

	// EnumsAsStrings encodes integer-kinded values that implement
	// fmt.Stringer as their String() form. This includes any integer
	// Stringer, e.g. time.Duration. Decoding stringified enums requires
	// the type to implement encoding.TextUnmarshaler.
	EnumsAsStrings bool

	// Cycles selects cyclic-reference handling.
	Cycles CycleHandling

	// EncryptionKey enables AES-256-GCM at-rest encryption of serialized
	// files (must be 32 bytes; nil = disabled). Only file operations are
	// encrypted; Serialize still returns plaintext.
	EncryptionKey []byte

	// AtomicWrites makes SerializeToFile write through a temp file in the
	// target directory followed by a rename.
	AtomicWrites bool

	// FileMode is the permission mode for created files (default 0644).
	FileMode os.FileMode

	// Optional overrideable components
	Logger  Logger
	Metrics metrics.MetricsRecorder
	Clock   clock.Clock
}

func (c *Config) defaults() {
	if c.FileMode == 0 {
		c.FileMode = 0o644
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Stats
// ────────────────────────────────────────────────────────────────────────────

type serializerStats struct {
	Encodes    atomic.Int64
	Decodes    atomic.Int64
	FileReads  atomic.Int64
	FileWrites atomic.Int64
	Errors     atomic.Int64
}

// Stats is the snapshot returned by Serializer.Stats().
type Stats struct {
	Encodes    int64
	Decodes    int64
	FileReads  int64
	FileWrites int64
	Errors     int64
}

// ────────────────────────────────────────────────────────────────────────────
// Serializer
// ────────────────────────────────────────────────────────────────────────────

// Serializer is the main entry-point for the Sera library. It is stateless
// after construction and safe for concurrent use.
type Serializer struct {
	cfg   Config
	eng   engine.Engine
	jeng  engine.JSONEngine // nil when the engine output is not JSON
	enc   Encryptor
	stats serializerStats
}

// New creates a Serializer from cfg, resolving the configured engine from
// the registry and validating option compatibility.
func New(cfg Config) (*Serializer, error) {
	cfg.defaults()

	eng, err := engine.Lookup(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownEngine, cfg.Engine, engine.Names())
	}
	jeng, _ := eng.(engine.JSONEngine)

	if cfg.Indent != "" && jeng == nil {
		return nil, fmt.Errorf("%w: Indent is not supported by engine %q", ErrNotJSONEngine, eng.Name())
	}
	if cfg.Cycles != CycleError && cfg.Cycles != CycleIgnore {
		return nil, fmt.Errorf("%w: unknown cycle handling %d", ErrInvalidConfig, cfg.Cycles)
	}

	s := &Serializer{cfg: cfg, eng: eng, jeng: jeng}

	if len(cfg.EncryptionKey) > 0 {
		enc, err := NewAES256GCM(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		s.enc = enc
	}

	cfg.Logger.Debug("serializer created", "engine", eng.Name(),
		"indent", cfg.Indent != "", "encrypted", s.enc != nil)
	return s, nil
}

// EngineName returns the name of the engine backing this Serializer.
func (s *Serializer) EngineName() string { return s.eng.Name() }

// Stats returns a snapshot of operation counters.
func (s *Serializer) Stats() Stats {
	return Stats{
		Encodes:    s.stats.Encodes.Load(),
		Decodes:    s.stats.Decodes.Load(),
		FileReads:  s.stats.FileReads.Load(),
		FileWrites: s.stats.FileWrites.Load(),
		Errors:     s.stats.Errors.Load(),
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Serialize
// ────────────────────────────────────────────────────────────────────────────

// Serialize encodes v with the configured engine and returns the raw bytes.
// With Config.Indent set the output is pretty-printed.
func (s *Serializer) Serialize(v any) ([]byte, error) {
	start := s.cfg.Clock.Now()

	payload := v
	if s.cfg.EnumsAsStrings || s.cfg.Cycles == CycleIgnore {
		normalized, err := s.normalize(v)
		if err != nil {
			return nil, s.encodeErr(err)
		}
		payload = normalized
	} else if err := detectCycle(v); err != nil {
		return nil, s.encodeErr(err)
	}

	data, err := s.eng.Marshal(payload)
	if err != nil {
		return nil, s.encodeErr(fmt.Errorf("%w: %v", ErrEncodeFailed, err))
	}

	if s.cfg.Indent != "" {
		data, err = s.jeng.Indent(data, "", s.cfg.Indent)
		if err != nil {
			return nil, s.encodeErr(fmt.Errorf("%w: %v", ErrEncodeFailed, err))
		}
	}

	s.stats.Encodes.Add(1)
	s.cfg.Metrics.RecordEncode(s.eng.Name(), len(data), s.cfg.Clock.Now().Sub(start))
	return data, nil
}

// SerializeString encodes v and returns the result as a string.
func (s *Serializer) SerializeString(v any) (string, error) {
	data, err := s.Serialize(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Serializer) encodeErr(err error) error {
	s.stats.Errors.Add(1)
	s.cfg.Metrics.RecordError("encode")
	if !errors.Is(err, ErrEncodeFailed) && !errors.Is(err, ErrCyclicReference) {
		err = fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return err
}

// ────────────────────────────────────────────────────────────────────────────
// Deserialize
// ────────────────────────────────────────────────────────────────────────────

// Deserialize decodes data into v, which must be a non-nil pointer.
func (s *Serializer) Deserialize(data []byte, v any) error {
	start := s.cfg.Clock.Now()

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("decode")
		return ErrInvalidTarget
	}

	if err := s.eng.Unmarshal(data, v); err != nil {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("decode")
		return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	s.stats.Decodes.Add(1)
	s.cfg.Metrics.RecordDecode(s.eng.Name(), len(data), s.cfg.Clock.Now().Sub(start))
	return nil
}

// DeserializeString decodes the string form of data into v.
func (s *Serializer) DeserializeString(data string, v any) error {
	return s.Deserialize([]byte(data), v)
}

// ────────────────────────────────────────────────────────────────────────────
// Lenient variants
// ────────────────────────────────────────────────────────────────────────────

// TrySerialize is Serialize with the error swallowed: it returns nil and
// false on failure, logging the cause at Debug.
func (s *Serializer) TrySerialize(v any) ([]byte, bool) {
	data, err := s.Serialize(v)
	if err != nil {
		s.cfg.Logger.Debug("serialize failed", "error", err)
		return nil, false
	}
	return data, true
}

// TrySerializeString is SerializeString with the error swallowed.
func (s *Serializer) TrySerializeString(v any) (string, bool) {
	data, ok := s.TrySerialize(v)
	if !ok {
		return "", false
	}
	return string(data), true
}

// TryDeserialize is Deserialize with the error swallowed; it reports
// whether decoding succeeded.
func (s *Serializer) TryDeserialize(data []byte, v any) bool {
	if err := s.Deserialize(data, v); err != nil {
		s.cfg.Logger.Debug("deserialize failed", "error", err)
		return false
	}
	return true
}

// TryDeserializeString is DeserializeString with the error swallowed.
func (s *Serializer) TryDeserializeString(data string, v any) bool {
	return s.TryDeserialize([]byte(data), v)
}

// ────────────────────────────────────────────────────────────────────────────
// Typed helpers
// ────────────────────────────────────────────────────────────────────────────

// Decode deserializes data into a freshly allocated T.
func Decode[T any](s *Serializer, data []byte) (T, error) {
	var out T
	if err := s.Deserialize(data, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeString deserializes the string form of data into a freshly
// allocated T.
func DecodeString[T any](s *Serializer, data string) (T, error) {
	return Decode[T](s, []byte(data))
}

// DecodeFile reads and deserializes the file at path into a freshly
// allocated T.
func DecodeFile[T any](s *Serializer, path string) (T, error) {
	var out T
	if err := s.DeserializeFromFile(path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
