package sera_test

import (
	"testing"

	"github.com/AndrewDonelson/sera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	s := newSer(t, sera.Config{})

	out, err := s.PrettyPrint([]byte(`{"b":[1,2],"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    1,\n    2\n  ],\n  \"a\": 1\n}", string(out))
}

func TestPrettyPrint_HonorsConfiguredIndent(t *testing.T) {
	s := newSer(t, sera.Config{Indent: "\t"})

	out, err := s.PrettyPrint([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", string(out))
}

func TestPrettyPrint_Malformed(t *testing.T) {
	s := newSer(t, sera.Config{})

	_, err := s.PrettyPrint([]byte(`{"a":`))
	assert.ErrorIs(t, err, sera.ErrDecodeFailed)

	out, ok := s.TryPrettyPrint([]byte(`{"a":`))
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestPrettyPrintString(t *testing.T) {
	s := newSer(t, sera.Config{})

	text, err := s.PrettyPrintString(`[1,2]`)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]", text)
}

func TestCompact(t *testing.T) {
	s := newSer(t, sera.Config{})

	out, err := s.Compact([]byte("{\n  \"a\": 1\n}"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(out))

	_, err = s.Compact([]byte(`{"a":`))
	assert.ErrorIs(t, err, sera.ErrDecodeFailed)
}

func TestValid(t *testing.T) {
	s := newSer(t, sera.Config{})

	assert.True(t, s.Valid([]byte(`{"a":1}`)))
	assert.True(t, s.Valid([]byte(`null`)))
	assert.False(t, s.Valid([]byte(``)))
	assert.False(t, s.Valid([]byte(`{"a":}`)))
}

// ── Binary engines have no JSON surface ──────────────────────────────────────

func TestPretty_BinaryEngine(t *testing.T) {
	s := newSer(t, sera.Config{Engine: "msgpack"})

	data, err := s.Serialize(Product{ID: "m1"})
	require.NoError(t, err)

	_, err = s.PrettyPrint(data)
	assert.ErrorIs(t, err, sera.ErrNotJSONEngine)
	_, err = s.Compact(data)
	assert.ErrorIs(t, err, sera.ErrNotJSONEngine)
	assert.False(t, s.Valid(data))
}
