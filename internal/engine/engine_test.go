package engine_test

import (
	"testing"

	"github.com/AndrewDonelson/sera/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

func TestRoundTrip_AllBuiltins(t *testing.T) {
	for _, name := range []string{"json", "goccy", "jsoniter", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			e, err := engine.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, e.Name())

			orig := item{ID: 1, Name: "test"}
			b, err := e.Marshal(orig)
			require.NoError(t, err)

			var got item
			require.NoError(t, e.Unmarshal(b, &got))
			assert.Equal(t, orig, got)
		})
	}
}

func TestJSONSurface(t *testing.T) {
	for _, name := range []string{"json", "goccy", "jsoniter"} {
		t.Run(name, func(t *testing.T) {
			e, err := engine.Lookup(name)
			require.NoError(t, err)
			je, ok := e.(engine.JSONEngine)
			require.True(t, ok)

			out, err := je.Indent([]byte(`{"a":1}`), "", "  ")
			require.NoError(t, err)
			assert.Equal(t, "{\n  \"a\": 1\n}", string(out))

			back, err := je.Compact(out)
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(back))

			assert.True(t, je.Valid([]byte(`{"a":1}`)))
			assert.False(t, je.Valid([]byte(`{"a":`)))
		})
	}
}

func TestMsgPack_IsBinary(t *testing.T) {
	e, err := engine.Lookup("msgpack")
	require.NoError(t, err)

	_, ok := e.(engine.JSONEngine)
	assert.False(t, ok)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := engine.Lookup("nope")
	assert.ErrorIs(t, err, engine.ErrNotRegistered)
}

func TestLookup_EmptyResolvesDefault(t *testing.T) {
	e, err := engine.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, engine.Default, e)
	assert.Equal(t, "json", e.Name())
}

func TestRegister_Duplicate(t *testing.T) {
	require.NoError(t, engine.Register("dup", engine.Std{}))
	assert.ErrorIs(t, engine.Register("dup", engine.Std{}), engine.ErrDuplicate)
}

func TestNames_SortedWithBuiltins(t *testing.T) {
	names := engine.Names()
	assert.IsIncreasing(t, names)
	assert.Subset(t, names, []string{"goccy", "json", "jsoniter", "msgpack"})
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "json", engine.Default.Name())
}
