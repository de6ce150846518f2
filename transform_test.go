package sera_test

import (
	"testing"
	"time"

	"github.com/AndrewDonelson/sera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Cycle handling ───────────────────────────────────────────────────────────

type Node struct {
	Name string `json:"name"`
	Next *Node  `json:"next"`
}

func TestCycles_ErrorByDefault(t *testing.T) {
	s := newSer(t, sera.Config{})

	n := &Node{Name: "a"}
	n.Next = n

	_, err := s.Serialize(n)
	require.ErrorIs(t, err, sera.ErrCyclicReference)
	assert.Contains(t, err.Error(), "$.next")
}

func TestCycles_ErrorInSlice(t *testing.T) {
	s := newSer(t, sera.Config{})

	list := make([]any, 1)
	list[0] = list

	_, err := s.Serialize(list)
	assert.ErrorIs(t, err, sera.ErrCyclicReference)
}

func TestCycles_ErrorInMap(t *testing.T) {
	s := newSer(t, sera.Config{})

	m := map[string]any{}
	m["self"] = m

	_, err := s.Serialize(m)
	assert.ErrorIs(t, err, sera.ErrCyclicReference)
}

func TestCycles_Ignore(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	n := &Node{Name: "a"}
	n.Next = n

	text, err := s.SerializeString(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","next":null}`, text)
}

func TestCycles_SharedReferenceIsNotACycle(t *testing.T) {
	s := newSer(t, sera.Config{})

	leaf := &Node{Name: "leaf"}
	pair := []*Node{leaf, leaf}

	text, err := s.SerializeString(pair)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"leaf","next":null},{"name":"leaf","next":null}]`, text)
}

func TestCycles_IgnoreTwoNodeRing(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	a := &Node{Name: "a"}
	b := &Node{Name: "b", Next: a}
	a.Next = b

	text, err := s.SerializeString(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","next":{"name":"b","next":null}}`, text)
}

// ── Tag fidelity through the pre-pass ────────────────────────────────────────

type tagged struct {
	Renamed  string `json:"renamed"`
	Skipped  string `json:"-"`
	Optional string `json:"optional,omitempty"`
	Bare     string
}

func TestNormalize_HonorsJSONTags(t *testing.T) {
	// CycleIgnore forces the reflective pre-pass for every serialize.
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	text, err := s.SerializeString(tagged{Renamed: "r", Skipped: "hidden", Bare: "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"renamed":"r","Bare":"b"}`, text)

	text, err = s.SerializeString(tagged{Renamed: "r", Optional: "set", Bare: "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"renamed":"r","optional":"set","Bare":"b"}`, text)
}

type quoted struct {
	N int     `json:"n,string"`
	F float64 `json:"f,string"`
	S string  `json:"s,string"`
	B bool    `json:"b,string"`
}

func TestNormalize_StringOption(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	text, err := s.SerializeString(quoted{N: 10, F: 1.5, S: "x", B: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":"10","f":"1.5","s":"\"x\"","b":"true"}`, text)
}

type base struct {
	ID string `json:"id"`
}

type wrapped struct {
	base
	Name string `json:"name"`
}

func TestNormalize_FlattensEmbedded(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	text, err := s.SerializeString(wrapped{base: base{ID: "w1"}, Name: "outer"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w1","name":"outer"}`, text)
}

type shadowBefore struct {
	base
	ID string `json:"id"`
}

type shadowAfter struct {
	ID string `json:"id"`
	base
}

func TestNormalize_ShallowFieldWinsOverPromoted(t *testing.T) {
	// encoding/json gives the shallower field precedence no matter where
	// the embedded struct is declared; the pre-pass must agree.
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	text, err := s.SerializeString(shadowBefore{base: base{ID: "deep"}, ID: "shallow"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"shallow"}`, text)

	text, err = s.SerializeString(shadowAfter{base: base{ID: "deep"}, ID: "shallow"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"shallow"}`, text)
}

type blob struct {
	Data []byte    `json:"data"`
	At   time.Time `json:"at"`
}

func TestNormalize_OpaqueLeaves(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	orig := blob{
		Data: []byte{0x01, 0x02, 0x03},
		At:   time.Date(2026, 2, 28, 17, 50, 0, 0, time.UTC),
	}
	text, err := s.SerializeString(orig)
	require.NoError(t, err)

	var got blob
	require.NoError(t, s.DeserializeString(text, &got))
	assert.Equal(t, orig.Data, got.Data)
	assert.True(t, orig.At.Equal(got.At))
}

func TestNormalize_NilPointersAndMaps(t *testing.T) {
	s := newSer(t, sera.Config{Cycles: sera.CycleIgnore})

	type holder struct {
		P *Node             `json:"p"`
		M map[string]string `json:"m"`
		L []int             `json:"l"`
	}
	text, err := s.SerializeString(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":null,"m":null,"l":null}`, text)
}
