package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny_Kinds(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"null", nil, KindNull},
		{"bool", true, KindBool},
		{"number", 1.5, KindNumber},
		{"string", "z", KindString},
		{"sequence", []any{1.0, "a"}, KindSequence},
		{"mapping", map[string]any{"a": 1.0}, KindMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAny(tt.in).Kind())
		})
	}
}

func TestValue_RoundTrip(t *testing.T) {
	in := map[string]any{
		"a": 1.0,
		"b": []any{true, nil, "x"},
		"c": map[string]any{"d": "e"},
	}
	assert.Equal(t, in, FromAny(in).AsAny())
}

func TestValue_CoerceString(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"null", Null(), ""},
		{"bool", Bool(true), "true"},
		{"integral number", Number(2), "2"},
		{"fractional number", Number(2.5), "2.5"},
		{"string", String("z"), "z"},
		{"sequence", Sequence([]Value{Number(1), String("a")}), `[1,"a"]`},
		{"mapping", Mapping(map[string]Value{"a": Number(1)}), `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.CoerceString())
		})
	}
}

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord("a.json", []byte(`{"x":1,"y":"z"}`))
	require.NoError(t, err)

	assert.Equal(t, "a.json", rec.EntryName)
	assert.Equal(t, KindNumber, rec.Fields["x"].Kind())
	assert.Equal(t, "z", rec.Fields["y"].AsString())
}

func TestNewRecord_NonObjectDocument(t *testing.T) {
	rec, err := NewRecord("a.json", []byte(`[1,2]`))
	require.NoError(t, err)

	require.Contains(t, rec.Fields, "value")
	assert.Equal(t, KindSequence, rec.Fields["value"].Kind())
}

func TestNewRecord_Malformed(t *testing.T) {
	_, err := NewRecord("a.json", []byte(`{not json`))
	assert.Error(t, err)
}

func TestRecord_CloneIsolation(t *testing.T) {
	rec, err := NewRecord("a.json", []byte(`{"x":1}`))
	require.NoError(t, err)
	rec.Properties["key"] = "v"

	clone := rec.Clone()
	clone.Fields["x"] = String("changed")
	clone.Properties["key"] = "changed"

	assert.Equal(t, KindNumber, rec.Fields["x"].Kind())
	assert.Equal(t, "v", rec.Properties["key"])
}

func TestExtensionLookup(t *testing.T) {
	l := NewExtensionLookup([]string{".json", ".json.gz"})

	assert.True(t, l.IsValid("a.json"))
	assert.True(t, l.IsValid("A.JSON"))
	assert.True(t, l.IsValid("a.json.gz"))
	assert.False(t, l.IsValid("manifest.txt"))
	assert.False(t, l.IsValid("a.gz"))

	// empty lookup matches everything
	assert.True(t, NewExtensionLookup(nil).IsValid("anything"))
}
