package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/errs"
	"github.com/openddlab/donorpipe/types"
)

func record(t *testing.T, entryName, doc string) *types.Record {
	t.Helper()
	rec, err := types.NewRecord(entryName, []byte(doc))
	require.NoError(t, err)
	return rec
}

func build(t *testing.T, b *Builder, records ...*types.Record) *Table {
	t.Helper()
	for _, rec := range records {
		b.Add(rec)
	}
	res, err := b.Build()
	require.NoError(t, err)
	return res
}

func TestBuilder_UnionColumnsWithNullSentinel(t *testing.T) {
	res := build(t, NewBuilder(),
		record(t, "a.json", `{"x":1}`),
		record(t, "b.json", `{"x":2,"y":"z"}`),
	)

	assert.Equal(t, []string{"x", "y"}, res.Columns)
	require.Equal(t, 2, res.RowCount())
	assert.Equal(t, Row{"x": 1.0, "y": nil}, res.Rows[0])
	assert.Equal(t, Row{"x": 2.0, "y": "z"}, res.Rows[1])
}

func TestBuilder_DisjointFieldSets(t *testing.T) {
	res := build(t, NewBuilder(),
		record(t, "a.json", `{"a":1}`),
		record(t, "b.json", `{"b":2}`),
		record(t, "c.json", `{"c":3}`),
	)

	assert.Equal(t, []string{"a", "b", "c"}, res.Columns)
	assert.Equal(t, 3, res.RowCount())
}

func TestBuilder_IdentityFilterIsCountPreserving(t *testing.T) {
	records := []*types.Record{
		record(t, "a.json", `{"x":1}`),
		record(t, "b.json", `{"x":2}`),
		record(t, "c.json", `{"x":3}`),
	}

	all := build(t, NewBuilder(WithSteps(Filter(func(*types.Record) bool { return true }))), records...)
	assert.Equal(t, len(records), all.RowCount())
}

func TestBuilder_FilterSelectsExactly(t *testing.T) {
	records := []*types.Record{
		record(t, "a.json", `{"x":1}`),
		record(t, "b.json", `{"x":2}`),
		record(t, "c.json", `{"x":3}`),
	}

	big := Filter(func(r *types.Record) bool {
		return r.Fields["x"].AsNumber() > 1
	})
	res := build(t, NewBuilder(WithSteps(big)), records...)

	require.Equal(t, 2, res.RowCount())
	assert.Equal(t, 2.0, res.Rows[0]["x"])
	assert.Equal(t, 3.0, res.Rows[1]["x"])
}

func TestBuilder_StepsApplyInDeclaredOrder(t *testing.T) {
	double := Transform(func(r *types.Record) *types.Record {
		r.Fields["x"] = types.Number(r.Fields["x"].AsNumber() * 2)
		return r
	})
	// filters see the transformed record
	keepBig := Filter(func(r *types.Record) bool {
		return r.Fields["x"].AsNumber() > 3
	})

	res := build(t, NewBuilder(WithSteps(double, keepBig)),
		record(t, "a.json", `{"x":1}`),
		record(t, "b.json", `{"x":2}`),
	)

	require.Equal(t, 1, res.RowCount())
	assert.Equal(t, 4.0, res.Rows[0]["x"])
}

func TestBuilder_StepsDoNotMutateSourceRecord(t *testing.T) {
	rec := record(t, "a.json", `{"x":1}`)

	mutate := Transform(func(r *types.Record) *types.Record {
		r.Fields["x"] = types.String("changed")
		return r
	})
	b := NewBuilder(WithSteps(mutate))
	b.Add(rec)

	assert.Equal(t, types.KindNumber, rec.Fields["x"].Kind())
}

func TestBuilder_KindConflictCoercesToString(t *testing.T) {
	res := build(t, NewBuilder(),
		record(t, "a.json", `{"x":"one"}`),
		record(t, "b.json", `{"x":2}`),
	)

	assert.Equal(t, "one", res.Rows[0]["x"])
	assert.Equal(t, "2", res.Rows[1]["x"])
}

func TestBuilder_NullsDoNotForceCoercion(t *testing.T) {
	res := build(t, NewBuilder(),
		record(t, "a.json", `{"x":null}`),
		record(t, "b.json", `{"x":2}`),
	)

	assert.Nil(t, res.Rows[0]["x"])
	assert.Equal(t, 2.0, res.Rows[1]["x"])
}

func TestBuilder_NestedValuesStayOpaque(t *testing.T) {
	res := build(t, NewBuilder(),
		record(t, "a.json", `{"meta":{"a":1},"tags":["x","y"]}`),
	)

	assert.Equal(t, map[string]any{"a": 1.0}, res.Rows[0]["meta"])
	assert.Equal(t, []any{"x", "y"}, res.Rows[0]["tags"])
}

func TestBuilder_Flatten(t *testing.T) {
	res := build(t, NewBuilder(WithFlatten(".")),
		record(t, "a.json", `{"meta":{"a":1,"b":{"c":"d"}}}`),
	)

	assert.Equal(t, []string{"meta.a", "meta.b.c"}, res.Columns)
	assert.Equal(t, 1.0, res.Rows[0]["meta.a"])
	assert.Equal(t, "d", res.Rows[0]["meta.b.c"])
}

func TestBuilder_SnakeCaseColumns(t *testing.T) {
	res := build(t, NewBuilder(WithSnakeCaseColumns()),
		record(t, "a.json", `{"Video Browsing History":"v","watchHistory":1}`),
	)

	assert.Equal(t, []string{"video_browsing_history", "watch_history"}, res.Columns)
}

func TestBuilder_Provenance(t *testing.T) {
	rec := record(t, "a.json", `{"x":1}`)
	rec.SourceEnrichment = &enrichment.CommonFields{
		EntryName:     "a.json",
		ParticipantId: "42",
		Platform:      "youtube",
	}

	res := build(t, NewBuilder(WithProvenance()), rec)

	assert.Equal(t, "42", res.Rows[0]["participant_id"])
	assert.Equal(t, "youtube", res.Rows[0]["platform"])
	assert.Equal(t, "a.json", res.Rows[0]["entry_name"])
	assert.Equal(t, 1.0, res.Rows[0]["x"])
}

func TestBuilder_ProvenanceDoesNotShadowRecordFields(t *testing.T) {
	rec := record(t, "a.json", `{"platform":"from-record"}`)
	rec.SourceEnrichment = &enrichment.CommonFields{Platform: "youtube"}

	res := build(t, NewBuilder(WithProvenance()), rec)

	assert.Equal(t, "from-record", res.Rows[0]["platform"])
}

func TestBuilder_EmptyResult(t *testing.T) {
	dropAll := Filter(func(*types.Record) bool { return false })

	// default: empty is an observable property, not an error
	b := NewBuilder(WithSteps(dropAll))
	b.Add(record(t, "a.json", `{"x":1}`))
	res, err := b.Build()
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0, res.RowCount())

	// strict mode escalates
	b = NewBuilder(WithSteps(dropAll), WithStrictEmpty())
	b.Add(record(t, "a.json", `{"x":1}`))
	_, err = b.Build()
	assert.True(t, errs.IsEmptyResult(err))
}
