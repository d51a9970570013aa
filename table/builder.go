// Package table folds a record sequence into a rectangular table with a
// fixed column set.
package table

import (
	"github.com/iancoleman/strcase"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/openddlab/donorpipe/errs"
	"github.com/openddlab/donorpipe/extract"
	"github.com/openddlab/donorpipe/types"
)

// kindUnset marks a column whose value kind has not been observed yet
// (only nulls seen so far)
const kindUnset = types.Kind(-1)

// Builder consumes records one at a time and buffers the resulting rows.
// The column set is the running union of field names across all records that
// pass the steps, so it is only fixed once the stream ends - Build finalizes
// it. A field observed with conflicting value kinds across records is coerced
// to string; nested mappings and sequences stay opaque unless flattening is
// requested.
type Builder struct {
	steps            []Step
	strictEmpty      bool
	flatten          bool
	flattenSeparator string
	snakeCaseColumns bool
	provenance       bool

	rows  []map[string]types.Value
	kinds map[string]types.Kind
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		flattenSeparator: ".",
		kinds:            make(map[string]types.Kind),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add applies the steps to the record and, if it survives, buffers its row
func (b *Builder) Add(rec *types.Record) {
	rec = rec.Clone()
	for _, step := range b.steps {
		var keep bool
		rec, keep = step(rec)
		if !keep || rec == nil {
			return
		}
	}

	cells := make(map[string]types.Value, len(rec.Fields))
	for name, value := range rec.Fields {
		b.addCell(cells, name, value)
	}

	if b.provenance {
		for name, value := range rec.SourceEnrichment.AsMap() {
			b.addProvenanceCell(cells, name, value)
		}
		for name, value := range rec.Properties {
			b.addProvenanceCell(cells, name, value)
		}
	}

	b.rows = append(b.rows, cells)
}

// Collect drains the extractor through the builder and builds the table.
// The extractor's skip count is carried onto the result.
func (b *Builder) Collect(ex *extract.Extractor) (*Table, error) {
	for ex.Next() {
		b.Add(ex.Record())
	}

	t, err := b.Build()
	if err != nil {
		return nil, err
	}
	t.SkipCount = ex.SkipCount()
	return t, nil
}

// Build fixes the column set and materializes the rows. Every row has every
// column; absent fields hold the null sentinel (nil).
func (b *Builder) Build() (*Table, error) {
	if len(b.rows) == 0 && b.strictEmpty {
		return nil, &errs.EmptyResultError{}
	}

	columns := maps.Keys(b.kinds)
	slices.Sort(columns)

	rows := make([]Row, len(b.rows))
	for i, cells := range b.rows {
		row := make(Row, len(columns))
		for _, col := range columns {
			value, ok := cells[col]
			if !ok {
				row[col] = nil
				continue
			}
			row[col] = b.materialize(col, value)
		}
		rows[i] = row
	}

	return &Table{
		Columns: columns,
		Rows:    rows,
	}, nil
}

func (b *Builder) addCell(cells map[string]types.Value, name string, value types.Value) {
	if b.flatten && value.Kind() == types.KindMapping {
		for _, k := range value.MappingKeys() {
			b.addCell(cells, name+b.flattenSeparator+k, value.AsMapping()[k])
		}
		return
	}

	col := b.columnName(name)
	cells[col] = value
	b.observeKind(col, value.Kind())
}

func (b *Builder) addProvenanceCell(cells map[string]types.Value, name, value string) {
	col := b.columnName(name)
	// record fields win on collision
	if _, ok := cells[col]; ok {
		return
	}
	cells[col] = types.String(value)
	b.observeKind(col, types.KindString)
}

func (b *Builder) columnName(name string) string {
	if b.snakeCaseColumns {
		return strcase.ToSnake(name)
	}
	return name
}

// observeKind tracks the settled value kind of a column - a conflict settles
// the column to string
func (b *Builder) observeKind(col string, kind types.Kind) {
	seen, ok := b.kinds[col]
	if !ok {
		if kind == types.KindNull {
			b.kinds[col] = kindUnset
		} else {
			b.kinds[col] = kind
		}
		return
	}
	if kind == types.KindNull || seen == kind {
		return
	}
	if seen == kindUnset {
		b.kinds[col] = kind
		return
	}
	b.kinds[col] = types.KindString
}

func (b *Builder) materialize(col string, value types.Value) any {
	if value.IsNull() {
		return nil
	}
	if b.kinds[col] == types.KindString && value.Kind() != types.KindString {
		return value.CoerceString()
	}
	return value.AsAny()
}
