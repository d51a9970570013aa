// Package extract turns an archive of per-record JSON files into a lazy
// sequence of records.
package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/openddlab/donorpipe/archive"
	"github.com/openddlab/donorpipe/constants"
	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/errs"
	"github.com/openddlab/donorpipe/events"
	"github.com/openddlab/donorpipe/layout"
	"github.com/openddlab/donorpipe/observable"
	"github.com/openddlab/donorpipe/types"
)

// Extractor yields one record per matching archive entry, in archive entry
// order. It is single-pass and not restartable - create a new Extractor to
// consume the archive again.
//
// Usage follows the scanner idiom:
//
//	ex := extract.New(ctx, a)
//	for ex.Next() {
//		rec := ex.Record()
//		...
//	}
//	skipped := ex.SkipCount()
//
// Entries whose name does not match the configured extensions (or the
// configured layouts) are skipped silently. Entries that fail to parse are
// skipped, counted and reported via SkipCount/Skipped - they never abort the
// sequence.
type Extractor struct {
	observable.Base

	ctx         context.Context
	entries     []*archive.Entry
	extensions  types.ExtensionLookup
	layouts     *layout.Set
	enrich      *enrichment.CommonFields
	executionId string

	idx     int
	current *types.Record
	skipped []*errs.MalformedRecordError
}

func New(ctx context.Context, a *archive.Archive, opts ...Option) *Extractor {
	e := &Extractor{
		ctx:        ctx,
		entries:    a.Entries(),
		extensions: types.NewExtensionLookup([]string{constants.JsonExtension, constants.GzipJsonExtension}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Next advances to the next record, returning false when the sequence is
// exhausted or the context is cancelled
func (e *Extractor) Next() bool {
	e.current = nil

	for e.idx < len(e.entries) {
		if e.ctx.Err() != nil {
			return false
		}

		entry := e.entries[e.idx]
		e.idx++

		if !e.extensions.IsValid(entry.Name) {
			continue
		}

		var properties map[string]string
		var matched *layout.Layout
		if !e.layouts.Empty() {
			var ok bool
			matched, properties, ok = e.layouts.Match(entry.Name)
			if !ok {
				slog.Debug("entry matches no layout, skipping", "entry", entry.Name)
				continue
			}
		}

		rec, err := e.loadRecord(entry)
		if err != nil {
			e.skip(entry.Name, err)
			continue
		}

		e.decorate(rec, matched, properties)
		e.current = rec

		if err := e.NotifyObservers(e.ctx, &events.RecordExtracted{Base: events.NewBase(e.executionId), EntryName: entry.Name}); err != nil {
			slog.Warn("failed to notify observers of extracted record", "error", err)
		}
		return true
	}
	return false
}

// Record returns the record produced by the last successful call to Next
func (e *Extractor) Record() *types.Record {
	return e.current
}

// SkipCount returns the number of malformed records skipped so far
func (e *Extractor) SkipCount() int {
	return len(e.skipped)
}

// Skipped returns the per-record errors for all skipped records
func (e *Extractor) Skipped() []*errs.MalformedRecordError {
	return e.skipped
}

func (e *Extractor) loadRecord(entry *archive.Entry) (*types.Record, error) {
	data, err := archive.LoaderFor(entry.Name).Load(entry)
	if err != nil {
		return nil, err
	}
	return types.NewRecord(entry.Name, data)
}

func (e *Extractor) decorate(rec *types.Record, matched *layout.Layout, properties map[string]string) {
	fields := e.enrich.Clone()
	if fields == nil {
		fields = &enrichment.CommonFields{}
	}
	fields.EntryName = rec.EntryName

	for k, v := range properties {
		k, v = strings.ToLower(k), strings.ToLower(v)
		switch k {
		case "participant_id":
			fields.ParticipantId = v
		case "timestamp":
			fields.Timestamp = v
		default:
			rec.Properties[k] = v
		}
	}
	if matched != nil {
		fields.Platform = matched.Name
	}
	rec.SourceEnrichment = fields
}

func (e *Extractor) skip(entryName string, err error) {
	recErr := &errs.MalformedRecordError{EntryName: entryName, Err: err}
	e.skipped = append(e.skipped, recErr)

	slog.Warn("skipping malformed record", "entry", entryName, "error", err)
	if err := e.NotifyObservers(e.ctx, &events.RecordSkipped{Base: events.NewBase(e.executionId), EntryName: entryName, Err: recErr}); err != nil {
		slog.Warn("failed to notify observers of skipped record", "error", err)
	}
}
