package types

import (
	"encoding/json"
	"fmt"

	"github.com/openddlab/donorpipe/enrichment"
)

// Record is one parsed JSON document plus its provenance. Every Record
// traces back to exactly one archive entry.
type Record struct {
	// the archive entry this record was parsed from
	EntryName string
	// the parsed document - a mapping from field name to Value
	Fields map[string]Value
	// entry-name properties captured by the matched layout
	Properties map[string]string

	SourceEnrichment *enrichment.CommonFields
}

// NewRecord parses data as a JSON document and wraps it with provenance.
// A top-level value which is not an object is exposed under a single "value"
// field so that every record folds into row form.
func NewRecord(entryName string, data []byte) (*Record, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}

	res := &Record{
		EntryName:  entryName,
		Properties: make(map[string]string),
	}

	switch doc := FromAny(raw); doc.Kind() {
	case KindMapping:
		res.Fields = doc.AsMapping()
	default:
		res.Fields = map[string]Value{"value": doc}
	}
	return res, nil
}

// Clone returns a copy sharing no mutable state with the original - transform
// steps receive clones so a step cannot corrupt the upstream record
func (r *Record) Clone() *Record {
	res := &Record{
		EntryName:        r.EntryName,
		Fields:           make(map[string]Value, len(r.Fields)),
		Properties:       make(map[string]string, len(r.Properties)),
		SourceEnrichment: r.SourceEnrichment.Clone(),
	}
	for k, v := range r.Fields {
		res.Fields[k] = v
	}
	for k, v := range r.Properties {
		res.Properties[k] = v
	}
	return res
}

// Property returns the named layout capture, falling back to enrichment
// fields for participant_id and platform
func (r *Record) Property(name string) string {
	if v, ok := r.Properties[name]; ok {
		return v
	}
	if r.SourceEnrichment == nil {
		return ""
	}
	switch name {
	case "participant_id":
		return r.SourceEnrichment.ParticipantId
	case "platform":
		return r.SourceEnrichment.Platform
	}
	return ""
}
