package enrichment

import (
	"time"
)

// CommonFields is the provenance metadata attached to every record the
// pipeline produces. The source fields are populated by the artifact source,
// the participant/platform fields by the matched layout.
type CommonFields struct {
	SourceType     string  `json:"source_type"`
	SourceName     string  `json:"source_name,omitempty"`
	SourceLocation *string `json:"source_location,omitempty"`

	EntryName string `json:"entry_name,omitempty"`

	ParticipantId string `json:"participant_id,omitempty"`
	Platform      string `json:"platform,omitempty"`
	// donation timestamp extracted from the entry name, if the layout captures one
	Timestamp string `json:"timestamp,omitempty"`

	CollectedAt time.Time `json:"collected_at,omitempty"`
}

func (c *CommonFields) Clone() *CommonFields {
	if c == nil {
		return nil
	}
	res := *c
	if c.SourceLocation != nil {
		loc := *c.SourceLocation
		res.SourceLocation = &loc
	}
	return &res
}

// AsMap returns the populated fields keyed by column name, for callers that
// join provenance into built tables
func (c *CommonFields) AsMap() map[string]string {
	res := make(map[string]string)
	if c == nil {
		return res
	}
	if c.SourceType != "" {
		res["source_type"] = c.SourceType
	}
	if c.SourceName != "" {
		res["source_name"] = c.SourceName
	}
	if c.SourceLocation != nil {
		res["source_location"] = *c.SourceLocation
	}
	if c.EntryName != "" {
		res["entry_name"] = c.EntryName
	}
	if c.ParticipantId != "" {
		res["participant_id"] = c.ParticipantId
	}
	if c.Platform != "" {
		res["platform"] = c.Platform
	}
	if c.Timestamp != "" {
		res["timestamp"] = c.Timestamp
	}
	if !c.CollectedAt.IsZero() {
		res["collected_at"] = c.CollectedAt.Format(time.RFC3339)
	}
	return res
}
