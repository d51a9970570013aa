// Package replacement applies a participant replacement roster: donations
// from a replacement participant are re-identified as the participant they
// replace, and donations superseded by a replacement are dropped.
package replacement

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/openddlab/donorpipe/logging"
	"github.com/openddlab/donorpipe/table"
	"github.com/openddlab/donorpipe/types"
)

type rosterRow struct {
	id       string
	replaces string
	// platform name -> whether the replacement is active for that platform
	platforms map[string]bool
}

// Roster is the parsed replacement table. The CSV has columns id, replaces,
// and one 0/1 column per platform.
type Roster struct {
	rows map[string]*rosterRow
}

// Load reads a roster from a CSV file
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replacement file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a roster from CSV data
func Parse(r io.Reader) (*Roster, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse replacement csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("replacement csv has no header row")
	}

	header := records[0]
	idCol, replacesCol := -1, -1
	for i, name := range header {
		switch name {
		case "id":
			idCol = i
		case "replaces":
			replacesCol = i
		}
	}
	if idCol < 0 || replacesCol < 0 {
		return nil, fmt.Errorf("replacement csv requires 'id' and 'replaces' columns")
	}

	res := &Roster{rows: make(map[string]*rosterRow, len(records)-1)}
	for _, record := range records[1:] {
		row := &rosterRow{
			id:        record[idCol],
			replaces:  record[replacesCol],
			platforms: make(map[string]bool),
		}
		for i, name := range header {
			if i == idCol || i == replacesCol {
				continue
			}
			row.platforms[name] = record[i] != "0" && record[i] != ""
		}
		res.rows[row.id] = row
	}
	return res, nil
}

// Resolve decides what happens to a donation from the given participant on
// the given platform: keep=false drops it, otherwise the returned id is the
// (possibly replaced) participant id.
func (r *Roster) Resolve(participantId, platform string) (id string, keep bool) {
	if row, ok := r.rows[participantId]; ok {
		// participant is a replacement
		if !row.platforms[platform] {
			slog.Info("skipping replacement donation",
				"participant_id", participantId, "platform", platform)
			return "", false
		}
		slog.Info(fmt.Sprintf("replacing %s with %s",
			logging.MaskParticipant(row.replaces), logging.MaskParticipant(participantId)),
			"platform", platform)
		return row.replaces, true
	}

	// is the participant replaced by someone for this platform?
	for _, row := range r.rows {
		if row.replaces == participantId && row.platforms[platform] {
			slog.Info("skipping replaced donation",
				"participant_id", participantId, "platform", platform)
			return "", false
		}
	}

	return participantId, true
}

// Step returns a table step applying the roster to each record, using the
// participant_id and platform provenance set by the extractor. Records with
// no participant provenance pass through unchanged.
func Step(r *Roster) table.Step {
	return func(rec *types.Record) (*types.Record, bool) {
		participantId := rec.Property("participant_id")
		if participantId == "" {
			return rec, true
		}

		id, keep := r.Resolve(participantId, rec.Property("platform"))
		if !keep {
			return nil, false
		}
		if rec.SourceEnrichment != nil {
			rec.SourceEnrichment.ParticipantId = id
		} else {
			rec.Properties["participant_id"] = id
		}
		return rec, true
	}
}
