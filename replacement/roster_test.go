package replacement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/types"
)

const rosterCSV = `id,replaces,youtube,tiktok
900,100,1,0
901,101,1,1
`

func testRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := Parse(strings.NewReader(rosterCSV))
	require.NoError(t, err)
	return r
}

func TestRoster_Resolve(t *testing.T) {
	r := testRoster(t)

	tests := []struct {
		name          string
		participantId string
		platform      string
		wantId        string
		wantKeep      bool
	}{
		{
			name:          "replacement active - donation re-identified",
			participantId: "900",
			platform:      "youtube",
			wantId:        "100",
			wantKeep:      true,
		},
		{
			name:          "replacement inactive for platform - dropped",
			participantId: "900",
			platform:      "tiktok",
			wantKeep:      false,
		},
		{
			name:          "replaced participant - dropped",
			participantId: "100",
			platform:      "youtube",
			wantKeep:      false,
		},
		{
			name:          "replaced on other platform only - kept",
			participantId: "100",
			platform:      "tiktok",
			wantId:        "100",
			wantKeep:      true,
		},
		{
			name:          "unlisted participant - kept as-is",
			participantId: "555",
			platform:      "youtube",
			wantId:        "555",
			wantKeep:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, keep := r.Resolve(tt.participantId, tt.platform)
			require.Equal(t, tt.wantKeep, keep)
			if tt.wantKeep {
				assert.Equal(t, tt.wantId, id)
			}
		})
	}
}

func TestParse_MissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("id,youtube\n1,1\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestStep(t *testing.T) {
	r := testRoster(t)
	step := Step(r)

	rec := &types.Record{
		EntryName:  "a.json",
		Fields:     map[string]types.Value{},
		Properties: map[string]string{},
		SourceEnrichment: &enrichment.CommonFields{
			ParticipantId: "900",
			Platform:      "youtube",
		},
	}
	out, keep := step(rec)
	require.True(t, keep)
	assert.Equal(t, "100", out.SourceEnrichment.ParticipantId)

	rec.SourceEnrichment.ParticipantId = "100"
	_, keep = step(rec)
	assert.False(t, keep)
}

func TestStep_NoParticipantPassesThrough(t *testing.T) {
	rec := &types.Record{
		EntryName:  "a.json",
		Fields:     map[string]types.Value{},
		Properties: map[string]string{},
	}

	out, keep := Step(testRoster(t))(rec)
	require.True(t, keep)
	assert.Same(t, rec, out)
}
