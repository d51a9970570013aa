package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Match(t *testing.T) {
	layouts := Builtin()

	tests := []struct {
		name           string
		entryName      string
		wantLayout     string
		wantProperties map[string]string
		wantMatch      bool
	}{
		{
			name:       "youtube export",
			entryName:  "participant-1234a_source-YouTube_key-abc123.json",
			wantLayout: "youtube",
			wantProperties: map[string]string{
				"participant_id": "1234a",
			},
			wantMatch: true,
		},
		{
			name:       "tiktok export",
			entryName:  "participant-42_source-TikTok_key-xyz.json",
			wantLayout: "tiktok",
			wantProperties: map[string]string{
				"participant_id": "42",
			},
			wantMatch: true,
		},
		{
			name:       "youtube questionnaire",
			entryName:  "participant-1234_source-YouTube_key-1700000000-questionnaire-donation.json",
			wantLayout: "youtube-questionnaire",
			wantProperties: map[string]string{
				"participant_id": "1234",
				"timestamp":      "1700000000",
			},
			wantMatch: true,
		},
		{
			name:       "tiktok questionnaire",
			entryName:  "participant-7_source-TikTok_key-1700000001-questionnaire-donation.json",
			wantLayout: "tiktok-questionnaire",
			wantProperties: map[string]string{
				"participant_id": "7",
				"timestamp":      "1700000001",
			},
			wantMatch: true,
		},
		{
			name:      "nested path still matches",
			entryName: "exports/participant-1_source-YouTube_key-k.json",
			wantLayout: "youtube",
			wantProperties: map[string]string{
				"participant_id": "1",
			},
			wantMatch: true,
		},
		{
			name:      "unrelated entry",
			entryName: "manifest.json",
			wantMatch: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, properties, ok := layouts.Match(tt.entryName)
			require.Equal(t, tt.wantMatch, ok)
			if !tt.wantMatch {
				return
			}
			assert.Equal(t, tt.wantLayout, l.Name)
			for k, v := range tt.wantProperties {
				assert.Equal(t, v, properties[k], "property %s", k)
			}
		})
	}
}

func TestSet_FirstMatchWins(t *testing.T) {
	a, err := NewLayout("first", `%{DATA:id}.json`)
	require.NoError(t, err)
	b, err := NewLayout("second", `%{DATA:id}.json`)
	require.NoError(t, err)

	l, _, ok := NewSet(a, b).Match("x.json")
	require.True(t, ok)
	assert.Equal(t, "first", l.Name)
}

func TestNewLayout_InvalidPattern(t *testing.T) {
	_, err := NewLayout("bad", `%{NOSUCHPATTERN:id}`)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	spec := `layouts:
  - name: survey
    pattern: survey-%{INT:participant_id}.json
`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, set.Layouts, 1)

	l, properties, ok := set.Match("survey-99.json")
	require.True(t, ok)
	assert.Equal(t, "survey", l.Name)
	assert.Equal(t, "99", properties["participant_id"])
}

func TestLoadFile_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layouts:\n  - pattern: x\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSet_Empty(t *testing.T) {
	assert.True(t, (*Set)(nil).Empty())
	assert.True(t, NewSet().Empty())
}
