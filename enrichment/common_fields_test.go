package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonFields_AsMap(t *testing.T) {
	loc := "exports/data.zip"

	tests := []struct {
		name   string
		fields *CommonFields
		want   map[string]string
	}{
		{
			name:   "nil",
			fields: nil,
			want:   map[string]string{},
		},
		{
			name: "only populated fields appear",
			fields: &CommonFields{
				SourceType: "azure_blob",
				EntryName:  "a.json",
			},
			want: map[string]string{
				"source_type": "azure_blob",
				"entry_name":  "a.json",
			},
		},
		{
			name: "all fields",
			fields: &CommonFields{
				SourceType:     "azure_blob",
				SourceName:     "donations",
				SourceLocation: &loc,
				EntryName:      "a.json",
				ParticipantId:  "42",
				Platform:       "youtube",
				Timestamp:      "1700000000",
			},
			want: map[string]string{
				"source_type":     "azure_blob",
				"source_name":     "donations",
				"source_location": "exports/data.zip",
				"entry_name":      "a.json",
				"participant_id":  "42",
				"platform":        "youtube",
				"timestamp":       "1700000000",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fields.AsMap())
		})
	}
}

func TestCommonFields_Clone(t *testing.T) {
	loc := "a"
	c := &CommonFields{SourceType: "azure_blob", SourceLocation: &loc}

	clone := c.Clone()
	*clone.SourceLocation = "b"
	clone.SourceType = "changed"

	assert.Equal(t, "a", *c.SourceLocation)
	assert.Equal(t, "azure_blob", c.SourceType)

	assert.Nil(t, (*CommonFields)(nil).Clone())
}
