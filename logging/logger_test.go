package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskParticipant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234a", "1***a"},
		{"42", "**"},
		{"7", "*"},
		{"", ""},
		{"ab", "**"},
		{"abc", "a*c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskParticipant(tt.in))
		})
	}
}
