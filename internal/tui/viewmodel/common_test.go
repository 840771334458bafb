package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveKeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		bindings []KeyBinding
		want     []KeyBinding
	}{
		{
			name: "mixed",
			bindings: []KeyBinding{
				{Key: "/", Description: "search", IsActive: true},
				{Key: "ctrl+x", Description: "clear", IsActive: false},
				{Key: "ctrl+r", Description: "reset all filters", IsActive: true},
			},
			want: []KeyBinding{
				{Key: "/", Description: "search", IsActive: true},
				{Key: "ctrl+r", Description: "reset all filters", IsActive: true},
			},
		},
		{
			name: "none active",
			bindings: []KeyBinding{
				{Key: "ctrl+x", Description: "clear"},
			},
			want: nil,
		},
		{
			name:     "empty",
			bindings: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveKeyBindings(tt.bindings))
		})
	}
}
