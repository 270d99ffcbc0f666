package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "lowercase",
			in:       "admin",
			expected: "ADMIN",
		},
		{
			name:     "mixed case with spaces",
			in:       "  Editor ",
			expected: "EDITOR",
		},
		{
			name:     "already normalized",
			in:       "ADMIN",
			expected: "ADMIN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

func TestHasRole(t *testing.T) {
	id := &Identity{Username: "alice", Roles: []string{"Admin", "Editor"}}

	assert.True(t, id.HasRole("Admin"))
	assert.True(t, id.HasRole("admin"), "role comparison is by normalized name")
	assert.False(t, id.HasRole("Viewer"))

	empty := &Identity{Username: "bob"}
	assert.False(t, empty.HasRole("Admin"))
}

func TestContextRoundTrip(t *testing.T) {
	id := &Identity{Username: "alice"}
	ctx := Set(context.Background(), id)

	got, ok := Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = Get(context.Background())
	assert.False(t, ok)
}
