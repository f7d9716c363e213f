package ident

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

func TestNewIDFormat(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	for i := 0; i < 500; i++ {
		id := f.NewID()
		assert.Len(t, id, IDLength)
		assert.Regexp(t, idPattern, id)
	}
}

func TestNewIDUnique(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(7)))
	seen := make(map[string]struct{})
	for i := 0; i < 5000; i++ {
		id := f.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Equal(t, 5000, f.Count())
}

func TestNewIDDeterministic(t *testing.T) {
	a := NewFactory(rand.New(rand.NewSource(42)))
	b := NewFactory(rand.New(rand.NewSource(42)))
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NewID(), b.NewID())
	}
}

func TestSlugSetUnique(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "distinct names stay plain",
			input: []string{"Hand Tools", "Power Tools"},
			want:  []string{"hand-tools", "power-tools"},
		},
		{
			name:  "collisions get numeric suffixes",
			input: []string{"Pliers", "Pliers", "Pliers"},
			want:  []string{"pliers", "pliers-1", "pliers-2"},
		},
		{
			name:  "kebab-casing collides with spaced name",
			input: []string{"Tool Belts", "tool-belts"},
			want:  []string{"tool-belts", "tool-belts-1"},
		},
		{
			name:  "ampersand substituted",
			input: []string{"Black & Decker"},
			want:  []string{"black-and-decker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlugSet()
			for i, name := range tt.input {
				assert.Equal(t, tt.want[i], s.Unique(name))
			}
		})
	}
}
