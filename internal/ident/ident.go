// Package ident generates the fixed-length record identifiers and the
// unique URL slugs used across all generated tables.
package ident

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gosimple/slug"
)

// Alphabet is the 32-symbol identifier alphabet: digits and uppercase
// letters excluding I, L, O, and U.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// IDLength is the fixed identifier length.
const IDLength = 26

// Factory issues identifiers unique within a generation run. All
// randomness comes from the injected source; a fixed seed reproduces
// the same identifier sequence. Single-writer only.
type Factory struct {
	rng  *rand.Rand
	used map[string]struct{}
}

// NewFactory creates a Factory drawing from rng.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{
		rng:  rng,
		used: make(map[string]struct{}),
	}
}

// NewID returns a fresh IDLength-character identifier, retrying until
// it does not collide with any identifier issued earlier in the run.
func (f *Factory) NewID() string {
	var b strings.Builder
	b.Grow(IDLength)
	for {
		b.Reset()
		for i := 0; i < IDLength; i++ {
			b.WriteByte(Alphabet[f.rng.Intn(len(Alphabet))])
		}
		id := b.String()
		if _, taken := f.used[id]; taken {
			continue
		}
		f.used[id] = struct{}{}
		return id
	}
}

// Count returns how many identifiers have been issued.
func (f *Factory) Count() int { return len(f.used) }

// SlugSet tracks slugs already issued for one table.
type SlugSet map[string]struct{}

// NewSlugSet returns an empty slug registry.
func NewSlugSet() SlugSet { return make(SlugSet) }

// Unique lower-kebab-cases name and, if the result is taken, appends
// -1, -2, ... until free. The returned slug is registered in the set.
func (s SlugSet) Unique(name string) string {
	base := slug.Make(name)
	if _, taken := s[base]; !taken {
		s[base] = struct{}{}
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if _, taken := s[candidate]; !taken {
			s[candidate] = struct{}{}
			return candidate
		}
	}
}
