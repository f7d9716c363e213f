// Package gen produces the nine synthetic tables. Every generator is a
// pure function of (count, config, upstream tables) drawing all
// randomness from a single injected Source, so a fixed seed yields
// byte-identical output across runs.
package gen

import (
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/toolshop/seedgen/internal/ident"
	"github.com/toolshop/seedgen/pkg/types"
)

// timestampLayout is the persisted format for created_at/updated_at.
const timestampLayout = "2006-01-02 15:04:05"

// dateLayout is the persisted format for date-only fields.
const dateLayout = "2006-01-02"

// Source bundles the seeded faker, the identifier factory, the config,
// and the reference clock for one generation run. It is not safe for
// concurrent use; the pipeline is single-threaded by design.
type Source struct {
	cfg types.Config
	f   *gofakeit.Faker
	rng *rand.Rand
	ids *ident.Factory
	ref time.Time
}

// NewSource seeds a Source from cfg. Two Sources built from the same
// config produce identical draw sequences.
func NewSource(cfg types.Config) *Source {
	f := gofakeit.New(cfg.Seed)
	return &Source{
		cfg: cfg,
		f:   f,
		rng: f.Rand,
		ids: ident.NewFactory(f.Rand),
		ref: cfg.Reference(),
	}
}

// NewID issues a run-unique record identifier.
func (s *Source) NewID() string { return s.ids.NewID() }

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool { return s.rng.Float64() < p }

// Between returns an int in [min, max].
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// PriceBetween returns a two-decimal price in [min, max].
func (s *Source) PriceBetween(min, max float64) decimal.Decimal {
	v := min + s.rng.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}

// Weighted picks an index into weights proportionally to each weight.
func (s *Source) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// Pick returns a random element of items.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// Stamp renders t in the persisted timestamp format.
func Stamp(t time.Time) string { return t.UTC().Format(timestampLayout) }

// refStamp is the constant creation timestamp used by tables whose
// rows are all minted "now".
func (s *Source) refStamp() string { return Stamp(s.ref) }

// timeBetween returns a time in [start, end].
func (s *Source) timeBetween(start, end time.Time) time.Time {
	return s.f.DateRange(start, end)
}

// createdUpdated returns a created_at within the two years before the
// reference clock and an updated_at between created_at and now.
func (s *Source) createdUpdated() (string, string) {
	created := s.timeBetween(s.ref.AddDate(-2, 0, 0), s.ref)
	updated := s.timeBetween(created, s.ref)
	return Stamp(created), Stamp(updated)
}

// hexToken returns n lowercase hex characters.
func (s *Source) hexToken(n int) string {
	const hex = "0123456789abcdef"
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(hex[s.rng.Intn(len(hex))])
	}
	return b.String()
}

// digits returns an n-digit numeric string with a nonzero first digit.
func (s *Source) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + s.rng.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + s.rng.Intn(10)))
	}
	return b.String()
}
