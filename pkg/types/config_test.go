package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero users rejected",
			mutate:  func(c *Config) { c.NumUsers = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative favorites rejected",
			mutate:  func(c *Config) { c.NumFavorites = -1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "probability above one rejected",
			mutate:  func(c *Config) { c.InStockProbability = 1.5 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative probability rejected",
			mutate:  func(c *Config) { c.PasswordProbability = -0.1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "max price below min price rejected",
			mutate:  func(c *Config) { c.MinPrice = 100; c.MaxPrice = 50 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "max stock below min stock rejected",
			mutate:  func(c *Config) { c.MinStock = 10; c.MaxStock = 5 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "max items below min items rejected",
			mutate:  func(c *Config) { c.MinInvoiceItems = 5; c.MaxInvoiceItems = 2 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "max quantity below min quantity rejected",
			mutate:  func(c *Config) { c.MinQuantityPerItem = 4; c.MaxQuantityPerItem = 1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "empty output dir rejected",
			mutate:  func(c *Config) { c.OutputDir = "" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unparseable reference time rejected",
			mutate:  func(c *Config) { c.ReferenceTime = "yesterday" },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigReference(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReferenceTime = "2024-06-15T12:00:00Z"

	ref := cfg.Reference()
	require.Equal(t, time.UTC, ref.Location())
	assert.Equal(t, 2024, ref.Year())
	assert.Equal(t, time.June, ref.Month())
	assert.Equal(t, 15, ref.Day())
}

func TestConfigReferenceFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReferenceTime = "not-a-time"

	want, err := time.Parse(time.RFC3339, DefaultConfig().ReferenceTime)
	require.NoError(t, err)
	assert.True(t, cfg.Reference().Equal(want))
}
