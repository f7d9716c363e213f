package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds every knob of a generation run. Zero values are not
// usable; start from DefaultConfig and override.
type Config struct {
	// Record counts.
	NumUsers         int `mapstructure:"num_users" yaml:"num_users" validate:"gte=1"`
	NumCategories    int `mapstructure:"num_categories" yaml:"num_categories" validate:"gte=1"`
	NumBrands        int `mapstructure:"num_brands" yaml:"num_brands" validate:"gte=1"`
	NumProductImages int `mapstructure:"num_product_images" yaml:"num_product_images" validate:"gte=1"`
	NumProducts      int `mapstructure:"num_products" yaml:"num_products" validate:"gte=1"`
	NumFavorites     int `mapstructure:"num_favorites" yaml:"num_favorites" validate:"gte=0"`
	NumInvoices      int `mapstructure:"num_invoices" yaml:"num_invoices" validate:"gte=1"`
	NumInvoiceItems  int `mapstructure:"num_invoice_items" yaml:"num_invoice_items" validate:"gte=1"`
	NumPayments      int `mapstructure:"num_payments" yaml:"num_payments" validate:"gte=0"`

	// Probabilities, all in [0,1].
	UserEnabledProbability    float64 `mapstructure:"user_enabled_probability" yaml:"user_enabled_probability" validate:"gte=0,lte=1"`
	AdminTOTPProbability      float64 `mapstructure:"admin_totp_probability" yaml:"admin_totp_probability" validate:"gte=0,lte=1"`
	UserTOTPProbability       float64 `mapstructure:"user_totp_probability" yaml:"user_totp_probability" validate:"gte=0,lte=1"`
	SocialProviderProbability float64 `mapstructure:"social_provider_probability" yaml:"social_provider_probability" validate:"gte=0,lte=1"`
	PasswordProbability       float64 `mapstructure:"password_probability" yaml:"password_probability" validate:"gte=0,lte=1"`
	InStockProbability        float64 `mapstructure:"in_stock_probability" yaml:"in_stock_probability" validate:"gte=0,lte=1"`
	LocationOfferProbability  float64 `mapstructure:"location_offer_probability" yaml:"location_offer_probability" validate:"gte=0,lte=1"`
	RentalProbability         float64 `mapstructure:"rental_probability" yaml:"rental_probability" validate:"gte=0,lte=1"`

	// Ranges.
	MinPrice           float64 `mapstructure:"min_price" yaml:"min_price" validate:"gte=0"`
	MaxPrice           float64 `mapstructure:"max_price" yaml:"max_price" validate:"gte=0"`
	MinStock           int     `mapstructure:"min_stock" yaml:"min_stock" validate:"gte=0"`
	MaxStock           int     `mapstructure:"max_stock" yaml:"max_stock" validate:"gte=0"`
	MinInvoiceItems    int     `mapstructure:"min_invoice_items" yaml:"min_invoice_items" validate:"gte=1"`
	MaxInvoiceItems    int     `mapstructure:"max_invoice_items" yaml:"max_invoice_items" validate:"gte=1"`
	MinQuantityPerItem int     `mapstructure:"min_quantity_per_item" yaml:"min_quantity_per_item" validate:"gte=1"`
	MaxQuantityPerItem int     `mapstructure:"max_quantity_per_item" yaml:"max_quantity_per_item" validate:"gte=1"`

	// OutputDir receives the nine CSV files and any error report.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" validate:"required"`

	// Seed drives every random draw of a run. Identical seed and
	// config produce byte-identical output files.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// ReferenceTime anchors all generated dates (RFC 3339). Generated
	// timestamps never use the wall clock, so runs are reproducible.
	ReferenceTime string `mapstructure:"reference_time" yaml:"reference_time" validate:"required"`
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		NumUsers:         1000,
		NumCategories:    1000,
		NumBrands:        200,
		NumProductImages: 500,
		NumProducts:      1000,
		NumFavorites:     2000,
		NumInvoices:      800,
		NumInvoiceItems:  1500,
		NumPayments:      800,

		UserEnabledProbability:    0.95,
		AdminTOTPProbability:      0.15,
		UserTOTPProbability:       0.02,
		SocialProviderProbability: 0.25,
		PasswordProbability:       0.95,
		InStockProbability:        0.85,
		LocationOfferProbability:  0.10,
		RentalProbability:         0.05,

		MinPrice:           1.99,
		MaxPrice:           9999.99,
		MinStock:           0,
		MaxStock:           1000,
		MinInvoiceItems:    1,
		MaxInvoiceItems:    10,
		MinQuantityPerItem: 1,
		MaxQuantityPerItem: 5,

		OutputDir:     "output",
		Seed:          42,
		ReferenceTime: "2025-01-01T00:00:00Z",
	}
}

// Validate checks field bounds and cross-field ordering. It returns an
// error wrapping ErrInvalidConfig on the first problem found.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.MaxPrice < c.MinPrice {
		return fmt.Errorf("%w: max_price %v below min_price %v", ErrInvalidConfig, c.MaxPrice, c.MinPrice)
	}
	if c.MaxStock < c.MinStock {
		return fmt.Errorf("%w: max_stock %d below min_stock %d", ErrInvalidConfig, c.MaxStock, c.MinStock)
	}
	if c.MaxInvoiceItems < c.MinInvoiceItems {
		return fmt.Errorf("%w: max_invoice_items %d below min_invoice_items %d", ErrInvalidConfig, c.MaxInvoiceItems, c.MinInvoiceItems)
	}
	if c.MaxQuantityPerItem < c.MinQuantityPerItem {
		return fmt.Errorf("%w: max_quantity_per_item %d below min_quantity_per_item %d", ErrInvalidConfig, c.MaxQuantityPerItem, c.MinQuantityPerItem)
	}
	if _, err := time.Parse(time.RFC3339, c.ReferenceTime); err != nil {
		return fmt.Errorf("%w: reference_time: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Reference returns the parsed reference time. Validate must have
// passed; an unparseable value falls back to the default anchor.
func (c Config) Reference() time.Time {
	t, err := time.Parse(time.RFC3339, c.ReferenceTime)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, DefaultConfig().ReferenceTime)
	}
	return t.UTC()
}
