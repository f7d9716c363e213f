// Config loading for the seedgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/toolshop/seedgen/pkg/types"
)

const (
	configFileName = "seedgen"
	configFileType = "yaml"
	configFileExt  = "seedgen.yaml"
)

// loadConfig builds the run configuration. Defaults come from
// types.DefaultConfig, overlaid by the config file (--config, or
// seedgen.yaml in the working directory if present), then by the
// --out and --seed flags when set.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	v := viper.New()
	setDefaults(v)

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
			// No seedgen.yaml in the working directory; defaults apply.
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cmd.Flags().Changed("out") {
		cfg.OutputDir = flagOut
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	return cfg, nil
}

// setDefaults registers every config key with its default value so a
// partial config file only overrides what it names.
func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()

	v.SetDefault("num_users", def.NumUsers)
	v.SetDefault("num_categories", def.NumCategories)
	v.SetDefault("num_brands", def.NumBrands)
	v.SetDefault("num_product_images", def.NumProductImages)
	v.SetDefault("num_products", def.NumProducts)
	v.SetDefault("num_favorites", def.NumFavorites)
	v.SetDefault("num_invoices", def.NumInvoices)
	v.SetDefault("num_invoice_items", def.NumInvoiceItems)
	v.SetDefault("num_payments", def.NumPayments)

	v.SetDefault("user_enabled_probability", def.UserEnabledProbability)
	v.SetDefault("admin_totp_probability", def.AdminTOTPProbability)
	v.SetDefault("user_totp_probability", def.UserTOTPProbability)
	v.SetDefault("social_provider_probability", def.SocialProviderProbability)
	v.SetDefault("password_probability", def.PasswordProbability)
	v.SetDefault("in_stock_probability", def.InStockProbability)
	v.SetDefault("location_offer_probability", def.LocationOfferProbability)
	v.SetDefault("rental_probability", def.RentalProbability)

	v.SetDefault("min_price", def.MinPrice)
	v.SetDefault("max_price", def.MaxPrice)
	v.SetDefault("min_stock", def.MinStock)
	v.SetDefault("max_stock", def.MaxStock)
	v.SetDefault("min_invoice_items", def.MinInvoiceItems)
	v.SetDefault("max_invoice_items", def.MaxInvoiceItems)
	v.SetDefault("min_quantity_per_item", def.MinQuantityPerItem)
	v.SetDefault("max_quantity_per_item", def.MaxQuantityPerItem)

	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("reference_time", def.ReferenceTime)
}

// ensureDefaultConfigFile writes seedgen.yaml with documented defaults
// if the file does not already exist.
func ensureDefaultConfigFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}
	return true, nil
}

// defaultConfigYAML renders the default configuration as YAML.
func defaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	header := []byte("# Seedgen configuration. All keys are optional;\n# missing keys fall back to these defaults.\n")
	return append(header, data...), nil
}
