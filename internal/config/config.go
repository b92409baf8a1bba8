// Package config loads and saves the bogie.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bogie-dev/bogie/internal/model"
)

// Store and configuration file names inside the data directory.
const (
	FileName        = "bogie.yaml"
	RulesFile       = "rules.yaml"
	LedgerFile      = "expenses.csv"
	QueueFile       = "flagged.json"
	MerchantMapFile = "merchant_map.json"
	DedupFile       = ".dedup_keys"
)

// Config represents the top-level bogie.yaml configuration.
type Config struct {
	// KnownBeneficiaries maps a fragment of a transfer beneficiary name
	// to a category. Matching transfers are categorized without review.
	KnownBeneficiaries map[string]string `yaml:"known_beneficiaries,omitempty"`
	Report             ReportConfig      `yaml:"report"`
}

// ReportConfig controls the cash-flow report.
type ReportConfig struct {
	Currency string      `yaml:"currency"`
	Rates    RatesConfig `yaml:"rates"`
}

// RatesConfig is a static exchange-rate snapshot, not a live feed. AsOf
// records when the snapshot was taken.
type RatesConfig struct {
	AsOf   string             `yaml:"as_of"`
	PerUSD map[string]float64 `yaml:"per_usd"` // units of currency per 1 USD
}

// Load reads a bogie.yaml file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Currency: "USD",
			Rates: RatesConfig{
				AsOf: "2026-06-01",
				PerUSD: map[string]float64{
					"GEL": 2.70,
					"RUB": 78.0,
					"EUR": 0.93,
					"GBP": 0.79,
				},
			},
		},
	}
}

// Beneficiaries resolves the configured beneficiary table into canonical
// categories, dropping entries with unknown category names.
func (c *Config) Beneficiaries() map[string]model.Category {
	out := make(map[string]model.Category, len(c.KnownBeneficiaries))
	for name, raw := range c.KnownBeneficiaries {
		category, ok := model.ParseCategory(raw)
		if !ok {
			log.Warn("ignoring beneficiary with unknown category", "beneficiary", name, "category", raw)
			continue
		}
		out[name] = category
	}
	return out
}
