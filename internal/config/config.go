package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"property-advisor/internal/invest"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	// Optional: load market rate assumptions from a separate YAML
	// (e.g. examples/markets/*.yaml). If both MarketFile and Market are
	// provided, Market overrides MarketFile.
	MarketFile string           `yaml:"market_file"`
	Market     MarketConfig     `yaml:"market"`
	Prediction PredictionConfig `yaml:"prediction"`
	History    HistoryConfig    `yaml:"history"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// MarketConfig carries the engine rate assumptions. Rates are pointers so a
// preset can set a rate to exactly zero without it reading as "unset".
type MarketConfig struct {
	Name             string   `yaml:"name"`
	AppreciationRate *float64 `yaml:"appreciation_rate"`
	VacancyRate      *float64 `yaml:"vacancy_rate"`
	MaintenanceRate  *float64 `yaml:"maintenance_rate"`
}

// PredictionConfig points at the external price-prediction service.
type PredictionConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type HistoryConfig struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If market_file is set, load it and merge in any explicit overrides
	// from c.Market.
	if c.MarketFile != "" {
		marketPath := c.MarketFile
		if !filepath.IsAbs(marketPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), marketPath)
			if _, err := os.Stat(cand); err == nil {
				marketPath = cand
			}
		}
		loaded, err := LoadMarketFile(marketPath)
		if err != nil {
			return nil, err
		}
		c.Market = MergeMarket(loaded, c.Market)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate rates by constructing an engine.
	if _, err := invest.New(c.Market.ToRates()); err != nil {
		return fmt.Errorf("market config invalid: %w", err)
	}
	if c.Prediction.TimeoutSeconds < 0 {
		return errors.New("prediction.timeout_seconds must be >= 0")
	}
	return nil
}

// ToRates resolves the market config against the engine defaults.
func (m MarketConfig) ToRates() invest.Rates {
	rates := invest.DefaultRates()
	if m.AppreciationRate != nil {
		rates.AppreciationRate = *m.AppreciationRate
	}
	if m.VacancyRate != nil {
		rates.VacancyRate = *m.VacancyRate
	}
	if m.MaintenanceRate != nil {
		rates.MaintenanceRate = *m.MaintenanceRate
	}
	return rates
}

type marketFileWrapper struct {
	Market MarketConfig `yaml:"market"`
}

// LoadMarketFile reads a market preset YAML (the files under examples/markets/).
func LoadMarketFile(path string) (MarketConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return MarketConfig{}, err
	}
	var w marketFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return MarketConfig{}, err
	}
	return w.Market, nil
}

// MergeMarket overlays set fields from override onto base. This is used when
// loading a market file and then applying overrides from the config or the
// request.
func MergeMarket(base, override MarketConfig) MarketConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.AppreciationRate != nil {
		out.AppreciationRate = override.AppreciationRate
	}
	if override.VacancyRate != nil {
		out.VacancyRate = override.VacancyRate
	}
	if override.MaintenanceRate != nil {
		out.MaintenanceRate = override.MaintenanceRate
	}
	return out
}
