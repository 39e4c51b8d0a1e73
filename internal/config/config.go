// Package config loads the YAML configuration for the planning service: the
// HTTP bind address, fallback fuel prices (used by the CLI and the
// /productionplan/defaults endpoint), and the optional domain-stack
// backends (history store DSN, tracing exporter).
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"powerplant-dispatch/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Fuels   FuelDefaults  `yaml:"fuels"`
	History HistoryConfig `yaml:"history"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FuelDefaults is the config-file fallback fuel vector, used when a request
// doesn't fully specify one and by the /productionplan/defaults endpoint.
type FuelDefaults struct {
	GasPricePerMWh      float64 `yaml:"gas_euro_per_mwh"`
	KerosinePricePerMWh float64 `yaml:"kerosine_euro_per_mwh"`
	CO2PricePerTon      float64 `yaml:"co2_euro_per_ton"`
	WindPct             float64 `yaml:"wind_pct"`
}

// HistoryConfig configures the optional Postgres-backed audit trail.
// Empty DSN disables history: the service degrades to "history unavailable"
// rather than failing requests.
type HistoryConfig struct {
	DSN string `yaml:"dsn"`
}

// TracingConfig configures the optional OpenTelemetry OTLP exporter.
type TracingConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
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

// LoadUnchecked loads the config but does not validate it. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8888"
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	f := c.Fuels
	if f.GasPricePerMWh <= 0 || f.KerosinePricePerMWh <= 0 || f.CO2PricePerTon <= 0 {
		return fmt.Errorf("fuels.* prices must be > 0, got %+v", f)
	}
	if f.WindPct < 0 || f.WindPct > 100 {
		return fmt.Errorf("fuels.wind_pct must be in [0,100], got %v", f.WindPct)
	}
	return nil
}

// ToModelFuels converts the config-file fuel defaults to the core's Fuels type.
func (f FuelDefaults) ToModelFuels() model.Fuels {
	return model.Fuels{
		GasPricePerMWh:      f.GasPricePerMWh,
		KerosinePricePerMWh: f.KerosinePricePerMWh,
		CO2PricePerTon:      f.CO2PricePerTon,
		WindPct:             f.WindPct,
	}
}

// MergeFuels overlays non-zero fields from override onto base. Used when a
// request supplies only a partial fuel vector on top of config defaults.
func MergeFuels(base, override FuelDefaults) FuelDefaults {
	out := base
	if override.GasPricePerMWh != 0 {
		out.GasPricePerMWh = override.GasPricePerMWh
	}
	if override.KerosinePricePerMWh != 0 {
		out.KerosinePricePerMWh = override.KerosinePricePerMWh
	}
	if override.CO2PricePerTon != 0 {
		out.CO2PricePerTon = override.CO2PricePerTon
	}
	if override.WindPct != 0 {
		out.WindPct = override.WindPct
	}
	return out
}
