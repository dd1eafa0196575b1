package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/homeval/homeval/internal/model"
)

// FileName is the workspace configuration file.
const FileName = "homeval.yaml"

// Config represents the top-level homeval.yaml configuration.
type Config struct {
	Property     PropertyConfig     `yaml:"property"`
	Parameters   ParametersConfig   `yaml:"parameters"`
	Capabilities CapabilitiesConfig `yaml:"capabilities"`
	Carry        CarryConfig        `yaml:"carry,omitempty"`
	Git          GitConfig          `yaml:"git"`
}

// PropertyConfig identifies the holding being valued.
type PropertyConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217, e.g. "USD"
}

// ParametersConfig mirrors model.Parameters. Rates are annual nominal
// fractions; frequencies are months between payments.
type ParametersConfig struct {
	ListValue              float64 `yaml:"list_value"`
	InterestRate           float64 `yaml:"interest_rate"`
	DiscountRate           float64 `yaml:"discount_rate"`
	TaxRate                float64 `yaml:"tax_rate"`
	TaxPayFrequency        int     `yaml:"tax_pay_freq"`
	TaxProjectionRate      float64 `yaml:"tax_proj_rate"`
	CarryProjectionRate    float64 `yaml:"carry_proj_rate"`
	PropertyProjectionRate float64 `yaml:"property_proj_rate"`
	TenorYears             int     `yaml:"tenor"`
	DownPercent            float64 `yaml:"down_percent"`
	DownPayFrequency       int     `yaml:"down_pay_freq"`
	SquareFootage          float64 `yaml:"square_footage,omitempty"`
	CarryIncomePerUnit     float64 `yaml:"carry_income_per_unit,omitempty"`
	CarryPayFrequency      int     `yaml:"carry_pay_freq,omitempty"`
}

// CapabilitiesConfig selects the optional streams.
type CapabilitiesConfig struct {
	WithMortgage    bool `yaml:"with_mortgage"`
	WithCarryIncome bool `yaml:"with_carry_income"`
}

// CarryConfig holds the default multiplier for the carry-income stream.
type CarryConfig struct {
	Multiplier float64 `yaml:"multiplier,omitempty"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"` // commit csv reports after every csv run
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a homeval.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
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

// Default returns a Config holding the reference parameter set.
func Default(propertyName string) *Config {
	return &Config{
		Property: PropertyConfig{
			Name:     propertyName,
			Currency: "USD",
		},
		Parameters: ParametersConfig{
			ListValue:              100000,
			InterestRate:           -0.05,
			DiscountRate:           0.016,
			TaxRate:                -0.05,
			TaxPayFrequency:        1,
			TaxProjectionRate:      0.025,
			CarryProjectionRate:    0.05,
			PropertyProjectionRate: 0.07,
			TenorYears:             10,
			DownPercent:            0.5,
			DownPayFrequency:       1,
		},
		Capabilities: CapabilitiesConfig{
			WithMortgage: true,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "homeval",
			AuthorEmail: "homeval@localhost",
		},
	}
}

// ModelParameters converts the YAML parameters to the engine record.
func (c *Config) ModelParameters() model.Parameters {
	p := c.Parameters
	return model.Parameters{
		ListValue:              p.ListValue,
		InterestRate:           p.InterestRate,
		DiscountRate:           p.DiscountRate,
		TaxRate:                p.TaxRate,
		TaxPayFrequency:        p.TaxPayFrequency,
		TaxProjectionRate:      p.TaxProjectionRate,
		CarryProjectionRate:    p.CarryProjectionRate,
		PropertyProjectionRate: p.PropertyProjectionRate,
		TenorYears:             p.TenorYears,
		DownPercent:            p.DownPercent,
		DownPayFrequency:       p.DownPayFrequency,
		SquareFootage:          p.SquareFootage,
		CarryIncomePerUnit:     p.CarryIncomePerUnit,
		CarryPayFrequency:      p.CarryPayFrequency,
	}
}

// ModelCapabilities converts the YAML capability flags.
func (c *Config) ModelCapabilities() model.Capabilities {
	return model.Capabilities{
		WithMortgage:    c.Capabilities.WithMortgage,
		WithCarryIncome: c.Capabilities.WithCarryIncome,
	}
}
