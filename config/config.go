// Package config loads loan inputs for the calculator from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/javajack/xlmortgage"
)

// Config mirrors the YAML file. Unset fields keep the generator defaults.
type Config struct {
	LoanAmount *float64 `yaml:"loan_amount"`
	AnnualRate *float64 `yaml:"annual_rate"`
	TermYears  *int     `yaml:"term_years"`
	StartDate  string   `yaml:"start_date"` // YYYY-MM-DD
	Output     string   `yaml:"output"`
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Options converts the set fields into generator options.
func (c Config) Options() ([]xlmortgage.Option, error) {
	var opts []xlmortgage.Option
	if c.LoanAmount != nil {
		opts = append(opts, xlmortgage.WithLoanAmount(*c.LoanAmount))
	}
	if c.AnnualRate != nil {
		opts = append(opts, xlmortgage.WithAnnualRate(*c.AnnualRate))
	}
	if c.TermYears != nil {
		opts = append(opts, xlmortgage.WithTermYears(*c.TermYears))
	}
	if c.StartDate != "" {
		d, err := time.Parse(xlmortgage.DateLayout, c.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start_date %q: %w", c.StartDate, err)
		}
		opts = append(opts, xlmortgage.WithStartDate(d))
	}
	if c.Output != "" {
		opts = append(opts, xlmortgage.WithOutputPath(c.Output))
	}
	return opts, nil
}
