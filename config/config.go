// Package config loads the YAML configuration of a bounding run: the logger,
// the transformer parameters and the polynomial to bound.
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/berry/bernstein"
	"github.com/tuneinsight/berry/logging"
	"github.com/tuneinsight/berry/polynomial"
	"github.com/tuneinsight/berry/utils"
)

// Term is a monomial of a [PolynomialLiteral].
type Term struct {
	Exponents []int   `yaml:"exponents" json:"exponents"`
	Coeff     float64 `yaml:"coeff" json:"coeff"`
}

// PolynomialLiteral is a sparse literal representation of a power-basis polynomial.
// The dimension is given by the parameters of the enclosing [Config].
// If Degree is zero, the degree is the largest exponent of the terms.
type PolynomialLiteral struct {
	Degree int    `yaml:"degree,omitempty" json:"degree,omitempty"`
	Terms  []Term `yaml:"terms" json:"terms"`
}

// Config is the root of the configuration file.
type Config struct {
	Logging    logging.Config              `yaml:"logging" json:"logging"`
	Parameters bernstein.ParametersLiteral `yaml:"parameters" json:"parameters"`
	Polynomial PolynomialLiteral           `yaml:"polynomial" json:"polynomial"`
}

// DefaultConfig returns the configuration of a one dimensional problem without
// polynomial, logging at the warn level.
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.Config{
			Level: logging.Warn,
		},
		Parameters: bernstein.ParametersLiteral{
			Dim: 1,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse parses a YAML configuration on top of [DefaultConfig] and validates it.
func Parse(data []byte) (*Config, error) {

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate validates the configuration.
// Every invalid section is reported.
func (c *Config) Validate() (err error) {

	err = multierr.Append(err, c.Logging.Validate())

	_, perr := bernstein.NewParametersFromLiteral(c.Parameters)
	err = multierr.Append(err, perr)

	return multierr.Append(err, c.Polynomial.validate(c.Parameters.Dim))
}

func (pl PolynomialLiteral) validate(dim int) error {

	if pl.Degree < 0 {
		return fmt.Errorf("polynomial degree must be non-negative but is %d", pl.Degree)
	}

	for i, t := range pl.Terms {

		if len(t.Exponents) != dim {
			return fmt.Errorf("term %d has %d exponents but dim is %d", i, len(t.Exponents), dim)
		}

		for _, e := range t.Exponents {
			if e < 0 {
				return fmt.Errorf("term %d has a negative exponent %d", i, e)
			}
			if pl.Degree != 0 && e > pl.Degree {
				return fmt.Errorf("term %d has exponent %d larger than the degree %d", i, e, pl.Degree)
			}
		}
	}

	return nil
}

// Params returns the checked transformer parameters.
func (c *Config) Params() (bernstein.Parameters, error) {
	return bernstein.NewParametersFromLiteral(c.Parameters)
}

// Logger returns the logger described by the configuration.
func (c *Config) Logger() (*zap.Logger, error) {
	return logging.NewFromConfig(c.Logging)
}

// Build returns the dense power-basis polynomial described by the configuration.
// Repeated exponents are summed.
func (c *Config) Build() (*polynomial.Polynomial[polynomial.Power], error) {

	dim := c.Parameters.Dim

	if dim < 1 {
		return nil, fmt.Errorf("cannot Build: dim must be at least 1 but is %d", dim)
	}

	if err := c.Polynomial.validate(dim); err != nil {
		return nil, fmt.Errorf("cannot Build: %w", err)
	}

	degree := c.Polynomial.Degree
	if degree == 0 {
		for _, t := range c.Polynomial.Terms {
			for _, e := range t.Exponents {
				degree = utils.Max(degree, e)
			}
		}
	}

	p := polynomial.NewPower(dim, degree)
	for _, t := range c.Polynomial.Terms {
		p.SetCoeff(p.Coeff(t.Exponents...)+t.Coeff, t.Exponents...)
	}

	return p, nil
}
