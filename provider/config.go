package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a Provider.
type Config struct {
	Algorithm string            `yaml:"algorithm"`
	Params    map[string]string `yaml:"params,omitempty"`
}

// ParseConfig decodes a YAML document. Unknown top-level fields are rejected
// and scalar parameter values of any YAML type are kept as their literal text.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("provider: parse config: %w", err)
	}
	if normalize(cfg.Algorithm) == "" {
		return nil, ErrNoAlgorithm
	}

	return &cfg, nil
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("provider: read config: %w", err)
	}

	return ParseConfig(data)
}

// Provider resolves the configuration with New.
func (c *Config) Provider(opts ...Option) (*Provider, error) {
	return New(c.Algorithm, c.Params, opts...)
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
