// Package config loads the configuration of the qtest tool.
package config

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"deedles.dev/listq/internal/mlog"
)

// DefaultStringLength is the size of the buffer that removed values
// are copied into when no other size is configured.
const DefaultStringLength = 1024

// Config is the qtest configuration.
type Config struct {
	Log mlog.Config `yaml:"log"`

	// StringLength is the size of the removal buffer, including its
	// terminating zero byte. Longer values are truncated.
	StringLength int `yaml:"string_length"`

	// Descend is the order used by sort and merge.
	Descend bool `yaml:"descend"`

	// Echo prints every command before running it.
	Echo bool `yaml:"echo"`

	// MetricsAddr, if set, is the address Prometheus metrics are
	// served on.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:          mlog.Config{Level: "info"},
		StringLength: DefaultStringLength,
	}
}

// Load reads the config file at path on top of [Default]. If path is
// empty, a file named "qtest" with any extension viper understands is
// looked for in the working directory, and its absence is not an
// error. The second return value is the file that was used, if any.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("qtest")
		v.AddConfigPath(".")
	}

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return cfg, "", nil
		}
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	decoderOpt := func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		dc.TagName = "yaml"
		dc.WeaklyTypedInput = true
	}
	if err := v.Unmarshal(cfg, decoderOpt); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

// Validate reports whether c is usable.
func (c *Config) Validate() error {
	if c.StringLength < 0 {
		return fmt.Errorf("invalid string_length %d", c.StringLength)
	}
	return nil
}

// YAML returns c encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
