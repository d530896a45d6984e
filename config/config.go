// Package config contains go-subxt client configuration definitions.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/spacemeshos/go-subxt/log"
	"github.com/spacemeshos/go-subxt/metrics"
)

const (
	defaultConfigFileName = "./subxt.toml"
	defaultMetadataFile   = "./metadata.json"
)

// Config defines the top level configuration for the subxt client.
type Config struct {
	BaseConfig `mapstructure:"main"`
	LOGGING    LoggerConfig       `mapstructure:"logging"`
	Push       metrics.PushConfig `mapstructure:"metrics-push"`
}

// BaseConfig defines the default configuration options for the client.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	// MetadataFile is the path to the JSON metadata registry.
	MetadataFile string `mapstructure:"metadata"`

	CollectMetrics bool `mapstructure:"metrics"`
}

// DefaultConfig returns the default configuration for the client.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		LOGGING:    defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		ConfigFile:   defaultConfigFileName,
		MetadataFile: defaultMetadataFile,
	}
}

// Validate checks values that can't be fixed up by defaults.
func (cfg *Config) Validate() error {
	if cfg.MetadataFile == "" {
		return fmt.Errorf("metadata file is not set")
	}
	if cfg.CollectMetrics && cfg.Push.URL == "" {
		return fmt.Errorf("metrics are enabled but push url is not set")
	}
	if _, err := cfg.LOGGING.Level(); err != nil {
		return err
	}
	return nil
}

// LoadConfig load the config file.
func LoadConfig(fileLocation string, vip *viper.Viper) (err error) {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}

	vip.SetConfigFile(fileLocation)
	err = vip.ReadInConfig()

	if err != nil {
		if fileLocation != defaultConfigFileName {
			log.Warning("failed loading config from %v trying %v", fileLocation, defaultConfigFileName)
			vip.SetConfigFile(defaultConfigFileName)
			err = vip.ReadInConfig()
		}
		// we change err so check again
		if err != nil {
			return fmt.Errorf("failed to read config file %w", err)
		}
	}

	return nil
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}
