package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ksny/sendigR/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the sendigR configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variables: SENDIGR_DATABASE_PATH, SENDIGR_CT_ROUTE_CODELIST, ...
	v.SetEnvPrefix("SENDIGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Optional project config file: sendigr.toml in the working directory
	v.SetConfigName("sendigr")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	// Missing config file is fine; defaults and env vars apply
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path cannot be empty")
	}
	if c.CT.RouteCodelist == "" {
		return errors.New("ct.route_codelist cannot be empty")
	}
	if c.CT.DesignCodelist == "" {
		return errors.New("ct.design_codelist cannot be empty")
	}
	return nil
}
