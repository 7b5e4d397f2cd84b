// Package config loads sendigR configuration from TOML files and the
// environment using Viper.
package config

// Config represents the sendigR configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	CT       CTConfig       `mapstructure:"ct" toml:"ct"`
}

// DatabaseConfig configures the SQLite SEND database
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// CTConfig configures controlled-terminology lookups.
// Codelist names identify the CDISC CT codelists used to validate
// resolved attribute values.
type CTConfig struct {
	RouteCodelist  string `mapstructure:"route_codelist" toml:"route_codelist"`
	DesignCodelist string `mapstructure:"design_codelist" toml:"design_codelist"`
}

// Default returns a configuration populated with the default values.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "send.db"},
		CT: CTConfig{
			RouteCodelist:  "ROUTE",
			DesignCodelist: "DESIGN",
		},
	}
}
