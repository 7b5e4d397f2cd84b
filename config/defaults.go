package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "send.db")

	// Controlled terminology defaults (CDISC SEND CT codelist names)
	v.SetDefault("ct.route_codelist", "ROUTE")
	v.SetDefault("ct.design_codelist", "DESIGN")
}
