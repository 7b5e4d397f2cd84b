package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "send.db", cfg.Database.Path)
	assert.Equal(t, "ROUTE", cfg.CT.RouteCodelist)
	assert.Equal(t, "DESIGN", cfg.CT.DesignCodelist)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sendigr.toml")
	content := `
[database]
path = "/data/studies.db"

[ct]
route_codelist = "ROUTE"
design_codelist = "SDESIGN_CT"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/studies.db", cfg.Database.Path)
	assert.Equal(t, "SDESIGN_CT", cfg.CT.DesignCodelist)
	// Unset keys fall back to defaults
	assert.Equal(t, "ROUTE", cfg.CT.RouteCodelist)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "send.db"},
		CT:       CTConfig{RouteCodelist: "ROUTE", DesignCodelist: "DESIGN"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Path = "send.db"
	cfg.CT.RouteCodelist = ""
	assert.Error(t, cfg.Validate())
}

func TestEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("SENDIGR_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
}
