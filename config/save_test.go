package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sendigr.toml")

	cfg := Default()
	cfg.Database.Path = "/data/studies.db"
	cfg.CT.DesignCodelist = "SDESIGN_CT"
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/studies.db", loaded.Database.Path)
	assert.Equal(t, "ROUTE", loaded.CT.RouteCodelist)
	assert.Equal(t, "SDESIGN_CT", loaded.CT.DesignCodelist)
}

func TestWriteFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sendigr.toml")

	cfg := Default()
	cfg.Database.Path = ""
	assert.Error(t, WriteFile(cfg, path))
	assert.NoFileExists(t, path)
}

func TestWriteFileBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sendigr.toml")

	require.NoError(t, WriteFile(Default(), path))

	cfg := Default()
	cfg.Database.Path = "other.db"
	require.NoError(t, WriteFile(cfg, path))

	backup, err := os.ReadFile(path + ".back1")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "send.db")

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(current), "other.db")
}
