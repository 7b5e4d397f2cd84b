package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ksny/sendigR/errors"
)

// WriteFile persists a configuration as TOML. An existing file at path is
// rotated to a .back1 copy before being overwritten.
func WriteFile(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := createBackup(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// createBackup copies an existing config file to path.back1 before a write.
func createBackup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(path+".back1", content, 0644); err != nil {
		return errors.Wrap(err, "failed to create config backup")
	}
	return nil
}
