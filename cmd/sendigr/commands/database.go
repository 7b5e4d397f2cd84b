package commands

import (
	"database/sql"

	"github.com/ksny/sendigR/config"
	"github.com/ksny/sendigR/db"
	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/logger"
)

// openDatabase opens and migrates a study database at the given path.
// If dbPath is empty the configured path applies.
func openDatabase(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load configuration")
		}
		dbPath = cfg.Database.Path
	}

	database, err := db.OpenWithMigrations(dbPath, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}
	return database, nil
}
