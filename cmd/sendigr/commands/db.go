package commands

import (
	"database/sql"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ksny/sendigR/config"
	"github.com/ksny/sendigR/errors"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the study database",
	Long: `Manage study database operations.

Examples:
  sendigr db migrate              # Create or upgrade the database schema
  sendigr db stats                # Show database statistics`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long:  "Open the study database and apply any pending schema migrations.",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long:  "Display row counts for the SEND domain tables and controlled terminology.",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	database, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	pterm.Success.Println("Database schema is up to date")
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		dbPath = cfg.Database.Path
	}

	database, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	var studies int
	err = database.QueryRow(
		`SELECT COUNT(*) FROM (SELECT studyid FROM ts UNION SELECT studyid FROM dm)`,
	).Scan(&studies)
	if err != nil && err != sql.ErrNoRows {
		return errors.Wrap(err, "failed to count studies")
	}

	fmt.Println("Study Database Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("%-18s%s\n", "Database Path:", dbPath)
	fmt.Printf("%-18s%d\n", "Studies:", studies)

	for _, tbl := range []struct{ label, name string }{
		{"Animals (DM)", "dm"},
		{"Exposures (EX)", "ex"},
		{"Trial Summary (TS)", "ts"},
		{"CT Terms", "ct_terms"},
	} {
		var count int
		err := database.QueryRow("SELECT COUNT(*) FROM " + tbl.name).Scan(&count)
		if err != nil && err != sql.ErrNoRows {
			return errors.Wrapf(err, "failed to count rows of %s", tbl.name)
		}
		fmt.Printf("%-18s%d\n", tbl.label+":", count)
	}

	return nil
}
