package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ksny/sendigR/cmd/sendigr/commands"
	"github.com/ksny/sendigR/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sendigr",
	Short: "sendigr - Filter SEND study databases by resolved attributes",
	Long: `sendigr - Attribute resolution and filtering for SEND study databases.

sendigr resolves study attributes (route of administration, study design)
from the SEND domain tables of a SQLite study database, reconciling
subject-level exposure records against study-level trial summary
parameters, and filters animal and study lists by the resolved values.

Available commands:
  route   - Resolve and filter animals by route of administration
  design  - Resolve and filter studies by study design
  db      - Manage the study database
  config  - Manage sendigr configuration
  version - Show version information

Examples:
  sendigr route                        # Resolve routes for all animals
  sendigr route -r ORAL -r "ORAL GAVAGE" --match-all
  sendigr design -d PARALLEL --uncertain
  sendigr db stats                     # Show database statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the study database (defaults to configuration)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.RouteCmd)
	rootCmd.AddCommand(commands.DesignCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
