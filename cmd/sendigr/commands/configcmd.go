package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ksny/sendigR/config"
	"github.com/ksny/sendigR/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sendigr configuration",
	Long: `Manage the sendigr configuration file (sendigr.toml).

Examples:
  sendigr config show             # Show the effective configuration
  sendigr config init             # Write a sendigr.toml with defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sendigr.toml with default values",
	RunE:  runConfigInit,
}

var configInitForceFlag bool

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&configInitForceFlag, "force", "f", false, "Overwrite an existing sendigr.toml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to render configuration")
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	const path = "sendigr.toml"

	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		return errors.Newf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		return err
	}

	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}
