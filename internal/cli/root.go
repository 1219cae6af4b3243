// Package cli implements the bikeshare commands
package cli

import (
	"fmt"
	"os"

	"BikeShare/internal/config"
	"BikeShare/internal/explorer"

	"github.com/spf13/cobra"
)

var configPath string

// RootCmd is the top-level command. Without a subcommand it runs the
// interactive explorer on stdin/stdout
var RootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bike share trip data",
	Long: "Interactive explorer for Chicago, New York City and Washington bike share trips.\n" +
		"Pick a city, month and weekday, then read the travel time, station, duration and user statistics.",
	Run: runInteractive,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "TOML config file")
	pf.StringP("data-dir", "d", "", "Directory with <city>.csv files (default: $BIKESHARE_DATA_DIR or .)")
	pf.String("source", "", "Data source: csv or sqlite (default: csv)")
	pf.String("db", "", "SQLite database for --source sqlite (default: $BIKESHARE_DB or bikeshare.db)")
	pf.String("log-dir", "", "Directory for logs, traces and metrics (default: logs)")
	pf.Bool("legacy-day-filter", false, "Compare the day answer directly to the Monday=0 weekday index")
	pf.Bool("debug", false, "Enable debug logging")
}

func runInteractive(cmd *cobra.Command, args []string) {
	e := openExplorer(cmd)
	defer e.Close()

	if err := e.Run(cmd.Context()); err != nil {
		e.Close()
		exitErr("explore", err)
	}
}

// loadConfig layers flags that were set explicitly over file and env config
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("log-dir") {
		cfg.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("legacy-day-filter") {
		cfg.LegacyDayFilter, _ = flags.GetBool("legacy-day-filter")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	return cfg, cfg.Validate()
}

func openExplorer(cmd *cobra.Command) *explorer.Explorer {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitErr("config", err)
	}
	e, err := explorer.NewExplorer(cfg)
	if err != nil {
		exitErr("init", err)
	}
	return e
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
