package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/config"
	"github.com/theirongolddev/radar/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", configPath())
	if flagConfig != "" || config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dbPath := cfg.ResolveDBPath()
	if flagDB != "" {
		dbPath = flagDB
	}

	fmt.Println("  [General]")
	fmt.Printf("    Database:      %s\n", dbPath)
	fmt.Printf("    Weekly window: %d weeks\n", cfg.General.Weeks)
	fmt.Printf("    Daily window:  %d days\n", cfg.General.Days)
	if db, err := store.Open(dbPath); err == nil {
		if n, err := db.Count(); err == nil {
			fmt.Printf("    Stored keys:   %s\n", formatNumber(int64(n)))
		}
		_ = db.Close()
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	fmt.Println()

	fmt.Println("  Run `radar setup` to reconfigure.")
	return nil
}
