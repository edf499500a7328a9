package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "botsweep",
	Short: "Enumerate boosting-bot accounts and record them in a spreadsheet",
	Long: `botsweep sweeps a matchmaking platform's player search for accounts whose
nicknames follow known boosting-bot naming schemes (a fixed prefix, an
underscore, and a numeric suffix) and records every discovered account in a
Google spreadsheet, deduplicated by player id.

The sweep is a single-shot batch run: it walks each configured pattern
through a series of sharded search queries, validates every candidate
nickname exactly, and appends matches to the destination sheet, rolling
over to numbered overflow sheets when one fills up.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.botsweep.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`botsweep {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
