package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"botsweep/pkg/auth"
	"botsweep/pkg/config"
	"botsweep/pkg/faceit"
	"botsweep/pkg/logger"
	"botsweep/pkg/sheets"
	"botsweep/pkg/sweep"
)

var (
	// Sweep command flags
	apiToken      string
	spreadsheetID string
	sheetName     string
	sweepPatterns []string
	maxSuffix     int
	rangeWidth    int
	requestDelay  time.Duration
	writeStrategy string
	dryRun        bool
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the bot-account enumeration",
	Long: `Run a full enumeration pass: every configured nickname pattern is swept
through the platform's player search, validated candidates are deduplicated
by player id, and each discovered account is appended to the destination
spreadsheet.

The platform API token is resolved from (in order): the --api-token flag,
the BOTSWEEP_API_TOKEN environment variable, or the credential store (see
'botsweep auth login').`,
	Example: `  # Sweep with settings from .botsweep.yaml
  botsweep sweep

  # Sweep specific patterns into a specific sheet
  botsweep sweep --patterns=---TAKE,---CARRY --sheet Bots

  # Preview what would be written without touching the spreadsheet
  botsweep sweep --dry-run

  # Slow down requests and buffer all writes until the end
  botsweep sweep --delay 1s --write-strategy buffered`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runSweep()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&apiToken, "api-token", "", "platform API token (overrides stored credentials)")
	sweepCmd.Flags().StringVar(&spreadsheetID, "spreadsheet", "", "destination spreadsheet ID")
	sweepCmd.Flags().StringVar(&sheetName, "sheet", "", "destination sheet base name")
	sweepCmd.Flags().StringSliceVar(&sweepPatterns, "patterns", nil, "bot nickname patterns to sweep")
	sweepCmd.Flags().IntVar(&maxSuffix, "max-suffix", 0, "highest numeric suffix covered by range shards")
	sweepCmd.Flags().IntVar(&rangeWidth, "range-width", 0, "span of each numeric range shard")
	sweepCmd.Flags().DurationVar(&requestDelay, "delay", 0, "fixed delay between requests")
	sweepCmd.Flags().StringVar(&writeStrategy, "write-strategy", "", "write strategy: immediate or buffered")
	sweepCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log discoveries instead of writing to the spreadsheet")
}

func runSweep() {
	flags := make(map[string]interface{})
	if apiToken != "" {
		flags["api-token"] = apiToken
	} else if token := resolveStoredToken(); token != "" {
		flags["api-token"] = token
	}
	if spreadsheetID != "" {
		flags["spreadsheet"] = spreadsheetID
	}
	if sheetName != "" {
		flags["sheet"] = sheetName
	}
	if len(sweepPatterns) > 0 {
		flags["patterns"] = sweepPatterns
	}
	if maxSuffix > 0 {
		flags["max-suffix"] = maxSuffix
	}
	if rangeWidth > 0 {
		flags["range-width"] = rangeWidth
	}
	if requestDelay > 0 {
		flags["delay"] = requestDelay
	}
	if writeStrategy != "" {
		flags["write-strategy"] = writeStrategy
	}
	// Only merge the log level when the flag was set on the command line,
	// otherwise the flag default would shadow the env/file value
	if rootCmd.PersistentFlags().Changed("log-level") {
		flags["log-level"] = logLevel
	}
	flags["dry-run"] = dryRun

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	ctx := context.Background()

	client := faceit.NewClient(cfg.Faceit.APIToken, cfg.Faceit.RequestTimeout, cfg.Faceit.MaxRetries, log)
	if cfg.Faceit.BaseURL != "" {
		client.SetBaseURL(cfg.Faceit.BaseURL)
	}

	var writer sweep.RowWriter
	if cfg.DryRun {
		writer = &sweep.DiscardWriter{Logger: log}
	} else {
		service, err := sheets.NewService(ctx, &cfg.Sheets, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to create sheets service")
		}
		writer = sheets.NewWriter(service, cfg.Sheets.SheetName, log)
	}

	sweeper := sweep.New(cfg, client, writer, log)

	start := time.Now()
	if err := sweeper.Run(ctx); err != nil {
		log.WithError(err).Fatal("Sweep failed")
	}

	totals := sweeper.Totals()
	log.InfoWithFields("Sweep finished", map[string]interface{}{
		"queries":    totals.Queries,
		"pages":      totals.Pages,
		"scanned":    totals.Scanned,
		"discovered": totals.Discovered,
		"duration":   time.Since(start).Round(time.Second).String(),
	})
}

// resolveStoredToken fetches the platform token from the credential store,
// if one is available
func resolveStoredToken() string {
	manager, err := auth.NewManager()
	if err != nil {
		return ""
	}
	token, err := manager.RetrieveDefault()
	if err != nil {
		return ""
	}
	return token.APIToken
}
