package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// WriteStrategy selects how discovered accounts are forwarded to the sheet.
type WriteStrategy string

const (
	// WriteImmediate appends each account as soon as it is discovered.
	WriteImmediate WriteStrategy = "immediate"
	// WriteBuffered accumulates accounts in memory and appends once at run end.
	WriteBuffered WriteStrategy = "buffered"
)

// Config holds all configuration options for the bot sweeper
type Config struct {
	// Matchmaking platform API settings
	Faceit FaceitConfig `yaml:"faceit" json:"faceit"`

	// Google Sheets destination settings
	Sheets SheetsConfig `yaml:"sheets" json:"sheets"`

	// Sweep behavior settings
	Sweep SweepConfig `yaml:"sweep" json:"sweep"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// DryRun previews the sweep without writing to the spreadsheet.
	// Set from the command line only, never from a config file.
	DryRun bool `yaml:"-" json:"-"`
}

// FaceitConfig holds platform API settings
type FaceitConfig struct {
	APIToken       string        `yaml:"api_token" json:"api_token"`
	BaseURL        string        `yaml:"base_url" json:"base_url"`
	PageLimit      int           `yaml:"page_limit" json:"page_limit"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries" json:"max_retries"`
}

// SheetsConfig holds spreadsheet destination settings
type SheetsConfig struct {
	SpreadsheetID       string `yaml:"spreadsheet_id" json:"spreadsheet_id"`
	SheetName           string `yaml:"sheet_name" json:"sheet_name"`
	ServiceAccountEmail string `yaml:"service_account_email" json:"service_account_email"`
	PrivateKey          string `yaml:"private_key" json:"private_key"`
	PrivateKeyFile      string `yaml:"private_key_file" json:"private_key_file"`
}

// SweepConfig holds enumeration settings
type SweepConfig struct {
	Patterns      []string      `yaml:"patterns" json:"patterns"`
	MaxSuffix     int           `yaml:"max_suffix" json:"max_suffix"`
	RangeWidth    int           `yaml:"range_width" json:"range_width"`
	RequestDelay  time.Duration `yaml:"request_delay" json:"request_delay"`
	WriteStrategy WriteStrategy `yaml:"write_strategy" json:"write_strategy"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Faceit: FaceitConfig{
			BaseURL:        "https://open.faceit.com/data/v4",
			PageLimit:      100,
			RequestTimeout: 30 * time.Second,
			MaxRetries:     3,
		},
		Sheets: SheetsConfig{
			SheetName: "Bots",
		},
		Sweep: SweepConfig{
			Patterns:      []string{"---TAKE"},
			MaxSuffix:     400,
			RangeWidth:    20,
			RequestDelay:  500 * time.Millisecond,
			WriteStrategy: WriteImmediate,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if token := os.Getenv("BOTSWEEP_API_TOKEN"); token != "" {
		c.Faceit.APIToken = token
	}
	if baseURL := os.Getenv("BOTSWEEP_BASE_URL"); baseURL != "" {
		c.Faceit.BaseURL = baseURL
	}
	if spreadsheetID := os.Getenv("BOTSWEEP_SPREADSHEET_ID"); spreadsheetID != "" {
		c.Sheets.SpreadsheetID = spreadsheetID
	}
	if sheetName := os.Getenv("BOTSWEEP_SHEET_NAME"); sheetName != "" {
		c.Sheets.SheetName = sheetName
	}
	if email := os.Getenv("BOTSWEEP_SERVICE_ACCOUNT_EMAIL"); email != "" {
		c.Sheets.ServiceAccountEmail = email
	}
	if key := os.Getenv("BOTSWEEP_SERVICE_ACCOUNT_KEY"); key != "" {
		c.Sheets.PrivateKey = key
	}
	if keyFile := os.Getenv("BOTSWEEP_SERVICE_ACCOUNT_KEY_FILE"); keyFile != "" {
		c.Sheets.PrivateKeyFile = keyFile
	}
	if patterns := os.Getenv("BOTSWEEP_PATTERNS"); patterns != "" {
		var parsed []string
		for _, p := range strings.Split(patterns, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parsed = append(parsed, p)
			}
		}
		if len(parsed) > 0 {
			c.Sweep.Patterns = parsed
		}
	}
	if maxSuffix := os.Getenv("BOTSWEEP_MAX_SUFFIX"); maxSuffix != "" {
		var val int
		fmt.Sscanf(maxSuffix, "%d", &val)
		if val > 0 {
			c.Sweep.MaxSuffix = val
		}
	}
	if delay := os.Getenv("BOTSWEEP_REQUEST_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil && d > 0 {
			c.Sweep.RequestDelay = d
		}
	}
	if strategy := os.Getenv("BOTSWEEP_WRITE_STRATEGY"); strategy != "" {
		c.Sweep.WriteStrategy = WriteStrategy(strings.ToLower(strategy))
	}
	if logLevel := os.Getenv("BOTSWEEP_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".botsweep.yaml",
		".botsweep.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "botsweep", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "botsweep", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".botsweep.yaml"),
		filepath.Join(os.Getenv("HOME"), ".botsweep.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Faceit.APIToken == "" {
		errs = append(errs, errors.New("platform API token is required"))
	}
	if c.Faceit.BaseURL == "" {
		errs = append(errs, errors.New("platform base URL is required"))
	}
	if c.Faceit.PageLimit <= 0 || c.Faceit.PageLimit > 100 {
		errs = append(errs, errors.New("page limit must be between 1 and 100"))
	}
	if c.Faceit.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.Faceit.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries cannot be negative"))
	}

	// Dry runs never touch the spreadsheet, so the destination does not
	// have to be configured for them
	if !c.DryRun {
		if c.Sheets.SpreadsheetID == "" {
			errs = append(errs, errors.New("spreadsheet ID is required"))
		}
		if c.Sheets.SheetName == "" {
			errs = append(errs, errors.New("sheet name is required"))
		}
		if c.Sheets.ServiceAccountEmail == "" {
			errs = append(errs, errors.New("service account email is required"))
		}
		if c.Sheets.PrivateKey == "" && c.Sheets.PrivateKeyFile == "" {
			errs = append(errs, errors.New("service account private key or key file is required"))
		}
	}

	if len(c.Sweep.Patterns) == 0 {
		errs = append(errs, errors.New("at least one nickname pattern is required"))
	}
	if c.Sweep.MaxSuffix <= 0 {
		errs = append(errs, errors.New("max suffix must be positive"))
	}
	if c.Sweep.RangeWidth <= 0 {
		errs = append(errs, errors.New("range width must be positive"))
	}
	if c.Sweep.RequestDelay <= 0 {
		errs = append(errs, errors.New("request delay must be positive"))
	}
	if c.Sweep.WriteStrategy != WriteImmediate && c.Sweep.WriteStrategy != WriteBuffered {
		errs = append(errs, errors.New("write strategy must be immediate or buffered"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if token, ok := flags["api-token"].(string); ok && token != "" {
		c.Faceit.APIToken = token
	}
	if spreadsheetID, ok := flags["spreadsheet"].(string); ok && spreadsheetID != "" {
		c.Sheets.SpreadsheetID = spreadsheetID
	}
	if sheetName, ok := flags["sheet"].(string); ok && sheetName != "" {
		c.Sheets.SheetName = sheetName
	}
	if patterns, ok := flags["patterns"].([]string); ok && len(patterns) > 0 {
		c.Sweep.Patterns = patterns
	}
	if maxSuffix, ok := flags["max-suffix"].(int); ok && maxSuffix > 0 {
		c.Sweep.MaxSuffix = maxSuffix
	}
	if rangeWidth, ok := flags["range-width"].(int); ok && rangeWidth > 0 {
		c.Sweep.RangeWidth = rangeWidth
	}
	if delay, ok := flags["delay"].(time.Duration); ok && delay > 0 {
		c.Sweep.RequestDelay = delay
	}
	if strategy, ok := flags["write-strategy"].(string); ok && strategy != "" {
		c.Sweep.WriteStrategy = WriteStrategy(strings.ToLower(strategy))
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dryRun, ok := flags["dry-run"].(bool); ok {
		c.DryRun = dryRun
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".botsweep.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
