package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Theme names accepted by the theme setting
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// maxResultLimit caps how many cards a single search may render
const maxResultLimit = 12

// Config holds every knob the finder reads at startup
type Config struct {
	Theme          string
	APIURL         string
	CoversURL      string
	UserAgent      string
	ResultLimit    int
	QuoteInterval  time.Duration
	RequestTimeout time.Duration
	EnableBurst    bool
	LogFile        string
	LogLevel       string
}

// fileConfig mirrors Config with durations spelled as strings ("40ms")
type fileConfig struct {
	Theme          *string `json:"theme" toml:"theme"`
	APIURL         *string `json:"api_url" toml:"api_url"`
	CoversURL      *string `json:"covers_url" toml:"covers_url"`
	UserAgent      *string `json:"user_agent" toml:"user_agent"`
	ResultLimit    *int    `json:"result_limit" toml:"result_limit"`
	QuoteInterval  *string `json:"quote_interval" toml:"quote_interval"`
	RequestTimeout *string `json:"request_timeout" toml:"request_timeout"`
	EnableBurst    *bool   `json:"enable_burst" toml:"enable_burst"`
	LogFile        *string `json:"log_file" toml:"log_file"`
	LogLevel       *string `json:"log_level" toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Theme:         ThemeLight,
		APIURL:        "https://openlibrary.org",
		CoversURL:     "https://covers.openlibrary.org",
		UserAgent:     "bookmood/1.0 (terminal book finder)",
		ResultLimit:   maxResultLimit,
		QuoteInterval: 40 * time.Millisecond,
		EnableBurst:   true,
		LogLevel:      "info",
	}
}

// Validate reports the first setting the UI cannot work with
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("invalid theme %q (want light, dark or auto)", c.Theme)
	}
	if c.ResultLimit < 1 || c.ResultLimit > maxResultLimit {
		return fmt.Errorf("result limit must be between 1 and %d, got %d", maxResultLimit, c.ResultLimit)
	}
	if c.QuoteInterval <= 0 {
		return errors.New("quote interval must be positive")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout cannot be negative")
	}
	if c.APIURL == "" || c.CoversURL == "" {
		return errors.New("api and covers urls are required")
	}
	return nil
}

func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("BOOKMOOD_THEME"); val != "" {
		config.Theme = strings.ToLower(val)
	}
	if val := os.Getenv("BOOKMOOD_API_URL"); val != "" {
		config.APIURL = val
	}
	if val := os.Getenv("BOOKMOOD_COVERS_URL"); val != "" {
		config.CoversURL = val
	}
	if val := os.Getenv("BOOKMOOD_RESULT_LIMIT"); val != "" {
		if limit, err := strconv.Atoi(val); err == nil {
			config.ResultLimit = limit
		}
	}
	if val := os.Getenv("BOOKMOOD_QUOTE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.QuoteInterval = d
		}
	}
	if val := os.Getenv("BOOKMOOD_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.RequestTimeout = d
		}
	}
	if val := os.Getenv("BOOKMOOD_BURST"); val != "" {
		config.EnableBurst = val == "true"
	}
	if val := os.Getenv("BOOKMOOD_LOG_FILE"); val != "" {
		config.LogFile = val
	}
	if val := os.Getenv("BOOKMOOD_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// parseFlags builds the effective config: defaults, then the config file,
// then flags the user actually passed, then environment overrides.
func parseFlags(args []string) (Config, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet("bookmood", flag.ContinueOnError)
	var configFile string
	fs.StringVar(&configFile, "config", "", "Path to config file (.json or .toml)")
	theme := fs.String("theme", config.Theme, "Color theme: light, dark or auto")
	apiURL := fs.String("api", config.APIURL, "Open Library base URL")
	limit := fs.Int("limit", config.ResultLimit, "Maximum result cards per search")
	interval := fs.Duration("quote-interval", config.QuoteInterval, "Delay between revealed quote characters")
	timeout := fs.Duration("timeout", config.RequestTimeout, "HTTP request timeout (0 waits forever)")
	burst := fs.Bool("burst", config.EnableBurst, "Enable the emoji burst on search")
	logFile := fs.String("log", config.LogFile, "Write debug log to this file")
	logLevel := fs.String("log-level", config.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return config, err
	}

	if configFile != "" {
		fromFile, err := loadConfigFromFile(configFile)
		if err != nil {
			return config, err
		}
		config = fromFile
	}

	// Only flags set on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			config.Theme = strings.ToLower(*theme)
		case "api":
			config.APIURL = *apiURL
		case "limit":
			config.ResultLimit = *limit
		case "quote-interval":
			config.QuoteInterval = *interval
		case "timeout":
			config.RequestTimeout = *timeout
		case "burst":
			config.EnableBurst = *burst
		case "log":
			config.LogFile = *logFile
		case "log-level":
			config.LogLevel = *logLevel
		}
	})

	config = applyEnvOverrides(config)
	return config, config.Validate()
}

// loadConfigFromFile reads a JSON or TOML file on top of the defaults.
// Keys missing from the file keep their default value.
func loadConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", filename, err)
	}

	return fc.merge(DefaultConfig())
}

func (fc fileConfig) merge(config Config) (Config, error) {
	if fc.Theme != nil {
		config.Theme = strings.ToLower(*fc.Theme)
	}
	if fc.APIURL != nil {
		config.APIURL = *fc.APIURL
	}
	if fc.CoversURL != nil {
		config.CoversURL = *fc.CoversURL
	}
	if fc.UserAgent != nil {
		config.UserAgent = *fc.UserAgent
	}
	if fc.ResultLimit != nil {
		config.ResultLimit = *fc.ResultLimit
	}
	if fc.QuoteInterval != nil {
		d, err := time.ParseDuration(*fc.QuoteInterval)
		if err != nil {
			return config, fmt.Errorf("quote_interval: %w", err)
		}
		config.QuoteInterval = d
	}
	if fc.RequestTimeout != nil {
		d, err := time.ParseDuration(*fc.RequestTimeout)
		if err != nil {
			return config, fmt.Errorf("request_timeout: %w", err)
		}
		config.RequestTimeout = d
	}
	if fc.EnableBurst != nil {
		config.EnableBurst = *fc.EnableBurst
	}
	if fc.LogFile != nil {
		config.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		config.LogLevel = *fc.LogLevel
	}
	return config, nil
}
