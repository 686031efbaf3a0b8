package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultOutputPath  = "data/schedule.csv"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Layout tolerances. Empirically tuned per document family; exposed as
	// flags because no principled derivation exists.
	DefaultRowTolerance  = 2.0
	DefaultJoinTolerance = 6.0
	DefaultOffsetBound   = 30.0
)

// Config holds all configuration for the schedule extractor
type Config struct {
	// I/O configuration
	InputPath  string
	OutputPath string

	// Layout tolerances
	RowTolerance  float64
	JoinTolerance float64
	OffsetBound   float64

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum input file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputPath:    DefaultOutputPath,
		RowTolerance:  DefaultRowTolerance,
		JoinTolerance: DefaultJoinTolerance,
		OffsetBound:   DefaultOffsetBound,
		Version:       "1.0.0",
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("SCHEDEXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("input", cfg.InputPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("rowtolerance", cfg.RowTolerance)
	viper.SetDefault("jointolerance", cfg.JoinTolerance)
	viper.SetDefault("offsetbound", cfg.OffsetBound)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("input", cfg.InputPath, "Path to the schedule PDF to extract")
	pflag.String("output", cfg.OutputPath, "Path of the CSV file to write")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum input file size in bytes")
	pflag.Float64("row-tolerance", cfg.RowTolerance, "Vertical tolerance for clustering tokens into rows")
	pflag.Float64("join-tolerance", cfg.JoinTolerance, "Maximum offset-corrected distance when joining date rows to identifier rows")
	pflag.Float64("offset-bound", cfg.OffsetBound, "Maximum nearest-row distance contributing to the page offset estimate")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("rowtolerance", pflag.Lookup("row-tolerance"))
	_ = viper.BindPFlag("jointolerance", pflag.Lookup("join-tolerance"))
	_ = viper.BindPFlag("offsetbound", pflag.Lookup("offset-bound"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nschedextract - converts a schedule PDF into structured CSV records\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=ProjectSchedule.pdf                          # write data/schedule.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=schedule.pdf --output=out/records.csv        # custom output path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=schedule.pdf --loglevel=debug                # per-page diagnostics\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_INPUT          Input PDF path\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_OUTPUT         Output CSV path\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_LOGLEVEL       Log level\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_MAXFILESIZE    Maximum input file size\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_ROWTOLERANCE   Row clustering tolerance\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_JOINTOLERANCE  Row join distance bound\n")
		fmt.Fprintf(os.Stderr, "  SCHEDEXTRACT_OFFSETBOUND    Page offset estimation bound\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputPath = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.RowTolerance = viper.GetFloat64("rowtolerance")
	cfg.JoinTolerance = viper.GetFloat64("jointolerance")
	cfg.OffsetBound = viper.GetFloat64("offsetbound")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path cannot be empty")
	}

	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.RowTolerance <= 0 {
		return errors.New("row tolerance must be positive")
	}

	if c.JoinTolerance <= 0 {
		return errors.New("join tolerance must be positive")
	}

	if c.OffsetBound < c.JoinTolerance {
		return errors.New("offset bound must be at least the join tolerance")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, OutputPath: %s, LogLevel: %s, MaxFileSize: %d, "+
		"RowTolerance: %.2f, JoinTolerance: %.2f, OffsetBound: %.2f}",
		c.InputPath, c.OutputPath, c.LogLevel, c.MaxFileSize,
		c.RowTolerance, c.JoinTolerance, c.OffsetBound)
}
