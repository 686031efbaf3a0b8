package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to set os.Args for testing
func setArgs(args []string) {
	os.Args = args
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("SCHEDEXTRACT_INPUT")
	os.Unsetenv("SCHEDEXTRACT_OUTPUT")
	os.Unsetenv("SCHEDEXTRACT_LOGLEVEL")
	os.Unsetenv("SCHEDEXTRACT_MAXFILESIZE")
	os.Unsetenv("SCHEDEXTRACT_ROWTOLERANCE")
	os.Unsetenv("SCHEDEXTRACT_JOINTOLERANCE")
	os.Unsetenv("SCHEDEXTRACT_OFFSETBOUND")
}

func TestLoadFromFlags_Defaults(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"schedextract", "--input=schedule.pdf"})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.OutputPath != DefaultOutputPath {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, DefaultOutputPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.RowTolerance != DefaultRowTolerance {
		t.Errorf("LoadFromFlags() RowTolerance = %v, want %v", cfg.RowTolerance, DefaultRowTolerance)
	}
	if cfg.JoinTolerance != DefaultJoinTolerance {
		t.Errorf("LoadFromFlags() JoinTolerance = %v, want %v", cfg.JoinTolerance, DefaultJoinTolerance)
	}
	if cfg.OffsetBound != DefaultOffsetBound {
		t.Errorf("LoadFromFlags() OffsetBound = %v, want %v", cfg.OffsetBound, DefaultOffsetBound)
	}
	if !filepath.IsAbs(cfg.InputPath) {
		t.Errorf("LoadFromFlags() InputPath = %v, want absolute path", cfg.InputPath)
	}
}

func TestLoadFromFlags_AllFlags(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{
		"schedextract",
		"--input=/data/schedule.pdf",
		"--output=/data/out.csv",
		"--loglevel=debug",
		"--maxfilesize=2048",
		"--row-tolerance=1.5",
		"--join-tolerance=4",
		"--offset-bound=20",
	})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.InputPath != "/data/schedule.pdf" {
		t.Errorf("LoadFromFlags() InputPath = %v, want %v", cfg.InputPath, "/data/schedule.pdf")
	}
	if cfg.OutputPath != "/data/out.csv" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, "/data/out.csv")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "debug")
	}
	if cfg.MaxFileSize != 2048 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 2048)
	}
	if cfg.RowTolerance != 1.5 {
		t.Errorf("LoadFromFlags() RowTolerance = %v, want %v", cfg.RowTolerance, 1.5)
	}
	if cfg.JoinTolerance != 4.0 {
		t.Errorf("LoadFromFlags() JoinTolerance = %v, want %v", cfg.JoinTolerance, 4.0)
	}
	if cfg.OffsetBound != 20.0 {
		t.Errorf("LoadFromFlags() OffsetBound = %v, want %v", cfg.OffsetBound, 20.0)
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"schedextract"})
	resetFlags()
	clearEnvVars()

	os.Setenv("SCHEDEXTRACT_INPUT", "/env/schedule.pdf")
	os.Setenv("SCHEDEXTRACT_OUTPUT", "/env/out.csv")
	os.Setenv("SCHEDEXTRACT_LOGLEVEL", "warn")

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.InputPath != "/env/schedule.pdf" {
		t.Errorf("LoadFromFlags() InputPath = %v, want %v", cfg.InputPath, "/env/schedule.pdf")
	}
	if cfg.OutputPath != "/env/out.csv" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, "/env/out.csv")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "warn")
	}
}

func TestLoadFromFlags_MissingInput(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"schedextract"})
	resetFlags()
	clearEnvVars()

	if _, err := LoadFromFlags(); err == nil {
		t.Error("LoadFromFlags() should fail when no input path is given")
	}
}

func TestLoadFromFlags_InvalidLogLevel(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"schedextract", "--input=schedule.pdf", "--loglevel=verbose"})
	resetFlags()
	clearEnvVars()

	if _, err := LoadFromFlags(); err == nil {
		t.Error("LoadFromFlags() should reject an unknown log level")
	}
}
