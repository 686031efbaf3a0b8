package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/ganttscope/schedextract/internal/config"
	"github.com/ganttscope/schedextract/internal/export"
	"github.com/ganttscope/schedextract/internal/schedule"
	"github.com/ganttscope/schedextract/internal/source"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := setupLogging(cfg)

	if cfg.IsDebug() {
		logger.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg, logger); err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}
}

// run opens the document, extracts the record set and writes the CSV.
func run(cfg *config.Config, logger *log.Logger) error {
	doc, err := source.Open(cfg.InputPath, cfg.MaxFileSize)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer doc.Close()

	opts := schedule.Options{
		RowTolerance:  cfg.RowTolerance,
		JoinTolerance: cfg.JoinTolerance,
		OffsetBound:   cfg.OffsetBound,
	}

	var extractorLog *log.Logger
	if cfg.IsDebug() {
		extractorLog = logger
	}
	extractor := schedule.NewExtractor(opts, extractorLog)

	result, err := extractor.Extract(doc)
	if err != nil {
		return fmt.Errorf("extract %s: %w", doc.Path(), err)
	}

	if len(result.Records) == 0 {
		logger.Printf("no activities extracted from %s; writing an empty CSV with headers", doc.Path())
	}
	if cfg.IsDebug() {
		logger.Printf("counters: %s", result.Counters)
		logger.Printf("sample rows from the document:")
		for _, line := range result.SampleLines {
			logger.Printf("    %s", line)
		}
	}

	if err := export.WriteFile(cfg.OutputPath, result.Records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Printf("saved %d records from %d pages of %s to %s",
		len(result.Records), result.TotalPages, doc.Path(), cfg.OutputPath)
	return nil
}

// setupLogging keeps diagnostics on stderr so the output path stays the only
// thing the tool writes on success.
func setupLogging(cfg *config.Config) *log.Logger {
	flags := log.LstdFlags
	if cfg.IsDebug() {
		flags |= log.Lshortfile
	}
	return log.New(os.Stderr, "", flags)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("schedextract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
