package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/aggregate"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/config"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/layer"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/mapping"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/report"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/runlog"
)

var (
	csvFile    string
	manualMode bool
	debugMode  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Navigator layer files from mapping CSV exports",
	Long: `Read one or more CSV exports of rule-to-technique mappings, aggregate
technique coverage, and write an ATT&CK Navigator layer JSON file per
input.

Single file:

  splunk-mitre generate --file ExportMITREMapping.csv

Batch mode, processing every CSV under the input directory:

  splunk-mitre generate --manual`,
	RunE: generateCommand,
}

func init() {
	generateCmd.Flags().StringVarP(&csvFile, "file", "f", "", "Path to CSV file containing MITRE mappings")
	generateCmd.Flags().BoolVarP(&manualMode, "manual", "m", false, "Process every CSV file under the input directory")
	generateCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug-level logs")
	rootCmd.AddCommand(generateCmd)
}

func generateCommand(cmd *cobra.Command, args []string) error {
	var logConfig zap.Config
	if debugMode {
		logConfig = zap.NewDevelopmentConfig()
	} else {
		logConfig = zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logConfig.Encoding = "console"
	rawLogger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to start logger: %w", err)
	}
	defer rawLogger.Sync()
	log := rawLogger.Sugar()

	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	runLogPath := logPath
	if runLogPath == "" {
		runLogPath = config.DefaultLogFile
	}
	runLog, err := runlog.New(runLogPath)
	if err != nil {
		log.Warnw("run log unavailable, continuing without it", "path", runLogPath, "error", err)
		runLog = nil
	} else {
		defer runLog.Close()
	}

	inputs, err := resolveInputs(settings)
	if err != nil {
		return err
	}

	failed := 0
	for _, input := range inputs {
		if err := processFile(input, settings, log, runLog); err != nil {
			failed++
			log.Errorw("failed to process file", "file", input, "error", err)
		}
	}

	if failed == len(inputs) {
		return fmt.Errorf("all %d input file(s) failed", len(inputs))
	}
	if failed > 0 {
		log.Warnf("%d of %d input file(s) failed", failed, len(inputs))
	}

	return nil
}

// resolveInputs returns the CSV paths for this run: the --file argument
// (or the configured default) in single-file mode, or every *.csv under
// the input directory next to the executable in batch mode.
func resolveInputs(settings *config.Settings) ([]string, error) {
	if !manualMode {
		path := csvFile
		if path == "" {
			path = settings.CSVFile
		}
		return []string{path}, nil
	}

	dir := settings.InputDir
	if !filepath.IsAbs(dir) {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate executable: %w", err)
		}
		dir = filepath.Join(filepath.Dir(exe), dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}
	sort.Strings(matches)

	return matches, nil
}

// processFile runs the full pipeline for one CSV export. Any failure is
// contained to this file; the caller decides whether to keep going.
func processFile(input string, settings *config.Settings, log *zap.SugaredLogger, runLog *runlog.Logger) error {
	log.Infof("Processing %s", input)
	started := time.Now()

	result, err := mapping.ReadFile(input)
	if err != nil {
		logRun(runLog, runlog.Event{
			Timestamp: started.Format(time.RFC3339),
			Input:     input,
			Error:     err.Error(),
		})
		return err
	}

	for _, skipped := range result.Skipped {
		log.Warnf("Skipping row: %v", skipped)
	}

	cov := aggregate.New()
	cov.AddAll(result.Rules)

	now := time.Now()
	doc := layer.Build(cov, settings, now)

	outputPath := report.OutputPath(settings.OutputDir, input, now)
	if err := report.Write(doc, outputPath); err != nil {
		logRun(runLog, runlog.Event{
			Timestamp:   started.Format(time.RFC3339),
			Input:       input,
			Format:      result.Format,
			Rules:       len(cov.Rules),
			Techniques:  len(cov.TechniqueCounts),
			Tactics:     len(cov.TacticCounts),
			SkippedRows: len(result.Skipped),
			Error:       err.Error(),
		})
		return err
	}

	report.PrintSummary(cov, outputPath)

	logRun(runLog, runlog.Event{
		Timestamp:   started.Format(time.RFC3339),
		Input:       input,
		Format:      result.Format,
		Rules:       len(cov.Rules),
		Techniques:  len(cov.TechniqueCounts),
		Tactics:     len(cov.TacticCounts),
		SkippedRows: len(result.Skipped),
		Output:      outputPath,
	})

	return nil
}

func logRun(runLog *runlog.Logger, event runlog.Event) {
	if runLog == nil {
		return
	}
	// Run-log failures never affect the pipeline outcome.
	_ = runLog.Log(event)
}
