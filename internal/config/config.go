package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCSVFile is the input used when no --file flag is given.
	DefaultCSVFile = "ExportMITREMapping.csv"
	// DefaultInputDir is the directory scanned in batch mode, relative
	// to the executable.
	DefaultInputDir = "csv"
	// DefaultOutputDir is the root under which layer files are written.
	DefaultOutputDir = "layers"
	// DefaultLogFile receives one JSONL record per generation run.
	DefaultLogFile = "runs.jsonl"
)

// Settings holds everything about the generated layer that is convention
// rather than input-derived: the version triple the Navigator expects,
// the layer name, and the gradient endpoints.
type Settings struct {
	LayerName        string   `yaml:"layer_name"`
	Domain           string   `yaml:"domain"`
	AttackVersion    string   `yaml:"attack_version"`
	NavigatorVersion string   `yaml:"navigator_version"`
	LayerVersion     string   `yaml:"layer_version"`
	GradientColors   []string `yaml:"gradient_colors"`
	CSVFile          string   `yaml:"csv_file"`
	InputDir         string   `yaml:"input_dir"`
	OutputDir        string   `yaml:"output_dir"`
}

// DefaultSettings returns the conventions the Splunk export tooling
// assumes. The version strings track the Navigator release the layer
// schema was written against.
func DefaultSettings() *Settings {
	return &Settings{
		LayerName:        "Splunk Rules MITRE Coverage",
		Domain:           "enterprise-attack",
		AttackVersion:    "16",
		NavigatorVersion: "4.9.1",
		LayerVersion:     "4.5",
		GradientColors:   []string{"#ffffff", "#ff6666"},
		CSVFile:          DefaultCSVFile,
		InputDir:         DefaultInputDir,
		OutputDir:        DefaultOutputDir,
	}
}

// Load reads a YAML settings file, merging it over the defaults. A
// missing file is not an error: the defaults are returned as-is.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	defaults := DefaultSettings()
	if settings.LayerName == "" {
		settings.LayerName = defaults.LayerName
	}
	if settings.Domain == "" {
		settings.Domain = defaults.Domain
	}
	if settings.AttackVersion == "" {
		settings.AttackVersion = defaults.AttackVersion
	}
	if settings.NavigatorVersion == "" {
		settings.NavigatorVersion = defaults.NavigatorVersion
	}
	if settings.LayerVersion == "" {
		settings.LayerVersion = defaults.LayerVersion
	}
	if len(settings.GradientColors) == 0 {
		settings.GradientColors = defaults.GradientColors
	}
	if settings.CSVFile == "" {
		settings.CSVFile = defaults.CSVFile
	}
	if settings.InputDir == "" {
		settings.InputDir = defaults.InputDir
	}
	if settings.OutputDir == "" {
		settings.OutputDir = defaults.OutputDir
	}

	return settings, nil
}
