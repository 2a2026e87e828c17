package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "splunk-mitre",
	Short: "splunk-mitre - ATT&CK Navigator layers from Splunk rule exports",
	Long: `splunk-mitre converts CSV exports of detection-rule-to-MITRE-ATT&CK
mappings into ATT&CK Navigator layer files, heat-mapping technique
coverage across your Splunk detection rules.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings YAML file (optional; built-in defaults otherwise)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to run log file (default: runs.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}
