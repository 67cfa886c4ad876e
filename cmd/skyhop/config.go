package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The result reflects --config, the config search path and --preset.
Use --default to print the built-in defaults instead, e.g. as a
starting point for ~/.skyhop/configs/skyhop.yaml.

Examples:
  skyhop config
  skyhop config --preset classic
  skyhop config --default > ~/.skyhop/configs/skyhop.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
