package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search order and the --fps override are applied.

Search order:
  1. --config <path>
  2. ~/.snake/config.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

Examples:
  snake config
  snake config --defaults > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.WithSpeed(flagFPS).Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
