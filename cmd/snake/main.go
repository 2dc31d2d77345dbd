// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--fps <rate>       - Override the configured speed
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs here while playing
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow",
	Long: `Snake is the classic game on a wrapping grid. Eat apples to grow;
biting yourself starts you over from the center.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --backend tcell --sound
  snake --fps 10 --seed 42
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Moves per second (0 = use config speed)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (logs are discarded if empty)")

	// Bare "snake" plays too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveSeed turns the zero seed into a time-based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
