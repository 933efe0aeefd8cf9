// flipdash is a side-scrolling runner with a gravity-flip mode, played in the terminal.
//
// Usage:
//
//	flipdash play            - Play a run
//	flipdash scores          - Show run history and high scores
//	flipdash config          - Print the default config YAML
//	flipdash ports           - List serial ports for a hardware controller
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flipdash/scores.db)
//	--log-level <level>  - Log level for ~/.flipdash/flipdash.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flipdash/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flipdash",
	Short: "Flip Dash - a gravity-flipping runner for your terminal",
	Long: `Flip Dash is an endless runner. Jump over floor spikes, grab coins,
and survive the flip phase where gravity switches between floor and ceiling.

Available commands:
  play     - Start a run
  scores   - View run history
  config   - Print the default config
  ports    - List serial ports

Examples:
  flipdash play
  flipdash play --difficulty hard --watch
  flipdash play --serial /dev/ttyUSB0
  flipdash scores --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(portsCmd)
}
