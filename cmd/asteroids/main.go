// asteroids is a TUI rendition of the classic rock-shooting arcade game.
//
// Usage:
//
//	asteroids play            - Play in the current terminal
//	asteroids serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible obstacle placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge the rocks, shoot the rocks",
	Long: `Asteroids is a terminal rendition of the classic arcade game:
steer a craft across a wrapping play field, shoot obstacles into
ever smaller fragments, and avoid running into anything.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  asteroids play
  asteroids play --seed 42
  asteroids serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
