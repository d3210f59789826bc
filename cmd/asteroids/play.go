package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagConfig string
	flagRocks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session in the current terminal.

Controls:
  Left/A, Right/D - Rotate
  Up/W            - Thrust
  Space           - Fire
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  asteroids play
  asteroids play --seed 42
  asteroids play --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().IntVar(&flagRocks, "rocks", 0, "Initial obstacle count (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagRocks > 0 {
		cfg.World.InitialObstacles = flagRocks
	}

	rt := tui.DefaultRuntimeConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(cfg, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
