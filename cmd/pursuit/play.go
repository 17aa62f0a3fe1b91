package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quietfall/tui-pursuit/internal/config"
	"github.com/quietfall/tui-pursuit/internal/core"
	"github.com/quietfall/tui-pursuit/internal/game"
	"github.com/quietfall/tui-pursuit/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game in the terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD  - Steer the snake
  Space        - Speed boost
  R            - Restart after game over
  Q            - Quit

Examples:
  pursuit play
  pursuit play --fps 30
  pursuit play --seed 42 --config ./pursuit.yaml`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	session := game.NewSession(game.FromConfig(cfg))
	return tui.Run(session, rt)
}
