// pursuit is a terminal snake game where the food runs away.
//
// Usage:
//
//	pursuit play             - Play the game
//	pursuit sim              - Run a headless autopilot session
//
// Global flags:
//
//	--fps <rate>       - Set render frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Load game parameters from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - snake with food that fights back",
	Long: `Pursuit is a terminal snake game with a twist: the food watches
the snake and flees when it gets too close. Every catch shrinks the
arena and speeds the snake up.

Available commands:
  play     - Play the game in the terminal
  sim      - Run a headless autopilot session and log the outcome

Examples:
  pursuit play
  pursuit play --seed 42
  pursuit sim --duration 60s`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
