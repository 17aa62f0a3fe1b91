package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quietfall/tui-pursuit/internal/config"
	"github.com/quietfall/tui-pursuit/internal/core"
	"github.com/quietfall/tui-pursuit/internal/game"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without a terminal UI. A greedy autopilot
steers the snake toward the food; progress and the final outcome are
logged to stderr. Useful for balancing config changes and for
reproducing sessions with a fixed seed.

Examples:
  pursuit sim
  pursuit sim --duration 2m --seed 42
  pursuit sim --step 10ms --config ./pursuit.yaml`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Simulated wall-clock time to run")
	simCmd.Flags().DurationVar(&flagSimStep, "step", 25*time.Millisecond, "Simulated time between autopilot decisions")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pursuit-sim",
	})

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagSimStep <= 0 {
		return fmt.Errorf("step must be positive, got %v", flagSimStep)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(game.FromConfig(cfg))
	start := time.Now()
	session.Reset(seed, start)

	logger.Info("session started", "seed", seed, "duration", flagSimDuration, "step", flagSimStep)

	now := start
	end := start.Add(flagSimDuration)
	nextReport := start.Add(time.Second)

	for now.Before(end) && !session.Over() {
		now = now.Add(flagSimStep)
		session.Turn(autopilot(session.Sample(now)))
		session.Advance(now)

		if !now.Before(nextReport) {
			snap := session.Snapshot()
			logger.Info("progress",
				"elapsed", now.Sub(start).Round(time.Millisecond),
				"tick", snap.Tick,
				"score", snap.Score,
				"len", snap.SnakeLen,
				"arena", fmt.Sprintf("%dx%d", snap.ArenaW, snap.ArenaH),
				"interval", fmt.Sprintf("%dms", snap.IntervalMs),
			)
			nextReport = nextReport.Add(time.Second)
		}
	}

	snap := session.Snapshot()
	if snap.Over {
		logger.Info("session ended in a collision",
			"elapsed", now.Sub(start).Round(time.Millisecond),
			"tick", snap.Tick, "score", snap.Score, "len", snap.SnakeLen)
	} else {
		logger.Info("session survived the full run",
			"tick", snap.Tick, "score", snap.Score, "len", snap.SnakeLen)
	}
	return nil
}

// autopilot picks the legal non-reversing direction whose next head cell is
// closest to the food, skipping cells that would collide. Falls back to any
// survivable direction, then to the current one.
func autopilot(smp game.Sample) game.Direction {
	head := smp.Segments[0].Cur
	food := smp.Food.Cur
	cell := smp.CellSize

	best := smp.Direction
	bestDist := math.Inf(1)
	found := false

	for _, d := range []game.Direction{game.DirRight, game.DirDown, game.DirLeft, game.DirUp} {
		if d.Opposes(smp.Direction) {
			continue
		}
		next := nextHead(head, d, cell)
		if next.X < 0 || next.X > smp.ArenaWidth-cell ||
			next.Y < 0 || next.Y > smp.ArenaHeight-cell {
			continue
		}
		if occupied(smp.Segments, next) {
			continue
		}
		if dist := core.Dist(next, food); dist < bestDist {
			best = d
			bestDist = dist
			found = true
		}
	}

	if !found {
		// Cornered. Keep going and let the collision end the session.
		return smp.Direction
	}
	return best
}

func nextHead(head core.Point, d game.Direction, cell int) core.Point {
	switch d {
	case game.DirUp:
		return head.Add(0, -cell)
	case game.DirDown:
		return head.Add(0, cell)
	case game.DirLeft:
		return head.Add(-cell, 0)
	default:
		return head.Add(cell, 0)
	}
}

func occupied(segs []game.EntityView, p core.Point) bool {
	for _, s := range segs {
		if s.Cur == p {
			return true
		}
	}
	return false
}
