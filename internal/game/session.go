package game

import (
	"math/rand"
	"time"

	"github.com/quietfall/tui-pursuit/internal/core"
)

// Hooks are optional callbacks for UI adapters. Nil fields are skipped.
type Hooks struct {
	ScoreChanged func(score int)
	GameOver     func(finalScore int)
}

// Session owns the full game state and drives the two logical schedulers.
// All methods take explicit timestamps; a single caller (the platform frame
// loop or a test) advances time, so state mutations never interleave.
type Session struct {
	p   Params
	rng *rand.Rand

	grid  *Grid
	snake *Snake
	food  *Food

	dir     Direction
	nextDir Direction // Buffered, applied at the next snake tick

	score    int
	interval time.Duration // Current snake tick period
	over     bool
	tick     uint64 // Snake ticks since reset

	snakeTask TickTask
	foodTask  TickTask
	reverts   []time.Time // Pending boost-revert alarms

	Hooks Hooks
}

// NewSession creates a session with the given parameters.
// Reset must be called before the first Advance.
func NewSession(p Params) *Session {
	return &Session{p: p}
}

// Reset puts the session into its initial state: a two-segment snake facing
// right at the arena center, full-size arena, base tick interval, zero score
// and a fresh long-escape budget. Old tasks are replaced wholesale, so a
// reset can never leave a stale timer running.
func (s *Session) Reset(seed int64, now time.Time) {
	s.rng = rand.New(rand.NewSource(seed))
	s.grid = NewGrid(s.p.ArenaWidth, s.p.ArenaHeight, s.p.CellSize, s.p.MinArena)

	head := core.Point{
		X: s.grid.Cols() / 2 * s.p.CellSize,
		Y: s.grid.Rows() / 2 * s.p.CellSize,
	}
	s.snake = NewSnake(head, 2, s.p.CellSize)
	s.dir = DirRight
	s.nextDir = DirRight

	foodPos, ok := s.grid.RandomFreeCell(s.rng, s.snake)
	if !ok {
		foodPos = core.Point{}
	}
	s.food = NewFood(foodPos, s.p.MaxLongEscapes)

	s.score = 0
	s.over = false
	s.tick = 0
	s.interval = s.p.SnakeInterval
	s.reverts = nil

	s.snakeTask.Start(now, s.interval)
	s.foodTask.Start(now, s.p.FoodInterval)
}

// Turn buffers a direction change for the next snake tick. Commands that
// directly reverse the current travel direction are silently ignored.
func (s *Session) Turn(d Direction) {
	if s.over || d.Opposes(s.dir) {
		return
	}
	s.nextDir = d
}

// Boost temporarily drops the snake interval to a fraction of the base
// interval and schedules a one-shot revert. Overlapping boosts each keep
// their own revert alarm; every revert restores the base interval, so the
// last one to fire wins with an identical value.
func (s *Session) Boost(now time.Time) {
	if s.over {
		return
	}
	s.interval = time.Duration(float64(s.p.SnakeInterval) * s.p.BoostFactor)
	s.snakeTask.Reschedule(now, s.interval)
	s.reverts = append(s.reverts, now.Add(s.p.BoostDuration))
}

// Apply translates a semantic input action into the matching session
// command. Actions with no gameplay meaning here (restart, quit) are the
// platform's responsibility and are ignored.
func (s *Session) Apply(a core.Action, now time.Time) {
	switch a {
	case core.ActionTurnUp:
		s.Turn(DirUp)
	case core.ActionTurnDown:
		s.Turn(DirDown)
	case core.ActionTurnLeft:
		s.Turn(DirLeft)
	case core.ActionTurnRight:
		s.Turn(DirRight)
	case core.ActionBoost:
		s.Boost(now)
	}
}

type eventKind int

const (
	eventNone eventKind = iota
	eventRevert
	eventSnake
	eventFood
)

// nextEvent returns the earliest pending deadline across the boost-revert
// alarms and both tick tasks. On exact ties reverts fire before snake ticks,
// snake ticks before food ticks.
func (s *Session) nextEvent() (eventKind, time.Time, int) {
	kind := eventNone
	var at time.Time
	idx := -1

	for i, r := range s.reverts {
		if kind == eventNone || r.Before(at) {
			kind, at, idx = eventRevert, r, i
		}
	}
	if t, ok := s.snakeTask.Next(); ok && (kind == eventNone || t.Before(at)) {
		kind, at, idx = eventSnake, t, -1
	}
	if t, ok := s.foodTask.Next(); ok && (kind == eventNone || t.Before(at)) {
		kind, at, idx = eventFood, t, -1
	}
	return kind, at, idx
}

// Advance fires every event due at or before now, in deadline order. Each
// handler observes its own fire time, so chase timers and reschedules stay
// exact regardless of how coarsely the caller samples the clock. A terminal
// session never mutates: game over stops both tasks and drops all alarms.
func (s *Session) Advance(now time.Time) {
	for !s.over {
		kind, at, idx := s.nextEvent()
		if kind == eventNone || at.After(now) {
			return
		}

		switch kind {
		case eventRevert:
			s.reverts = append(s.reverts[:idx], s.reverts[idx+1:]...)
			s.interval = s.p.SnakeInterval
			s.snakeTask.Reschedule(at, s.interval)
		case eventSnake:
			s.snakeTask.Fire()
			s.snakeTick(at)
		case eventFood:
			s.foodTask.Fire()
			s.food.Tick(at, s.snake, s.dir, s.grid, s.rng, s.p)
		}
	}
}

// snakeTick runs one logical snake update: apply the buffered direction,
// step, then handle collision or food consumption.
func (s *Session) snakeTick(now time.Time) {
	s.tick++
	s.dir = s.nextDir

	res := s.snake.Step(s.dir, s.grid, s.food.Cur)
	if res.Collided {
		s.finish()
		return
	}
	if res.Ate {
		s.consumeFood(now)
	}
}

// consumeFood applies the scoring, shrink, relocation and speed-up rules
// that follow the head landing on the food.
func (s *Session) consumeFood(now time.Time) {
	s.score += s.p.FoodReward
	if s.Hooks.ScoreChanged != nil {
		s.Hooks.ScoreChanged(s.score)
	}

	s.grid.Shrink(s.p.ShrinkStep)
	s.snake.ClampInside(s.grid)
	s.food.MoveTo(s.grid.ClampInside(s.food.Cur))

	if p, ok := s.grid.RandomFreeCell(s.rng, s.snake); ok {
		s.food.MoveTo(p)
	}

	s.interval = max(s.p.MinSnakeInterval, s.interval-s.p.SpeedGain)
	s.snakeTask.Reschedule(now, s.interval)
}

// finish transitions to the terminal state and cancels all scheduling.
func (s *Session) finish() {
	s.over = true
	s.snakeTask.Stop()
	s.foodTask.Stop()
	s.reverts = nil
	if s.Hooks.GameOver != nil {
		s.Hooks.GameOver(s.score)
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the session reached its terminal state.
func (s *Session) Over() bool {
	return s.over
}

// Direction returns the snake's current travel direction.
func (s *Session) Direction() Direction {
	return s.dir
}

// SnakeInterval returns the current snake tick period.
func (s *Session) SnakeInterval() time.Duration {
	return s.interval
}

// EntityView is a renderable position pair: current plus the pre-tick
// position used as the interpolation anchor.
type EntityView struct {
	Cur  core.Point
	Prev core.Point
}

// Sample is the read-only render query. The renderer blends Prev toward Cur
// by the matching interpolation factor; it never mutates core state.
type Sample struct {
	Segments    []EntityView
	Food        EntityView
	Direction   Direction
	SnakeInterp float64
	FoodInterp  float64
	ArenaWidth  int
	ArenaHeight int
	CellSize    int
	Score       int
	Over        bool
}

// Sample captures the current state for rendering at the given instant.
func (s *Session) Sample(now time.Time) Sample {
	segs := make([]EntityView, s.snake.Len())
	for i, seg := range s.snake.Segments() {
		segs[i] = EntityView{Cur: seg.Cur, Prev: seg.Prev}
	}

	return Sample{
		Segments:    segs,
		Food:        EntityView{Cur: s.food.Cur, Prev: s.food.Prev},
		Direction:   s.dir,
		SnakeInterp: s.snakeTask.InterpFactor(now),
		FoodInterp:  s.foodTask.InterpFactor(now),
		ArenaWidth:  s.grid.Width,
		ArenaHeight: s.grid.Height,
		CellSize:    s.grid.CellSize,
		Score:       s.score,
		Over:        s.over,
	}
}
