package game

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Score           int
	SnakeLen        int
	HeadX           int
	HeadY           int
	Dir             Direction
	FoodX           int
	FoodY           int
	ArenaW          int
	ArenaH          int
	IntervalMs      int64
	LongEscapesLeft int
	Over            bool
}

// Snapshot returns the current session snapshot. Two sessions created with
// the same seed and fed the same commands and timestamps must produce
// identical snapshots.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:            s.tick,
		Score:           s.score,
		SnakeLen:        s.snake.Len(),
		HeadX:           s.snake.Head().X,
		HeadY:           s.snake.Head().Y,
		Dir:             s.dir,
		FoodX:           s.food.Cur.X,
		FoodY:           s.food.Cur.Y,
		ArenaW:          s.grid.Width,
		ArenaH:          s.grid.Height,
		IntervalMs:      s.interval.Milliseconds(),
		LongEscapesLeft: s.food.LongEscapes,
		Over:            s.over,
	}
}
