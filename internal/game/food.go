package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/quietfall/tui-pursuit/internal/core"
)

// Food candidate scoring weights. Higher total wins; ties go to the first
// candidate in generation order.
const (
	awayFromSnakeBonus = 100 // Candidate moves against the snake's travel direction
	longEscapeBonus    = 200 // Biases long escapes toward far cells
	borderPenalty      = 20  // Candidate sits on the outer row/column
)

// Food is the evasive target: a position with an interpolation anchor plus
// the pursuit-evasion state machine. While the snake's head is within the
// flee distance the food is "chased" and a chase timer runs; once during a
// bounded stretch of continuous pursuit it may relocate across the whole
// board (a long escape), otherwise it flees cell by cell.
type Food struct {
	Cur  core.Point
	Prev core.Point

	chaseStart  time.Time
	chasing     bool
	LongEscapes int // Remaining board-wide escapes, only ever decrements
}

// NewFood places food at p with the given long-escape budget.
func NewFood(p core.Point, escapes int) *Food {
	return &Food{Cur: p, Prev: p, LongEscapes: escapes}
}

// Chasing reports whether the chase timer is currently running.
func (f *Food) Chasing() bool {
	return f.chasing
}

// MoveTo relocates the food and resets its interpolation anchor.
// Used by the session after an arena shrink.
func (f *Food) MoveTo(p core.Point) {
	f.Cur = p
	f.Prev = p
}

// Tick runs one food-logic update. The interpolation anchor is refreshed
// every tick whether or not the food moves, so idle food renders steady.
func (f *Food) Tick(now time.Time, snake *Snake, dir Direction, g *Grid, rng *rand.Rand, p Params) {
	f.Prev = f.Cur

	head := snake.Head()
	if core.Dist(head, f.Cur) > p.FleeDistance {
		f.chasing = false
		return
	}

	if !f.chasing {
		f.chasing = true
		f.chaseStart = now
	}

	if f.tryLongEscape(now, head, snake, dir, g, rng, p) {
		return
	}
	f.flee(head, snake, dir, g)
}

// tryLongEscape attempts the rare board-wide relocation. Eligible only while
// a long escape remains, the chase has lasted into the configured window,
// and a low-probability draw hits. Returns true if the food moved.
func (f *Food) tryLongEscape(now time.Time, head core.Point, snake *Snake, dir Direction, g *Grid, rng *rand.Rand, p Params) bool {
	if f.LongEscapes <= 0 {
		return false
	}
	elapsed := now.Sub(f.chaseStart)
	if elapsed < p.LongEscapeMinChase || elapsed > p.LongEscapeMaxChase {
		return false
	}
	if rng.Float64() >= p.LongEscapeChance {
		return false
	}

	best, ok := bestCandidate(g.FreeCells(snake), head, dir, g, true)
	if !ok {
		return false
	}

	f.Cur = best
	f.LongEscapes--
	f.chasing = false
	return true
}

// flee moves one cell to the best-scored occupiable orthogonal neighbor.
// The snake's head is excluded from the occupancy check so only body
// segments block adjacency. With no candidate the food holds position.
func (f *Food) flee(head core.Point, snake *Snake, dir Direction, g *Grid) {
	neighbors := [4]core.Point{
		f.Cur.Add(0, -g.CellSize),
		f.Cur.Add(0, g.CellSize),
		f.Cur.Add(-g.CellSize, 0),
		f.Cur.Add(g.CellSize, 0),
	}

	candidates := make([]core.Point, 0, 4)
	for _, n := range neighbors {
		if g.Occupiable(n, snake, true) {
			candidates = append(candidates, n)
		}
	}

	if best, ok := bestCandidate(candidates, head, dir, g, false); ok {
		f.Cur = best
	}
}

// bestCandidate returns the strictly highest-scored candidate, first
// encountered winning ties. ok is false when candidates is empty.
func bestCandidate(candidates []core.Point, head core.Point, dir Direction, g *Grid, longEscape bool) (core.Point, bool) {
	bestScore := math.Inf(-1)
	var best core.Point
	found := false

	for _, c := range candidates {
		score := scoreCandidate(c, head, dir, g, longEscape)
		if score > bestScore {
			bestScore = score
			best = c
			found = true
		}
	}
	return best, found
}

// scoreCandidate rates an escape cell: base score is the Euclidean distance
// from the snake's head, plus a bonus for moving against the snake's current
// travel direction, a flat bonus for long-escape candidates, and a penalty
// for cells on the arena border.
func scoreCandidate(cand, head core.Point, dir Direction, g *Grid, longEscape bool) float64 {
	score := core.Dist(cand, head)

	switch dir {
	case DirUp:
		if cand.Y > head.Y {
			score += awayFromSnakeBonus
		}
	case DirDown:
		if cand.Y < head.Y {
			score += awayFromSnakeBonus
		}
	case DirLeft:
		if cand.X > head.X {
			score += awayFromSnakeBonus
		}
	case DirRight:
		if cand.X < head.X {
			score += awayFromSnakeBonus
		}
	}

	if longEscape {
		score += longEscapeBonus
	}
	if g.OnBorder(cand) {
		score -= borderPenalty
	}
	return score
}
