package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/quietfall/tui-pursuit/internal/core"
)

var foodT0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFoodIdleHoldsPosition(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	snake := NewSnake(core.Point{X: 100, Y: 100}, 2, 20)
	f := NewFood(core.Point{X: 300, Y: 300}, 1)
	f.Prev = core.Point{X: 280, Y: 300} // Stale anchor from an earlier move

	f.Tick(foodT0, snake, DirRight, g, rng, p)

	if f.Cur != (core.Point{X: 300, Y: 300}) {
		t.Errorf("Idle food moved to %v", f.Cur)
	}
	if f.Prev != f.Cur {
		t.Error("Idle tick should refresh the interpolation anchor")
	}
	if f.Chasing() {
		t.Error("Food far from the snake should not be chased")
	}
}

func TestFoodFleesFromNearbySnake(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	snake := NewSnake(core.Point{X: 100, Y: 100}, 2, 20)
	f := NewFood(core.Point{X: 140, Y: 100}, 1) // Exactly at flee distance

	f.Tick(foodT0, snake, DirRight, g, rng, p)

	if !f.Chasing() {
		t.Fatal("Food within flee distance should enter the chased state")
	}
	// Best candidate is the cell straight away from the head
	if f.Cur != (core.Point{X: 160, Y: 100}) {
		t.Errorf("Food fled to %v, expected (160, 100)", f.Cur)
	}
	if f.Prev != (core.Point{X: 140, Y: 100}) {
		t.Errorf("Prev should anchor at the pre-tick position, got %v", f.Prev)
	}
}

func TestFoodChaseStateClearsWhenSnakeLeaves(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	f := NewFood(core.Point{X: 200, Y: 200}, 1)

	near := NewSnake(core.Point{X: 200, Y: 240}, 2, 20)
	f.Tick(foodT0, near, DirUp, g, rng, p)
	if !f.Chasing() {
		t.Fatal("Expected chased state")
	}

	far := NewSnake(core.Point{X: 20, Y: 20}, 2, 20)
	f.Tick(foodT0.Add(p.FoodInterval), far, DirUp, g, rng, p)
	if f.Chasing() {
		t.Error("Chase state should clear once the snake is out of range")
	}
}

func TestFoodBodyBlocksFleeButHeadDoesNot(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))

	// Head right next to the food: the head cell must not block candidate
	// generation, only body segments do.
	snake := &Snake{
		cell: 20,
		segs: []Segment{
			{Cur: core.Point{X: 180, Y: 200}}, // Head, west of food
			{Cur: core.Point{X: 200, Y: 180}}, // Body, north of food
			{Cur: core.Point{X: 200, Y: 220}}, // Body, south of food
		},
	}
	f := NewFood(core.Point{X: 200, Y: 200}, 0)

	f.Tick(foodT0, snake, DirRight, g, rng, p)

	// North and south are blocked by the body; west is the head cell
	// (allowed, but scores 0 distance), east scores 40. The food flees east.
	if f.Cur != (core.Point{X: 220, Y: 200}) {
		t.Errorf("Food fled to %v, expected (220, 200)", f.Cur)
	}
}

func TestFoodHoldsWhenFullySurrounded(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))

	snake := &Snake{
		cell: 20,
		segs: []Segment{
			{Cur: core.Point{X: 160, Y: 200}}, // Head (not adjacent to food)
			{Cur: core.Point{X: 180, Y: 200}},
			{Cur: core.Point{X: 200, Y: 180}},
			{Cur: core.Point{X: 200, Y: 220}},
			{Cur: core.Point{X: 220, Y: 200}},
		},
	}
	f := NewFood(core.Point{X: 200, Y: 200}, 0)

	f.Tick(foodT0, snake, DirRight, g, rng, p)

	if f.Cur != (core.Point{X: 200, Y: 200}) {
		t.Errorf("Surrounded food should hold position, moved to %v", f.Cur)
	}
}

func TestFoodLongEscapeFiresInsideWindow(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	p.LongEscapeChance = 1 // Remove the dice roll
	rng := rand.New(rand.NewSource(1))
	f := NewFood(core.Point{X: 200, Y: 200}, 1)

	// Start the chase
	now := foodT0
	snake := NewSnake(f.Cur.Add(-40, 0), 2, 20)
	f.Tick(now, snake, DirRight, g, rng, p)
	if !f.Chasing() {
		t.Fatal("Expected chased state")
	}

	// Stay in pursuit until the window opens; the head shadows the food
	for now.Sub(foodT0) < p.LongEscapeMinChase {
		now = now.Add(p.FoodInterval)
		snake = NewSnake(f.Cur.Add(-40, 0), 2, 20)
		before := f.Cur
		f.Tick(now, snake, DirRight, g, rng, p)
		if f.LongEscapes == 0 {
			// Escaped: must be inside the eligibility window
			if now.Sub(foodT0) < p.LongEscapeMinChase {
				t.Fatalf("Long escape fired before the window at %v", now.Sub(foodT0))
			}
			break
		}
		// Regular flee moves at most one cell
		if core.Dist(before, f.Cur) > float64(g.CellSize) {
			t.Fatalf("Regular flee jumped from %v to %v", before, f.Cur)
		}
	}

	if f.LongEscapes != 0 {
		t.Fatal("Long escape should have fired at the window start with chance 1")
	}
	if f.Chasing() {
		t.Error("Long escape should clear the chase timer")
	}

	// The budget is spent: no further board-wide relocation, ever
	for range 100 {
		now = now.Add(p.FoodInterval)
		snake = NewSnake(f.Cur.Add(-40, 0), 2, 20)
		before := f.Cur
		f.Tick(now, snake, DirRight, g, rng, p)
		if core.Dist(before, f.Cur) > float64(g.CellSize) {
			t.Fatalf("Board-wide relocation after the budget was spent: %v -> %v", before, f.Cur)
		}
		if f.LongEscapes < 0 {
			t.Fatal("Long escape budget went negative")
		}
	}
}

func TestFoodNoLongEscapeAfterWindow(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	p.LongEscapeChance = 1
	rng := rand.New(rand.NewSource(1))
	f := NewFood(core.Point{X: 200, Y: 200}, 1)

	// Chase starts, then the next food tick happens long after the window
	snake := NewSnake(f.Cur.Add(-40, 0), 2, 20)
	f.Tick(foodT0, snake, DirRight, g, rng, p)

	late := foodT0.Add(p.LongEscapeMaxChase + time.Second)
	snake = NewSnake(f.Cur.Add(-40, 0), 2, 20)
	before := f.Cur
	f.Tick(late, snake, DirRight, g, rng, p)

	if f.LongEscapes != 1 {
		t.Error("Long escape must not fire outside the chase window")
	}
	if core.Dist(before, f.Cur) > float64(g.CellSize) {
		t.Errorf("Food jumped outside the window: %v -> %v", before, f.Cur)
	}
}

func TestFoodNoLongEscapeWithoutBudget(t *testing.T) {
	g := testGrid()
	p := DefaultParams()
	p.LongEscapeChance = 1
	rng := rand.New(rand.NewSource(1))
	f := NewFood(core.Point{X: 200, Y: 200}, 0)

	now := foodT0
	// Continuous pursuit well past the window: only adjacent moves allowed
	for range 80 {
		snake := NewSnake(f.Cur.Add(-40, 0), 2, 20)
		before := f.Cur
		f.Tick(now, snake, DirRight, g, rng, p)
		if core.Dist(before, f.Cur) > float64(g.CellSize) {
			t.Fatalf("Board-wide relocation with zero budget: %v -> %v", before, f.Cur)
		}
		now = now.Add(p.FoodInterval)
	}
}

func TestScoreCandidatePrefersOpposingDirection(t *testing.T) {
	g := testGrid()
	head := core.Point{X: 200, Y: 200}

	// Snake travels up: cells below the head get the opposing-sense bonus
	below := scoreCandidate(core.Point{X: 200, Y: 240}, head, DirUp, g, false)
	above := scoreCandidate(core.Point{X: 200, Y: 160}, head, DirUp, g, false)
	if below <= above {
		t.Errorf("Equidistant cell against the travel direction should win: below=%v above=%v", below, above)
	}
}

func TestScoreCandidateBorderPenalty(t *testing.T) {
	g := testGrid()
	head := core.Point{X: 200, Y: 200}

	border := scoreCandidate(core.Point{X: 0, Y: 200}, head, DirRight, g, false)
	interior := scoreCandidate(core.Point{X: 20, Y: 200}, head, DirRight, g, false)

	// The border cell is 20 further from the head (+20) but penalized (-20),
	// so the interior cell must not lose by distance alone.
	if border >= interior+20 {
		t.Errorf("Border penalty not applied: border=%v interior=%v", border, interior)
	}
}

func TestScoreCandidateLongEscapeBonus(t *testing.T) {
	g := testGrid()
	head := core.Point{X: 200, Y: 200}
	cand := core.Point{X: 100, Y: 100}

	plain := scoreCandidate(cand, head, DirRight, g, false)
	long := scoreCandidate(cand, head, DirRight, g, true)
	if long-plain != longEscapeBonus {
		t.Errorf("Long escape bonus = %v, expected %v", long-plain, float64(longEscapeBonus))
	}
}
