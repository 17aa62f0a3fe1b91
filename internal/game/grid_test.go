package game

import (
	"math/rand"
	"testing"

	"github.com/quietfall/tui-pursuit/internal/core"
)

func testGrid() *Grid {
	return NewGrid(400, 400, 20, 100)
}

func TestGridShrink(t *testing.T) {
	g := testGrid()

	w, h := g.Shrink(20)
	if w != 360 || h != 360 {
		t.Errorf("Shrink(20) = %dx%d, expected 360x360", w, h)
	}

	// Monotone down to the floor, never below
	prevW, prevH := w, h
	for range 20 {
		w, h = g.Shrink(20)
		if w > prevW || h > prevH {
			t.Fatalf("Arena grew from %dx%d to %dx%d", prevW, prevH, w, h)
		}
		if w < 100 || h < 100 {
			t.Fatalf("Arena shrank below minimum: %dx%d", w, h)
		}
		prevW, prevH = w, h
	}
	if w != 100 || h != 100 {
		t.Errorf("Arena should bottom out at 100x100, got %dx%d", w, h)
	}
}

func TestGridShrinkClampsPartialStep(t *testing.T) {
	g := NewGrid(120, 120, 20, 100)

	// 120 - 40 would undershoot the floor
	if w, h := g.Shrink(20); w != 100 || h != 100 {
		t.Errorf("Shrink from 120 = %dx%d, expected clamp to 100x100", w, h)
	}
}

func TestGridContains(t *testing.T) {
	g := testGrid()

	if !g.Contains(core.Point{X: 0, Y: 0}) {
		t.Error("Origin should be inside")
	}
	if !g.Contains(core.Point{X: 380, Y: 380}) {
		t.Error("(380, 380) should be inside")
	}
	if g.Contains(core.Point{X: 400, Y: 200}) {
		t.Error("(400, 200) should be outside")
	}
	if g.Contains(core.Point{X: 200, Y: -20}) {
		t.Error("(200, -20) should be outside")
	}
}

func TestGridClampInside(t *testing.T) {
	g := testGrid()

	if got := g.ClampInside(core.Point{X: 400, Y: -20}); got != (core.Point{X: 380, Y: 0}) {
		t.Errorf("ClampInside(400, -20) = %v, expected (380, 0)", got)
	}
	if got := g.ClampInside(core.Point{X: 200, Y: 200}); got != (core.Point{X: 200, Y: 200}) {
		t.Errorf("ClampInside should not move interior points, got %v", got)
	}

	g.Shrink(20)
	if got := g.ClampInside(core.Point{X: 380, Y: 380}); got != (core.Point{X: 340, Y: 340}) {
		t.Errorf("ClampInside after shrink = %v, expected (340, 340)", got)
	}
}

func TestGridOnBorder(t *testing.T) {
	g := testGrid()

	for _, p := range []core.Point{{X: 0, Y: 100}, {X: 100, Y: 0}, {X: 380, Y: 200}, {X: 200, Y: 380}} {
		if !g.OnBorder(p) {
			t.Errorf("%v should be on the border", p)
		}
	}
	if g.OnBorder(core.Point{X: 100, Y: 100}) {
		t.Error("(100, 100) should not be on the border")
	}
}

func TestGridOccupiable(t *testing.T) {
	g := testGrid()
	s := NewSnake(core.Point{X: 100, Y: 100}, 3, 20)

	if g.Occupiable(s.Head(), s, false) {
		t.Error("Head cell should not be occupiable")
	}
	if !g.Occupiable(s.Head(), s, true) {
		t.Error("Head cell should be occupiable when the head is excluded")
	}
	if g.Occupiable(core.Point{X: 80, Y: 100}, s, true) {
		t.Error("Body cell should block even with the head excluded")
	}
	if g.Occupiable(core.Point{X: -20, Y: 100}, s, true) {
		t.Error("Out-of-bounds cell should not be occupiable")
	}
	if !g.Occupiable(core.Point{X: 200, Y: 200}, s, false) {
		t.Error("Free interior cell should be occupiable")
	}
}

func TestGridRandomFreeCell(t *testing.T) {
	g := testGrid()
	s := NewSnake(core.Point{X: 200, Y: 200}, 3, 20)
	rng := rand.New(rand.NewSource(7))

	for range 100 {
		p, ok := g.RandomFreeCell(rng, s)
		if !ok {
			t.Fatal("RandomFreeCell should find a cell on a mostly empty arena")
		}
		if !g.Contains(p) {
			t.Fatalf("Spawned cell %v is out of bounds", p)
		}
		if p.X%g.CellSize != 0 || p.Y%g.CellSize != 0 {
			t.Fatalf("Spawned cell %v is not cell-aligned", p)
		}
		if s.At(p, false) {
			t.Fatalf("Spawned cell %v is on the snake", p)
		}
	}
}

func TestGridRandomFreeCellFullBoard(t *testing.T) {
	// 2x1 arena fully covered by the snake: no cell is free
	g := NewGrid(40, 20, 20, 20)
	s := NewSnake(core.Point{X: 20, Y: 0}, 2, 20)
	rng := rand.New(rand.NewSource(1))

	if _, ok := g.RandomFreeCell(rng, s); ok {
		t.Error("RandomFreeCell should report failure on a full board")
	}
}

func TestGridFreeCells(t *testing.T) {
	g := NewGrid(60, 60, 20, 20)
	s := NewSnake(core.Point{X: 20, Y: 20}, 2, 20)

	free := g.FreeCells(s)
	if len(free) != 9-2 {
		t.Errorf("FreeCells returned %d cells, expected 7", len(free))
	}
	for _, p := range free {
		if s.At(p, false) {
			t.Errorf("FreeCells returned snake cell %v", p)
		}
	}
}
