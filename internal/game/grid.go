package game

import (
	"math/rand"

	"github.com/quietfall/tui-pursuit/internal/core"
)

// maxSpawnDraws bounds rejection sampling before falling back to exhaustive
// free-cell enumeration. Matters only when the arena is nearly full.
const maxSpawnDraws = 32

// Grid is the arena: a fixed-cell coordinate space with mutable bounds.
// Dimensions only shrink over a session, never below MinSize.
type Grid struct {
	Width    int
	Height   int
	CellSize int
	MinSize  int
}

// NewGrid creates an arena with the given initial dimensions.
func NewGrid(width, height, cellSize, minSize int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		MinSize:  minSize,
	}
}

// Contains reports whether p lies inside the current bounds.
func (g *Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Occupiable reports whether p is inside the arena and not covered by the
// snake. With excludeHead the head segment is skipped, which the food agent
// uses so the pursuer's own cell doesn't distort adjacency scoring.
func (g *Grid) Occupiable(p core.Point, s *Snake, excludeHead bool) bool {
	if !g.Contains(p) {
		return false
	}
	return !s.At(p, excludeHead)
}

// Shrink reduces both dimensions by 2*step, clamped below at MinSize.
// Returns the new dimensions. Called exactly once per food eaten.
func (g *Grid) Shrink(step int) (int, int) {
	g.Width = max(g.MinSize, g.Width-2*step)
	g.Height = max(g.MinSize, g.Height-2*step)
	return g.Width, g.Height
}

// ClampInside clamps a position into [0, dimension-CellSize] on both axes,
// used to relocate entities after a shrink.
func (g *Grid) ClampInside(p core.Point) core.Point {
	return core.Point{
		X: core.Clamp(p.X, 0, g.Width-g.CellSize),
		Y: core.Clamp(p.Y, 0, g.Height-g.CellSize),
	}
}

// OnBorder reports whether p lies on the outermost row or column.
func (g *Grid) OnBorder(p core.Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.Width-g.CellSize || p.Y == g.Height-g.CellSize
}

// Cols returns the number of cells per row.
func (g *Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells per column.
func (g *Grid) Rows() int {
	return g.Height / g.CellSize
}

// FreeCells returns every cell not covered by the snake, in row-major order.
func (g *Grid) FreeCells(s *Snake) []core.Point {
	free := make([]core.Point, 0, g.Cols()*g.Rows())
	for y := 0; y < g.Height; y += g.CellSize {
		for x := 0; x < g.Width; x += g.CellSize {
			p := core.Point{X: x, Y: y}
			if !s.At(p, false) {
				free = append(free, p)
			}
		}
	}
	return free
}

// RandomFreeCell picks a uniformly random cell not covered by the snake.
// Uses bounded rejection sampling, then exhaustive enumeration so a nearly
// full arena can't loop forever. Returns false only when no cell is free.
func (g *Grid) RandomFreeCell(rng *rand.Rand, s *Snake) (core.Point, bool) {
	for range maxSpawnDraws {
		p := core.Point{
			X: rng.Intn(g.Cols()) * g.CellSize,
			Y: rng.Intn(g.Rows()) * g.CellSize,
		}
		if !s.At(p, false) {
			return p, true
		}
	}

	free := g.FreeCells(s)
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
