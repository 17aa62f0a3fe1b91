package game

import (
	"github.com/quietfall/tui-pursuit/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposes reports whether two directions are direct reversals of each other.
func (d Direction) Opposes(other Direction) bool {
	return (d == DirUp && other == DirDown) ||
		(d == DirDown && other == DirUp) ||
		(d == DirLeft && other == DirRight) ||
		(d == DirRight && other == DirLeft)
}

// delta returns the per-tick offset for a direction, scaled by cell size.
func (d Direction) delta(cell int) (int, int) {
	switch d {
	case DirUp:
		return 0, -cell
	case DirDown:
		return 0, cell
	case DirLeft:
		return -cell, 0
	default:
		return cell, 0
	}
}

// Segment is one snake cell. Prev holds the position before the last logical
// tick and exists purely for render interpolation, never for logic.
type Segment struct {
	Cur  core.Point
	Prev core.Point
}

// Snake is the ordered segment chain, head at index 0. Segments are created
// and destroyed only by Step; length never decreases.
type Snake struct {
	segs []Segment
	cell int
}

// StepResult reports the outcome of one logical snake tick.
type StepResult struct {
	NewHead  core.Point
	Collided bool
	Ate      bool
}

// NewSnake creates a snake of the given length with its head at head and the
// body extending leftward, matching the initial rightward direction.
func NewSnake(head core.Point, length, cell int) *Snake {
	segs := make([]Segment, 0, length)
	for i := range length {
		p := core.Point{X: head.X - i*cell, Y: head.Y}
		segs = append(segs, Segment{Cur: p, Prev: p})
	}
	return &Snake{segs: segs, cell: cell}
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.segs[0].Cur
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segs)
}

// Segments returns the underlying segment chain, head first.
// Callers must treat it as read-only.
func (s *Snake) Segments() []Segment {
	return s.segs
}

// At reports whether any segment occupies p. With excludeHead the head
// segment is skipped.
func (s *Snake) At(p core.Point, excludeHead bool) bool {
	start := 0
	if excludeHead {
		start = 1
	}
	for i := start; i < len(s.segs); i++ {
		if s.segs[i].Cur == p {
			return true
		}
	}
	return false
}

// Step advances the snake one cell in dir. Collision checks run before any
// mutation: first the wall, then every existing segment (the head cell
// itself is unreachable by construction). On collision the body is left
// untouched. On success every segment's Prev is snapshotted, the new head is
// inserted at the front, and the tail is dropped unless the new head landed
// on food - growing by not shrinking. The eat check uses the food position
// as it was before any relocation triggered by this tick.
func (s *Snake) Step(dir Direction, g *Grid, food core.Point) StepResult {
	dx, dy := dir.delta(s.cell)
	cand := s.Head().Add(dx, dy)

	if !g.Contains(cand) {
		return StepResult{NewHead: cand, Collided: true}
	}
	if s.At(cand, false) {
		return StepResult{NewHead: cand, Collided: true}
	}

	for i := range s.segs {
		s.segs[i].Prev = s.segs[i].Cur
	}

	head := Segment{Cur: cand, Prev: s.segs[0].Prev}
	s.segs = append([]Segment{head}, s.segs...)

	ate := cand == food
	if !ate {
		s.segs = s.segs[:len(s.segs)-1]
	}

	return StepResult{NewHead: cand, Ate: ate}
}

// ClampInside moves every segment back into the arena after a shrink.
// Relocated segments get their interpolation anchor reset so they don't
// appear to slide across the board.
func (s *Snake) ClampInside(g *Grid) {
	for i := range s.segs {
		clamped := g.ClampInside(s.segs[i].Cur)
		if clamped != s.segs[i].Cur {
			s.segs[i].Cur = clamped
			s.segs[i].Prev = clamped
		}
	}
}
