// Package snake implements the deterministic simulation of a grid snake game:
// the snake body, spawnable items with timed status effects, and the
// fixed-timestep tick engine that composes them into one atomic transition.
//
// The package has no I/O. Hosts advance a Game with wall-clock deltas, feed it
// direction intents and pause commands, and read Snapshots for rendering.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// StartLength is the body length of a freshly created snake.
const StartLength = 3

// MinWidth is the narrowest grid whose center fits the starting body: the
// head sits at Width/2 and the tail StartLength-1 cells to its left.
const MinWidth = 2 * (StartLength - 1)

// Snake is the player-controlled body. Head is body[0].
type Snake struct {
	body       []core.Point
	heading    core.Direction
	pending    core.Direction
	hasPending bool
	alive      bool
	score      int
	growth     int // Segments still to be added, one per move
}

// NewSnake creates a live snake of StartLength segments laid out
// horizontally to the left of head, heading right.
func NewSnake(head core.Point) *Snake {
	body := make([]core.Point, StartLength)
	for i := range body {
		body[i] = core.Point{X: head.X - i, Y: head.Y}
	}
	return &Snake{
		body:    body,
		heading: core.DirRight,
		alive:   true,
	}
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Pending returns the buffered turn, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Alive reports whether the snake is still alive.
func (s *Snake) Alive() bool {
	return s.alive
}

// Score returns the accumulated score.
func (s *Snake) Score() int {
	return s.score
}

// GrowthPending returns how many moves will still keep the tail.
func (s *Snake) GrowthPending() int {
	return s.growth
}

// Turn buffers d as the heading for the next move.
// A reversal onto the current heading is ignored.
func (s *Snake) Turn(d core.Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// Advance moves the snake one cell. The buffered turn is committed first.
// Leaving the grid kills the snake unless mode is WallWrap; a killed snake's
// body is left untouched.
func (s *Snake) Advance(width, height int, mode core.WallMode) {
	if !s.alive {
		return
	}

	if s.hasPending {
		s.heading = s.pending
		s.hasPending = false
	}

	head := core.Add(s.Head(), s.heading.Vector())
	if mode == core.WallWrap {
		head = core.Wrap(head, width, height)
	} else if core.OutOfBounds(head, width, height) {
		s.alive = false
		return
	}

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growth > 0 {
		s.growth--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// SelfCollision reports whether the head overlaps another segment.
// The tail cell vacated by the last move does not count.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// ObstacleCollision reports whether the head is on an obstacle.
func (s *Snake) ObstacleCollision(obstacles core.Occupancy) bool {
	return obstacles.Has(s.Head())
}

// Grow schedules n extra segments.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growth += n
	}
}

// AddScore adds n points.
func (s *Snake) AddScore(n int) {
	if n > 0 {
		s.score += n
	}
}

// kill marks the snake dead without touching its body.
func (s *Snake) kill() {
	s.alive = false
}
