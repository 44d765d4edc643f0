package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(core.Point{X: 15, Y: 10})

	want := []core.Point{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}
	body := s.Body()
	if len(body) != len(want) {
		t.Fatalf("Len = %d, want %d", len(body), len(want))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
	if s.Heading() != core.DirRight {
		t.Errorf("Heading = %v, want right", s.Heading())
	}
	if !s.Alive() {
		t.Error("new snake should be alive")
	}
	if s.SelfCollision() {
		t.Error("fresh straight body should not self-collide")
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	tests := []struct {
		name    string
		turn    core.Direction
		pending bool
	}{
		{"reverse", core.DirLeft, false},
		{"up", core.DirUp, true},
		{"down", core.DirDown, true},
		{"same", core.DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(core.Point{X: 5, Y: 5})
			s.Turn(tt.turn)
			d, ok := s.Pending()
			if ok != tt.pending {
				t.Fatalf("pending = %v, want %v", ok, tt.pending)
			}
			if ok && d != tt.turn {
				t.Errorf("pending direction = %v, want %v", d, tt.turn)
			}
		})
	}
}

func TestAdvanceCommitsPendingTurn(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})
	s.Turn(core.DirDown)
	s.Advance(10, 10, core.WallNormal)

	if s.Heading() != core.DirDown {
		t.Errorf("Heading = %v, want down", s.Heading())
	}
	if _, ok := s.Pending(); ok {
		t.Error("pending turn should be cleared after a move")
	}
	if got := s.Head(); got != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Head = %v, want (5,6)", got)
	}
}

func TestAdvanceGrowth(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	s.Advance(20, 20, core.WallNormal)
	if s.Len() != StartLength {
		t.Fatalf("Len without growth = %d, want %d", s.Len(), StartLength)
	}

	s.Grow(2)
	s.Advance(20, 20, core.WallNormal)
	if s.Len() != StartLength+1 || s.GrowthPending() != 1 {
		t.Fatalf("after first move: Len = %d, growth = %d", s.Len(), s.GrowthPending())
	}
	s.Advance(20, 20, core.WallNormal)
	if s.Len() != StartLength+2 || s.GrowthPending() != 0 {
		t.Fatalf("after second move: Len = %d, growth = %d", s.Len(), s.GrowthPending())
	}
	s.Advance(20, 20, core.WallNormal)
	if s.Len() != StartLength+2 {
		t.Errorf("Len after growth consumed = %d, want %d", s.Len(), StartLength+2)
	}
}

func TestAdvanceWalls(t *testing.T) {
	tests := []struct {
		name  string
		mode  core.WallMode
		alive bool
		head  core.Point
	}{
		{"normal", core.WallNormal, false, core.Point{X: 9, Y: 5}},
		{"obstacles", core.WallObstacles, false, core.Point{X: 9, Y: 5}},
		{"wrap", core.WallWrap, true, core.Point{X: 0, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(core.Point{X: 9, Y: 5})
			before := s.Body()

			s.Advance(10, 10, tt.mode)
			if s.Alive() != tt.alive {
				t.Fatalf("Alive = %v, want %v", s.Alive(), tt.alive)
			}
			if s.Head() != tt.head {
				t.Errorf("Head = %v, want %v", s.Head(), tt.head)
			}
			if !tt.alive {
				after := s.Body()
				for i := range before {
					if before[i] != after[i] {
						t.Errorf("dead body changed at %d: %v -> %v", i, before[i], after[i])
					}
				}
			}
		})
	}
}

func TestAdvanceAfterDeathIsNoop(t *testing.T) {
	s := NewSnake(core.Point{X: 9, Y: 5})
	s.Advance(10, 10, core.WallNormal)
	s.Advance(10, 10, core.WallNormal)
	if s.Head() != (core.Point{X: 9, Y: 5}) {
		t.Errorf("dead snake moved to %v", s.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	s := &Snake{
		body: []core.Point{
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2},
		},
		alive: true,
	}
	if !s.SelfCollision() {
		t.Error("head duplicated by segment 4 should collide")
	}
}

func TestSnakeObstacleCollision(t *testing.T) {
	s := NewSnake(core.Point{X: 4, Y: 4})
	if s.ObstacleCollision(core.NewOccupancy([]core.Point{{X: 1, Y: 1}})) {
		t.Error("unexpected obstacle collision")
	}
	if !s.ObstacleCollision(core.NewOccupancy([]core.Point{{X: 4, Y: 4}})) {
		t.Error("head on obstacle should collide")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(core.Point{X: 4, Y: 4})
	body := s.Body()
	body[0] = core.Point{X: -1, Y: -1}
	if s.Head() != (core.Point{X: 4, Y: 4}) {
		t.Error("Body should return a copy")
	}
}
