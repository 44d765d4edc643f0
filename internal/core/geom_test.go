package core

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/rng"
)

func TestAdd(t *testing.T) {
	got := Add(Point{X: 1, Y: 2}, Point{X: 3, Y: 4})
	if got != (Point{X: 4, Y: 6}) {
		t.Errorf("Add() = %v, expected (4, 6)", got)
	}
}

func TestPointEquality(t *testing.T) {
	if (Point{X: 1, Y: 2}) != (Point{X: 1, Y: 2}) {
		t.Error("equal points should compare equal")
	}
	if (Point{X: 1, Y: 2}) == (Point{X: 2, Y: 1}) {
		t.Error("different points should not compare equal")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"left edge", Point{X: -1, Y: 5}, Point{X: 9, Y: 5}},
		{"right edge", Point{X: 10, Y: 5}, Point{X: 0, Y: 5}},
		{"top edge", Point{X: 5, Y: -1}, Point{X: 5, Y: 9}},
		{"bottom edge", Point{X: 5, Y: 10}, Point{X: 5, Y: 0}},
		{"corner", Point{X: -1, Y: 10}, Point{X: 9, Y: 0}},
		{"in bounds", Point{X: 3, Y: 7}, Point{X: 3, Y: 7}},
		{"origin", Point{X: 0, Y: 0}, Point{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, 10, 10)
			if got != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
			// Idempotent once in bounds
			if again := Wrap(got, 10, 10); again != got {
				t.Errorf("Wrap not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{X: -1, Y: 5}, true},
		{Point{X: 10, Y: 5}, true},
		{Point{X: 5, Y: -1}, true},
		{Point{X: 5, Y: 10}, true},
		{Point{X: 5, Y: 5}, false},
		{Point{X: 0, Y: 0}, false},
		{Point{X: 9, Y: 9}, false},
	}

	for _, tc := range tests {
		if got := OutOfBounds(tc.p, 10, 10); got != tc.expected {
			t.Errorf("OutOfBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: double opposite should be itself", d)
		}
		sum := Add(d.Vector(), d.Opposite().Vector())
		if sum != (Point{}) {
			t.Errorf("%s: vector plus opposite vector = %v, expected zero", d, sum)
		}
	}
	if DirUp.Opposite() != DirDown || DirLeft.Opposite() != DirRight {
		t.Error("unexpected opposite mapping")
	}
}

func TestRandomEmptyCell(t *testing.T) {
	r := rng.New(1)
	occupied := NewOccupancy([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}})

	for i := 0; i < 50; i++ {
		p, ok := RandomEmptyCell(r, 2, 2, occupied)
		if !ok {
			t.Fatal("expected an empty cell")
		}
		if occupied.Has(p) {
			t.Fatalf("RandomEmptyCell returned occupied cell %v", p)
		}
		if OutOfBounds(p, 2, 2) {
			t.Fatalf("RandomEmptyCell returned out-of-bounds cell %v", p)
		}
	}
}

func TestRandomEmptyCellFull(t *testing.T) {
	occupied := NewOccupancy([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, []Point{{X: 0, Y: 1}, {X: 1, Y: 1}})
	if _, ok := RandomEmptyCell(rng.New(1), 2, 2, occupied); ok {
		t.Error("expected no empty cell on a full grid")
	}
}

func TestParseWallMode(t *testing.T) {
	for _, m := range WallModes {
		got, err := ParseWallMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseWallMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseWallMode("lava"); err == nil {
		t.Error("expected error for unknown wall mode")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}
