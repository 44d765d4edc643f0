// Package core provides fundamental types and utilities shared by the snake
// engine and its hosts: grid coordinates, directions, wall policies, input
// actions and the character screen buffer.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/rng"
)

// Point is a grid cell. It is a comparable value, usable as a map key.
type Point struct {
	X, Y int
}

// Add returns p translated by v.
func Add(p, v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the unit step for the direction. Y grows downward.
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

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

// WallMode is the boundary policy of the grid.
type WallMode int

const (
	// WallNormal kills the snake when it leaves the grid.
	WallNormal WallMode = iota
	// WallWrap teleports the head to the opposite edge.
	WallWrap
	// WallObstacles keeps normal walls and adds static blocking cells.
	WallObstacles
)

// WallModes lists every wall mode in declaration order.
var WallModes = []WallMode{WallNormal, WallWrap, WallObstacles}

func (m WallMode) String() string {
	switch m {
	case WallNormal:
		return "normal"
	case WallWrap:
		return "wrap"
	case WallObstacles:
		return "obstacles"
	default:
		return "unknown"
	}
}

// Title returns a display name for menus.
func (m WallMode) Title() string {
	switch m {
	case WallNormal:
		return "Classic"
	case WallWrap:
		return "Wrap-around"
	case WallObstacles:
		return "Obstacles"
	default:
		return "Unknown"
	}
}

// ParseWallMode converts a name ("normal", "wrap", "obstacles") to a WallMode.
func ParseWallMode(s string) (WallMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return WallNormal, nil
	case "wrap":
		return WallWrap, nil
	case "obstacles":
		return WallObstacles, nil
	}
	return WallNormal, fmt.Errorf("unknown wall mode %q (want normal, wrap or obstacles)", s)
}

// Wrap folds p back into a width x height grid. Each axis is handled
// independently; it is only meaningful for points at most one step outside.
func Wrap(p Point, width, height int) Point {
	switch {
	case p.X < 0:
		p.X = width - 1
	case p.X >= width:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = height - 1
	case p.Y >= height:
		p.Y = 0
	}
	return p
}

// OutOfBounds reports whether p lies outside a width x height grid.
func OutOfBounds(p Point, width, height int) bool {
	return p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height
}

// Occupancy is a set of occupied cells.
type Occupancy map[Point]struct{}

// NewOccupancy builds a set from any number of point groups.
func NewOccupancy(groups ...[]Point) Occupancy {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	occ := make(Occupancy, n)
	for _, g := range groups {
		for _, p := range g {
			occ[p] = struct{}{}
		}
	}
	return occ
}

// Add marks p as occupied.
func (o Occupancy) Add(p Point) {
	o[p] = struct{}{}
}

// Has reports whether p is occupied.
func (o Occupancy) Has(p Point) bool {
	_, ok := o[p]
	return ok
}

// RandomEmptyCell picks a uniformly random free cell of the grid, scanning
// rows top to bottom. ok is false when every cell is occupied.
func RandomEmptyCell(r *rng.RNG, width, height int, occupied Occupancy) (p Point, ok bool) {
	empty := make([]Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Point{X: x, Y: y}
			if !occupied.Has(c) {
				empty = append(empty, c)
			}
		}
	}

	if len(empty) == 0 {
		return Point{}, false
	}
	return rng.Choice(r, empty), true
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
