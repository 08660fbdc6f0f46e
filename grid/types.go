package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and layout parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownGlyph indicates a layout character outside the supported set.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrNoStart indicates a layout without an agent start cell.
	ErrNoStart = errors.New("grid: layout has no start cell")
	// ErrMultipleStarts indicates a layout with more than one agent start cell.
	ErrMultipleStarts = errors.New("grid: layout has more than one start cell")
)

// Position is a cell coordinate. It is a plain value and safe to use as a map key.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Move returns the position reached by applying d once.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |dx|+|dy| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Euclidean returns the straight-line distance between p and q.
func (p Position) Euclidean(q Position) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the five agent actions.
type Direction int

const (
	// Stop keeps the agent in place.
	Stop Direction = iota
	// North moves one cell towards larger y.
	North
	// South moves one cell towards smaller y.
	South
	// East moves one cell towards larger x.
	East
	// West moves one cell towards smaller x.
	West
)

// Cardinal lists the four moving directions in the order successors are generated.
var Cardinal = [4]Direction{North, South, East, West}

// offsets maps each Direction to its (dx, dy) step.
var offsets = [...][2]int{
	Stop:  {0, 0},
	North: {0, 1},
	South: {0, -1},
	East:  {1, 0},
	West:  {-1, 0},
}

var names = [...]string{
	Stop:  "Stop",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

// Vector returns the (dx, dy) offset of d. Unknown directions yield (0, 0).
func (d Direction) Vector() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// Valid reports whether d is one of the five defined directions.
func (d Direction) Valid() bool {
	return d >= Stop && d <= West
}

// Reverse returns the opposite direction; Stop is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}
	return names[d]
}
