package grid

// Grid is an immutable wall occupancy map. walls[y][x] is true for a wall.
type Grid struct {
	width, height int
	walls         [][]bool
}

// NewGrid constructs a Grid from a non-empty, rectangular wall map indexed
// walls[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], walls[y])
	}

	return &Grid{width: w, height: h, walls: cells}, nil
}

// Bordered returns a width×height grid whose outer ring is wall and whose
// interior is open. Handy for rooms and corridors.
func Bordered(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	walls := make([][]bool, height)
	for y := range walls {
		walls[y] = make([]bool, width)
		for x := range walls[y] {
			walls[y][x] = x == 0 || y == 0 || x == width-1 || y == height-1
		}
	}

	return &Grid{width: width, height: height, walls: walls}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether (x,y) is blocked. Out-of-bounds cells are walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[y][x]
}

// Blocked reports whether p is a wall or outside the grid.
func (g *Grid) Blocked(p Position) bool {
	return g.IsWall(p.X, p.Y)
}

// FreeCells returns every non-wall cell in row-major order (y, then x).
func (g *Grid) FreeCells() []Position {
	free := make([]Position, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.walls[y][x] {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}
	return free
}

// Corners returns the four inner corners of a bordered maze:
// (1,1), (1,H-2), (W-2,1), (W-2,H-2).
func (g *Grid) Corners() [4]Position {
	top, right := g.height-2, g.width-2
	return [4]Position{
		{X: 1, Y: 1},
		{X: 1, Y: top},
		{X: right, Y: 1},
		{X: right, Y: top},
	}
}

// Index maps p to a row-major index: y*Width + x.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}
