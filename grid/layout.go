package grid

import (
	"fmt"
	"strings"
)

// Layout glyphs.
const (
	GlyphWall    = '%'
	GlyphFood    = '.'
	GlyphCapsule = 'o'
	GlyphStart   = 'P'
	GlyphGhost   = 'G'
	GlyphEmpty   = ' '
)

// Layout is a parsed text maze: walls plus the interesting cells on it.
// Food, Capsules and Ghosts are listed in row-major order (y, then x).
type Layout struct {
	Grid     *Grid
	Start    Position
	Food     []Position
	Capsules []Position
	Ghosts   []Position
}

// Parse reads a layout from text. Leading and trailing newlines are ignored;
// the remaining lines must all have the same length.
func Parse(text string) (*Layout, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines reads a layout whose rows are given top to bottom.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph, ErrNoStart or
// ErrMultipleStarts for malformed input.
func ParseLines(lines []string) (*Layout, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	walls := make([][]bool, h)
	for y := range walls {
		walls[y] = make([]bool, w)
	}

	var (
		lay    Layout
		starts int
	)
	// Walk bottom-up so the collected cells come out row-major in maze coordinates.
	for y := 0; y < h; y++ {
		row := lines[h-1-y]
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, h-1-y, len(row), w)
		}
		for x := 0; x < w; x++ {
			p := Position{X: x, Y: y}
			switch c := row[x]; c {
			case GlyphWall:
				walls[y][x] = true
			case GlyphFood:
				lay.Food = append(lay.Food, p)
			case GlyphCapsule:
				lay.Capsules = append(lay.Capsules, p)
			case GlyphStart:
				lay.Start = p
				starts++
			case GlyphGhost:
				lay.Ghosts = append(lay.Ghosts, p)
			case GlyphEmpty:
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownGlyph, c, h-1-y, x)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	lay.Grid = &Grid{width: w, height: h, walls: walls}
	return &lay, nil
}

// String renders the layout back to its text form.
func (l *Layout) String() string {
	g := l.Grid
	cells := make([][]byte, g.height)
	for y := range cells {
		cells[y] = make([]byte, g.width)
		for x := range cells[y] {
			if g.walls[y][x] {
				cells[y][x] = GlyphWall
			} else {
				cells[y][x] = GlyphEmpty
			}
		}
	}
	mark := func(ps []Position, c byte) {
		for _, p := range ps {
			cells[p.Y][p.X] = c
		}
	}
	mark(l.Food, GlyphFood)
	mark(l.Capsules, GlyphCapsule)
	mark(l.Ghosts, GlyphGhost)
	cells[l.Start.Y][l.Start.X] = GlyphStart

	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		sb.Write(cells[y])
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
