// Package grid models the maze an agent plans over: a rectangular wall
// occupancy grid, integer cell positions, and the fixed action set that moves
// an agent between cells.
//
// What:
//
//   - Grid wraps a rectangular [][]bool wall map and is immutable once built.
//   - Position is a comparable (x, y) cell coordinate.
//   - Direction is the closed action set {North, South, East, West, Stop}
//     with a fixed direction-to-offset mapping.
//   - Layout parses the classic text maze format ('%' walls, '.' food,
//     'o' capsules, 'P' start, 'G' ghosts).
//
// Coordinates:
//
//   - x grows to the East, y grows to the North.
//   - Row 0 of a text layout is the top of the maze, so y = height-1-row.
//   - Anything outside [0,Width)×[0,Height) is treated as a wall.
//
// Complexity:
//
//   - NewGrid, Parse:  O(W×H) time and memory.
//   - IsWall, InBounds: O(1).
//   - FreeCells:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrUnknownGlyph:    a layout contains an unsupported character.
//   - ErrNoStart:         a layout has no 'P' cell.
//   - ErrMultipleStarts:  a layout has more than one 'P' cell.
package grid
