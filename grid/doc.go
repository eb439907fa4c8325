// Package grid models a rectangular maze of walls and open floor as an
// immutable, 4-connected grid with a single start and a single goal cell.
//
// What:
//
//   - Grid wraps a rectangular matrix of passable / impassable cells.
//   - Cell, Direction and State are the coordinates the search engine works in;
//     a State is a cell together with the direction a walker is facing.
//   - Parse / FromLines build a Grid from the text form ('#' wall, '.' floor,
//     'S' start, 'E' goal).
//   - ConnectedComponents / Connected group open cells into regions.
//   - Render draws the maze back as text with a set of cells highlighted.
//
// Coordinates:
//
//	Row grows downwards (South), Col grows to the right (East).
//	Row-major indices: idx = Row*Width + Col.
//	State indices:     idx*4 + Facing.
//
// Complexity:
//
//   - Parse:               O(W×H) time and memory.
//   - Passable / InBounds: O(1).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - Connected:           O(1) after the first call (components are cached).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrMalformedGrid: rows have differing lengths.
//   - ErrMissingMarker: zero or more than one start / goal marker.
//   - ErrUnknownSymbol: a character outside "#.SE".
//   - ErrInvalidTransition: rotation or step with an undefined Direction.
package grid
