package board

import "github.com/niyagame/niya/tile"

// Board is an ordered sequence of 16 tiles, one per cell, in row-major
// order (cell 4r+c is row r, column c). A Board is immutable once
// canonicalized; callers that need a mutated copy should build a new one.
type Board [NumCells]tile.Tile

// FromSlice builds a Board from a 16-element tile slice. Panics if the
// slice is not exactly NumCells long: a caller passing the wrong length
// here is an invariant violation, not a recoverable condition.
func FromSlice(tiles []tile.Tile) Board {
	if len(tiles) != NumCells {
		panic("board: FromSlice requires exactly 16 tiles")
	}
	var b Board
	copy(b[:], tiles)
	return b
}

// Slice returns the board's tiles as a plain slice, useful for passing to
// generic helpers that operate on []tile.Tile.
func (b Board) Slice() []tile.Tile {
	return b[:]
}

// Less reports whether b sorts strictly before o in cell-by-cell
// lexicographic order, comparing each cell's tile with tile.Less.
func (b Board) Less(o Board) bool {
	for i := 0; i < NumCells; i++ {
		if b[i] == o[i] {
			continue
		}
		return b[i].Less(o[i])
	}
	return false
}

// Equal reports whether b and o hold the same tile sequence.
func (b Board) Equal(o Board) bool {
	return b == o
}
