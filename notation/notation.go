// Package notation implements a compact, round-trippable text format for
// a Board: four rows of four "<plant><poem>" digit pairs, rows separated
// by "/". For example the sorted pool in row-major order begins
// "00 01 02 03/10 11 12 13/...".
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/tile"
)

// cellRegex matches one "<plant><poem>" cell token: two decimal digits,
// each in 0..tile.NumValues-1.
var cellRegex = regexp.MustCompile(`^[0-3][0-3]$`)

// Format renders b as four '/'-separated rows of space-separated cell
// tokens, in row-major order.
func Format(b board.Board) string {
	var rows []string
	for r := 0; r < board.Dim; r++ {
		cells := make([]string, board.Dim)
		for c := 0; c < board.Dim; c++ {
			t := b[r*board.Dim+c]
			cells[c] = fmt.Sprintf("%d%d", t.Plant, t.Poem)
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "/")
}

// Parse reverses Format. It returns an error describing the malformed
// token rather than panicking, since notation input may originate from
// a user-supplied string.
func Parse(s string) (board.Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != board.Dim {
		return board.Board{}, fmt.Errorf("notation: expected %d rows, got %d", board.Dim, len(rows))
	}

	var tiles [board.NumCells]tile.Tile
	for r, row := range rows {
		cells := strings.Fields(row)
		if len(cells) != board.Dim {
			return board.Board{}, fmt.Errorf("notation: row %d: expected %d cells, got %d", r, board.Dim, len(cells))
		}
		for c, tok := range cells {
			if !cellRegex.MatchString(tok) {
				return board.Board{}, fmt.Errorf("notation: row %d cell %d: malformed token %q", r, c, tok)
			}
			plant, _ := strconv.Atoi(tok[0:1])
			poem, _ := strconv.Atoi(tok[1:2])
			tiles[r*board.Dim+c] = tile.Tile{Plant: plant, Poem: poem}
		}
	}
	return board.Board(tiles), nil
}
