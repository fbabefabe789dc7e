package canon

import (
	"fmt"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/tile"
)

// TotalPerms is 16! = 20,922,789,888,000, the number of distinct board
// layouts. It fits comfortably in a uint64, so ranks are plain uint64s.
var TotalPerms = factorial(board.NumCells)

func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

// Rank returns the integer r in [0, 16!) such that b is the r-th
// permutation of the sorted tile pool in lexicographic order, via
// factorial-number-system decomposition: for each cell in turn, find the
// index of that cell's tile among the remaining pool, accumulate
// k*(15-i)!, and remove it from the pool.
func Rank(b board.Board) uint64 {
	pool := poolSlice()
	var r uint64
	for i := 0; i < board.NumCells; i++ {
		k := indexOf(pool, b[i])
		if k < 0 {
			panic(fmt.Sprintf("canon: Rank: tile %v at cell %d not found in remaining pool (duplicate or invalid board)", b[i], i))
		}
		r += uint64(k) * factorial(board.NumCells-1-i)
		pool = append(pool[:k], pool[k+1:]...)
	}
	return r
}

// Unrank reverses Rank: it returns the r-th permutation of the sorted
// tile pool, or ok=false if r >= 16!.
func Unrank(r uint64) (board.Board, bool) {
	if r >= TotalPerms {
		return board.Board{}, false
	}
	pool := poolSlice()
	remaining := r
	var out board.Board
	for i := 0; i < board.NumCells; i++ {
		f := factorial(board.NumCells - 1 - i)
		k := remaining / f
		remaining %= f
		out[i] = pool[k]
		pool = append(pool[:k], pool[k+1:]...)
	}
	return out, true
}

func poolSlice() []tile.Tile {
	p := tile.Pool()
	return append([]tile.Tile(nil), p[:]...)
}

func indexOf(pool []tile.Tile, t tile.Tile) int {
	for i, pt := range pool {
		if pt == t {
			return i
		}
	}
	return -1
}
