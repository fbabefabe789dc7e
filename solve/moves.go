package solve

import "github.com/niyagame/niya/board"

// LegalMoves returns the legal move indices at a node, in ascending
// cell-index order, which deterministic best-move selection depends on.
// When last < 0 (the true game-opening node), the legal moves are the 12
// opening cells; otherwise they are every empty cell whose tile shares a
// Plant or Poem value with b[last].
func LegalMoves(b board.Board, takenMask uint16, last int) []int {
	if last < 0 {
		moves := make([]int, len(board.OpeningCells))
		copy(moves, board.OpeningCells[:])
		return moves
	}
	target := b[last]
	moves := make([]int, 0, board.NumCells)
	for i := 0; i < board.NumCells; i++ {
		if takenMask&(1<<uint(i)) != 0 {
			continue
		}
		if b[i].Compatible(target) {
			moves = append(moves, i)
		}
	}
	return moves
}
