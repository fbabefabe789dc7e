package solve

import "github.com/niyagame/niya/board"

// P2Response records, for one P1 opening move, the reply P2 judges best
// and what happens under optimal play from there.
type P2Response struct {
	P1Move     int
	P2BestMove int
	IsP1Win    bool
	Outcome    board.Outcome
}

// Result is the per-board solve record: the outcome of optimal play from
// the empty board, plus the full breakdown across all 12 P1 openings.
type Result struct {
	IsP1Win          bool
	IsDraw           bool
	BestMove         int
	Outcome          board.Outcome
	GameDepth        int8
	BestMovePosition string

	P1WinsCount int
	P2WinsCount int
	DrawsCount  int

	P2Responses []P2Response
}
