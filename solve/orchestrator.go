package solve

import (
	"fmt"
	"io"

	"github.com/niyagame/niya/board"
)

// Solve runs the full two-phase search over a canonical board: Phase 1
// finds P1's best opening, Phase 2 (unless skipP2) enumerates P2's best
// reply to every opening, reusing Phase 1's transposition table.
func Solve(b board.Board, skipP2 bool) Result {
	return solve(b, skipP2, nil)
}

// SolveTrace behaves like Solve but, when trace is non-nil, writes a
// per-node minimax trace (masks, alpha-beta window, moves explored,
// pruning decisions) to it as the search runs. It exists for the
// single-board debug tool only: the extra formatting cost is not paid by
// the sampling path, which always calls Solve.
func SolveTrace(b board.Board, skipP2 bool, trace io.Writer) Result {
	return solve(b, skipP2, trace)
}

func solve(b board.Board, skipP2 bool, trace io.Writer) Result {
	tt := NewTranspositionTable()

	var res Result
	res.BestMove = -1
	bestScore := AlphaSentinel - 1

	if trace != nil {
		fmt.Fprintln(trace, "--- Starting Root Search (P1) ---")
		fmt.Fprintf(trace, "Opening moves: %v\n", board.OpeningCells)
	}

	for _, cell := range board.OpeningCells {
		m1 := uint16(1) << uint(cell)
		if trace != nil {
			fmt.Fprintf(trace, "\n>> P1 exploring move: %d\n", cell)
		}
		score, outcome, depth := Minimax(b, m1, 0, cell, false, AlphaSentinel, BetaSentinel, 1, tt, trace)
		if trace != nil {
			fmt.Fprintf(trace, "<< P1 evaluated move %d: (Score: %d, Outcome: %s, Depth: %d)\n", cell, score, outcome, depth)
		}
		if score > bestScore {
			bestScore = score
			res.BestMove = cell
			res.Outcome = outcome
			res.GameDepth = depth
		}
	}

	res.IsP1Win = bestScore == ScoreP1Wins
	res.IsDraw = bestScore == ScoreDraw
	if res.BestMove >= 0 {
		res.BestMovePosition = board.ClassifyPosition(res.BestMove)
	}

	if skipP2 {
		return res
	}

	res.P2Responses = make([]P2Response, 0, len(board.OpeningCells))
	for _, cell := range board.OpeningCells {
		m1 := uint16(1) << uint(cell)
		replies := LegalMoves(b, m1, cell)

		var worstScore int8
		var worstOutcome board.Outcome
		bestReply := -1

		if len(replies) == 0 {
			// P2 is blockaded immediately after P1's opening move.
			worstScore = ScoreP1Wins
			worstOutcome = board.Blockade
		} else {
			worstScore = BetaSentinel
			for _, reply := range replies {
				m2 := uint16(1) << uint(reply)
				score, outcome, _ := Minimax(b, m1, m2, reply, true, AlphaSentinel, BetaSentinel, 2, tt, trace)
				if score < worstScore {
					worstScore = score
					worstOutcome = outcome
					bestReply = reply
				}
			}
		}

		pr := P2Response{
			P1Move:     cell,
			P2BestMove: bestReply,
			IsP1Win:    worstScore == ScoreP1Wins,
			Outcome:    worstOutcome,
		}
		res.P2Responses = append(res.P2Responses, pr)

		switch {
		case worstScore == ScoreP1Wins:
			res.P1WinsCount++
		case worstScore == ScoreP1Loses:
			res.P2WinsCount++
		default:
			res.DrawsCount++
		}
	}

	return res
}
