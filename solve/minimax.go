package solve

import (
	"fmt"
	"io"
	"strings"

	"github.com/niyagame/niya/board"
)

// Score sentinels. Real scores are always in {-1, 0, 1}; the ±2 sentinels
// bound the alpha-beta window from outside that range. Everything here
// is exact integer arithmetic — no floating point.
const (
	ScoreP1Loses int8 = -1
	ScoreDraw    int8 = 0
	ScoreP1Wins  int8 = 1

	AlphaSentinel int8 = -2
	BetaSentinel  int8 = 2
)

// Minimax is the exact recursive solver: given a board, both players'
// placement masks, the previous move, whose turn it is, an alpha-beta
// pruning window, the current ply, and a transposition table, it returns
// the game-theoretic score from P1's perspective, the terminal Outcome
// class, and the ply at which the game ends under optimal play from this
// node onward.
//
// trace, when non-nil, receives a per-node dump of masks, the alpha-beta
// window, moves explored, and pruning decisions, meant for single-board
// debugging only; callers on the sampling path always pass nil so the
// hot recursion never pays for string formatting.
func Minimax(b board.Board, p1Mask, p2Mask uint16, last int, p1ToMove bool, alpha, beta int8, depth int8, tt *TranspositionTable, trace io.Writer) (int8, board.Outcome, int8) {
	key := ttKey{p1Mask: p1Mask, p2Mask: p2Mask, last: int8(last), p1Move: p1ToMove}
	if tt != nil {
		if v, ok := tt.lookup(key); ok {
			return v.score, v.outcome, v.depth
		}
	}

	indent := ""
	player := "P2"
	if p1ToMove {
		player = "P1"
	}
	if trace != nil {
		indent = strings.Repeat("  ", int(depth))
		fmt.Fprintf(trace, "\n%s--- MINIMAX (Depth: %d, Player: %s) ---\n", indent, depth, player)
		fmt.Fprintf(trace, "%sP1 Mask: %016b\n", indent, p1Mask)
		fmt.Fprintf(trace, "%sP2 Mask: %016b\n", indent, p2Mask)
		fmt.Fprintf(trace, "%sAlpha: %d, Beta: %d\n", indent, alpha, beta)
	}

	// 1. Previous-move win check: the player who just moved may have won.
	prevMask := p2Mask
	if !p1ToMove {
		prevMask = p1Mask
	}
	if outcome, won := board.CheckWin(prevMask); won {
		score := ScoreP1Wins
		if p1ToMove {
			score = ScoreP1Loses
		}
		if trace != nil {
			fmt.Fprintf(trace, "%s==> Win found for previous player (%s). Score: %d\n", indent, outcome, score)
		}
		if tt != nil {
			tt.store(key, ttValue{score: score, outcome: outcome, depth: depth})
		}
		return score, outcome, depth
	}

	// 2. Terminal fill: all 16 cells played with no winner is a draw.
	if depth == board.NumCells {
		if trace != nil {
			fmt.Fprintf(trace, "%s==> Board is full. Score: %d\n", indent, ScoreDraw)
		}
		if tt != nil {
			tt.store(key, ttValue{score: ScoreDraw, outcome: board.Draw, depth: board.NumCells})
		}
		return ScoreDraw, board.Draw, board.NumCells
	}

	// 3. Legal moves; none means the player to move is blockaded.
	taken := p1Mask | p2Mask
	moves := LegalMoves(b, taken, last)
	if trace != nil {
		fmt.Fprintf(trace, "%sLegal moves: %v\n", indent, moves)
	}
	if len(moves) == 0 {
		score := ScoreP1Wins
		if p1ToMove {
			score = ScoreP1Loses
		}
		if trace != nil {
			fmt.Fprintf(trace, "%s==> No legal moves (Blockaded). Score: %d\n", indent, score)
		}
		if tt != nil {
			tt.store(key, ttValue{score: score, outcome: board.Blockade, depth: depth})
		}
		return score, board.Blockade, depth
	}

	// 4. Recurse with alpha-beta.
	alphaOrig, betaOrig := alpha, beta
	var bestScore int8
	var bestOutcome board.Outcome
	var bestDepth int8
	cutoff := false

	if p1ToMove {
		bestScore = AlphaSentinel
		for _, mv := range moves {
			if trace != nil {
				fmt.Fprintf(trace, "%sP1 exploring move: %d\n", indent, mv)
			}
			childScore, childOutcome, childDepth := Minimax(b, p1Mask|(1<<uint(mv)), p2Mask, mv, false, alpha, beta, depth+1, tt, trace)
			if childScore > bestScore {
				bestScore, bestOutcome, bestDepth = childScore, childOutcome, childDepth
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if beta <= alpha {
				cutoff = true
				if trace != nil {
					fmt.Fprintf(trace, "%s!! Beta Pruning (alpha=%d, beta=%d) on move %d\n", indent, alpha, beta, mv)
				}
				break
			}
		}
		if trace != nil {
			fmt.Fprintf(trace, "%s--> P1 returns max_eval: %d, outcome: %s\n", indent, bestScore, bestOutcome)
		}
	} else {
		bestScore = BetaSentinel
		for _, mv := range moves {
			if trace != nil {
				fmt.Fprintf(trace, "%sP2 exploring move: %d\n", indent, mv)
			}
			childScore, childOutcome, childDepth := Minimax(b, p1Mask, p2Mask|(1<<uint(mv)), mv, true, alpha, beta, depth+1, tt, trace)
			if childScore < bestScore {
				bestScore, bestOutcome, bestDepth = childScore, childOutcome, childDepth
			}
			if bestScore < beta {
				beta = bestScore
			}
			if beta <= alpha {
				cutoff = true
				if trace != nil {
					fmt.Fprintf(trace, "%s!! Alpha Pruning (alpha=%d, beta=%d) on move %d\n", indent, alpha, beta, mv)
				}
				break
			}
		}
		if trace != nil {
			fmt.Fprintf(trace, "%s--> P2 returns min_eval: %d, outcome: %s\n", indent, bestScore, bestOutcome)
		}
	}

	// A value at or outside the entry window is only a bound, unless it is
	// already the lowest or highest possible score.
	exact := (bestScore > alphaOrig || bestScore == ScoreP1Loses) &&
		(bestScore < betaOrig || bestScore == ScoreP1Wins)
	if tt != nil && !cutoff && exact {
		// Only exact values are cached; see ttable.go.
		tt.store(key, ttValue{score: bestScore, outcome: bestOutcome, depth: bestDepth})
	}
	return bestScore, bestOutcome, bestDepth
}
