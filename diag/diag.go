// Package diag renders boards and solve results for human inspection:
// the plain board, the board with the best move highlighted, a result
// summary, and the full P2 response table.
package diag

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/solve"
	"github.com/niyagame/niya/tile"
)

var printer = message.NewPrinter(language.English)

// PrintRank writes a permutation rank with thousands separators, e.g.
// "20,922,789,888,000".
func PrintRank(w io.Writer, label string, rank uint64) {
	printer.Fprintf(w, "%s: %d\n", label, rank)
}

// PrintBoard writes the plain 4x4 board.
func PrintBoard(w io.Writer, b board.Board) {
	printBoard(w, b, -1)
}

// PrintBoardHighlighted writes the board with cell highlight marked by
// > < around its contents.
func PrintBoardHighlighted(w io.Writer, b board.Board, highlight int) {
	printBoard(w, b, highlight)
}

func printBoard(w io.Writer, b board.Board, highlight int) {
	border := "." + strings.Repeat("-----------------", board.Dim) + "."
	fmt.Fprintln(w, border)
	for r := 0; r < board.Dim; r++ {
		line := "| "
		for c := 0; c < board.Dim; c++ {
			idx := r*board.Dim + c
			t := b[idx]
			plant := tile.Plants[t.Plant]
			poem := tile.Poems[t.Poem]
			if idx == highlight {
				line += fmt.Sprintf(">%-2d %s:%s< | ", idx, plant, poem)
			} else {
				line += fmt.Sprintf(" %-2d %s:%s  | ", idx, plant, poem)
			}
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, border)
	}
}

// PrintResult writes the P1 result summary, including how long the solve took.
func PrintResult(w io.Writer, r solve.Result, elapsed time.Duration) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 18)+" P1 RESULT "+strings.Repeat("=", 18))
	fmt.Fprintf(w, "  - P1 Win:      %v\n", r.IsP1Win)
	fmt.Fprintf(w, "  - Best Move:   %d (%s)\n", r.BestMove, r.BestMovePosition)
	fmt.Fprintf(w, "  - Outcome:     %s\n", r.Outcome)
	fmt.Fprintf(w, "  - Game Depth:  %d moves\n", r.GameDepth)
	fmt.Fprintf(w, "  - Solve Time:  %.3fs\n", elapsed.Seconds())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  P2 Analysis Summary:")
	total := r.P1WinsCount + r.P2WinsCount + r.DrawsCount
	printer.Fprintf(w, "    P1 wins %d/%d openings | P2 wins %d/%d | Draws %d/%d\n",
		r.P1WinsCount, total, r.P2WinsCount, total, r.DrawsCount, total)
	fmt.Fprintln(w, strings.Repeat("=", 47))
}

// PrintP2Table writes the full 12-row P2 response table.
func PrintP2Table(w io.Writer, r solve.Result) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 18)+" P2 RESPONSES "+strings.Repeat("=", 18))

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "  P1 Opens\tP2 Responds\tWinner\tOutcome\n")
	for _, resp := range r.P2Responses {
		winner := "P2"
		switch {
		case resp.Outcome == board.Draw:
			winner = "Draw"
		case resp.IsP1Win:
			winner = "P1"
		}
		fmt.Fprintf(tw, "  Move %d\tMove %d\t%s\t%s\n", resp.P1Move, resp.P2BestMove, winner, resp.Outcome)
	}
	tw.Flush()

	fmt.Fprintln(w, "  "+strings.Repeat("-", 45))
	printer.Fprintf(w, "  P1 wins %d | P2 wins %d | Draws %d\n", r.P1WinsCount, r.P2WinsCount, r.DrawsCount)

	losses := lo.FilterMap(r.P2Responses, func(resp solve.P2Response, _ int) (int, bool) {
		return resp.P1Move, !resp.IsP1Win && resp.Outcome != board.Draw
	})
	if len(losses) > 0 {
		fmt.Fprintf(w, "  P1 loses after opening moves: %v\n", losses)
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))
}
