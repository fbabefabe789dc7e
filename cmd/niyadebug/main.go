// Command niyadebug solves a single board by permutation rank and prints
// a full diagnostic trace: the board, the solve result, the best move
// highlighted, and the P2 response table. With --interactive it instead
// drops into a small command shell for exploring many ranks in one
// session.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/niyagame/niya/canon"
	"github.com/niyagame/niya/diag"
	"github.com/niyagame/niya/notation"
	"github.com/niyagame/niya/solve"
)

// randomRank draws a uniformly-random rank in [0, canon.TotalPerms) from
// frand's CSPRNG byte stream.
func randomRank() uint64 {
	return binary.BigEndian.Uint64(frand.Bytes(8)) % canon.TotalPerms
}

func main() {
	var (
		findCanonical bool
		verbose       bool
		interactive   bool
	)

	root := &cobra.Command{
		Use:   "niyadebug [rank]",
		Short: "Solve a single Niya board by permutation rank, with full diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if interactive {
				return runShell(findCanonical, verbose)
			}

			var rank uint64
			if len(args) == 1 {
				var err error
				rank, err = parseRank(args[0])
				if err != nil {
					return err
				}
			} else {
				rank = randomRank()
			}

			return debugOne(rank, findCanonical, verbose)
		},
	}

	root.Flags().BoolVar(&findCanonical, "find-canonical", false, "search forward from rank for the next symmetry-canonical board")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and per-node minimax tracing")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive debug shell")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("niyadebug-failed")
		os.Exit(1)
	}
}

func parseRank(s string) (uint64, error) {
	var n uint64
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0, fmt.Errorf("niyadebug: invalid rank %q: %w", s, err)
	}
	if n >= canon.TotalPerms {
		return 0, fmt.Errorf("niyadebug: rank %d is out of range [0, %d)", n, canon.TotalPerms)
	}
	return n, nil
}

func debugOne(rank uint64, findCanonical, verbose bool) error {
	fmt.Printf("[*] Debugging with permutation index: %d\n", rank)

	b, ok := canon.Unrank(rank)
	if !ok {
		return fmt.Errorf("niyadebug: invalid permutation index")
	}

	if findCanonical {
		fmt.Println("[*] Searching for the next canonical board...")
		for !canon.IsCanonical8(b) {
			rank++
			if rank >= canon.TotalPerms {
				return fmt.Errorf("niyadebug: no canonical board found before running out of ranks")
			}
			b, ok = canon.Unrank(rank)
			if !ok {
				return fmt.Errorf("niyadebug: invalid permutation index")
			}
		}
		fmt.Printf("[*] Found canonical board at index: %d\n", rank)
	}

	fmt.Println("\n==================== BOARD ====================")
	diag.PrintBoard(os.Stdout, b)
	fmt.Println("===============================================")
	fmt.Println("[*] Notation:", notation.Format(b))

	fmt.Println("\n[*] Solving...")
	start := time.Now()
	var result solve.Result
	if verbose {
		fmt.Println("[*] Verbose mode: dumping per-node minimax trace")
		result = solve.SolveTrace(b, false, os.Stdout)
	} else {
		result = solve.Solve(b, false)
	}
	elapsed := time.Since(start)

	diag.PrintResult(os.Stdout, result, elapsed)

	if result.BestMove >= 0 {
		fmt.Println("\n================= BEST MOVE HIGHLIGHTED =================")
		diag.PrintBoardHighlighted(os.Stdout, b, result.BestMove)
		fmt.Println("===========================================================")
	}

	diag.PrintP2Table(os.Stdout, result)
	return nil
}

func runShell(findCanonical, verbose bool) error {
	rl, err := readline.New("niyadebug> ")
	if err != nil {
		return fmt.Errorf("niyadebug: interactive shell: %w", err)
	}
	defer rl.Close()

	fmt.Println("Interactive niyadebug shell. Commands: rank <n>, random, notation <text>, quit")
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		fields, err := shellquote.Split(line)
		if err != nil || len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "random":
			if err := debugOne(randomRank(), findCanonical, verbose); err != nil {
				fmt.Println("error:", err)
			}
		case "rank":
			if len(fields) != 2 {
				fmt.Println("usage: rank <n>")
				continue
			}
			rank, err := parseRank(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := debugOne(rank, findCanonical, verbose); err != nil {
				fmt.Println("error:", err)
			}
		case "notation":
			if len(fields) != 2 {
				fmt.Println("usage: notation <row1/row2/row3/row4>")
				continue
			}
			b, err := notation.Parse(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			diag.PrintBoard(os.Stdout, b)
			fmt.Println("[*] Rank:", canon.Rank(canon.CanonicalizeFast(b)))
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}
