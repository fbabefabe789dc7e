// Command niyanalyze runs the fixed heuristic query catalog against a
// solved-boards database and prints formatted results.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/niyagame/niya/analyze"
)

func main() {
	var (
		dbPath    string
		queryNum  int
		listFlag  bool
		verbose   bool
	)

	root := &cobra.Command{
		Use:   "niyanalyze",
		Short: "Run heuristic queries against the Niya solver database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if listFlag {
				fmt.Print(analyze.ListQueries())
				return nil
			}

			ctx := context.Background()
			solved, withP2, err := analyze.CheckDB(ctx, dbPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "[!]", err)
				os.Exit(1)
			}
			fmt.Printf("[*] Database: %s\n", dbPath)
			fmt.Printf("[*] Boards solved: %d (%d with P2 data)\n", solved, withP2)

			db, err := sql.Open("sqlite", dbPath)
			if err != nil {
				return fmt.Errorf("niyanalyze: %w", err)
			}
			defer db.Close()

			if queryNum != 0 {
				idx := queryNum - 1
				if idx < 0 || idx >= len(analyze.Queries) {
					fmt.Fprintf(os.Stderr, "[!] Query number must be between 1 and %d\n", len(analyze.Queries))
					os.Exit(1)
				}
				return runOne(ctx, db, idx)
			}

			fmt.Print(analyze.BoardIndexGuide())
			for i := range analyze.Queries {
				if err := runOne(ctx, db, i); err != nil {
					return err
				}
			}
			mean, stddev, err := analyze.DepthStats(ctx, db)
			if err == nil {
				fmt.Printf("\n  Supplementary: game_depth mean=%.2f stddev=%.2f\n", mean, stddev)
			}
			fmt.Println("\n  Done! All queries executed.")
			return nil
		},
	}

	root.Flags().StringVar(&dbPath, "db", filepath.Join("data", "niya.db"), "path to the SQLite database file")
	root.Flags().IntVarP(&queryNum, "query", "q", 0, "run a specific query by number (1-indexed)")
	root.Flags().BoolVarP(&listFlag, "list", "l", false, "list all available queries")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("niyanalyze-failed")
		os.Exit(1)
	}
}

func runOne(ctx context.Context, db *sql.DB, idx int) error {
	q := analyze.Queries[idx]
	fmt.Printf("\n%s\n  Query %d: %s\n  %s\n%s\n", repeat("=", 60), idx+1, q.Title, q.Description, repeat("=", 60))

	headers, rows, err := analyze.RunQuery(ctx, db, idx)
	if err != nil {
		fmt.Println("  Error:", err)
		return nil
	}
	fmt.Println(analyze.FormatTable(headers, rows))
	return nil
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
