// Command niyasolve runs the worker-pool board sampler, solving shuffled
// boards continuously (or until a target count is reached) and
// persisting results to a SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/niyagame/niya/config"
	"github.com/niyagame/niya/sample"
	"github.com/niyagame/niya/store"
)

func main() {
	var (
		configPath string
		dbPath     string
		workers    int
		batchSize  int
		skipP2     bool
		target     int
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "niyasolve",
		Short: "Sample and solve random Niya boards, persisting results to SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			cfg, err := config.New(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.SetDBPath(dbPath)
			}
			if cmd.Flags().Changed("workers") {
				cfg.SetWorkers(workers)
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.SetBatchSize(batchSize)
			}
			if cmd.Flags().Changed("skip-p2") {
				cfg.SetSkipP2(skipP2)
			}
			if cmd.Flags().Changed("target") {
				cfg.SetTarget(target)
			}

			st, err := store.New(cfg.DBPath())
			if err != nil {
				return fmt.Errorf("niyasolve: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			opts := sample.Options{
				Workers:   cfg.Workers(),
				BatchSize: cfg.BatchSize(),
				SkipP2:    cfg.SkipP2(),
				Target:    cfg.Target(),
			}

			if err := sample.Run(ctx, opts, st); err != nil {
				return fmt.Errorf("niyasolve: %w", err)
			}

			count, err := store.SolvedCount(context.Background(), cfg.DBPath())
			if err != nil {
				return fmt.Errorf("niyasolve: %w", err)
			}
			fmt.Printf("Total boards solved: %d\n", count)
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&dbPath, "db", filepath.Join("data", "niya.db"), "path to the SQLite database file")
	root.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines (default: available cores)")
	root.Flags().IntVar(&batchSize, "batch-size", 0, "per-worker flush batch size")
	root.Flags().BoolVar(&skipP2, "skip-p2", false, "skip Phase 2 P2 reply enumeration")
	root.Flags().IntVar(&target, "target", 0, "total boards to solve before stopping (0 = unbounded)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("niyasolve-failed")
		os.Exit(1)
	}
}
