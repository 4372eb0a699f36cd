package main

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/cleanse-cli/internal/ingest"
	"github.com/sells-group/cleanse-cli/internal/pipeline"
	"github.com/sells-group/cleanse-cli/internal/store"
)

var batchCorrections string

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Clean several input files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		table, err := loadCorrections(batchCorrections)
		if err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		zap.L().Info("processing batch",
			zap.Int("files", len(args)),
			zap.Int("concurrency", cfg.Batch.MaxConcurrentFiles),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrentFiles)

		var succeeded, failed atomic.Int64

		for _, input := range args {
			g.Go(func() error {
				log := zap.L().With(zap.String("input", input))

				records, err := readAndClean(gctx, st, input, table)
				if err != nil {
					failed.Add(1)
					log.Error("cleaning failed", zap.Error(err))
					return nil // don't abort the batch on individual failure
				}

				succeeded.Add(1)
				log.Info("cleaning complete", zap.Int("records_out", records))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch processing")
		}

		zap.L().Info("batch complete",
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

// readAndClean reads one input file and runs the pipeline over it,
// returning the surviving record count.
func readAndClean(ctx context.Context, st store.Store, input string, table pipeline.CorrectionTable) (int, error) {
	records, err := ingest.ReadFile(input)
	if err != nil {
		return 0, eris.Wrap(err, "read input")
	}
	result, err := runClean(ctx, st, input, table, records)
	if err != nil {
		return 0, err
	}
	return result.Summary.RecordsOut, nil
}

func init() {
	batchCmd.Flags().StringVar(&batchCorrections, "corrections", "", "path to corrections YAML (overrides config)")
	rootCmd.AddCommand(batchCmd)
}
