package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cleanse-cli/internal/ingest"
	"github.com/sells-group/cleanse-cli/internal/model"
	"github.com/sells-group/cleanse-cli/internal/pipeline"
	"github.com/sells-group/cleanse-cli/internal/store"
)

var (
	cleanInput       string
	cleanCorrections string
	cleanOutput      string
	cleanDryRun      bool
	cleanNoStore     bool
)

// cleanOutputDoc is what clean writes to --output or stdout.
type cleanOutputDoc struct {
	Records []model.Customer `json:"records"`
	Summary model.Summary    `json:"summary"`
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a customer dataset from a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("clean"); err != nil {
			return err
		}

		records, err := ingest.ReadFile(cleanInput)
		if err != nil {
			return eris.Wrap(err, "clean: read input")
		}
		zap.L().Info("parsed input",
			zap.String("input", cleanInput),
			zap.Int("records", len(records)),
		)

		if cleanDryRun {
			return printJSON(records)
		}

		table, err := loadCorrections(cleanCorrections)
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

		result, err := runClean(ctx, st, cleanInput, table, records)
		if err != nil {
			return err
		}

		doc := cleanOutputDoc{Records: result.Dataset.Records(), Summary: result.Summary}
		if cleanOutput != "" {
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return eris.Wrap(err, "clean: marshal output")
			}
			if err := os.WriteFile(cleanOutput, data, 0o644); err != nil {
				return eris.Wrap(err, "clean: write output")
			}
			zap.L().Info("wrote cleaned dataset", zap.String("output", cleanOutput))
			return nil
		}
		return printJSON(doc)
	},
}

// runClean executes the pipeline over records, recording the run in st
// when st is non-nil.
func runClean(ctx context.Context, st store.Store, input string, table pipeline.CorrectionTable, records []model.Customer) (*pipeline.Result, error) {
	var runID string
	if st != nil {
		run, err := st.CreateRun(ctx, input)
		if err != nil {
			return nil, eris.Wrap(err, "clean: create run")
		}
		runID = run.ID
	}

	cleaner := pipeline.New(cfg.Clean, table)
	result, err := cleaner.Run(model.NewDataset(records))
	if err != nil {
		if st != nil {
			if failErr := st.FailRun(ctx, runID, err); failErr != nil {
				zap.L().Warn("failed to record run failure", zap.Error(failErr))
			}
		}
		return nil, eris.Wrap(err, "clean: pipeline")
	}

	if st != nil {
		if err := st.CompleteRun(ctx, runID, &result.Summary); err != nil {
			zap.L().Warn("failed to record run result", zap.Error(err))
		}
	}
	return result, nil
}

// loadCorrections resolves the correction table, flag over config.
func loadCorrections(path string) (pipeline.CorrectionTable, error) {
	if path == "" {
		path = cfg.Clean.CorrectionsPath
	}
	table, err := ingest.LoadCorrections(path)
	if err != nil {
		return nil, eris.Wrap(err, "clean: load corrections")
	}
	return table, nil
}

// openStore opens the configured run-history backend, or returns nil
// when recording is disabled.
func openStore(ctx context.Context) (store.Store, error) {
	if cleanNoStore || cfg.Store.Driver == "none" {
		return nil, nil
	}
	st, err := store.New(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	return st, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal json")
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInput, "input", "", "path to CSV or XLSX file (required)")
	cleanCmd.Flags().StringVar(&cleanCorrections, "corrections", "", "path to corrections YAML (overrides config)")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "", "write cleaned records and summary to this JSON file")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "parse and validate input only, skip cleaning")
	cleanCmd.Flags().BoolVar(&cleanNoStore, "no-store", false, "do not record this run in the history store")
	_ = cleanCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cleanCmd)
}
