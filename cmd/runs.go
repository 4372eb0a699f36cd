package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/cleanse-cli/internal/model"
	"github.com/sells-group/cleanse-cli/internal/store"
)

var (
	runsStatus string
	runsLimit  int
	runsOffset int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past cleaning runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("runs"); err != nil {
			return err
		}

		st, err := store.New(ctx, cfg.Store)
		if err != nil {
			return eris.Wrap(err, "runs: open store")
		}
		defer st.Close()

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Status: model.RunStatus(runsStatus),
			Limit:  runsLimit,
			Offset: runsOffset,
		})
		if err != nil {
			return eris.Wrap(err, "runs: list")
		}

		return printJSON(runs)
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "filter by status (running|complete|failed)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
	runsCmd.Flags().IntVar(&runsOffset, "offset", 0, "offset into the result list")
	rootCmd.AddCommand(runsCmd)
}
