package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/aggregate"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/config"
)

var flagOutput string

func init() {
	aggregateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "path for the exported JSON (defaults to the configured output)")
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Fetch the configured feeds and export matching articles as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(cfg.Aggregator.Feeds) == 0 {
			return fmt.Errorf("no feeds configured")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		kw := aggregate.CompileKeywords(cfg.Aggregator)
		result := aggregate.FetchAll(ctx, cfg.Aggregator.Feeds, kw)
		for _, ferr := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "[warn] %v\n", ferr)
		}

		aggregate.SortNewestFirst(result.Articles)

		out := flagOutput
		if out == "" {
			out = cfg.GetOutput()
		}
		if err := aggregate.Write(out, result.Articles, cfg.GetExportLimit()); err != nil {
			return err
		}

		n := len(result.Articles)
		if limit := cfg.GetExportLimit(); limit > 0 && n > limit {
			n = limit
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[OK] Wrote %d articles to %s\n", n, out)
		return nil
	},
}
