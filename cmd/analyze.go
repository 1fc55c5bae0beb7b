package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/cli"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	file             string
	json             bool
	today            string
	includeCancelled bool
	excludePending   bool
}

func newAnalyzeCmd() *cobra.Command {
	var o analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a budget snapshot file",
		Long: `Analyze reads a budget with its allocations and transactions from a TOML
snapshot and prints the category breakdown, trends and performance metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Snapshot file to analyze")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&o.today, "today", "", "Reference day for elapsed days as YYYY-MM-DD, defaults to the current day")
	cmd.Flags().BoolVar(&o.includeCancelled, "include-cancelled", false, "Count cancelled transactions")
	cmd.Flags().BoolVar(&o.excludePending, "exclude-pending", false, "Do not count pending transactions")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (o analyzeOptions) run(cmd *cobra.Command) error {
	opts := analysis.Options{
		IncludeCancelled: o.includeCancelled,
		ExcludePending:   o.excludePending,
	}

	if o.today != "" {
		today, err := types.ParseDate(o.today)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		opts.Today = today.Time()
	}

	snapshot, err := cli.LoadSnapshot(o.file)
	if err != nil {
		return err
	}

	transactions, budget := snapshot.Engine()
	result, err := analysis.Analyze(transactions, budget, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, err = fmt.Fprintln(out, cli.RenderResult(snapshot.Title(), result))
	return err
}
