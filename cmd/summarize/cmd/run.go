package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kgraph-hub/trapi-summary/internal/config"
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/summarizer"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

var (
	runFile       string
	runQid        string
	runMaxHops    int
	runJSON       bool
	runConfigPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Summarize a local file of TRAPI answers (one agent's message per entry)",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(runFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", runFile, err)
		}

		var answers []trapi.Answer
		if err := json.Unmarshal(data, &answers); err != nil {
			return fmt.Errorf("parsing %s: %w", runFile, err)
		}

		var idPatterns map[string]string
		if runConfigPath != "" {
			cfg, err := config.Load(runConfigPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", runConfigPath, err)
			}
			idPatterns = cfg.IDPatterns
		}

		summary, err := summarizer.SummarizeWithIDPatterns(context.Background(), runQid, answers, runMaxHops, idPatterns)
		if err != nil {
			return err
		}

		if runJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		printReport(answers, summary)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to a JSON file containing a []trapi.Answer array")
	runCmd.Flags().StringVar(&runQid, "qid", "", "query id to stamp on the summary")
	runCmd.Flags().IntVar(&runMaxHops, "max-hops", 3, "maximum path length, in hops, between drug and disease")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the full FinalSummary as JSON instead of a human-readable report")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a config.toml to source id_patterns from (defaults to the built-in PMID/NCT patterns)")
	_ = runCmd.MarkFlagRequired("file")
	_ = runCmd.MarkFlagRequired("qid")
	rootCmd.AddCommand(runCmd)
}

func printReport(answers []trapi.Answer, summary model.FinalSummary) {
	fmt.Printf("qid: %s\n", summary.Meta.Qid)
	fmt.Printf("agents: %s\n", humanize.Comma(int64(len(answers))))
	fmt.Printf("results: %s\n", humanize.Comma(int64(len(summary.Results))))
	fmt.Printf("paths:   %s\n", humanize.Comma(int64(len(summary.Paths))))
	fmt.Printf("nodes:   %s\n", humanize.Comma(int64(len(summary.Nodes))))
	fmt.Printf("edges:   %s\n", humanize.Comma(int64(len(summary.Edges))))
	fmt.Printf("publications: %s\n", humanize.Comma(int64(len(summary.Publications))))

	for _, r := range summary.Results {
		fmt.Printf("  %s -> %s  score=%.3f  paths=%d\n", r.DrugName, r.Object, r.Score, len(r.Paths))
	}
}
