package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/dataset"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/rank"
	"github.com/spf13/cobra"
)

var (
	evalInput       string
	evalAnnotations string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure ranking alignment against annotator ranklists",
	Long: `evaluate ranks each resume's job analyses by adjusted score and compares
the ranking to the human annotator ranklists using Kendall's tau-b.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evalInput, "input", "i", "inference.jsonl", "inference results JSONL")
	evaluateCmd.Flags().StringVarP(&evalAnnotations, "annotations", "a", "", "annotator ranklists JSON")
	_ = evaluateCmd.MarkFlagRequired("annotations")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	reports, err := dataset.LoadInference(evalInput)
	if err != nil {
		return err
	}
	annotations, err := dataset.LoadAnnotations(evalAnnotations)
	if err != nil {
		return err
	}
	if len(annotations) == 0 {
		return fmt.Errorf("no ranklists in %s", evalAnnotations)
	}

	results := make([]rank.ResumeResult, len(reports))
	for i, r := range reports {
		results[i] = rank.ResumeResult{Key: r.Key, Items: r.Items}
	}

	metrics := rank.Evaluate(results, annotations)

	for _, res := range results {
		if adjusted, ok := metrics.AdjustedScores[res.Key]; ok {
			slog.Debug("resume ranked",
				"resume", res.Key,
				"adjusted_scores", adjusted,
				"ranked_indices", metrics.RankedIndices[res.Key],
			)
		}
	}

	printMetrics(os.Stdout, metrics, results)
	return nil
}

func printMetrics(w io.Writer, m rank.Metrics, results []rank.ResumeResult) {
	fmt.Fprintln(w, "Performance Metrics:")
	fmt.Fprintf(w, "Overall Mean Kendall's Tau: %.3f\n", m.OverallMean)
	fmt.Fprintf(w, "Overall Standard Deviation of Tau: %.3f\n", m.OverallStd)
	fmt.Fprintln(w, "Per-Resume Mean Kendall's Tau:")
	for _, res := range results {
		if mean, ok := m.PerResumeMean[res.Key]; ok {
			fmt.Fprintf(w, "  %s: %.3f\n", res.Key, mean)
		}
	}
	fmt.Fprintln(w, "Per-Ranklist Mean Kendall's Tau:")
	for _, ranklist := range slices.Sorted(maps.Keys(m.PerRanklistMean)) {
		fmt.Fprintf(w, "  %s: %.3f\n", ranklist, m.PerRanklistMean[ranklist])
	}
	fmt.Fprintf(w, "Inter-Annotator Mean Kendall's Tau: %.3f\n", m.InterAnnotator)
}
