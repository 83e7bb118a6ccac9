package main

import (
	"fmt"
	"log/slog"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/dataset"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/llm"
	"github.com/spf13/cobra"
)

var (
	distillTrain  string
	distillModel  string
	distillOut    string
	distillLabels string
)

var distillCmd = &cobra.Command{
	Use:   "distill",
	Short: "Generate teacher-model analyses for labeled training pairs",
	Long: `distill runs every labeled resume/job-description pair in the training CSV
through the teacher model and records the structured analyses as JSONL.
The ground-truth label is pinned in the prompt; a failed generation falls
back to a placeholder carrying that label so the dataset keeps its row
count. Predicted labels are snapshotted to CSV every ten rows and at
completion.`,
	RunE: runDistill,
}

func init() {
	distillCmd.Flags().StringVarP(&distillTrain, "train", "t", "", "training CSV (columns: resume_text, job_description_text, label)")
	distillCmd.Flags().StringVarP(&distillModel, "model", "m", "", "model to use (default "+llm.DefaultModel+")")
	distillCmd.Flags().StringVarP(&distillOut, "output", "o", "distillation_results.jsonl", "results JSONL path")
	distillCmd.Flags().StringVar(&distillLabels, "labels", "distillation_classes.csv", "predicted labels CSV path")
	_ = distillCmd.MarkFlagRequired("train")
}

func runDistill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rows, err := dataset.LoadTrain(distillTrain)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows in %s", distillTrain)
	}

	apiKey, err := config.GeminiAPIKey()
	if err != nil {
		return err
	}
	client, err := llm.New(ctx, llm.Config{APIKey: apiKey, Model: modelOrEnv(distillModel)})
	if err != nil {
		return err
	}

	out, err := dataset.NewDistillationWriter(distillOut, distillLabels)
	if err != nil {
		return err
	}

	slog.Info("distilling training pairs", "rows", len(rows), "model", client.Model())
	for i, row := range rows {
		label, err := analysis.ParseClassification(row.Label)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		a := client.Distill(ctx, row.ResumeText, row.JobDescriptionText, label)
		if err := out.Append(a); err != nil {
			return err
		}
		slog.Debug("pair distilled", "row", i+1, "classification", a.Classification)
	}

	if err := out.Close(); err != nil {
		return err
	}
	slog.Info("distillation completed", "results", distillOut, "labels", distillLabels, "rows", out.Count())
	return nil
}
