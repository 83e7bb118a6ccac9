package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/dataset"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/extract"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/llm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	rankResumesDir  string
	rankJDs         string
	rankModel       string
	rankOut         string
	rankConcurrency int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resumes against every job description in a CSV",
	Long: `rank analyzes every resume in a directory against every job description in
the CSV and writes one JSONL line per resume: {"Resume_N": [analysis, ...]}.
Resumes are processed in their numeric filename order and each line is
flushed as it completes, so a long run can be tailed.`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankResumesDir, "resumes", "r", "", "directory of resume files")
	rankCmd.Flags().StringVarP(&rankJDs, "jobs", "j", "", "CSV of job descriptions (column: job_description)")
	rankCmd.Flags().StringVarP(&rankModel, "model", "m", "", "model to use (default "+llm.DefaultModel+")")
	rankCmd.Flags().StringVarP(&rankOut, "output", "o", "inference.jsonl", "output JSONL path")
	rankCmd.Flags().IntVarP(&rankConcurrency, "concurrency", "c", 4, "concurrent model calls per resume")
	_ = rankCmd.MarkFlagRequired("resumes")
	_ = rankCmd.MarkFlagRequired("jobs")
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if rankConcurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	files, err := extract.ListResumes(rankResumesDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files in %s", rankResumesDir)
	}
	jds, err := dataset.LoadJobDescriptions(rankJDs)
	if err != nil {
		return err
	}

	apiKey, err := config.GeminiAPIKey()
	if err != nil {
		return err
	}
	client, err := llm.New(ctx, llm.Config{APIKey: apiKey, Model: modelOrEnv(rankModel)})
	if err != nil {
		return err
	}

	out, err := dataset.NewInferenceWriter(rankOut)
	if err != nil {
		return err
	}
	defer out.Close()

	slog.Info("ranking resumes",
		"resumes", len(files),
		"job_descriptions", len(jds),
		"model", client.Model(),
	)

	for i, file := range files {
		resumeText, err := extract.File(file)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", file, err)
		}

		// One slot per job description; concurrent calls must not reorder.
		items := make([]analysis.ResumeAnalysis, len(jds))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(rankConcurrency)
		for j, jd := range jds {
			g.Go(func() error {
				a, err := client.Analyze(gctx, resumeText, jd)
				if err != nil {
					return fmt.Errorf("resume %d, job %d: %w", i+1, j+1, err)
				}
				items[j] = a
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if err := out.Append(items); err != nil {
			return err
		}
		slog.Info("resume analyzed", "resume", dataset.ResumeKey(i+1), "file", filepath.Base(file))
	}

	slog.Info("inference completed", "results", rankOut, "resumes", out.Count())
	return nil
}
