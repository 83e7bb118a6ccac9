package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/extract"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/llm"
	"github.com/spf13/cobra"
)

var (
	classifyResume string
	classifyJD     string
	classifyModel  string
	classifyOut    string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Evaluate one resume against one job description",
	Long: `classify runs a single resume/job-description pair through the model and
prints the structured analysis as indented JSON.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyResume, "resume", "r", "", "path to the resume file")
	classifyCmd.Flags().StringVarP(&classifyJD, "jd", "j", "", "path to the job description file")
	classifyCmd.Flags().StringVarP(&classifyModel, "model", "m", "", "model to use (default "+llm.DefaultModel+")")
	classifyCmd.Flags().StringVarP(&classifyOut, "output", "o", "", "write the analysis JSON to this file instead of stdout")
	_ = classifyCmd.MarkFlagRequired("resume")
	_ = classifyCmd.MarkFlagRequired("jd")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	resumeText, err := extract.File(classifyResume)
	if err != nil {
		return err
	}
	jdText, err := extract.File(classifyJD)
	if err != nil {
		return err
	}

	apiKey, err := config.GeminiAPIKey()
	if err != nil {
		return err
	}
	client, err := llm.New(ctx, llm.Config{APIKey: apiKey, Model: modelOrEnv(classifyModel)})
	if err != nil {
		return err
	}

	slog.Info("analyzing resume", "model", client.Model())
	a, err := client.Analyze(ctx, resumeText, jdText)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if classifyOut != "" {
		return os.WriteFile(classifyOut, data, 0o644)
	}
	fmt.Println(string(data))
	return nil
}
