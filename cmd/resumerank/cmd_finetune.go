package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/dataset"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/finetune"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/prompt"
	"github.com/spf13/cobra"
)

var finetuneCmd = &cobra.Command{
	Use:   "finetune",
	Short: "Prepare data and manage LoRA fine-tuning jobs",
}

var (
	prepDistill string
	prepTrain   string
	prepOut     string
)

var finetunePrepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Build a prompt/completion JSONL from distillation results",
	Long: `prepare pairs each distilled analysis with the training row it came from
and writes instruction-tuning records: {"prompt": "System: ...User: ...",
"completion": <analysis JSON>}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := dataset.LoadDistillationResults(prepDistill)
		if err != nil {
			return err
		}
		rows, err := dataset.LoadTrain(prepTrain)
		if err != nil {
			return err
		}

		f, err := os.Create(prepOut)
		if err != nil {
			return err
		}
		n, err := dataset.WriteFineTune(f, prompt.System(), rows, results)
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		slog.Info("fine-tune data prepared", "file", prepOut, "records", n)
		return nil
	},
}

var uploadPath string

var finetuneUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Check and upload a fine-tune data file",
	Long: `upload validates the JSONL file locally, prints the check report, then
uploads it with purpose fine-tune and prints the file ID to pass to create.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := finetune.CheckFile(uploadPath)
		if err != nil {
			return err
		}
		reportJSON, err := json.MarshalIndent(report, "", "    ")
		if err != nil {
			return err
		}
		fmt.Println(string(reportJSON))
		if !report.IsCheckPassed {
			return fmt.Errorf("file check failed: %s", report.Message)
		}

		apiKey, err := config.TogetherAPIKey()
		if err != nil {
			return err
		}
		file, err := finetune.New(apiKey).UploadFile(cmd.Context(), uploadPath)
		if err != nil {
			return err
		}
		fmt.Println(file.ID)
		return nil
	},
}

var (
	createTrainFile string
	createValFile   string
	createModel     string
	createSuffix    string
)

var finetuneCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a LoRA fine-tuning job",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, err := config.TogetherAPIKey()
		if err != nil {
			return err
		}
		job, err := finetune.New(apiKey).CreateJob(cmd.Context(), finetune.JobParams{
			Model:          createModel,
			TrainingFile:   createTrainFile,
			ValidationFile: createValFile,
			Suffix:         createSuffix,
			WandbAPIKey:    config.WandbAPIKey(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Fine-tuning job ID: %s\n", job.ID)
		return nil
	},
}

var watchInterval time.Duration

var finetuneWatchCmd = &cobra.Command{
	Use:   "watch JOB_ID",
	Short: "Poll job events until the job finishes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, err := config.TogetherAPIKey()
		if err != nil {
			return err
		}
		err = finetune.New(apiKey).Watch(cmd.Context(), args[0], watchInterval, func(e finetune.Event) {
			fmt.Println(e.Message)
		})
		if err != nil {
			return err
		}
		fmt.Println("Fine-tuning job completed successfully.")
		return nil
	},
}

func init() {
	finetunePrepareCmd.Flags().StringVarP(&prepDistill, "input", "i", "distillation_results.jsonl", "distillation results JSONL")
	finetunePrepareCmd.Flags().StringVarP(&prepTrain, "train", "t", "", "training CSV the distillation ran on")
	finetunePrepareCmd.Flags().StringVarP(&prepOut, "output", "o", "fine_tune_data.jsonl", "output JSONL path")
	_ = finetunePrepareCmd.MarkFlagRequired("train")

	finetuneUploadCmd.Flags().StringVarP(&uploadPath, "file", "f", "", "path to the fine-tune JSONL file")
	_ = finetuneUploadCmd.MarkFlagRequired("file")

	finetuneCreateCmd.Flags().StringVar(&createTrainFile, "training-file", "", "file ID of the uploaded training file")
	finetuneCreateCmd.Flags().StringVar(&createValFile, "validation-file", "", "file ID of the uploaded validation file")
	finetuneCreateCmd.Flags().StringVarP(&createModel, "model", "m", "", "base model to fine-tune")
	finetuneCreateCmd.Flags().StringVarP(&createSuffix, "suffix", "s", "my-fine-tuned-model", "suffix for the fine-tuned model name")
	_ = finetuneCreateCmd.MarkFlagRequired("training-file")
	_ = finetuneCreateCmd.MarkFlagRequired("model")

	finetuneWatchCmd.Flags().DurationVar(&watchInterval, "interval", 60*time.Second, "polling interval")

	finetuneCmd.AddCommand(finetunePrepareCmd)
	finetuneCmd.AddCommand(finetuneUploadCmd)
	finetuneCmd.AddCommand(finetuneCreateCmd)
	finetuneCmd.AddCommand(finetuneWatchCmd)
}
