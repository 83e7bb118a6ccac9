package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatusOllah/slogcolor"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "resumerank",
	Short: "Screen and rank resumes against job descriptions with Gemini",
	Long: `resumerank evaluates resumes against job descriptions using a
Gemini-family model with schema-constrained JSON output.

It covers the whole pipeline: text extraction from resume files, single-pair
classification, batch ranking, teacher-model distillation, fine-tune dataset
preparation and job management, ranking-alignment evaluation against human
annotations, and a queue worker that processes screening sessions end to end.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := slogcolor.DefaultOptions
		if verbose {
			opts.Level = slog.LevelDebug
		}
		opts.MsgColor = color.New(color.FgMagenta)
		opts.SrcFileMode = slogcolor.Nop
		slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, opts)))

		config.Load()
	},
}

// modelOrEnv resolves the model name: flag first, then GEMINI_MODEL, with the
// client's own default as the final fallback.
func modelOrEnv(flag string) string {
	if flag != "" {
		return flag
	}
	return config.GeminiModel()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(distillCmd)
	rootCmd.AddCommand(finetuneCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(workerCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
