package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/agent"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/config"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/database"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/storage"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/worker"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var workerCount int

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the screening-session consumer pool",
	Long: `worker consumes screening sessions from RabbitMQ. For each session it
downloads the attached resumes from R2, analyzes them against the session's
job description through the screening agent, stores the aggregated results
in Postgres, and publishes status updates.

Connections are configured through the environment (DB_URL, RABBITMQ_URL,
R2_ACCOUNT_ID, R2_BUCKET, R2_ACCESS_KEY, R2_SECRET_KEY, GEMINI_API_KEY).`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().IntVarP(&workerCount, "workers", "n", 0, "number of consumers (default NUM_WORKERS or 3)")
}

func runWorker(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadWorker()
	if err != nil {
		return err
	}
	if workerCount > 0 {
		cfg.NumWorkers = workerCount
	}

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	store, err := storage.New(ctx, cfg.R2)
	if err != nil {
		return err
	}

	svc, err := agent.New(ctx, cfg.GeminiAPIKey, cfg.AgentName, cfg.AgentModel)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(cfg.AMQPUrl)
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq: %w", err)
	}
	defer conn.Close()

	w := &worker.Config{
		DB:      database.New(db),
		Storage: store,
		Agent:   svc,
		AMQPUrl: cfg.AMQPUrl,
		Conn:    conn,
	}

	slog.Info("starting consumer pool", "workers", cfg.NumWorkers)
	w.StartConsumerWorkerPool(cfg.NumWorkers)
	return nil
}
