// Package worker consumes screening sessions from RabbitMQ and runs the
// analysis pipeline for each one: download the session's resumes from R2,
// extract their text, send each resume with the job description through the
// agent, and persist the aggregated results.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/agent"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/database"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/extract"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/storage"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const (
	// SessionQueue is the queue screening sessions arrive on.
	SessionQueue = "sessions"
	// UpdatesExchange receives status updates, routed by session id.
	UpdatesExchange = "session_updates"
)

// Session statuses, written to the sessions table and broadcast on the
// updates exchange.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

var statusMessages = map[string]string{
	StatusProcessing: "analysis started",
	StatusCompleted:  "analysis completed",
	StatusFailed:     "analysis failed",
}

type Config struct {
	DB      *database.Queries
	Storage *storage.Client
	Agent   *agent.Service
	AMQPUrl string
	Conn    *amqp.Connection
}

// sessionMessage is the queue payload. Producers only need to send the
// session id; the database row is the source of truth for everything else.
type sessionMessage struct {
	ID uuid.UUID `json:"id"`
}

// StartConsumerWorkerPool runs numWorkers consumers on the session queue and
// blocks until all of them stop.
func (cfg *Config) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := range numWorkers {
		go func(id int) {
			defer wg.Done()
			slog.Info("worker started", "worker_id", id)
			if err := cfg.consume(id); err != nil {
				slog.Error("worker stopped", "worker_id", id, "error", err)
			}
		}(i + 1)
	}
	wg.Wait()
}

// consume takes sessions off the queue one at a time. Messages are
// auto-acked: a failed analysis is reported through the session status, not
// redelivered.
func (cfg *Config) consume(id int) error {
	conn, err := amqp.Dial(cfg.AMQPUrl)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		SessionQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := ch.Consume(
		SessionQueue,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq messages: %w", err)
	}

	for msg := range msgs {
		ctx := context.Background()

		var sm sessionMessage
		if err := json.Unmarshal(msg.Body, &sm); err != nil {
			slog.Error("error unmarshalling message body", "worker_id", id, "error", err)
			continue
		}
		if sm.ID == uuid.Nil {
			slog.Error("message missing session id", "worker_id", id)
			continue
		}

		sess, err := cfg.DB.GetSession(ctx, sm.ID)
		if err != nil {
			slog.Error("error loading session", "worker_id", id, "session_id", sm.ID, "error", err)
			cfg.setStatus(ctx, sm.ID, StatusFailed)
			continue
		}

		slog.Info("processing session", "worker_id", id, "session_id", sess.ID)
		cfg.setStatus(ctx, sess.ID, StatusProcessing)

		if err := cfg.processSession(ctx, sess); err != nil {
			slog.Error("session analysis failed", "worker_id", id, "session_id", sess.ID, "error", err)
			cfg.setStatus(ctx, sess.ID, StatusFailed)
			continue
		}
		cfg.setStatus(ctx, sess.ID, StatusCompleted)
	}
	return nil
}

// processSession analyzes every resume in the session. Failures on a single
// resume become error entries in the results; only session-level failures
// abort.
func (cfg *Config) processSession(ctx context.Context, sess database.Session) error {
	resumes, err := cfg.DB.GetResumesBySession(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session %s: %w", sess.ID, err)
	}

	agentSession, err := cfg.Agent.CreateSession(ctx, sess.UserID.String(), sess.ID.String())
	if err != nil {
		return err
	}

	results := make([]Result, 0, len(resumes))
	for _, resume := range resumes {
		// Downloads hit the network; retry before giving up on the file.
		fileBytes, err := retry(3, func() ([]byte, error) {
			return cfg.Storage.Download(ctx, resume.ObjectKey)
		})
		if err != nil {
			slog.Warn("download failed after retries", "object_key", resume.ObjectKey, "error", err)
			results = appendResult(results, "", fmt.Errorf("file download error: %w", err))
			continue
		}

		resumeText, err := extract.Text(resume.Mime, fileBytes)
		if err != nil {
			slog.Warn("text extraction failed", "object_key", resume.ObjectKey, "error", err)
			results = appendResult(results, "", fmt.Errorf("text extraction error: %w", err))
			continue
		}

		message := fmt.Sprintf(
			"Job Title:\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
			sess.JobTitle,
			sess.JobDescription,
			resumeText,
		)

		raw, err := retry(2, func() (string, error) {
			return cfg.Agent.Run(ctx, agentSession.UserID(), agentSession.ID(), message)
		})
		if err != nil {
			slog.Warn("agent failed after retries", "object_key", resume.ObjectKey, "error", err)
			results = appendResult(results, "", fmt.Errorf("agent stream error: %w", err))
			continue
		}
		results = appendResult(results, raw, nil)
	}

	slog.Info("session analyzed", "session_id", sess.ID)
	if err := cfg.Agent.DeleteSession(ctx, agentSession); err != nil {
		return fmt.Errorf("failed to delete agent session: %w", err)
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal analyses results: %w", err)
	}
	if _, err := retry(3, func() (any, error) {
		return nil, cfg.DB.CreateOrUpdateAnalysesResults(ctx, database.CreateOrUpdateAnalysesResultsParams{
			Results:   resultsJSON,
			SessionID: sess.ID,
		})
	}); err != nil {
		return fmt.Errorf("failed to save analyses results after retries: %w", err)
	}
	return nil
}

// setStatus records the session status in the database and broadcasts it on
// the updates exchange. Both writes are best-effort; a lost update is
// logged, not fatal.
func (cfg *Config) setStatus(ctx context.Context, sessionID uuid.UUID, status string) {
	if err := cfg.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
		Status: status,
		ID:     sessionID,
	}); err != nil {
		slog.Error("failed to update session status", "session_id", sessionID, "status", status, "error", err)
	}

	update := map[string]any{
		"session_id": sessionID,
		"status":     status,
		"message":    statusMessages[status],
		"timestamp":  time.Now(),
	}
	if err := cfg.publishSessionUpdate(sessionID.String(), update); err != nil {
		slog.Error("failed to publish session update", "session_id", sessionID, "error", err)
	}
}

func (cfg *Config) publishSessionUpdate(sessionID string, update map[string]any) error {
	ch, err := cfg.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return ch.Publish(
		UpdatesExchange,
		fmt.Sprintf("session.%s", sessionID),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
