// Package config reads process configuration from the environment. A .env
// file is honored when present so local runs match deployments.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/storage"
	"github.com/joho/godotenv"
)

const (
	// DefaultAgentName is the ADK app name for the screening agent.
	DefaultAgentName = "resume_analyzer"
	// DefaultNumWorkers is the consumer pool size for the queue worker.
	DefaultNumWorkers = 3
)

// Load reads a .env file when present. A missing file is fine; deployments
// configure the environment directly.
func Load() {
	_ = godotenv.Load()
}

// Require returns the named environment variable, or an error naming the
// missing key.
func Require(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("empty %s in environment", key)
	}
	return v, nil
}

// GeminiAPIKey looks up the Gemini key, accepting the GOOGLE_API_KEY alias
// the SDK also honors.
func GeminiAPIKey() (string, error) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v, nil
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("empty GEMINI_API_KEY in environment")
}

// GeminiModel returns the optional model override for direct Gemini calls.
func GeminiModel() string { return os.Getenv("GEMINI_MODEL") }

func TogetherAPIKey() (string, error) { return Require("TOGETHER_API_KEY") }

// WandbAPIKey is optional; fine-tuning jobs run without Weights & Biases
// reporting when it is unset.
func WandbAPIKey() string { return os.Getenv("WANDB_API_KEY") }

// Worker is the full configuration for the queue worker.
type Worker struct {
	DBURL        string
	AMQPUrl      string
	R2           storage.R2
	GeminiAPIKey string
	AgentName    string
	AgentModel   string
	NumWorkers   int
}

// LoadWorker validates and collects everything the queue worker needs.
func LoadWorker() (Worker, error) {
	w := Worker{
		AgentName:  DefaultAgentName,
		AgentModel: os.Getenv("AGENT_MODEL"),
		NumWorkers: DefaultNumWorkers,
	}
	if name := os.Getenv("AGENT_NAME"); name != "" {
		w.AgentName = name
	}

	var err error
	if w.DBURL, err = Require("DB_URL"); err != nil {
		return Worker{}, err
	}
	if w.AMQPUrl, err = Require("RABBITMQ_URL"); err != nil {
		return Worker{}, err
	}
	if w.R2.AccountID, err = Require("R2_ACCOUNT_ID"); err != nil {
		return Worker{}, err
	}
	if w.R2.Bucket, err = Require("R2_BUCKET"); err != nil {
		return Worker{}, err
	}
	if w.R2.AccessKey, err = Require("R2_ACCESS_KEY"); err != nil {
		return Worker{}, err
	}
	if w.R2.SecretKey, err = Require("R2_SECRET_KEY"); err != nil {
		return Worker{}, err
	}
	if w.GeminiAPIKey, err = GeminiAPIKey(); err != nil {
		return Worker{}, err
	}

	if raw := os.Getenv("NUM_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Worker{}, fmt.Errorf("invalid NUM_WORKERS %q in environment", raw)
		}
		w.NumWorkers = n
	}
	return w, nil
}
