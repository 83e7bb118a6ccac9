package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	t.Setenv("RESUMERANK_TEST_KEY", "value")
	v, err := Require("RESUMERANK_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	t.Setenv("RESUMERANK_TEST_KEY", "")
	_, err = Require("RESUMERANK_TEST_KEY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty RESUMERANK_TEST_KEY in environment")
}

func TestGeminiAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	_, err := GeminiAPIKey()
	require.Error(t, err)

	t.Setenv("GOOGLE_API_KEY", "google-key")
	v, err := GeminiAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "google-key", v)

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	v, err = GeminiAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", v)
}

func setWorkerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost/screening")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_BUCKET", "resumes")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("AGENT_NAME", "")
	t.Setenv("AGENT_MODEL", "")
	t.Setenv("NUM_WORKERS", "")
}

func TestLoadWorker(t *testing.T) {
	setWorkerEnv(t)

	w, err := LoadWorker()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/screening", w.DBURL)
	assert.Equal(t, "amqp://localhost", w.AMQPUrl)
	assert.Equal(t, "acct", w.R2.AccountID)
	assert.Equal(t, "resumes", w.R2.Bucket)
	assert.Equal(t, "gk", w.GeminiAPIKey)
	assert.Equal(t, DefaultAgentName, w.AgentName)
	assert.Equal(t, DefaultNumWorkers, w.NumWorkers)
}

func TestLoadWorkerMissingVar(t *testing.T) {
	setWorkerEnv(t)
	t.Setenv("RABBITMQ_URL", "")

	_, err := LoadWorker()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RABBITMQ_URL")
}

func TestLoadWorkerOverrides(t *testing.T) {
	setWorkerEnv(t)
	t.Setenv("AGENT_NAME", "screening_agent")
	t.Setenv("NUM_WORKERS", "8")

	w, err := LoadWorker()
	require.NoError(t, err)
	assert.Equal(t, "screening_agent", w.AgentName)
	assert.Equal(t, 8, w.NumWorkers)
}

func TestLoadWorkerRejectsBadWorkerCount(t *testing.T) {
	setWorkerEnv(t)
	t.Setenv("NUM_WORKERS", "zero")

	_, err := LoadWorker()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NUM_WORKERS")
}
