// Package agent runs resume screening through an ADK agent. The queue worker
// uses this path instead of calling Gemini directly so every session gets its
// own conversational context.
package agent

import (
	"context"
	"fmt"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/prompt"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// DefaultModel is the model backing the screening agent when none is
// configured.
const DefaultModel = "gemini-2.5-pro"

// Service bundles the agent runner with its session service. Sessions are
// in-memory: a worker restart only loses conversational state, results live
// in the database.
type Service struct {
	Name     string
	Runner   *runner.Runner
	Sessions session.Service
}

func New(ctx context.Context, apiKey, name, modelName string) (*Service, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	model, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	screener, err := llmagent.New(llmagent.Config{
		Name:        name,
		Model:       model,
		Description: "Analyze Resume",
		Instruction: instruction(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        screener.Name(),
		Agent:          screener,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &Service{Name: name, Runner: r, Sessions: sessions}, nil
}

func instruction() string {
	return prompt.System() + `
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON object.
`
}

func (s *Service) CreateSession(ctx context.Context, userID, sessionID string) (session.Session, error) {
	resp, err := s.Sessions.Create(ctx, &session.CreateRequest{
		AppName:   s.Name,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent session: %w", err)
	}
	return resp.Session, nil
}

func (s *Service) DeleteSession(ctx context.Context, sess session.Session) error {
	return s.Sessions.Delete(ctx, &session.DeleteRequest{
		AppName:   sess.AppName(),
		UserID:    sess.UserID(),
		SessionID: sess.ID(),
	})
}

// Run sends one message through the agent and returns the final response
// text. The stream may emit intermediate events; only the final response
// counts, and an empty one is an error so callers can retry.
func (s *Service) Run(ctx context.Context, userID, sessionID, message string) (string, error) {
	stream := s.Runner.Run(ctx, userID, sessionID, &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: message},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}
