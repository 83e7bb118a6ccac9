// Package llm calls Gemini with schema-constrained output and decodes the
// result into a ResumeAnalysis.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/prompt"
	"google.golang.org/genai"
)

// DefaultModel is the teacher model used for distillation when none is
// configured.
const DefaultModel = "gemini-2.5-flash-preview-04-17"

type Config struct {
	APIKey string
	Model  string
}

type Client struct {
	genai *genai.Client
	model string
}

func New(ctx context.Context, config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("empty api key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{genai: client, model: model}, nil
}

func (c *Client) Model() string { return c.model }

// Analyze evaluates a resume against a job description without a ground-truth
// label. The model decides the classification.
func (c *Client) Analyze(ctx context.Context, resumeText, jdText string) (analysis.ResumeAnalysis, error) {
	return c.generate(ctx, prompt.Inference(resumeText, jdText))
}

// Distill evaluates a labeled resume/job-description pair. A failed call
// never fails the batch: the fallback analysis carries the ground-truth
// label and a neutral score so downstream files stay aligned with the
// training rows.
func (c *Client) Distill(ctx context.Context, resumeText, jdText string, label analysis.Classification) analysis.ResumeAnalysis {
	a, err := c.generate(ctx, prompt.Distillation(resumeText, jdText, string(label)))
	if err != nil {
		slog.Warn("model response failed, creating fallback analysis", "error", err)
		return analysis.Fallback(resumeText, jdText, label)
	}
	return a
}

func (c *Client) generate(ctx context.Context, userPrompt string) (analysis.ResumeAnalysis, error) {
	resp, err := retry(2, func() (*genai.GenerateContentResponse, error) {
		return c.genai.Models.GenerateContent(ctx, c.model,
			[]*genai.Content{
				{Role: "user", Parts: []*genai.Part{{Text: userPrompt}}},
			},
			&genai.GenerateContentConfig{
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.System()}}},
				Temperature:       genai.Ptr[float32](0.1),
				ResponseMIMEType:  "application/json",
				ResponseSchema:    analysis.ResponseSchema(),
			})
	})
	if err != nil {
		return analysis.ResumeAnalysis{}, fmt.Errorf("generate content: %w", err)
	}
	return Decode(resp.Text())
}

// Decode turns raw model output into a validated ResumeAnalysis. Fences are
// stripped first because not every model honors the JSON mime type.
func Decode(raw string) (analysis.ResumeAnalysis, error) {
	var a analysis.ResumeAnalysis

	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return a, errors.New("empty model response")
	}
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		return a, fmt.Errorf("json unmarshal error: %w", err)
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	a.Normalize()
	return a, nil
}

// CleanJSON strips markdown code fences around a JSON payload.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
