// Package finetune drives LoRA fine-tuning jobs on the Together API: file
// upload, job creation with the project's hyperparameters, and event polling
// until the job finishes.
package finetune

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.together.xyz"

// finishedMarker is the event message fragment that signals a completed job.
const finishedMarker = "Job finished"

// LoRA hyperparameters for the distillation student. Kept as constants: the
// runs must be comparable, so they are not configurable per invocation.
const (
	loraR       = 16
	loraAlpha   = 32
	loraDropout = 0.1
	numEpochs   = 3
	checkpoints = 2
	batchSize   = 8
	learnRate   = 2e-5

	wandbProject = "Resume-JD-Ranking"
	wandbRunName = "lora-finetune-gemma-3-12b-it"
)

type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

func NewWithBaseURL(apiKey, base string) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: 120 * time.Second},
	}
}

// File is an uploaded training file.
type File struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Bytes    int64  `json:"bytes"`
}

// UploadFile uploads a JSONL fine-tuning file and returns its file ID.
func (c *Client) UploadFile(ctx context.Context, path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("purpose", "fine-tune"); err != nil {
		return File{}, err
	}
	if err := mw.WriteField("file_name", filepath.Base(path)); err != nil {
		return File{}, err
	}
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return File{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return File{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/files/upload", &body)
	if err != nil {
		return File{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var uploaded File
	if err := c.do(req, &uploaded); err != nil {
		return File{}, fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return uploaded, nil
}

// JobParams identifies what to fine-tune; the hyperparameters themselves are
// fixed.
type JobParams struct {
	Model          string
	TrainingFile   string
	ValidationFile string
	Suffix         string
	WandbAPIKey    string
}

// Job is a created fine-tuning job.
type Job struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Model  string `json:"model"`
}

type createJobRequest struct {
	TrainingFile     string  `json:"training_file"`
	ValidationFile   string  `json:"validation_file,omitempty"`
	Model            string  `json:"model"`
	TrainOnInputs    bool    `json:"train_on_inputs"`
	LoRA             bool    `json:"lora"`
	LoRAR            int     `json:"lora_r"`
	LoRAAlpha        int     `json:"lora_alpha"`
	LoRADropout      float64 `json:"lora_dropout"`
	NEpochs          int     `json:"n_epochs"`
	NCheckpoints     int     `json:"n_checkpoints"`
	BatchSize        int     `json:"batch_size"`
	LearningRate     float64 `json:"learning_rate"`
	Suffix           string  `json:"suffix,omitempty"`
	WandbAPIKey      string  `json:"wandb_api_key,omitempty"`
	WandbProjectName string  `json:"wandb_project_name,omitempty"`
	WandbName        string  `json:"wandb_name,omitempty"`
}

// CreateJob starts a LoRA fine-tuning job.
func (c *Client) CreateJob(ctx context.Context, params JobParams) (Job, error) {
	if params.Model == "" {
		return Job{}, fmt.Errorf("empty model name")
	}
	if params.TrainingFile == "" {
		return Job{}, fmt.Errorf("empty training file id")
	}

	payload, err := json.Marshal(createJobRequest{
		TrainingFile:     params.TrainingFile,
		ValidationFile:   params.ValidationFile,
		Model:            params.Model,
		TrainOnInputs:    true,
		LoRA:             true,
		LoRAR:            loraR,
		LoRAAlpha:        loraAlpha,
		LoRADropout:      loraDropout,
		NEpochs:          numEpochs,
		NCheckpoints:     checkpoints,
		BatchSize:        batchSize,
		LearningRate:     learnRate,
		Suffix:           params.Suffix,
		WandbAPIKey:      params.WandbAPIKey,
		WandbProjectName: wandbProject,
		WandbName:        wandbRunName,
	})
	if err != nil {
		return Job{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/fine-tunes", bytes.NewReader(payload))
	if err != nil {
		return Job{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var job Job
	if err := c.do(req, &job); err != nil {
		return Job{}, fmt.Errorf("failed to create fine-tune job: %w", err)
	}
	return job, nil
}

// Event is one entry of a job's event log.
type Event struct {
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ListEvents returns the job's event log, oldest first.
func (c *Client) ListEvents(ctx context.Context, jobID string) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/fine-tunes/"+jobID+"/events", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data []Event `json:"data"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", jobID, err)
	}
	return resp.Data, nil
}

// Watch polls the job's events until one reports the job finished. Each new
// event is handed to onEvent exactly once. Returns the context error if the
// caller gives up first.
func (c *Client) Watch(ctx context.Context, jobID string, interval time.Duration, onEvent func(Event)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := 0
	for {
		events, err := c.ListEvents(ctx, jobID)
		if err != nil {
			return err
		}
		if seen > len(events) {
			seen = len(events)
		}
		for _, event := range events[seen:] {
			if onEvent != nil {
				onEvent(event)
			}
			if strings.Contains(event.Message, finishedMarker) {
				return nil
			}
		}
		seen = len(events)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("%s: %s", res.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(res.Body).Decode(out)
}
