package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
)

const labelSnapshotEvery = 10

// DistillationWriter streams distillation results to a JSONL file and keeps
// a CSV of the predicted labels alongside it. The label CSV is rewritten
// every ten results and on Close, so a killed run still leaves a usable
// snapshot.
type DistillationWriter struct {
	results    *os.File
	labelsPath string
	labels     []string
}

func NewDistillationWriter(resultsPath, labelsPath string) (*DistillationWriter, error) {
	if err := os.MkdirAll(filepath.Dir(resultsPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	f, err := os.Create(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", resultsPath, err)
	}
	return &DistillationWriter{results: f, labelsPath: labelsPath}, nil
}

func (w *DistillationWriter) Append(a analysis.ResumeAnalysis) error {
	line, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if _, err := w.results.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write analysis: %w", err)
	}

	w.labels = append(w.labels, string(a.Classification))
	if len(w.labels)%labelSnapshotEvery == 0 {
		return w.snapshotLabels()
	}
	return nil
}

// Count reports how many results have been written.
func (w *DistillationWriter) Count() int { return len(w.labels) }

func (w *DistillationWriter) Close() error {
	if err := w.snapshotLabels(); err != nil {
		w.results.Close()
		return err
	}
	return w.results.Close()
}

func (w *DistillationWriter) snapshotLabels() error {
	f, err := os.Create(w.labelsPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.labelsPath, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"predicted_labels"}); err != nil {
		return err
	}
	for _, label := range w.labels {
		if err := cw.Write([]string{label}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadDistillationResults reads analyses back from a distillation results
// file. Blank lines are skipped; a malformed line is logged and dropped
// rather than sinking the whole dataset.
func LoadDistillationResults(path string) ([]analysis.ResumeAnalysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var results []analysis.ResumeAnalysis
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var a analysis.ResumeAnalysis
		if err := json.Unmarshal(line, &a); err != nil {
			slog.Warn("skipping malformed result line", "line", n, "error", err)
			continue
		}
		results = append(results, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return results, nil
}
