package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
)

// Result lines can carry dozens of full analyses each.
const maxLineSize = 64 * 1024 * 1024

// ResumeKey is the JSONL key for the resume at 1-based position n.
func ResumeKey(n int) string {
	return fmt.Sprintf("Resume_%d", n)
}

// ResumeAnalyses pairs an inference line's key with its analyses, one per
// job description, in job order.
type ResumeAnalyses struct {
	Key   string
	Items []analysis.ResumeAnalysis
}

// InferenceWriter appends one JSONL line per resume. Each line is written
// straight to the file so an interrupted run keeps everything before the
// resume in flight.
type InferenceWriter struct {
	f *os.File
	n int
}

func NewInferenceWriter(path string) (*InferenceWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return &InferenceWriter{f: f}, nil
}

// Append writes the next resume's analyses under the next Resume_N key.
func (w *InferenceWriter) Append(items []analysis.ResumeAnalysis) error {
	w.n++
	line, err := json.Marshal(map[string][]analysis.ResumeAnalysis{
		ResumeKey(w.n): items,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", ResumeKey(w.n), err)
	}
	if _, err := w.f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write %s: %w", ResumeKey(w.n), err)
	}
	return nil
}

// Count reports how many resumes have been written.
func (w *InferenceWriter) Count() int { return w.n }

func (w *InferenceWriter) Close() error { return w.f.Close() }

// LoadInference reads an inference JSONL file back in line order. The key of
// line n must be Resume_n; a line keyed differently means the file was not
// produced by this pipeline.
func LoadInference(path string) ([]ResumeAnalyses, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var results []ResumeAnalyses
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		key := ResumeKey(n)
		var line map[string][]analysis.ResumeAnalysis
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		items, ok := line[key]
		if !ok {
			return nil, fmt.Errorf("line %d: missing key %q", n, key)
		}
		results = append(results, ResumeAnalyses{Key: key, Items: items})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return results, nil
}
