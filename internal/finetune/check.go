package finetune

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileReport summarizes a pre-upload check of a fine-tuning file.
type FileReport struct {
	IsCheckPassed bool   `json:"is_check_passed"`
	NumSamples    int    `json:"num_samples"`
	Message       string `json:"message,omitempty"`
}

// CheckFile validates a JSONL fine-tuning file before upload: every
// non-blank line must be a JSON object carrying non-empty prompt and
// completion strings. The first violation fails the check with its line
// number.
func CheckFile(path string) (FileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileReport{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	report := FileReport{IsCheckPassed: true}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var sample struct {
			Prompt     string `json:"prompt"`
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(line, &sample); err != nil {
			return FileReport{Message: fmt.Sprintf("line %d: invalid JSON: %v", n, err)}, nil
		}
		if sample.Prompt == "" || sample.Completion == "" {
			return FileReport{Message: fmt.Sprintf("line %d: missing prompt or completion", n)}, nil
		}
		report.NumSamples++
	}
	if err := scanner.Err(); err != nil {
		return FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if report.NumSamples == 0 {
		return FileReport{Message: "no samples found"}, nil
	}
	return report, nil
}
