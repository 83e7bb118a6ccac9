package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/prompt"
)

// FineTuneRecord is one instruction-tuning sample: the full prompt the
// student model sees and the teacher's JSON analysis as completion.
type FineTuneRecord struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// WriteFineTune zips training rows with their distilled analyses into
// prompt/completion JSONL. Rows beyond the shorter of the two inputs are
// dropped, mirroring how a partial distillation run lines up with the
// training file. Returns the number of records written.
func WriteFineTune(w io.Writer, system string, rows []TrainRow, results []analysis.ResumeAnalysis) (int, error) {
	n := min(len(rows), len(results))
	for i := 0; i < n; i++ {
		completion, err := json.Marshal(results[i])
		if err != nil {
			return i, fmt.Errorf("failed to marshal completion %d: %w", i, err)
		}
		record := FineTuneRecord{
			Prompt: fmt.Sprintf("System: %sUser: %s", system,
				prompt.Distillation(rows[i].ResumeText, rows[i].JobDescriptionText, rows[i].Label)),
			Completion: string(completion),
		}
		line, err := json.Marshal(record)
		if err != nil {
			return i, fmt.Errorf("failed to marshal record %d: %w", i, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return i, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return n, nil
}
