package worker

import (
	"strings"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/llm"
)

// Result is one resume's analysis as stored for a screening session. A
// failed resume keeps its slot as an error entry so result positions line up
// with the session's files.
type Result struct {
	analysis.ResumeAnalysis
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

// appendResult folds one agent response into the session results. Output
// that is empty, unparsable, or out of contract becomes an error entry.
func appendResult(results []Result, raw string, runErr error) []Result {
	var r Result
	switch {
	case runErr != nil:
		r.IsErrorResult = true
		r.Error = runErr.Error()

	case strings.TrimSpace(raw) == "":
		r.IsErrorResult = true
		r.Error = "empty response from agent"

	default:
		a, err := llm.Decode(raw)
		if err != nil {
			r.IsErrorResult = true
			r.Error = err.Error()
		} else {
			r.ResumeAnalysis = a
		}
	}
	return append(results, r)
}
