package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFineTune(t *testing.T) {
	rows := []TrainRow{
		{ResumeText: "resume one", JobDescriptionText: "jd one", Label: "Good Fit"},
		{ResumeText: "resume two", JobDescriptionText: "jd two", Label: "Not Fit"},
	}
	results := []analysis.ResumeAnalysis{sampleAnalysis(88), sampleAnalysis(30)}

	var buf bytes.Buffer
	n, err := WriteFineTune(&buf, prompt.System(), rows, results)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	scanner := bufio.NewScanner(&buf)
	scanner.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	var records []FineTuneRecord
	for scanner.Scan() {
		var rec FineTuneRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, records, 2)

	assert.True(t, strings.HasPrefix(records[0].Prompt, "System: "))
	assert.Contains(t, records[0].Prompt, "User: ")
	assert.Contains(t, records[0].Prompt, "resume one")
	assert.Contains(t, records[0].Prompt, "Ground Truth Classification Label: Good Fit")

	var completion analysis.ResumeAnalysis
	require.NoError(t, json.Unmarshal([]byte(records[0].Completion), &completion))
	assert.Equal(t, float64(88), completion.OverallScore)
}

func TestWriteFineTuneZipsToShorterInput(t *testing.T) {
	rows := []TrainRow{
		{ResumeText: "r1", JobDescriptionText: "j1", Label: "Good Fit"},
		{ResumeText: "r2", JobDescriptionText: "j2", Label: "Not Fit"},
		{ResumeText: "r3", JobDescriptionText: "j3", Label: "Partial Fit"},
	}
	results := []analysis.ResumeAnalysis{sampleAnalysis(50)}

	var buf bytes.Buffer
	n, err := WriteFineTune(&buf, "sys", rows, results)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
