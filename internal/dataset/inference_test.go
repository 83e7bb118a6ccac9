package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis(score float64) analysis.ResumeAnalysis {
	a := analysis.ResumeAnalysis{
		Summary:        "candidate summary",
		Classification: analysis.GoodFit,
		OverallScore:   score,
		Rationale:      "reasons",
		Suggestions:    "advice",
	}
	a.Normalize()
	return a
}

func TestInferenceWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "inference.jsonl")

	w, err := NewInferenceWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append([]analysis.ResumeAnalysis{sampleAnalysis(90), sampleAnalysis(70)}))
	require.NoError(t, w.Append([]analysis.ResumeAnalysis{sampleAnalysis(55)}))
	assert.Equal(t, 2, w.Count())
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Resume_1"`)
	assert.Contains(t, lines[1], `"Resume_2"`)

	results, err := LoadInference(path)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Resume_1", results[0].Key)
	require.Len(t, results[0].Items, 2)
	assert.Equal(t, float64(70), results[0].Items[1].OverallScore)
	assert.Equal(t, "Resume_2", results[1].Key)
}

func TestLoadInferenceRejectsMisnumberedLines(t *testing.T) {
	path := writeFile(t, "inference.jsonl", `{"Resume_7": []}`+"\n")

	_, err := LoadInference(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing key "Resume_1"`)
}
