package rank

import (
	"testing"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	results := []ResumeResult{
		{
			Key: "Resume_1",
			Items: []analysis.ResumeAnalysis{
				scored(90, "", "", "", ""),
				scored(85, "", "", "", ""),
				scored(80, "", "", "", ""),
			},
		},
		{
			Key: "Resume_2",
			Items: []analysis.ResumeAnalysis{
				scored(70, "Master's", "Computer Science", "Bachelor's", "Computer Science"),
				scored(70, "", "", "Bachelor's", "Computer Science"),
				scored(95, "", "", "", ""),
			},
		},
	}
	annotations := map[string][][]int{
		"ranklist_1": {{1, 2, 3}, {3, 1, 2}},
		"ranklist_2": {{2, 1, 3}, {3, 1, 2}},
	}

	m := Evaluate(results, annotations)

	require.Equal(t, []int{1, 2, 3}, m.RankedIndices["Resume_1"])
	require.Equal(t, []int{3, 1, 2}, m.RankedIndices["Resume_2"], "tie broken by education fit before ranking")

	assert.InDelta(t, 1, m.Alignment["Resume_1"]["ranklist_1"], 1e-9)
	assert.InDelta(t, 1.0/3.0, m.Alignment["Resume_1"]["ranklist_2"], 1e-9)
	assert.InDelta(t, 1, m.Alignment["Resume_2"]["ranklist_1"], 1e-9)
	assert.InDelta(t, 1, m.Alignment["Resume_2"]["ranklist_2"], 1e-9)

	assert.InDelta(t, 2.0/3.0, m.PerResumeMean["Resume_1"], 1e-9)
	assert.InDelta(t, 1, m.PerResumeMean["Resume_2"], 1e-9)

	assert.InDelta(t, 1, m.PerRanklistMean["ranklist_1"], 1e-9)
	assert.InDelta(t, 2.0/3.0, m.PerRanklistMean["ranklist_2"], 1e-9)

	// Tau values: 1, 1/3, 1, 1.
	assert.InDelta(t, 5.0/6.0, m.OverallMean, 1e-9)
	assert.InDelta(t, 1.0/3.0, m.OverallStd, 1e-9)

	// tau(ranklist_1[0], ranklist_2[0]) = 1/3, tau(ranklist_1[1], ranklist_2[1]) = 1.
	assert.InDelta(t, 2.0/3.0, m.InterAnnotator, 1e-9)
}

func TestEvaluateMissingAnnotations(t *testing.T) {
	results := []ResumeResult{
		{Key: "Resume_1", Items: []analysis.ResumeAnalysis{scored(90, "", "", "", ""), scored(80, "", "", "", "")}},
		{Key: "Resume_2", Items: []analysis.ResumeAnalysis{scored(90, "", "", "", ""), scored(80, "", "", "", "")}},
	}
	// Only one resume annotated, and only by one annotator.
	annotations := map[string][][]int{
		"ranklist_1": {{1, 2}},
	}

	m := Evaluate(results, annotations)

	assert.InDelta(t, 1, m.Alignment["Resume_1"]["ranklist_1"], 1e-9)
	assert.Zero(t, m.Alignment["Resume_2"]["ranklist_1"])
	assert.Zero(t, m.PerResumeMean["Resume_2"], "missing rankings are excluded, not averaged in")
	assert.InDelta(t, 1, m.OverallMean, 1e-9)
	assert.Zero(t, m.OverallStd, "a single tau has no spread")
	assert.Zero(t, m.InterAnnotator, "needs both ranklist_1 and ranklist_2")
}

func TestEvaluateCapsAtTenResumes(t *testing.T) {
	var results []ResumeResult
	for i := 0; i < 12; i++ {
		results = append(results, ResumeResult{
			Key:   "Resume_" + string(rune('A'+i)),
			Items: []analysis.ResumeAnalysis{scored(90, "", "", "", ""), scored(80, "", "", "", "")},
		})
	}
	annotations := map[string][][]int{"ranklist_1": {{1, 2}}}

	m := Evaluate(results, annotations)
	assert.Len(t, m.RankedIndices, 10)
}
