package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemNamesEveryOutputField(t *testing.T) {
	sys := System()
	for _, field := range []string{
		"summary", "classification", "overall_score", "rationale",
		"suggestions", "matching_skills", "missing_skills",
		"resume", "job_description",
	} {
		assert.Contains(t, sys, `"`+field+`"`)
	}
	assert.Contains(t, sys, "Good Fit")
	assert.Contains(t, sys, "Partial Fit")
	assert.Contains(t, sys, "Not Fit")
}

func TestInferenceEmbedsTrimmedInputs(t *testing.T) {
	p := Inference("  my resume \n", "\n the jd  ")

	assert.Contains(t, p, "Resume:\nmy resume\n")
	assert.Contains(t, p, "Job Description:\nthe jd\n")
	assert.NotContains(t, p, "Ground Truth", "inference prompt must not leak a label slot")
}

func TestDistillationPinsTheLabel(t *testing.T) {
	p := Distillation("r", "j", " Partial Fit ")

	assert.Contains(t, p, "Ground Truth Classification Label: Partial Fit\n")
	assert.Contains(t, p, "classification (must match the provided label)")
}

func TestPromptsShareTheOutputContract(t *testing.T) {
	inf := Inference("r", "j")
	dis := Distillation("r", "j", "Good Fit")
	for _, line := range []string{
		"Follow the JSON structure exactly.",
		"Do not add extra commentary or formatting outside the JSON.",
		"You are expected to match the system's output schema exactly for automated parsing.",
	} {
		assert.Contains(t, inf, line)
		assert.Contains(t, dis, line)
	}
	assert.Equal(t, 1, strings.Count(dis, "Ground Truth Classification Label:"))
}
