package analysis

import (
	"fmt"
	"strings"
)

// Classification is the fit label assigned to a resume for a job description.
type Classification string

const (
	GoodFit    Classification = "Good Fit"
	PartialFit Classification = "Partial Fit"
	NotFit     Classification = "Not Fit"
)

// ParseClassification matches a loose label ("good fit", "NOT FIT", ...)
// against the three allowed values.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good fit":
		return GoodFit, nil
	case "partial fit":
		return PartialFit, nil
	case "not fit":
		return NotFit, nil
	}
	return "", fmt.Errorf("unknown classification label %q", s)
}

func (c Classification) Valid() bool {
	switch c {
	case GoodFit, PartialFit, NotFit:
		return true
	}
	return false
}

// ResumeAnalysis is the evaluation of one resume against one job description.
// The JSON layout is the wire contract shared with the model: every field is
// always present, empty values are empty strings or empty lists, and the
// classification must be one of the three exact labels.
type ResumeAnalysis struct {
	Summary        string         `json:"summary"`
	Classification Classification `json:"classification"`
	OverallScore   float64        `json:"overall_score"`
	Rationale      string         `json:"rationale"`
	Suggestions    string         `json:"suggestions"`
	MatchingSkills []string       `json:"matching_skills"`
	MissingSkills  []string       `json:"missing_skills"`
	Resume         Resume         `json:"resume"`
	JobDescription JobDescription `json:"job_description"`
}

// Validate checks the model-facing invariants: a known classification label
// and an overall score on the 1-100 scale.
func (a *ResumeAnalysis) Validate() error {
	if !a.Classification.Valid() {
		return fmt.Errorf("classification must be %q, %q or %q, got %q", GoodFit, PartialFit, NotFit, a.Classification)
	}
	if a.OverallScore < 1 || a.OverallScore > 100 {
		return fmt.Errorf("overall_score must be within [1,100], got %v", a.OverallScore)
	}
	return nil
}

// Normalize replaces nil slices with empty ones so that serialized output
// carries empty lists instead of nulls, as the output contract requires.
func (a *ResumeAnalysis) Normalize() {
	a.MatchingSkills = notNil(a.MatchingSkills)
	a.MissingSkills = notNil(a.MissingSkills)
	a.Resume.normalize()
	a.JobDescription.normalize()
}

const fallbackTruncateAt = 500

// Fallback builds the placeholder analysis recorded when the model fails to
// produce a usable response during distillation. The ground-truth label is
// preserved so the training row still carries its annotation, and a truncated
// copy of the resume text is kept in the structured summary.
func Fallback(resumeText, jdText string, label Classification) ResumeAnalysis {
	if !label.Valid() {
		label = GoodFit
	}
	a := ResumeAnalysis{
		Summary:        "Failed to analyze resume - fallback summary created",
		Classification: label,
		OverallScore:   50,
		Rationale:      "Model failed to generate analysis. This is a fallback response.",
		Suggestions:    "Please try again with a different model or check the resume and job description.",
		MatchingSkills: []string{"Failed to extract"},
		MissingSkills:  []string{"Failed to extract"},
		Resume: Resume{
			Summary: truncate(resumeText, fallbackTruncateAt),
		},
		JobDescription: JobDescription{
			JobTitle: truncate(jdText, fallbackTruncateAt),
		},
	}
	a.Normalize()
	return a
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func notNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
