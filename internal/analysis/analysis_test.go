package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		in      string
		want    Classification
		wantErr bool
	}{
		{in: "Good Fit", want: GoodFit},
		{in: "Partial Fit", want: PartialFit},
		{in: "Not Fit", want: NotFit},
		{in: "good fit", want: GoodFit},
		{in: "  NOT FIT  ", want: NotFit},
		{in: "Perfect Fit", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClassification(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *ResumeAnalysis {
		return &ResumeAnalysis{
			Summary:        "Backend engineer, 6 years.",
			Classification: GoodFit,
			OverallScore:   85,
			Rationale:      "Strong overlap with the stack.",
			Suggestions:    "Add cloud certifications.",
		}
	}

	t.Run("accepts well formed analysis", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects unknown classification", func(t *testing.T) {
		a := valid()
		a.Classification = "Maybe Fit"
		assert.Error(t, a.Validate())
	})

	t.Run("rejects score out of range", func(t *testing.T) {
		for _, score := range []float64{0, 0.5, 100.5, -3} {
			a := valid()
			a.OverallScore = score
			assert.Errorf(t, a.Validate(), "score %v", score)
		}
	})

	t.Run("accepts score boundaries", func(t *testing.T) {
		for _, score := range []float64{1, 100} {
			a := valid()
			a.OverallScore = score
			assert.NoErrorf(t, a.Validate(), "score %v", score)
		}
	})
}

func TestNormalize(t *testing.T) {
	var a ResumeAnalysis
	a.Normalize()

	assert.NotNil(t, a.MatchingSkills)
	assert.NotNil(t, a.MissingSkills)
	assert.NotNil(t, a.Resume.Qualifications.Skills.Technical)
	assert.NotNil(t, a.Resume.Qualifications.Education.Degree)
	assert.NotNil(t, a.Resume.Qualifications.ContactInformation.Email)
	assert.NotNil(t, a.JobDescription.Location)
	assert.NotNil(t, a.JobDescription.Skills.RequiredTechnical)
	assert.NotNil(t, a.JobDescription.OtherInformation.Benefits)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null", "normalized analysis must marshal without null arrays")
}

func TestFallback(t *testing.T) {
	t.Run("carries the label and a neutral score", func(t *testing.T) {
		a := Fallback("some resume", "some jd", PartialFit)
		require.NoError(t, a.Validate())
		assert.Equal(t, PartialFit, a.Classification)
		assert.Equal(t, float64(50), a.OverallScore)
		assert.Contains(t, a.Summary, "fallback summary")
		assert.Equal(t, []string{"Failed to extract"}, a.MatchingSkills)
		assert.Equal(t, "some resume", a.Resume.Summary)
		assert.Equal(t, "some jd", a.JobDescription.JobTitle)
	})

	t.Run("defaults an invalid label to Good Fit", func(t *testing.T) {
		a := Fallback("r", "j", Classification("garbage"))
		assert.Equal(t, GoodFit, a.Classification)
		require.NoError(t, a.Validate())
	})

	t.Run("truncates long source text at 500 runes", func(t *testing.T) {
		long := strings.Repeat("é", 501)
		a := Fallback(long, long, NotFit)
		assert.Equal(t, strings.Repeat("é", 500)+"...", a.Resume.Summary)
		assert.Equal(t, strings.Repeat("é", 500)+"...", a.JobDescription.JobTitle)

		exact := strings.Repeat("x", 500)
		b := Fallback(exact, exact, NotFit)
		assert.Equal(t, exact, b.Resume.Summary, "text at the limit is kept untouched")
	})
}

func TestResponseSchemaCoversWireFormat(t *testing.T) {
	s := ResponseSchema()

	require.NotNil(t, s)
	assert.ElementsMatch(t, []string{
		"summary", "classification", "overall_score", "rationale",
		"suggestions", "matching_skills", "missing_skills", "resume", "job_description",
	}, s.Required)

	cls := s.Properties["classification"]
	require.NotNil(t, cls)
	assert.ElementsMatch(t, []string{"Good Fit", "Not Fit", "Partial Fit"}, cls.Enum)

	quals := s.Properties["resume"].Properties["qualifications"]
	require.NotNil(t, quals)
	for _, section := range []string{"SKILLS", "EDUCATION", "EXPERIENCE", "OTHER_INFORMATION", "CONTACT_INFORMATION"} {
		assert.Contains(t, quals.Properties, section)
	}

	jd := s.Properties["job_description"]
	require.NotNil(t, jd)
	for _, section := range []string{"EDUCATION", "EXPERIENCE", "SKILLS", "OTHER_INFORMATION"} {
		assert.Contains(t, jd.Properties, section)
	}

	// The schema keys must match what the structs marshal to, otherwise the
	// model is constrained to a shape we cannot decode.
	var a ResumeAnalysis
	a.Normalize()
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for key := range s.Properties {
		assert.Contains(t, decoded, key)
	}
}
