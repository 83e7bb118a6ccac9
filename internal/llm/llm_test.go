package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare json", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json\r\n{\"a\":1}```  ", want: `{"a":1}`},
		{name: "unterminated fence", in: "```json\n{\"a\":1}", want: `{"a":1}`},
		{name: "empty", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.in))
		})
	}
}

func TestRetry(t *testing.T) {
	t.Run("returns first success", func(t *testing.T) {
		calls := 0
		got, err := retry(3, func() (int, error) {
			calls++
			if calls < 2 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 2, calls)
	})

	t.Run("wraps the last error after exhaustion", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := retry(1, func() (string, error) { return "", boom })
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "after 1 attempts")
	})
}

func TestDecode(t *testing.T) {
	valid := "```json\n" + `{
		"summary": "Jane Doe, Data Scientist, 4 years",
		"classification": "Partial Fit",
		"overall_score": 63,
		"rationale": "Solid modeling background, light on MLOps.",
		"suggestions": "You should highlight deployment experience.",
		"matching_skills": ["Python"],
		"missing_skills": ["Kubernetes"]
	}` + "\n```"

	t.Run("decodes fenced output", func(t *testing.T) {
		a, err := Decode(valid)
		require.NoError(t, err)
		assert.Equal(t, analysis.PartialFit, a.Classification)
		assert.Equal(t, float64(63), a.OverallScore)
		assert.NotNil(t, a.Resume.Qualifications.Skills.Technical, "decode must normalize nested slices")
	})

	t.Run("rejects empty output", func(t *testing.T) {
		_, err := Decode("```json\n```")
		assert.ErrorContains(t, err, "empty model response")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := Decode("not json at all")
		assert.ErrorContains(t, err, "json unmarshal error")
	})

	t.Run("rejects out of contract values", func(t *testing.T) {
		_, err := Decode(`{"summary":"s","classification":"Great Fit","overall_score":80,"rationale":"r","suggestions":"s"}`)
		assert.Error(t, err)

		_, err = Decode(`{"summary":"s","classification":"Good Fit","overall_score":0,"rationale":"r","suggestions":"s"}`)
		assert.Error(t, err)
	})
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorContains(t, err, "empty api key")
}
