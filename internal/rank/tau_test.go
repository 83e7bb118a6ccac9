package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKendallTau(t *testing.T) {
	tests := []struct {
		name      string
		model     []int
		annotator []int
		want      float64
	}{
		{name: "perfect agreement", model: []int{1, 2, 3, 4}, annotator: []int{1, 2, 3, 4}, want: 1},
		{name: "perfect disagreement", model: []int{1, 2, 3, 4}, annotator: []int{4, 3, 2, 1}, want: -1},
		{name: "one swap", model: []int{1, 2, 3, 4}, annotator: []int{1, 3, 2, 4}, want: 2.0 / 3.0},
		{name: "empty", model: nil, annotator: nil, want: 0},
		{name: "length mismatch", model: []int{1, 2}, annotator: []int{1, 2, 3}, want: 0},
		{name: "fully tied model", model: []int{1, 1, 1}, annotator: []int{1, 2, 3}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KendallTau(tt.model, tt.annotator), 1e-9)
		})
	}
}

func TestKendallTauTieAdjustment(t *testing.T) {
	// One tie on each side leaves a single fully comparable pair.
	model := []int{1, 1, 2}
	annotator := []int{1, 2, 2}

	// Pairs: (0,1) model tied, (1,2) annotator tied, (0,2) concordant.
	// tau = 1 / sqrt((3-1)*(3-1)) = 0.5
	assert.InDelta(t, 0.5, KendallTau(model, annotator), 1e-9)
}
