package rank

import "math"

// KendallTau computes Kendall's Tau-b between two rankings, adjusting the
// denominator for ties. Returns 0 for empty or mismatched inputs and when
// ties leave no comparable pairs.
func KendallTau(model, annotator []int) float64 {
	if len(model) == 0 || len(annotator) == 0 || len(model) != len(annotator) {
		return 0
	}

	n := len(model)
	var concordant, discordant, modelTies, annotatorTies int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			modelDiff := model[i] - model[j]
			annotatorDiff := annotator[i] - annotator[j]
			switch {
			case modelDiff*annotatorDiff > 0:
				concordant++
			case modelDiff*annotatorDiff < 0:
				discordant++
			default:
				if modelDiff == 0 {
					modelTies++
				}
				if annotatorDiff == 0 {
					annotatorTies++
				}
			}
		}
	}

	totalPairs := float64(n*(n-1)) / 2
	denominator := math.Sqrt((totalPairs - float64(modelTies)) * (totalPairs - float64(annotatorTies)))
	if denominator == 0 {
		return 0
	}
	return float64(concordant-discordant) / denominator
}
