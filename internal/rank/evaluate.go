package rank

import (
	"log/slog"
	"math"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
)

// evaluationLimit caps how many resumes take part in the alignment metrics.
// The annotators only ranked the first ten.
const evaluationLimit = 10

// ResumeResult holds one resume's analyses, one per job description, in job
// order.
type ResumeResult struct {
	Key   string
	Items []analysis.ResumeAnalysis
}

// Metrics is the full evaluation output: per-resume rankings plus alignment
// with every annotator ranklist. A tau of 0 marks a missing or degenerate
// comparison and is excluded from the means.
type Metrics struct {
	AdjustedScores map[string][]float64
	RankedIndices  map[string][]int
	Alignment      map[string]map[string]float64

	PerResumeMean   map[string]float64
	PerRanklistMean map[string]float64
	OverallMean     float64
	OverallStd      float64
	InterAnnotator  float64
}

// Evaluate ranks every resume's jobs by adjusted score and measures agreement
// with the annotator rankings. annotations maps ranklist IDs to per-resume
// rankings aligned with the order of results.
func Evaluate(results []ResumeResult, annotations map[string][][]int) Metrics {
	m := Metrics{
		AdjustedScores:  make(map[string][]float64),
		RankedIndices:   make(map[string][]int),
		Alignment:       make(map[string]map[string]float64),
		PerResumeMean:   make(map[string]float64),
		PerRanklistMean: make(map[string]float64),
	}

	if len(results) > evaluationLimit {
		results = results[:evaluationLimit]
	}

	for i, res := range results {
		adjusted := AdjustedScores(res.Items)
		ranked := RankIndices(adjusted)
		m.AdjustedScores[res.Key] = adjusted
		m.RankedIndices[res.Key] = ranked

		m.Alignment[res.Key] = make(map[string]float64)
		for ranklist, rankings := range annotations {
			if i < min(evaluationLimit, len(rankings)) {
				m.Alignment[res.Key][ranklist] = KendallTau(ranked, rankings[i])
			} else {
				slog.Warn("no annotator ranking for resume", "resume", res.Key, "ranklist", ranklist)
				m.Alignment[res.Key][ranklist] = 0
			}
		}
	}

	var allTaus []float64
	perRanklist := make(map[string][]float64, len(annotations))
	for ranklist := range annotations {
		perRanklist[ranklist] = nil
	}

	for _, res := range results {
		var taus []float64
		for _, tau := range m.Alignment[res.Key] {
			if tau != 0 {
				taus = append(taus, tau)
			}
		}
		if len(taus) > 0 {
			m.PerResumeMean[res.Key] = mean(taus)
			allTaus = append(allTaus, taus...)
		} else {
			m.PerResumeMean[res.Key] = 0
		}
		for ranklist := range perRanklist {
			if tau := m.Alignment[res.Key][ranklist]; tau != 0 {
				perRanklist[ranklist] = append(perRanklist[ranklist], tau)
			}
		}
	}

	for ranklist, taus := range perRanklist {
		if len(taus) > 0 {
			m.PerRanklistMean[ranklist] = mean(taus)
		} else {
			m.PerRanklistMean[ranklist] = 0
		}
	}

	if len(allTaus) > 0 {
		m.OverallMean = mean(allTaus)
	}
	if len(allTaus) > 1 {
		m.OverallStd = stdev(allTaus)
	}
	m.InterAnnotator = interAnnotatorMean(annotations)

	return m
}

// interAnnotatorMean measures agreement between the first two annotators as
// a baseline for the model's alignment scores.
func interAnnotatorMean(annotations map[string][][]int) float64 {
	first, second := annotations["ranklist_1"], annotations["ranklist_2"]
	if first == nil || second == nil {
		return 0
	}

	var taus []float64
	limit := min(evaluationLimit, len(first), len(second))
	for i := 0; i < limit; i++ {
		if tau := KendallTau(first[i], second[i]); tau != 0 {
			taus = append(taus, tau)
		}
	}
	if len(taus) == 0 {
		return 0
	}
	return mean(taus)
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample standard deviation.
func stdev(xs []float64) float64 {
	mu := mean(xs)
	var sum float64
	for _, x := range xs {
		sum += (x - mu) * (x - mu)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
