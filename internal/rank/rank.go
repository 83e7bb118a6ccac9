// Package rank turns per-job analysis scores into rankings and measures how
// well they align with human annotator rankings.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/analysis"
)

var degreeLevels = map[string]int{
	"high school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
}

// relatedMajors maps a required major to majors close enough to count as a
// partial match. Keys and values are lowercase.
var relatedMajors = map[string][]string{
	"computer science": {
		"computer science", "information technology", "cyber security",
		"data engineering", "data science", "artificial intelligence",
		"machine learning", "deep learning", "computer engineering",
		"software engineering",
	},
	"statistics": {
		"statistics", "mathematics", "data science", "data analysis",
		"business analytics", "business intelligence", "finance", "economics",
		"marketing", "operations research", "supply chain management",
	},
	"decision science": {
		"decision science", "mathematics", "statistics", "data science",
		"data analysis", "business analytics", "business intelligence",
		"finance", "economics", "marketing", "operations research",
		"supply chain management",
	},
	"mathematics": {
		"data science", "physics", "applied mathematics", "statistics",
	},
	"electrical engineering": {
		"electrical engineering", "electronics", "computer engineering",
		"vlsi engineering", "communication engineering",
		"electronics and communication engineering",
		"electronics and computer engineering",
		"electronics and electrical engineering",
	},
}

// DegreeLevel maps a degree name to its ordinal level, tolerating the usual
// spelling variations ("Master's", "Bachelors", "Ph.D"). Unknown degrees map
// to 0.
func DegreeLevel(degree string) int {
	d := strings.ToLower(strings.TrimSpace(degree))
	d = strings.ReplaceAll(d, "'", "")
	d = strings.ReplaceAll(d, ".", "")
	d = strings.TrimSuffix(d, "s")
	if d == "ph d" {
		d = "phd"
	}
	return degreeLevels[d]
}

// DegreeSim scores a candidate's degree against a job requirement. No
// requirement is a full match, no candidate degree against a requirement is
// a miss. A candidate at or one level above the requirement scores 1, two or
// more levels above scores 0.5 (overqualified), below the requirement 0.
// Only the first entry of each list counts.
func DegreeSim(candidate, required []string) float64 {
	if len(required) == 0 {
		return 1
	}
	if len(candidate) == 0 {
		return 0
	}
	cand := DegreeLevel(candidate[0])
	req := DegreeLevel(required[0])
	if cand < req {
		return 0
	}
	if cand-req < 2 {
		return 1
	}
	return 0.5
}

// MajorSim scores a candidate's major against a required major: exact match
// 1, related major 0.5, otherwise 0. No requirement is a full match, no
// candidate major against a requirement is a miss.
func MajorSim(candidate, required []string) float64 {
	if len(required) == 0 {
		return 1
	}
	if len(candidate) == 0 {
		return 0
	}
	cand := strings.ToLower(candidate[0])
	req := strings.ToLower(required[0])
	if cand == req {
		return 1
	}
	for _, m := range relatedMajors[req] {
		if cand == m {
			return 0.5
		}
	}
	return 0
}

const rankFactor = 0.01

// AdjustedScores resolves duplicate overall scores so the ranking is total.
// Tied jobs are reordered by education fit (DegreeSim + MajorSim) with a
// small per-rank bump, capped below the next distinct score so adjustments
// never leapfrog a genuinely better job.
func AdjustedScores(items []analysis.ResumeAnalysis) []float64 {
	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = item.OverallScore
	}

	groups := make(map[float64][]int)
	for i, s := range scores {
		groups[s] = append(groups[s], i)
	}

	unique := make([]float64, 0, len(groups))
	for s := range groups {
		unique = append(unique, s)
	}
	sort.Float64s(unique)

	nextScore := make(map[float64]float64, len(unique))
	for i, s := range unique {
		if i+1 < len(unique) {
			nextScore[s] = unique[i+1]
		} else {
			nextScore[s] = math.Inf(1)
		}
	}

	adjusted := append([]float64(nil), scores...)
	for score, indices := range groups {
		if len(indices) < 2 {
			continue
		}

		type adjustment struct {
			idx   int
			value float64
		}
		adjustments := make([]adjustment, 0, len(indices))
		for _, idx := range indices {
			edu := items[idx].Resume.Qualifications.Education
			req := items[idx].JobDescription.Education
			value := DegreeSim(edu.Level, req.RequiredDegree) + MajorSim(edu.Major, req.RequiredMajor)
			adjustments = append(adjustments, adjustment{idx: idx, value: value})
		}
		// Stable: equal education fits keep their job order.
		sort.SliceStable(adjustments, func(i, j int) bool {
			return adjustments[i].value > adjustments[j].value
		})

		limit := nextScore[score]
		for rank, a := range adjustments {
			v := score + a.value*0.01 + float64(len(indices)-rank-1)*rankFactor
			if !math.IsInf(limit, 1) {
				v = math.Min(v, limit-rankFactor)
			}
			adjusted[a.idx] = v
		}
	}
	return adjusted
}

// RankIndices returns 1-based job indices ordered best first: descending
// adjusted score, ties by ascending index.
func RankIndices(adjusted []float64) []int {
	order := make([]int, len(adjusted))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		if adjusted[order[i]] != adjusted[order[j]] {
			return adjusted[order[i]] > adjusted[order[j]]
		}
		return order[i] < order[j]
	})

	ranked := make([]int, len(order))
	for i, idx := range order {
		ranked[i] = idx + 1
	}
	return ranked
}
