package matching

import (
	"sort"

	"talentflow-be/internal/entity"
)

// MaxMatches caps the finder result list.
const MaxMatches = 20

// Match pairs a surviving candidate with its score.
type Match struct {
	Freelancer *entity.Freelancer `json:"freelancer"`
	Score      float64            `json:"score"`
}

// Scorer assigns a relevance score to a candidate. It is a named extension
// point: the product has never specified real weights, so the shipped
// scorer is a constant baseline and ranking reduces to stable original
// order. Swap in a weighted implementation here once stakeholders define
// weights; do not bake weights into RankMatches.
type Scorer func(f *entity.Freelancer, c Criteria) float64

// BaselineScorer scores every candidate identically (intentionally
// unscored, see Scorer).
func BaselineScorer(_ *entity.Freelancer, _ Criteria) float64 {
	return 1
}

// matchableStages is the allow-list for the finder flow: only candidates in
// an actionable stage can be proposed for a job.
var matchableStages = map[entity.PipelineStage]struct{}{
	entity.StageApproved:         {},
	entity.StagePriceNegotiation: {},
	entity.StageTestSent:         {},
}

// RankMatches scores the filtered candidates, orders them by score then
// original position (stable), and truncates to MaxMatches. A nil scorer
// falls back to BaselineScorer.
func RankMatches(filtered []*entity.Freelancer, c Criteria, score Scorer) []Match {
	if score == nil {
		score = BaselineScorer
	}

	matches := make([]Match, 0, len(filtered))
	for _, f := range filtered {
		if f == nil {
			continue
		}
		if _, ok := matchableStages[f.Status]; !ok {
			continue
		}
		matches = append(matches, Match{Freelancer: f, Score: score(f, c)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}
