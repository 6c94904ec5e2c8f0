package matching

import (
	"fmt"
	"testing"

	"talentflow-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRankMatchesFiltersToActionableStages(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Approved", nil),
		newFreelancer("New", func(f *entity.Freelancer) { f.Status = entity.StageNewApplication }),
		negotiating("Negotiating"),
		newFreelancer("Rejected", func(f *entity.Freelancer) { f.Status = entity.StageRejected }),
		newFreelancer("RedFlag", func(f *entity.Freelancer) { f.Status = entity.StageRedFlag }),
	}

	matches := RankMatches(roster, DefaultCriteria(), nil)

	assert.Len(t, matches, 2)
	assert.Equal(t, "Approved", matches[0].Freelancer.FullName)
	assert.Equal(t, "Negotiating", matches[1].Freelancer.FullName)
}

func negotiating(name string) *entity.Freelancer {
	return newFreelancer(name, func(f *entity.Freelancer) { f.Status = entity.StagePriceNegotiation })
}

func TestRankMatchesBaselinePreservesOriginalOrder(t *testing.T) {
	var roster []*entity.Freelancer
	for i := 0; i < 5; i++ {
		roster = append(roster, newFreelancer(fmt.Sprintf("f%d", i), nil))
	}

	matches := RankMatches(roster, DefaultCriteria(), BaselineScorer)

	for i, m := range matches {
		assert.Equal(t, fmt.Sprintf("f%d", i), m.Freelancer.FullName)
		assert.Equal(t, 1.0, m.Score)
	}
}

func TestRankMatchesTruncatesToCap(t *testing.T) {
	var roster []*entity.Freelancer
	for i := 0; i < MaxMatches+15; i++ {
		roster = append(roster, newFreelancer(fmt.Sprintf("f%d", i), nil))
	}

	matches := RankMatches(roster, DefaultCriteria(), nil)

	assert.Len(t, matches, MaxMatches)
	// Truncation keeps the earliest candidates under the baseline scorer.
	assert.Equal(t, "f0", matches[0].Freelancer.FullName)
	assert.Equal(t, fmt.Sprintf("f%d", MaxMatches-1), matches[MaxMatches-1].Freelancer.FullName)
}

func TestRankMatchesCustomScorerOrdersByScore(t *testing.T) {
	short := newFreelancer("Al", nil)
	long := newFreelancer("Alexandria", nil)

	byNameLength := func(f *entity.Freelancer, _ Criteria) float64 {
		return float64(len(f.FullName))
	}

	matches := RankMatches([]*entity.Freelancer{short, long}, DefaultCriteria(), byNameLength)

	assert.Equal(t, "Alexandria", matches[0].Freelancer.FullName)
	assert.Equal(t, "Al", matches[1].Freelancer.FullName)
}

func TestRankMatchesSkipsNil(t *testing.T) {
	matches := RankMatches([]*entity.Freelancer{nil, newFreelancer("Alice", nil)}, DefaultCriteria(), nil)

	assert.Len(t, matches, 1)
}
