package dto

import (
	"testing"

	"talentflow-be/pkg/matching"

	"github.com/stretchr/testify/assert"
)

func TestRosterFilterRequestToCriteria(t *testing.T) {
	t.Run("empty request yields default criteria", func(t *testing.T) {
		c := RosterFilterRequest{}.ToCriteria()

		assert.Equal(t, matching.FilterAll, c.Status)
		assert.Equal(t, matching.QuizFilterAll, c.QuizPassed)
		assert.Equal(t, matching.FilterAll, c.Availability)
		assert.True(t, c.IsDefault())
	})

	t.Run("explicit fields pass through", func(t *testing.T) {
		minExp := 3.0
		req := RosterFilterRequest{
			Search:        "marta",
			Status:        "Approved",
			QuizPassed:    "passed",
			LanguagePairs: []string{"English → Polish"},
			MinExperience: &minExp,
			NdaSigned:     true,
		}

		c := req.ToCriteria()

		assert.Equal(t, "marta", c.Search)
		assert.Equal(t, "Approved", c.Status)
		assert.Equal(t, "passed", c.QuizPassed)
		assert.Equal(t, []string{"English → Polish"}, c.LanguagePairs)
		assert.Equal(t, &minExp, c.MinExperience)
		assert.True(t, c.NdaSigned)
		assert.False(t, c.IsDefault())
	})
}
