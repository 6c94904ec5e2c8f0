package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCriteriaIsDefault(t *testing.T) {
	assert.True(t, DefaultCriteria().IsDefault())
}

func TestZeroValueCriteriaIsDefault(t *testing.T) {
	// Sentinels "" and "all" both mean "no restriction".
	assert.True(t, Criteria{}.IsDefault())
}

func TestAnyActiveFacetIsNotDefault(t *testing.T) {
	cases := map[string]Criteria{
		"search":       DefaultCriteria().WithSearch("x"),
		"status":       DefaultCriteria().WithStatus("Approved"),
		"quiz":         DefaultCriteria().WithQuizPassed(QuizFilterPassed),
		"pairs":        DefaultCriteria().WithLanguagePairs([]string{"en → fr"}),
		"min exp":      DefaultCriteria().WithExperienceRange(fptr(1), nil),
		"max rate":     DefaultCriteria().WithMaxRate(fptr(0.1)),
		"flags":        DefaultCriteria().WithFlags(true, false, false),
		"min rating":   DefaultCriteria().WithMinRating(fptr(50)),
		"availability": DefaultCriteria().WithAvailability("Immediate"),
	}
	for name, c := range cases {
		assert.False(t, c.IsDefault(), name)
	}
}

func TestReducersLeaveReceiverUntouched(t *testing.T) {
	base := DefaultCriteria()

	derived := base.WithSearch("legal").WithLanguagePairs([]string{"en → fr"})

	assert.True(t, base.IsDefault())
	assert.Equal(t, "legal", derived.Search)
	assert.Equal(t, []string{"en → fr"}, derived.LanguagePairs)
}

func TestWithLanguagePairsCopiesSlice(t *testing.T) {
	selection := []string{"en → fr"}
	c := DefaultCriteria().WithLanguagePairs(selection)

	selection[0] = "mutated"

	assert.Equal(t, []string{"en → fr"}, c.LanguagePairs)
}
