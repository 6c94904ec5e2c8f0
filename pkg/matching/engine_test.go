package matching

import (
	"testing"

	"talentflow-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func newFreelancer(name string, mutate func(*entity.Freelancer)) *entity.Freelancer {
	f := &entity.Freelancer{
		Id:       uuid.New(),
		FullName: name,
		Email:    name + "@example.com",
		Status:   entity.StageApproved,
	}
	if mutate != nil {
		mutate(f)
	}
	return f
}

func TestEmptyCriteriaIsIdentity(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", nil),
		newFreelancer("Bob", nil),
		newFreelancer("Carol", nil),
	}

	got := FilterRoster(roster, DefaultCriteria(), nil)

	assert.Equal(t, roster, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", func(f *entity.Freelancer) { f.ExperienceYears = fptr(5) }),
		newFreelancer("Bob", nil),
	}
	c := DefaultCriteria().WithExperienceRange(fptr(3), nil)

	first := FilterRoster(roster, c, nil)
	second := FilterRoster(roster, c, nil)

	assert.Equal(t, first, second)
}

func TestAddingFacetNeverGrowsResult(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", func(f *entity.Freelancer) {
			f.ExperienceYears = fptr(5)
			f.Specializations = []string{"Legal"}
		}),
		newFreelancer("Bob", func(f *entity.Freelancer) {
			f.ExperienceYears = fptr(8)
		}),
		newFreelancer("Carol", nil),
	}

	c := DefaultCriteria()
	sizes := []int{len(FilterRoster(roster, c, nil))}

	c = c.WithExperienceRange(fptr(3), nil)
	sizes = append(sizes, len(FilterRoster(roster, c, nil)))

	c = c.WithSpecializations([]string{"Legal"})
	sizes = append(sizes, len(FilterRoster(roster, c, nil)))

	for i := 1; i < len(sizes); i++ {
		assert.LessOrEqual(t, sizes[i], sizes[i-1])
	}
}

// Scenario 1: language pair + minimum experience both satisfied.
func TestLanguagePairAndExperience(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.LanguagePairs = []entity.LanguagePair{{Source: "English", Target: "French"}}
		f.ExperienceYears = fptr(5)
	})
	c := DefaultCriteria().
		WithLanguagePairs([]string{"en → fr"}).
		WithExperienceRange(fptr(3), nil)

	got := FilterRoster([]*entity.Freelancer{f}, c, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, f.Id, got[0].Id)
}

// Scenario 2: minimum experience above the freelancer's years excludes.
func TestMinExperienceExcludes(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) { f.ExperienceYears = fptr(5) })
	c := DefaultCriteria().WithExperienceRange(fptr(10), nil)

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestMinExperienceFailsClosedWhenAbsent(t *testing.T) {
	f := newFreelancer("Alice", nil) // no experience recorded
	c := DefaultCriteria().WithExperienceRange(fptr(1), nil)

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestMaxExperienceExcludes(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) { f.ExperienceYears = fptr(8) })
	c := DefaultCriteria().WithExperienceRange(nil, fptr(5))

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestMaxExperienceFailsClosedWhenAbsent(t *testing.T) {
	f := newFreelancer("Alice", nil) // no experience recorded
	c := DefaultCriteria().WithExperienceRange(nil, fptr(5))

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

// Scenario 3: zero rates means "rate unknown" and passes a max-rate filter.
func TestMaxRatePassesOpenWithNoRates(t *testing.T) {
	f := newFreelancer("Alice", nil)
	c := DefaultCriteria().WithMaxRate(fptr(0.10))

	got := FilterRoster([]*entity.Freelancer{f}, c, nil)

	assert.Len(t, got, 1)
}

func TestMaxRateExcludesWhenAllRatesAbove(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.Rates = []entity.Rate{{RateType: "per_word", RateValue: 0.20, Currency: "USD"}}
	})
	c := DefaultCriteria().WithMaxRate(fptr(0.10))

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestMaxRateConsidersPairNestedRates(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.LanguagePairs = []entity.LanguagePair{{
			Source: "en", Target: "fr",
			Rates: []entity.Rate{{RateType: "per_word", RateValue: 0.05, Currency: "USD"}},
		}}
	})
	c := DefaultCriteria().WithMaxRate(fptr(0.10))

	assert.Len(t, FilterRoster([]*entity.Freelancer{f}, c, nil), 1)
}

// Scenario 4: an ungraded attempt still counts as "taken".
func TestNotTakenExcludesUngradedAttempt(t *testing.T) {
	f := newFreelancer("Alice", nil)
	attempts := []*entity.QuizAttempt{{
		Id:           uuid.New(),
		FreelancerId: f.Id,
		Passed:       nil, // ungraded
	}}
	c := DefaultCriteria().WithQuizPassed(QuizFilterNotTaken)

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, attempts))
}

func TestNotTakenKeepsFreelancerWithoutAttempts(t *testing.T) {
	f := newFreelancer("Alice", nil)
	other := newFreelancer("Bob", nil)
	attempts := []*entity.QuizAttempt{{Id: uuid.New(), FreelancerId: other.Id, Passed: bptr(true)}}
	c := DefaultCriteria().WithQuizPassed(QuizFilterNotTaken)

	got := FilterRoster([]*entity.Freelancer{f, other}, c, attempts)

	assert.Len(t, got, 1)
	assert.Equal(t, f.Id, got[0].Id)
}

func TestQuizPassedRequiresGradedPass(t *testing.T) {
	f := newFreelancer("Alice", nil)
	attempts := []*entity.QuizAttempt{
		{Id: uuid.New(), FreelancerId: f.Id, Passed: nil},
		{Id: uuid.New(), FreelancerId: f.Id, Passed: bptr(false)},
	}
	c := DefaultCriteria().WithQuizPassed(QuizFilterPassed)
	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, attempts))

	attempts = append(attempts, &entity.QuizAttempt{Id: uuid.New(), FreelancerId: f.Id, Passed: bptr(true)})
	assert.Len(t, FilterRoster([]*entity.Freelancer{f}, c, attempts), 1)
}

func TestMinQuizScoreAveragesAttempts(t *testing.T) {
	f := newFreelancer("Alice", nil)
	attempts := []*entity.QuizAttempt{
		{Id: uuid.New(), FreelancerId: f.Id, Score: 60},
		{Id: uuid.New(), FreelancerId: f.Id, Score: 90},
	}

	c := DefaultCriteria().WithMinQuizScore(fptr(75))
	assert.Len(t, FilterRoster([]*entity.Freelancer{f}, c, attempts), 1)

	c = DefaultCriteria().WithMinQuizScore(fptr(80))
	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, attempts))
}

func TestMinQuizScoreFailsClosedWithoutAttempts(t *testing.T) {
	f := newFreelancer("Alice", nil)
	c := DefaultCriteria().WithMinQuizScore(fptr(10))

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	f := newFreelancer("Alice Martin", func(f *entity.Freelancer) {
		f.Skills = []string{"MemoQ"}
		f.Specializations = []string{"Medical Devices"}
		f.LanguagePairs = []entity.LanguagePair{{Source: "German", Target: "English"}}
	})
	roster := []*entity.Freelancer{f}

	for _, q := range []string{"alice", "MEMOQ", "medical", "german"} {
		got := FilterRoster(roster, DefaultCriteria().WithSearch(q), nil)
		assert.Len(t, got, 1, "query %q", q)
	}

	assert.Empty(t, FilterRoster(roster, DefaultCriteria().WithSearch("swahili"), nil))
}

func TestLanguagePairSelectionNormalizesBothSides(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.LanguagePairs = []entity.LanguagePair{{Source: "en-GB", Target: "Fransızca"}}
	})

	// Selection recorded as display names still matches pair stored as codes.
	c := DefaultCriteria().WithLanguagePairs([]string{"English → French"})

	assert.Len(t, FilterRoster([]*entity.Freelancer{f}, c, nil), 1)
}

func TestLanguagePairDirectionExcludes(t *testing.T) {
	f := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.LanguagePairs = []entity.LanguagePair{{Source: "fr", Target: "en"}}
	})
	c := DefaultCriteria().WithLanguagePairs([]string{"en → fr"})

	assert.Empty(t, FilterRoster([]*entity.Freelancer{f}, c, nil))
}

func TestSkillsFacetChecksSkillsAndSoftware(t *testing.T) {
	bySkill := newFreelancer("Alice", func(f *entity.Freelancer) { f.Skills = []string{"Subtitling QA"} })
	bySoftware := newFreelancer("Bob", func(f *entity.Freelancer) { f.Software = []string{"Trados"} })
	neither := newFreelancer("Carol", nil)

	c := DefaultCriteria().WithSkills([]string{"Trados", "Subtitling QA"})
	got := FilterRoster([]*entity.Freelancer{bySkill, bySoftware, neither}, c, nil)

	assert.Len(t, got, 2)
}

func TestStatusAndAvailabilityExactMatch(t *testing.T) {
	approved := newFreelancer("Alice", func(f *entity.Freelancer) {
		f.Availability = entity.AvailabilityImmediate
	})
	onHold := newFreelancer("Bob", func(f *entity.Freelancer) {
		f.Status = entity.StageOnHold
		f.Availability = entity.AvailabilityWithin1Month
	})
	roster := []*entity.Freelancer{approved, onHold}

	got := FilterRoster(roster, DefaultCriteria().WithStatus(string(entity.StageOnHold)), nil)
	assert.Len(t, got, 1)
	assert.Equal(t, onHold.Id, got[0].Id)

	got = FilterRoster(roster, DefaultCriteria().WithAvailability(string(entity.AvailabilityImmediate)), nil)
	assert.Len(t, got, 1)
	assert.Equal(t, approved.Id, got[0].Id)
}

func TestBooleanFlags(t *testing.T) {
	signed := newFreelancer("Alice", func(f *entity.Freelancer) { f.NdaSigned = true })
	unsigned := newFreelancer("Bob", nil)

	c := DefaultCriteria().WithFlags(true, false, false)
	got := FilterRoster([]*entity.Freelancer{signed, unsigned}, c, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, signed.Id, got[0].Id)
}

func TestMinRatingFailsClosedWhenAbsent(t *testing.T) {
	rated := newFreelancer("Alice", func(f *entity.Freelancer) { f.ResourceRating = fptr(92) })
	unrated := newFreelancer("Bob", nil)

	c := DefaultCriteria().WithMinRating(fptr(90))
	got := FilterRoster([]*entity.Freelancer{rated, unrated}, c, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, rated.Id, got[0].Id)
}

func TestNilRosterEntriesAreSkipped(t *testing.T) {
	roster := []*entity.Freelancer{nil, newFreelancer("Alice", nil), nil}

	got := FilterRoster(roster, DefaultCriteria(), nil)

	assert.Len(t, got, 1)
}
