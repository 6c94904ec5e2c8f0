package matching

import (
	"strings"

	"talentflow-be/internal/entity"
	"talentflow-be/pkg/matching/language"

	"github.com/google/uuid"
)

// FilterRoster applies one predicate per active facet, in sequence, over the
// roster. A freelancer survives only by passing every active predicate (AND
// across facets); within a multi-select facet, matching any selected value
// suffices (OR within the facet). Order of the input is preserved and the
// result shares freelancer pointers with the input.
func FilterRoster(roster []*entity.Freelancer, c Criteria, attempts []*entity.QuizAttempt) []*entity.Freelancer {
	attemptsBy := groupAttempts(attempts)
	selectedPairs := selectedPairSet(c.LanguagePairs)

	out := make([]*entity.Freelancer, 0, len(roster))
	for _, f := range roster {
		if f == nil {
			continue
		}
		if matches(f, c, selectedPairs, attemptsBy[f.Id]) {
			out = append(out, f)
		}
	}
	return out
}

func matches(f *entity.Freelancer, c Criteria, selectedPairs map[string]struct{}, attempts []*entity.QuizAttempt) bool {
	if active(c.QuizPassed) && !matchesQuizStatus(c.QuizPassed, attempts) {
		return false
	}
	if c.MinQuizScore != nil && !meetsAverageScore(attempts, *c.MinQuizScore) {
		return false
	}
	if c.Search != "" && !matchesSearch(f, c.Search) {
		return false
	}
	if active(c.Status) && string(f.Status) != c.Status {
		return false
	}
	if len(selectedPairs) > 0 && !hasAnyPair(f, selectedPairs) {
		return false
	}
	if len(c.Specializations) > 0 && !intersects(f.Specializations, c.Specializations) {
		return false
	}
	if len(c.ServiceTypes) > 0 && !intersects(f.ServiceTypes, c.ServiceTypes) {
		return false
	}
	if len(c.Skills) > 0 && !intersects(f.Skills, c.Skills) && !intersects(f.Software, c.Skills) {
		return false
	}
	if c.MinExperience != nil && !meetsMin(f.ExperienceYears, *c.MinExperience) {
		return false
	}
	if c.MaxExperience != nil && !meetsMax(f.ExperienceYears, *c.MaxExperience) {
		return false
	}
	if active(c.Availability) && string(f.Availability) != c.Availability {
		return false
	}
	if c.MaxRate != nil && !hasRateAtOrBelow(f, *c.MaxRate) {
		return false
	}
	if c.NdaSigned && !f.NdaSigned {
		return false
	}
	if c.Tested && !f.Tested {
		return false
	}
	if c.Certified && !f.Certified {
		return false
	}
	if c.MinRating != nil && !meetsMin(f.ResourceRating, *c.MinRating) {
		return false
	}
	return true
}

// active reports whether a single-select facet restricts the result.
func active(v string) bool {
	return v != "" && v != FilterAll
}

// matchesQuizStatus implements the tri-state quiz facet. An ungraded
// attempt (Passed == nil) still counts as taken: not_taken means zero
// attempts exist, not zero graded attempts.
func matchesQuizStatus(want string, attempts []*entity.QuizAttempt) bool {
	switch want {
	case QuizFilterNotTaken:
		return len(attempts) == 0
	case QuizFilterPassed:
		for _, a := range attempts {
			if a.Passed != nil && *a.Passed {
				return true
			}
		}
		return false
	case QuizFilterFailed:
		for _, a := range attempts {
			if a.Passed != nil && !*a.Passed {
				return true
			}
		}
		return false
	}
	return true
}

// meetsAverageScore fails closed: a freelancer with no attempts cannot meet
// a minimum score threshold.
func meetsAverageScore(attempts []*entity.QuizAttempt, min float64) bool {
	if len(attempts) == 0 {
		return false
	}
	var sum float64
	for _, a := range attempts {
		sum += a.Score
	}
	return sum/float64(len(attempts)) >= min
}

func matchesSearch(f *entity.Freelancer, query string) bool {
	q := strings.ToLower(query)
	if containsFold(f.FullName, q) || containsFold(f.Email, q) {
		return true
	}
	for _, s := range f.Skills {
		if containsFold(s, q) {
			return true
		}
	}
	for _, s := range f.Specializations {
		if containsFold(s, q) {
			return true
		}
	}
	for _, p := range f.LanguagePairs {
		if containsFold(p.Source, q) || containsFold(p.Target, q) {
			return true
		}
	}
	return false
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// selectedPairSet normalizes criteria-side pair keys so that selections made
// against display names compare equal to freelancer pairs entered as codes.
func selectedPairSet(selected []string) map[string]struct{} {
	if len(selected) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(selected))
	for _, key := range selected {
		source, target, ok := strings.Cut(key, language.PairSeparator)
		if !ok {
			// Not a pair key; keep it verbatim so it can never match spuriously.
			set[key] = struct{}{}
			continue
		}
		set[language.PairKey(strings.TrimSpace(source), strings.TrimSpace(target))] = struct{}{}
	}
	return set
}

func hasAnyPair(f *entity.Freelancer, selected map[string]struct{}) bool {
	for _, p := range f.LanguagePairs {
		if _, ok := selected[language.PairKey(p.Source, p.Target)]; ok {
			return true
		}
	}
	return false
}

// intersects reports a non-empty intersection; nil slices are empty.
func intersects(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(want))
	for _, w := range want {
		set[w] = struct{}{}
	}
	for _, h := range have {
		if _, ok := set[h]; ok {
			return true
		}
	}
	return false
}

// meetsMin fails closed: an absent value cannot satisfy a minimum.
func meetsMin(v *float64, min float64) bool {
	return v != nil && *v >= min
}

// meetsMax fails closed like meetsMin: an absent value cannot be shown to
// sit under the maximum. Rate filtering is the one facet that passes open
// on missing data, and it has its own helper.
func meetsMax(v *float64, max float64) bool {
	return v != nil && *v <= max
}

// hasRateAtOrBelow passes open on an empty rate list: "rate unknown" is not
// grounds for exclusion. Nested per-pair rates count alongside top-level
// rates since both are denormalized onto the record.
func hasRateAtOrBelow(f *entity.Freelancer, max float64) bool {
	total := 0
	for _, r := range f.Rates {
		total++
		if r.RateValue <= max {
			return true
		}
	}
	for _, p := range f.LanguagePairs {
		for _, r := range p.Rates {
			total++
			if r.RateValue <= max {
				return true
			}
		}
	}
	return total == 0
}

func groupAttempts(attempts []*entity.QuizAttempt) map[uuid.UUID][]*entity.QuizAttempt {
	if len(attempts) == 0 {
		return nil
	}
	grouped := make(map[uuid.UUID][]*entity.QuizAttempt)
	for _, a := range attempts {
		if a == nil {
			continue
		}
		grouped[a.FreelancerId] = append(grouped[a.FreelancerId], a)
	}
	return grouped
}
