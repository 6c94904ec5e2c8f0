package matching

import (
	"sort"

	"talentflow-be/internal/entity"
	"talentflow-be/pkg/matching/language"
)

// DistinctLanguagePairs returns the sorted, deduplicated display-ready pair
// strings present in the roster. Dedup is by normalized pair key, so
// "en → fr" and "English → French" collapse into one option.
func DistinctLanguagePairs(roster []*entity.Freelancer) []string {
	seen := make(map[string]string) // normalized key -> display string
	for _, f := range roster {
		if f == nil {
			continue
		}
		for _, p := range f.LanguagePairs {
			key := language.PairKey(p.Source, p.Target)
			if _, ok := seen[key]; !ok {
				seen[key] = language.DisplayPair(p.Source, p.Target)
			}
		}
	}
	return sortedValues(seen)
}

// DistinctSpecializations returns the sorted, deduplicated specialization
// tags flattened across all freelancers.
func DistinctSpecializations(roster []*entity.Freelancer) []string {
	return distinctTags(roster, func(f *entity.Freelancer) []string { return f.Specializations })
}

// DistinctSkills flattens skills and software tags together, matching how
// the skills facet filters.
func DistinctSkills(roster []*entity.Freelancer) []string {
	return distinctTags(roster, func(f *entity.Freelancer) []string {
		return append(append([]string(nil), f.Skills...), f.Software...)
	})
}

// DistinctServiceTypes returns the service types present in the roster.
func DistinctServiceTypes(roster []*entity.Freelancer) []string {
	return distinctTags(roster, func(f *entity.Freelancer) []string { return f.ServiceTypes })
}

func distinctTags(roster []*entity.Freelancer, pick func(*entity.Freelancer) []string) []string {
	seen := make(map[string]struct{})
	for _, f := range roster {
		if f == nil {
			continue
		}
		for _, tag := range pick(f) {
			if tag == "" {
				continue
			}
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
