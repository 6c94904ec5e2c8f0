package matching

import (
	"testing"

	"talentflow-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistinctLanguagePairsDedupesAcrossRepresentations(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", func(f *entity.Freelancer) {
			f.LanguagePairs = []entity.LanguagePair{{Source: "en", Target: "fr"}}
		}),
		newFreelancer("Bob", func(f *entity.Freelancer) {
			f.LanguagePairs = []entity.LanguagePair{
				{Source: "English", Target: "French"}, // same pair, different spelling
				{Source: "French", Target: "English"}, // reverse direction is distinct
			}
		}),
	}

	pairs := DistinctLanguagePairs(roster)

	assert.Equal(t, []string{"English → French", "French → English"}, pairs)
}

func TestDistinctSpecializationsSortedAndDeduped(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", func(f *entity.Freelancer) { f.Specializations = []string{"Legal", "Medical"} }),
		newFreelancer("Bob", func(f *entity.Freelancer) { f.Specializations = []string{"Medical", "Gaming"} }),
	}

	assert.Equal(t, []string{"Gaming", "Legal", "Medical"}, DistinctSpecializations(roster))
}

func TestDistinctSkillsFlattensSkillsAndSoftware(t *testing.T) {
	roster := []*entity.Freelancer{
		newFreelancer("Alice", func(f *entity.Freelancer) {
			f.Skills = []string{"Post-editing"}
			f.Software = []string{"Trados"}
		}),
	}

	assert.Equal(t, []string{"Post-editing", "Trados"}, DistinctSkills(roster))
}

func TestFacetsTolerateNilAndEmpty(t *testing.T) {
	roster := []*entity.Freelancer{nil, newFreelancer("Alice", nil)}

	assert.Empty(t, DistinctLanguagePairs(roster))
	assert.Empty(t, DistinctSpecializations(roster))
	assert.Empty(t, DistinctSkills(roster))
	assert.Empty(t, DistinctServiceTypes(roster))
	assert.Empty(t, DistinctLanguagePairs(nil))
}
