package matching

// Quiz status filter values.
const (
	QuizFilterAll      = "all"
	QuizFilterPassed   = "passed"
	QuizFilterFailed   = "failed"
	QuizFilterNotTaken = "not_taken"
)

// FilterAll is the sentinel for single-select facets meaning "no restriction".
const FilterAll = "all"

// Criteria is the flat filter object the engine consumes. Multi-select
// facets default to empty slices (no restriction from that facet); scalar
// facets default to "all" or nil. The whole object stays JSON-serializable
// because it is persisted verbatim, minus default fields.
type Criteria struct {
	Search          string   `json:"search,omitempty"`
	Status          string   `json:"status,omitempty"`       // pipeline stage label or "all"
	QuizPassed      string   `json:"quiz_passed,omitempty"`  // all | passed | failed | not_taken
	MinQuizScore    *float64 `json:"min_quiz_score,omitempty"`
	LanguagePairs   []string `json:"language_pairs,omitempty"` // pair keys, any representation
	Specializations []string `json:"specializations,omitempty"`
	ServiceTypes    []string `json:"service_types,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	MinExperience   *float64 `json:"min_experience,omitempty"`
	MaxExperience   *float64 `json:"max_experience,omitempty"`
	Availability    string   `json:"availability,omitempty"` // value or "all"
	MaxRate         *float64 `json:"max_rate,omitempty"`
	NdaSigned       bool     `json:"nda_signed,omitempty"`
	Tested          bool     `json:"tested,omitempty"`
	Certified       bool     `json:"certified,omitempty"`
	MinRating       *float64 `json:"min_rating,omitempty"`
}

// DefaultCriteria returns the all-default object: filtering with it is the
// identity over any roster.
func DefaultCriteria() Criteria {
	return Criteria{
		Status:       FilterAll,
		QuizPassed:   QuizFilterAll,
		Availability: FilterAll,
	}
}

// IsDefault reports whether no facet is active.
func (c Criteria) IsDefault() bool {
	return c.Search == "" &&
		(c.Status == "" || c.Status == FilterAll) &&
		(c.QuizPassed == "" || c.QuizPassed == QuizFilterAll) &&
		c.MinQuizScore == nil &&
		len(c.LanguagePairs) == 0 &&
		len(c.Specializations) == 0 &&
		len(c.ServiceTypes) == 0 &&
		len(c.Skills) == 0 &&
		c.MinExperience == nil &&
		c.MaxExperience == nil &&
		(c.Availability == "" || c.Availability == FilterAll) &&
		c.MaxRate == nil &&
		!c.NdaSigned && !c.Tested && !c.Certified &&
		c.MinRating == nil
}

// Per-facet reducers. Each returns an updated copy, leaving the receiver
// untouched, so UI layers can treat criteria as an immutable state value.

func (c Criteria) WithSearch(q string) Criteria { c.Search = q; return c }

func (c Criteria) WithStatus(status string) Criteria { c.Status = status; return c }

func (c Criteria) WithQuizPassed(v string) Criteria { c.QuizPassed = v; return c }

func (c Criteria) WithMinQuizScore(score *float64) Criteria { c.MinQuizScore = score; return c }

func (c Criteria) WithLanguagePairs(pairs []string) Criteria {
	c.LanguagePairs = cloneStrings(pairs)
	return c
}

func (c Criteria) WithSpecializations(specs []string) Criteria {
	c.Specializations = cloneStrings(specs)
	return c
}

func (c Criteria) WithServiceTypes(types []string) Criteria {
	c.ServiceTypes = cloneStrings(types)
	return c
}

func (c Criteria) WithSkills(skills []string) Criteria {
	c.Skills = cloneStrings(skills)
	return c
}

func (c Criteria) WithExperienceRange(min, max *float64) Criteria {
	c.MinExperience = min
	c.MaxExperience = max
	return c
}

func (c Criteria) WithAvailability(v string) Criteria { c.Availability = v; return c }

func (c Criteria) WithMaxRate(rate *float64) Criteria { c.MaxRate = rate; return c }

func (c Criteria) WithFlags(nda, tested, certified bool) Criteria {
	c.NdaSigned = nda
	c.Tested = tested
	c.Certified = certified
	return c
}

func (c Criteria) WithMinRating(rating *float64) Criteria { c.MinRating = rating; return c }

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
