package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestScore_SalaryFullCredit(t *testing.T) {
	job := Job{SalaryMin: intPtr(120000)}
	prefs := Preferences{SalaryMinimum: intPtr(100000)}
	weights := Weights{FactorSalary: 20}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, map[string]bool{FactorSalary: true}, result.Breakdown)
}

func TestScore_SalaryMissingGetsHalfCredit(t *testing.T) {
	job := Job{Title: "Engineer"}
	prefs := Preferences{SalaryMinimum: intPtr(100000)}
	weights := Weights{FactorSalary: 20}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, map[string]bool{FactorSalary: true}, result.Breakdown)
}

func TestScore_SalaryBelowMinimum(t *testing.T) {
	job := Job{SalaryMax: intPtr(80000)}
	prefs := Preferences{SalaryMinimum: intPtr(100000)}
	weights := Weights{FactorSalary: 20}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, map[string]bool{FactorSalary: false}, result.Breakdown)
}

func TestScore_SalaryPreferenceUnset(t *testing.T) {
	job := Job{SalaryMin: intPtr(120000)}
	weights := Weights{FactorSalary: 20}

	result := Score(job, Preferences{}, CareerProfile{}, weights)

	// A posted salary with no stated minimum cannot be judged satisfied.
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, map[string]bool{FactorSalary: false}, result.Breakdown)
}

func TestScore_RemoteSeekerHybridJob(t *testing.T) {
	job := Job{WorkType: "hybrid"}
	prefs := Preferences{WorkLocationPreference: "remote"}
	weights := Weights{FactorWorkLocation: 10}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, map[string]bool{FactorWorkLocation: false}, result.Breakdown)
}

func TestScore_WorkLocationCaseInsensitive(t *testing.T) {
	job := Job{WorkType: "Remote"}
	prefs := Preferences{WorkLocationPreference: "remote"}
	weights := Weights{FactorWorkLocation: 10}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Breakdown[FactorWorkLocation])
}

func TestScore_FlexiblePreferenceAcceptsAnything(t *testing.T) {
	job := Job{WorkType: "onsite"}
	prefs := Preferences{WorkLocationPreference: "flexible"}
	weights := Weights{FactorWorkLocation: 10}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 100, result.Score)
}

func TestScore_MustHaveSkillsRatio(t *testing.T) {
	job := Job{Description: "We need Go and Kubernetes experience. Docker a plus."}
	career := CareerProfile{
		TechnicalSkills: []string{"Go", "Kubernetes", "Rust", "Haskell"},
	}
	weights := Weights{FactorMustHaveSkills: 25}

	result := Score(job, Preferences{}, career, weights)

	// 2 of 4 skills matched: half credit, and the 0.5 ratio clears the
	// satisfied threshold.
	assert.Equal(t, 50, result.Score)
	assert.True(t, result.Breakdown[FactorMustHaveSkills])
}

func TestScore_MustHaveSkillsIncludesTools(t *testing.T) {
	job := Job{Description: "Daily work in Figma and Jira."}
	career := CareerProfile{
		TechnicalSkills: []string{"Python"},
		Tools:           []string{"Figma", "Jira", "Slack"},
	}
	weights := Weights{FactorMustHaveSkills: 20}

	result := Score(job, Preferences{}, career, weights)

	// 2 of 4 combined skills+tools matched.
	assert.Equal(t, 50, result.Score)
	assert.True(t, result.Breakdown[FactorMustHaveSkills])
}

func TestScore_MustHaveSkillsBelowThreshold(t *testing.T) {
	job := Job{Description: "We need Go."}
	career := CareerProfile{
		TechnicalSkills: []string{"Go", "Rust", "Haskell", "Erlang", "Zig"},
	}
	weights := Weights{FactorMustHaveSkills: 25}

	result := Score(job, Preferences{}, career, weights)

	assert.Equal(t, 20, result.Score)
	assert.False(t, result.Breakdown[FactorMustHaveSkills])
}

func TestScore_NiceToHaveSkills(t *testing.T) {
	job := Job{Description: "Strong communication and leadership required."}
	career := CareerProfile{
		SoftSkills: []string{"communication", "leadership", "mentoring"},
	}
	weights := Weights{FactorNiceToHaveSkills: 10}

	result := Score(job, Preferences{}, career, weights)

	assert.Equal(t, 67, result.Score)
	assert.True(t, result.Breakdown[FactorNiceToHaveSkills])
}

func TestScore_NonNegotiablesClean(t *testing.T) {
	job := Job{Description: "Hybrid role with async culture."}
	prefs := Preferences{NonNegotiables: []string{"on-call", "travel"}}
	weights := Weights{FactorNonNegotiables: 20}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Breakdown[FactorNonNegotiables])
}

func TestScore_NonNegotiableHitZeroesFactor(t *testing.T) {
	job := Job{Description: "Weekly travel to client sites; on-call rotation."}
	prefs := Preferences{NonNegotiables: []string{"travel"}}
	weights := Weights{FactorNonNegotiables: 20}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Breakdown[FactorNonNegotiables])
}

func TestScore_Responsibilities(t *testing.T) {
	job := Job{Description: "You will design APIs and mentor junior engineers."}
	prefs := Preferences{WantedResponsibilities: []string{"design apis", "mentor", "hiring"}}
	weights := Weights{FactorResponsibilities: 10}

	result := Score(job, prefs, CareerProfile{}, weights)

	assert.Equal(t, 67, result.Score)
	assert.True(t, result.Breakdown[FactorResponsibilities])
}

func TestScore_NoEvaluableFactorsIsZero(t *testing.T) {
	result := Score(Job{}, Preferences{}, CareerProfile{}, Weights{})

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Breakdown)
}

func TestScore_SkillFactorsSkippedWithoutDescription(t *testing.T) {
	job := Job{SalaryMin: intPtr(150000)}
	prefs := Preferences{
		SalaryMinimum:  intPtr(100000),
		NonNegotiables: []string{"travel"},
	}
	career := CareerProfile{TechnicalSkills: []string{"Go"}}
	weights := DefaultWeights()

	result := Score(job, prefs, career, weights)

	// Only salary and workLocation are evaluable (no description, and the
	// unset location preference still counts as a full match).
	assert.Equal(t, 100, result.Score)
	assert.NotContains(t, result.Breakdown, FactorMustHaveSkills)
	assert.NotContains(t, result.Breakdown, FactorNonNegotiables)
}

func TestScore_Deterministic(t *testing.T) {
	job := Job{
		SalaryMax:   intPtr(140000),
		WorkType:    "remote",
		Description: "Go, Kubernetes, mentoring, some travel",
	}
	prefs := Preferences{
		SalaryMinimum:          intPtr(120000),
		WorkLocationPreference: "remote",
		NonNegotiables:         []string{"clearance"},
		WantedResponsibilities: []string{"mentoring"},
	}
	career := CareerProfile{
		TechnicalSkills: []string{"Go", "Kubernetes"},
		SoftSkills:      []string{"mentoring"},
	}
	weights := DefaultWeights()

	first := Score(job, prefs, career, weights)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(job, prefs, career, weights))
	}
	assert.GreaterOrEqual(t, first.Score, 0)
	assert.LessOrEqual(t, first.Score, 100)
}

func TestScore_SatisfiedSalaryNeverLowersScore(t *testing.T) {
	job := Job{SalaryMin: intPtr(130000), WorkType: "remote", Description: "Go"}
	career := CareerProfile{TechnicalSkills: []string{"Go"}}

	satisfied := Preferences{SalaryMinimum: intPtr(100000), WorkLocationPreference: "remote"}
	unsatisfied := Preferences{SalaryMinimum: intPtr(200000), WorkLocationPreference: "remote"}

	weights := Weights{FactorSalary: 30, FactorWorkLocation: 20, FactorMustHaveSkills: 50}

	withSalary := Score(job, satisfied, career, weights)
	withoutSalary := Score(job, unsatisfied, career, weights)

	assert.GreaterOrEqual(t, withSalary.Score, withoutSalary.Score)
}

func TestScore_CommuteWeightIgnored(t *testing.T) {
	job := Job{SalaryMin: intPtr(120000)}
	prefs := Preferences{SalaryMinimum: intPtr(100000)}
	weights := Weights{FactorSalary: 20, FactorCommute: 10}

	result := Score(job, prefs, CareerProfile{}, weights)

	// No commute data exists on postings, so the factor never enters the
	// denominator.
	assert.Equal(t, 100, result.Score)
	assert.NotContains(t, result.Breakdown, FactorCommute)
}
