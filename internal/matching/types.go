// Package matching computes weighted compatibility scores between job leads
// and a user's stated preferences and career profile.
package matching

// Factor names recognized by the scoring engine. Weights for unknown factor
// names are ignored.
const (
	FactorSalary           = "salary"
	FactorWorkLocation     = "workLocation"
	FactorCommute          = "commute"
	FactorMustHaveSkills   = "mustHaveSkills"
	FactorNiceToHaveSkills = "niceToHaveSkills"
	FactorNonNegotiables   = "nonNegotiables"
	FactorResponsibilities = "responsibilities"
)

// Job is the subset of a job lead the scoring engine evaluates. Optional
// fields use pointers; a nil pointer means "not provided".
type Job struct {
	Title       string
	Company     string
	SalaryMin   *int
	SalaryMax   *int
	Location    string
	WorkType    string // remote, hybrid, onsite, flexible
	Description string
}

// Preferences holds the user's stated job preferences.
type Preferences struct {
	SalaryMinimum           *int
	WorkLocationPreference  string // empty means no preference
	MaxCommuteMinutes       *int
	NonNegotiables          []string // dealbreaker terms
	WantedResponsibilities  []string
	AvoidedResponsibilities []string
}

// CareerProfile holds the user's skill inventory.
type CareerProfile struct {
	TechnicalSkills []string
	SoftSkills      []string
	Tools           []string
}

// Weights maps factor name to an integer weight. Callers are expected to
// supply weights summing to 100 across the recognized factors, but the engine
// normalizes by the total evaluable weight so any sparse map produces a
// 0-100 score.
type Weights map[string]int

// DefaultWeights returns the standard 100-point factor split.
func DefaultWeights() Weights {
	return Weights{
		FactorSalary:           20,
		FactorWorkLocation:     15,
		FactorMustHaveSkills:   25,
		FactorNiceToHaveSkills: 10,
		FactorNonNegotiables:   20,
		FactorResponsibilities: 10,
	}
}

// Result is the outcome of scoring one job against one profile pair.
// Breakdown contains an entry only for factors that were actually evaluated;
// skipped factors are absent, not false.
type Result struct {
	Score     int             `json:"score"`
	Breakdown map[string]bool `json:"breakdown"`
}
