package matching

import (
	"math"
	"strings"
)

// Breakdown thresholds: a partial-credit factor counts as "satisfied" once
// the matched ratio clears these floors.
const (
	mustHaveSatisfiedRatio       = 0.5
	niceToHaveSatisfiedRatio     = 0.3
	responsibilitySatisfiedRatio = 0.3
)

// Score computes the weighted compatibility between a job and the user's
// preferences and career profile. It is pure and never errors: factors whose
// required inputs are missing are skipped entirely and contribute neither to
// the numerator nor the denominator, so the result is always a normalized
// 0-100 percentage over the factors that could be evaluated. If nothing is
// evaluable the score is 0 with an empty breakdown.
func Score(job Job, prefs Preferences, career CareerProfile, weights Weights) Result {
	var earned, total float64
	breakdown := make(map[string]bool)

	desc := strings.ToLower(job.Description)

	// Salary. Evaluable whenever weighted. A posting with no salary figure
	// gets half credit rather than a zero: missing data is not a mismatch.
	if w := weights[FactorSalary]; w > 0 {
		total += float64(w)
		jobSalary, hasSalary := jobSalaryFigure(job)
		switch {
		case !hasSalary:
			earned += float64(w) * 0.5
			breakdown[FactorSalary] = true
		case prefs.SalaryMinimum != nil && jobSalary >= *prefs.SalaryMinimum:
			earned += float64(w)
			breakdown[FactorSalary] = true
		default:
			breakdown[FactorSalary] = false
		}
	}

	// Work location. "flexible" or an unset preference accepts anything.
	// Remote-seeker vs hybrid posting is a near miss worth half credit.
	if w := weights[FactorWorkLocation]; w > 0 {
		total += float64(w)
		pref := strings.ToLower(strings.TrimSpace(prefs.WorkLocationPreference))
		jobType := strings.ToLower(strings.TrimSpace(job.WorkType))
		switch {
		case pref == "" || pref == "flexible" || pref == jobType:
			earned += float64(w)
			breakdown[FactorWorkLocation] = true
		case pref == "remote" && jobType == "hybrid":
			earned += float64(w) * 0.5
			breakdown[FactorWorkLocation] = false
		default:
			breakdown[FactorWorkLocation] = false
		}
	}

	// Must-have skills: technical skills and tools matched against the
	// description by case-insensitive substring.
	if w := weights[FactorMustHaveSkills]; w > 0 && desc != "" {
		skills := append(append([]string{}, career.TechnicalSkills...), career.Tools...)
		if len(skills) > 0 {
			total += float64(w)
			ratio := matchRatio(skills, desc)
			earned += float64(w) * ratio
			breakdown[FactorMustHaveSkills] = ratio >= mustHaveSatisfiedRatio
		}
	}

	// Nice-to-have (soft) skills.
	if w := weights[FactorNiceToHaveSkills]; w > 0 && desc != "" && len(career.SoftSkills) > 0 {
		total += float64(w)
		ratio := matchRatio(career.SoftSkills, desc)
		earned += float64(w) * ratio
		breakdown[FactorNiceToHaveSkills] = ratio >= niceToHaveSatisfiedRatio
	}

	// Non-negotiables: full credit only when no dealbreaker term appears.
	if w := weights[FactorNonNegotiables]; w > 0 && desc != "" && len(prefs.NonNegotiables) > 0 {
		total += float64(w)
		if countMatches(prefs.NonNegotiables, desc) == 0 {
			earned += float64(w)
			breakdown[FactorNonNegotiables] = true
		} else {
			breakdown[FactorNonNegotiables] = false
		}
	}

	// Wanted responsibilities.
	if w := weights[FactorResponsibilities]; w > 0 && desc != "" && len(prefs.WantedResponsibilities) > 0 {
		total += float64(w)
		ratio := matchRatio(prefs.WantedResponsibilities, desc)
		earned += float64(w) * ratio
		breakdown[FactorResponsibilities] = ratio >= responsibilitySatisfiedRatio
	}

	if total == 0 {
		return Result{Score: 0, Breakdown: breakdown}
	}

	return Result{
		Score:     int(math.Round(100 * earned / total)),
		Breakdown: breakdown,
	}
}

// jobSalaryFigure returns the figure used for salary comparison: the posted
// maximum when present, otherwise the minimum.
func jobSalaryFigure(job Job) (int, bool) {
	if job.SalaryMax != nil {
		return *job.SalaryMax, true
	}
	if job.SalaryMin != nil {
		return *job.SalaryMin, true
	}
	return 0, false
}

// matchRatio returns the fraction of terms present in text as a
// case-insensitive substring. Blank terms are skipped.
func matchRatio(terms []string, text string) float64 {
	counted := 0
	matched := 0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		counted++
		if strings.Contains(text, t) {
			matched++
		}
	}
	if counted == 0 {
		return 0
	}
	return float64(matched) / float64(counted)
}

// countMatches returns how many terms appear in text.
func countMatches(terms []string, text string) int {
	n := 0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" && strings.Contains(text, t) {
			n++
		}
	}
	return n
}
