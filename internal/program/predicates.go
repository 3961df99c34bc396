package program

import "fmt"

// Fixed business thresholds for day completion.
const (
	day3SavedJobs           = 10
	day7MessageTemplates    = 2
	day7CoffeeChatQuestions = 4
	day8ActionedJobs        = 5
	day9ActionedJobs        = 10
	day10ContactsMessaged   = 30
	day11ContactsMessaged   = 60
	day12CompleteStories    = 10
	day13PracticeEvals      = 10
)

// Snapshot is the aggregate view of a user's durable state that the per-day
// completion predicates run against. The caller loads it from storage; the
// predicates themselves are pure.
type Snapshot struct {
	TechnicalSkillCount int
	YearsExperienceSet  bool
	AccomplishmentCount int

	TargetTitleCount      int
	SalaryMinimumSet      bool
	WorkLocationSet       bool
	NonNegotiableCount    int

	SavedJobCount    int // leads still in SAVED
	ActionedJobCount int // leads moved past SAVED

	ResumeHeadlineSet    bool
	ResumeSummarySet     bool
	ResumeFirstBulletSet bool

	SchedulingLinkSet       bool
	ElevatorPitchSet        bool
	MessageTemplateCount    int
	CoffeeChatQuestionCount int

	ContactsMessagedCount int

	CompleteStarStoryCount  int // stories with all four STAR fields filled
	PracticeEvaluationCount int
}

// Eligibility is the outcome of a completion check. An ineligible day is not
// an error: state is left untouched and Requirement names what is missing.
type Eligibility struct {
	Eligible    bool   `json:"eligible"`
	Requirement string `json:"requirement,omitempty"`
}

func eligible() Eligibility { return Eligibility{Eligible: true} }

func missing(format string, args ...any) Eligibility {
	return Eligibility{Eligible: false, Requirement: fmt.Sprintf(format, args...)}
}

// CompletionCheck evaluates the completion predicate for the given day
// against the user's current aggregate state. Days 5 and 14 are trust-based
// checklists with no verifiable data and are always eligible.
func CompletionCheck(day int, s Snapshot) Eligibility {
	switch day {
	case 1:
		if s.TechnicalSkillCount < 1 {
			return missing("add at least one technical skill")
		}
		if !s.YearsExperienceSet {
			return missing("set your years of experience")
		}
		if s.AccomplishmentCount < 1 {
			return missing("add at least one accomplishment")
		}
		return eligible()
	case 2:
		if s.TargetTitleCount < 1 {
			return missing("add at least one target title")
		}
		if !s.SalaryMinimumSet {
			return missing("set your minimum salary")
		}
		if !s.WorkLocationSet {
			return missing("set your work location preference")
		}
		if s.NonNegotiableCount < 1 {
			return missing("add at least one non-negotiable")
		}
		return eligible()
	case 3:
		if s.SavedJobCount < day3SavedJobs {
			return missing("save %d jobs (%d so far)", day3SavedJobs, s.SavedJobCount)
		}
		return eligible()
	case 4:
		if !s.ResumeHeadlineSet || !s.ResumeSummarySet || !s.ResumeFirstBulletSet {
			return missing("fill in your resume headline, summary, and first bullet")
		}
		return eligible()
	case 5:
		return eligible()
	case 6:
		if !s.SchedulingLinkSet {
			return missing("add your scheduling link")
		}
		if !s.ElevatorPitchSet {
			return missing("write your elevator pitch")
		}
		return eligible()
	case 7:
		if s.MessageTemplateCount < day7MessageTemplates {
			return missing("write both outreach message templates")
		}
		if s.CoffeeChatQuestionCount < day7CoffeeChatQuestions {
			return missing("prepare %d coffee-chat questions (%d so far)",
				day7CoffeeChatQuestions, s.CoffeeChatQuestionCount)
		}
		return eligible()
	case 8:
		if s.ActionedJobCount < day8ActionedJobs {
			return missing("move %d jobs past saved (%d so far)", day8ActionedJobs, s.ActionedJobCount)
		}
		return eligible()
	case 9:
		if s.ActionedJobCount < day9ActionedJobs {
			return missing("move %d jobs past saved (%d so far)", day9ActionedJobs, s.ActionedJobCount)
		}
		return eligible()
	case 10:
		if s.ContactsMessagedCount < day10ContactsMessaged {
			return missing("message %d contacts (%d so far)", day10ContactsMessaged, s.ContactsMessagedCount)
		}
		return eligible()
	case 11:
		if s.ContactsMessagedCount < day11ContactsMessaged {
			return missing("message %d contacts (%d so far)", day11ContactsMessaged, s.ContactsMessagedCount)
		}
		return eligible()
	case 12:
		if s.CompleteStarStoryCount < day12CompleteStories {
			return missing("complete all %d STAR stories (%d so far)",
				day12CompleteStories, s.CompleteStarStoryCount)
		}
		return eligible()
	case 13:
		if s.PracticeEvaluationCount < day13PracticeEvals {
			return missing("record %d practice evaluations (%d so far)",
				day13PracticeEvals, s.PracticeEvaluationCount)
		}
		return eligible()
	case 14:
		return eligible()
	}
	return missing("day %d is not part of the program", day)
}
