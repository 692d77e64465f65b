package policy

import "time"

// InProbation reports whether an employee is still inside the probation
// window at the given instant. A nil joining date is treated conservatively
// as probationary. This is the single probation call site in the codebase:
// the config resolver evaluates it and everything downstream reads
// EffectiveConfig.IsProbationary.
func InProbation(joiningDate *time.Time, probationPeriodDays int, now time.Time) bool {
	if joiningDate == nil {
		return true
	}
	return now.Before(joiningDate.AddDate(0, 0, probationPeriodDays))
}
