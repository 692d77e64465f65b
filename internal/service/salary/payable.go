package salary

import (
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
)

// PayableDays determines how many calendar days are paid. Outside probation
// the employee is paid for presence, leave inside the free allowances, all
// special leave, holidays and paid off days; during probation only actual
// presence is paid.
func PayableDays(daysPresent int, usage LeaveUsage, allow LeaveAllowances, publicHolidays, restrictedHolidays, offSaturdays, sundays int, cfg policy.EffectiveConfig) int {
	if cfg.IsProbationary {
		return daysPresent
	}

	paidSick := usage.Sick
	if paidSick > allow.Sick {
		paidSick = allow.Sick
	}
	paidEarned := usage.Earned
	if paidEarned > allow.Earned {
		paidEarned = allow.Earned
	}

	paidLeave := int(paidSick + paidEarned + usage.Special)
	return daysPresent + paidLeave + publicHolidays + restrictedHolidays + offSaturdays + sundays
}
