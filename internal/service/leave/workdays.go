package leave

import "time"

// CountWorkingDays returns the number of days in [startDate, endDate]
// inclusive whose weekday is not Saturday or Sunday. Public holidays are not
// excluded; the holiday calendar is a separate resource.
func CountWorkingDays(startDate, endDate time.Time) int {
	workingDays := 0

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if date.Weekday() != time.Saturday && date.Weekday() != time.Sunday {
			workingDays++
		}
	}

	return workingDays
}

// ChargeableDays returns the days charged against the balance for a request.
// A half-day request is always charged as 1 day regardless of the date span.
func ChargeableDays(startDate, endDate time.Time, isHalfDay bool) int {
	if isHalfDay {
		return 1
	}
	return CountWorkingDays(startDate, endDate)
}
