package domain

// Policy is an insurance policy of a car. StartDate and EndDate are both
// inclusive.
type Policy struct {
	ID        int64
	CarID     int64
	Provider  string
	StartDate Date
	EndDate   Date

	// ExpirationNotified flips from false to true once, when the expiration
	// sweeper reports the policy. It is never reset.
	ExpirationNotified bool
}

// Covers reports whether date falls inside [start, end].
// An interval whose start is after its end covers nothing.
func Covers(start, end, date Date) bool {
	return !date.Before(start) && !date.After(end)
}

// Covers reports whether the policy is in force on date.
func (p Policy) Covers(date Date) bool {
	return Covers(p.StartDate, p.EndDate, date)
}

// ExpiredBefore reports whether the policy ended strictly before today.
func (p Policy) ExpiredBefore(today Date) bool {
	return p.EndDate.Before(today)
}

// AnyPolicyCovers reports whether at least one policy covers date.
// Overlapping policies are not ranked; one covering interval is enough.
func AnyPolicyCovers(policies []Policy, date Date) bool {
	for _, p := range policies {
		if p.Covers(date) {
			return true
		}
	}

	return false
}
