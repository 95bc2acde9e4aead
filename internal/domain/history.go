package domain

import (
	"fmt"
	"slices"
)

// HistoryEventKind identifies the source of a history event.
type HistoryEventKind string

const (
	// EventPolicyAdded is emitted for each policy, dated at its start.
	EventPolicyAdded HistoryEventKind = "PolicyAdded"

	// EventClaimRegistered is emitted for each claim, dated at the claim date.
	EventClaimRegistered HistoryEventKind = "ClaimRegistered"
)

// HistoryEvent is one entry of a car's history. It is derived on demand and
// never stored.
type HistoryEvent struct {
	Kind        HistoryEventKind
	Date        Date
	Description string
}

// PolicyEvent renders the history event of a policy.
func PolicyEvent(p Policy) HistoryEvent {
	return HistoryEvent{
		Kind:        EventPolicyAdded,
		Date:        p.StartDate,
		Description: fmt.Sprintf("Insurance with %s from %s to %s.", p.Provider, p.StartDate, p.EndDate),
	}
}

// ClaimEvent renders the history event of a claim. The amount is shown
// with two decimals, the scale it is stored at.
func ClaimEvent(c Claim) HistoryEvent {
	return HistoryEvent{
		Kind:        EventClaimRegistered,
		Date:        c.ClaimDate,
		Description: fmt.Sprintf("Claim for %s - '%s'.", c.Amount.StringFixed(2), c.Description),
	}
}

// BuildHistory merges policies and claims into one sequence ordered by date.
//
// Events on the same date keep their enumeration order: policy events come
// before claim events, and each source keeps the order it was given in.
func BuildHistory(policies []Policy, claims []Claim) []HistoryEvent {
	events := make([]HistoryEvent, 0, len(policies)+len(claims))

	for _, p := range policies {
		events = append(events, PolicyEvent(p))
	}

	for _, c := range claims {
		events = append(events, ClaimEvent(c))
	}

	slices.SortStableFunc(events, func(a, b HistoryEvent) int {
		return a.Date.Compare(b.Date)
	})

	return events
}
