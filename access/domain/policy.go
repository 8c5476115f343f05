package domain

import (
	"fmt"
	"time"
)

// ExpiryPolicy computes how long a grant stays valid.
type ExpiryPolicy struct {
	DurationHours int
}

func NewExpiryPolicy(durationHours int) ExpiryPolicy {
	return ExpiryPolicy{DurationHours: durationHours}
}

func (p ExpiryPolicy) Duration() time.Duration {
	return time.Duration(p.DurationHours) * time.Hour
}

// ComputeExpiry returns base + DurationHours.
func (p ExpiryPolicy) ComputeExpiry(base time.Time) time.Time {
	return base.Add(p.Duration())
}

// Label renders the duration for user facing messages, e.g. "24 hours".
func (p ExpiryPolicy) Label() string {
	if p.DurationHours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", p.DurationHours)
}

// Message returns the user facing message for an upsert outcome.
func (p ExpiryPolicy) Message(outcome GrantOutcome) string {
	switch outcome {
	case OutcomeAlreadyValid:
		return "Access already granted for " + p.Label()
	case OutcomeRenewed:
		return "Access updated for next " + p.Label()
	default:
		return "New access granted for " + p.Label()
	}
}
