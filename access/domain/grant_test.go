package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryPolicy_ComputeExpiry(t *testing.T) {
	base := time.Date(2025, 9, 4, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC), NewExpiryPolicy(24).ComputeExpiry(base))
	assert.Equal(t, time.Date(2025, 9, 4, 13, 0, 0, 0, time.UTC), NewExpiryPolicy(1).ComputeExpiry(base))
	assert.Equal(t, 72*time.Hour, NewExpiryPolicy(72).Duration())
}

func TestExpiryPolicy_Messages(t *testing.T) {
	p := NewExpiryPolicy(24)
	assert.Equal(t, "New access granted for 24 hours", p.Message(OutcomeCreated))
	assert.Equal(t, "Access already granted for 24 hours", p.Message(OutcomeAlreadyValid))
	assert.Equal(t, "Access updated for next 24 hours", p.Message(OutcomeRenewed))

	assert.Equal(t, "New access granted for 1 hour", NewExpiryPolicy(1).Message(OutcomeCreated))
}

func TestAccessGrant_IsValid(t *testing.T) {
	now := time.Date(2025, 9, 4, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.True(t, (&AccessGrant{ExpiresAt: &future}).IsValid(now))
	assert.False(t, (&AccessGrant{ExpiresAt: &past}).IsValid(now))
	assert.False(t, (&AccessGrant{ExpiresAt: &now}).IsValid(now), "expiry equal to now is expired")
	assert.False(t, (&AccessGrant{}).IsValid(now), "missing expiry is expired")
}

func TestGrantFilter_Matches(t *testing.T) {
	g := &AccessGrant{MSISDN: "27831234567", ServiceID: "mtn_sa"}

	assert.True(t, GrantFilter{}.Matches(g))
	assert.True(t, GrantFilter{MSISDN: "27831234567"}.Matches(g))
	assert.True(t, GrantFilter{ServiceID: "mtn_sa"}.Matches(g))
	assert.True(t, GrantFilter{MSISDN: "27831234567", ServiceID: "mtn_sa"}.Matches(g))
	assert.False(t, GrantFilter{MSISDN: "27831234567", ServiceID: "cell_sa"}.Matches(g))
	assert.False(t, GrantFilter{MSISDN: "27000000000"}.Matches(g))

	assert.True(t, GrantFilter{}.IsEmpty())
	assert.False(t, GrantFilter{ServiceID: "mtn_sa"}.IsEmpty())
}

func TestGrantKey_String(t *testing.T) {
	assert.Equal(t, "27831234567:mtn_sa", GrantRequest{MSISDN: "27831234567", ServiceID: "mtn_sa"}.Key().String())
}
