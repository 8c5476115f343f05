package domain

import "time"

// GrantOutcome tells which branch of the upsert produced a result.
type GrantOutcome string

const (
	OutcomeCreated      GrantOutcome = "created"
	OutcomeAlreadyValid GrantOutcome = "already_valid"
	OutcomeRenewed      GrantOutcome = "renewed"
)

// AccessGrant gives a subscriber access to a service until ExpiresAt.
// There is at most one grant per (MSISDN, ServiceID) pair.
type AccessGrant struct {
	ID            uint       `json:"id"`
	MSISDN        string     `json:"msisdn"`
	ServiceID     string     `json:"service_id"`
	Context       string     `json:"ctx"`
	ExternalRef   string     `json:"ext_ref"`
	TransactionID string     `json:"transaction_id"`
	Source        string     `json:"source"`
	MNO           string     `json:"mno"`
	ExpiresAt     *time.Time `json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsValid reports whether the grant still gives access at now.
// A grant whose expiry was never computed is treated as expired.
func (g *AccessGrant) IsValid(now time.Time) bool {
	return g.ExpiresAt != nil && g.ExpiresAt.After(now)
}

// Key returns the identity of the grant.
func (g *AccessGrant) Key() GrantKey {
	return GrantKey{MSISDN: g.MSISDN, ServiceID: g.ServiceID}
}

// GrantKey identifies a grant.
type GrantKey struct {
	MSISDN    string
	ServiceID string
}

func (k GrantKey) String() string {
	return k.MSISDN + ":" + k.ServiceID
}

// GrantRequest asks to grant or renew access. It reaches the service only after validation.
type GrantRequest struct {
	MSISDN        string `json:"msisdn"`
	ServiceID     string `json:"service_id"`
	Context       string `json:"ctx"`
	ExternalRef   string `json:"ext_ref"`
	TransactionID string `json:"transaction_id"`
	Source        string `json:"source"`
	MNO           string `json:"mno"`
}

func (r GrantRequest) Key() GrantKey {
	return GrantKey{MSISDN: r.MSISDN, ServiceID: r.ServiceID}
}

// GrantUpdate holds the fields rewritten when an expired grant is renewed.
type GrantUpdate struct {
	Context       string
	ExternalRef   string
	TransactionID string
	Source        string
	MNO           string
	ExpiresAt     time.Time
	UpdatedAt     time.Time
}

// GrantFilter restricts FindAll. Empty fields match everything.
type GrantFilter struct {
	MSISDN    string `json:"msisdn" query:"msisdn"`
	ServiceID string `json:"service_id" query:"service_id"`
}

// Matches reports whether g satisfies every non-empty criterion.
func (f GrantFilter) Matches(g *AccessGrant) bool {
	if f.MSISDN != "" && g.MSISDN != f.MSISDN {
		return false
	}
	if f.ServiceID != "" && g.ServiceID != f.ServiceID {
		return false
	}
	return true
}

// IsEmpty reports whether no criterion is set.
func (f GrantFilter) IsEmpty() bool {
	return f.MSISDN == "" && f.ServiceID == ""
}
