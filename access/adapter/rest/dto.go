package rest

import (
	"time"

	"github.com/AzielCF/az-access/access/application"
	"github.com/AzielCF/az-access/access/domain"
)

// GrantRequestBody documents the POST body. It decodes straight into domain.GrantRequest.
type GrantRequestBody struct {
	MSISDN        string `json:"msisdn" example:"27831234567"`
	ServiceID     string `json:"service_id" example:"mtn_sa"`
	Context       string `json:"ctx" example:"STOP"`
	ExternalRef   string `json:"ext_ref" example:"8"`
	TransactionID string `json:"transaction_id" example:"f27e40ed-8b1c-4e1a-a5b5-a6bfb0a4e9d4"`
	Source        string `json:"source" example:"sms"`
	MNO           string `json:"mno" example:"mtn"`
}

type GrantResponse struct {
	Message   string     `json:"message" example:"New access granted for 24 hours"`
	MSISDN    string     `json:"msisdn" example:"27831234567"`
	ServiceID string     `json:"service_id" example:"mtn_sa"`
	ExpiresAt *time.Time `json:"expires_at" example:"2025-09-05T12:00:00Z"`
}

// GrantView is the list projection of a grant.
type GrantView struct {
	MSISDN    string     `json:"msisdn" example:"27831234567"`
	ServiceID string     `json:"service_id" example:"mtn_sa"`
	ExpiresAt *time.Time `json:"expires_at" example:"2025-09-05T12:00:00Z"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message" example:"Validation failed"`
	Errors  map[string][]string `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"No records found"`
}

func toGrantResponse(res *application.UpsertResult) GrantResponse {
	return GrantResponse{
		Message:   res.Message,
		MSISDN:    res.Grant.MSISDN,
		ServiceID: res.Grant.ServiceID,
		ExpiresAt: res.Grant.ExpiresAt,
	}
}

func toGrantViews(grants []*domain.AccessGrant) []GrantView {
	views := make([]GrantView, len(grants))
	for i, g := range grants {
		views[i] = GrantView{MSISDN: g.MSISDN, ServiceID: g.ServiceID, ExpiresAt: g.ExpiresAt}
	}
	return views
}
