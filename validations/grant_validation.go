package validations

import (
	"context"
	"regexp"
	"strings"

	"github.com/AzielCF/az-access/access/domain"
	"github.com/AzielCF/az-access/core/config"
	pkgError "github.com/AzielCF/az-access/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MSISDNPattern accepts South African numbers in international form: 27 followed by 9 digits.
var MSISDNPattern = regexp.MustCompile(`^27\d{9}$`)

const (
	msgMSISDN         = "must be 27 followed by 9 digits"
	msgFilterCriteria = "msisdn or service_id is required"
)

// GrantValidator holds the request schema. The enumerated field and its codes come from config.
type GrantValidator struct {
	enumField string
	allowed   []interface{}
	codes     string
}

func NewGrantValidator(cfg config.AccessConfig) *GrantValidator {
	codes := cfg.AllowedCodes
	if len(codes) == 0 {
		codes = config.DefaultAllowedCodes
	}
	allowed := make([]interface{}, len(codes))
	for i, c := range codes {
		allowed[i] = c
	}

	field := cfg.EnumField
	if field != config.EnumFieldMNO {
		field = config.EnumFieldServiceID
	}

	return &GrantValidator{enumField: field, allowed: allowed, codes: strings.Join(codes, ", ")}
}

func (v *GrantValidator) EnumField() string {
	return v.enumField
}

func (v *GrantValidator) codeRules(field string, max int) []validation.Rule {
	rules := []validation.Rule{validation.Required, validation.Length(1, max)}
	if field == v.enumField {
		rules = append(rules, validation.In(v.allowed...).Error("must be one of: "+v.codes))
	}
	return rules
}

// ValidateGrant checks a grant request; every field is required.
func (v *GrantValidator) ValidateGrant(ctx context.Context, request domain.GrantRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.MSISDN, validation.Required, validation.Match(MSISDNPattern).Error(msgMSISDN)),
		validation.Field(&request.ServiceID, v.codeRules(config.EnumFieldServiceID, 64)...),
		validation.Field(&request.Context, validation.Required, validation.Length(1, 255)),
		validation.Field(&request.ExternalRef, validation.Required, validation.Length(1, 255)),
		validation.Field(&request.TransactionID, validation.Required, validation.Length(1, 255)),
		validation.Field(&request.Source, validation.Required, validation.Length(1, 255)),
		validation.Field(&request.MNO, v.codeRules(config.EnumFieldMNO, 64)...),
	)
	if err != nil {
		return pkgError.FromOzzo(err)
	}
	return nil
}

// ValidateFilter requires at least one criterion and a well formed msisdn when given.
func ValidateFilter(ctx context.Context, filter domain.GrantFilter) error {
	err := validation.ValidateStructWithContext(ctx, &filter,
		validation.Field(&filter.MSISDN,
			validation.When(filter.ServiceID == "", validation.Required.Error(msgFilterCriteria)),
			validation.Match(MSISDNPattern).Error(msgMSISDN),
		),
		validation.Field(&filter.ServiceID,
			validation.When(filter.MSISDN == "", validation.Required.Error(msgFilterCriteria)),
		),
	)
	if err != nil {
		return pkgError.FromOzzo(err)
	}
	return nil
}

// ValidateMSISDN checks a bare subscriber number.
func ValidateMSISDN(msisdn string) error {
	err := validation.Validate(msisdn, validation.Required, validation.Match(MSISDNPattern).Error(msgMSISDN))
	if err != nil {
		return pkgError.NewValidationError("msisdn", err.Error())
	}
	return nil
}
