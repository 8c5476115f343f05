package rest

import (
	"errors"

	"github.com/AzielCF/az-access/access/application"
	"github.com/AzielCF/az-access/access/domain"
	pkgError "github.com/AzielCF/az-access/pkg/error"
	"github.com/AzielCF/az-access/validations"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const msgNoRecords = "No records found"

// GrantHandler serves the content-security endpoints.
type GrantHandler struct {
	service   *application.GrantService
	validator *validations.GrantValidator
}

func NewGrantHandler(service *application.GrantService, validator *validations.GrantValidator) *GrantHandler {
	return &GrantHandler{service: service, validator: validator}
}

func (h *GrantHandler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/content-security")

	group.Post("/", h.Upsert)
	group.Get("/", h.List)
	group.Get("/filter", h.Filter)
	group.Get("/msisdn/:msisdn", h.ListBySubscriber)
}

// Upsert godoc
// @Summary      Grant or renew access
// @Description  Creates a grant, keeps a still valid one, or renews an expired one.
// @Tags         content-security
// @Accept       json
// @Produce      json
// @Param        request  body      GrantRequestBody  true  "Grant request"
// @Success      201      {object}  GrantResponse
// @Failure      400      {object}  ValidationErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /content-security [post]
func (h *GrantHandler) Upsert(c *fiber.Ctx) error {
	var req domain.GrantRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, pkgError.NewValidationError("body", "must be a valid JSON object"))
	}

	if err := h.validator.ValidateGrant(c.UserContext(), req); err != nil {
		return writeError(c, err)
	}

	res, err := h.service.Upsert(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toGrantResponse(res))
}

// List godoc
// @Summary      List grants
// @Tags         content-security
// @Produce      json
// @Success      200  {array}   GrantView
// @Failure      500  {object}  ErrorResponse
// @Router       /content-security [get]
func (h *GrantHandler) List(c *fiber.Ctx) error {
	grants, err := h.service.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toGrantViews(grants))
}

// Filter godoc
// @Summary      Filter grants
// @Description  Matches every given criterion. At least one is required.
// @Tags         content-security
// @Produce      json
// @Param        msisdn      query     string  false  "Subscriber MSISDN"
// @Param        service_id  query     string  false  "Service code"
// @Success      200         {array}   GrantView
// @Failure      400         {object}  ValidationErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /content-security/filter [get]
func (h *GrantHandler) Filter(c *fiber.Ctx) error {
	filter := domain.GrantFilter{
		MSISDN:    c.Query("msisdn"),
		ServiceID: c.Query("service_id"),
	}

	if err := validations.ValidateFilter(c.UserContext(), filter); err != nil {
		return writeError(c, err)
	}

	grants, err := h.service.Filter(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return writeGrants(c, grants)
}

// ListBySubscriber godoc
// @Summary      List grants of a subscriber
// @Tags         content-security
// @Produce      json
// @Param        msisdn  path      string  true  "Subscriber MSISDN"
// @Success      200     {array}   GrantView
// @Failure      400     {object}  ValidationErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /content-security/msisdn/{msisdn} [get]
func (h *GrantHandler) ListBySubscriber(c *fiber.Ctx) error {
	msisdn := c.Params("msisdn")
	if err := validations.ValidateMSISDN(msisdn); err != nil {
		return writeError(c, err)
	}

	grants, err := h.service.ListBySubscriber(c.UserContext(), msisdn)
	if err != nil {
		return writeError(c, err)
	}
	return writeGrants(c, grants)
}

func writeGrants(c *fiber.Ctx, grants []*domain.AccessGrant) error {
	if len(grants) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: msgNoRecords})
	}
	return c.JSON(toGrantViews(grants))
}

// writeError renders validation failures as 400 and everything else as 500.
func writeError(c *fiber.Ctx, err error) error {
	var vErr pkgError.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(vErr.StatusCode()).JSON(ValidationErrorResponse{
			Message: pkgError.ValidationMessage,
			Errors:  vErr.Fields,
		})
	case errors.Is(err, domain.ErrFilterCriteriaRequired):
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Message: pkgError.ValidationMessage,
			Errors:  map[string][]string{"filter": {err.Error()}},
		})
	}

	logrus.WithError(err).WithField("path", c.Path()).Error("[ACCESS] Request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
}
