package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	statusOK       = "OK"
	statusError    = "ERROR"
	statusDisabled = "DISABLED"
)

// ReadinessCheck probes one dependency. A nil Check reports the dependency as disabled.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-09-04T12:00:00Z"`
	Message   string `json:"message" example:"API is healthy and running"`
}

type ReadinessResponse struct {
	Status string            `json:"status" example:"OK"`
	Checks map[string]string `json:"checks"`
}

type Health struct {
	checks  []ReadinessCheck
	timeout time.Duration
	now     func() time.Time
}

func InitRestHealth(router fiber.Router, checks ...ReadinessCheck) Health {
	handler := Health{
		checks:  checks,
		timeout: 2 * time.Second,
		now:     func() time.Time { return time.Now().UTC() },
	}

	group := router.Group("/health")
	group.Get("/", handler.GetStatus)
	group.Get("/ready", handler.GetReadiness)

	return handler
}

// GetStatus godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health [get]
func (h *Health) GetStatus(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    statusOK,
		Timestamp: h.now().Format(time.RFC3339),
		Message:   "API is healthy and running",
	})
}

// GetReadiness godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  ReadinessResponse
// @Failure  503  {object}  ReadinessResponse
// @Router   /health/ready [get]
func (h *Health) GetReadiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	res := ReadinessResponse{Status: statusOK, Checks: make(map[string]string, len(h.checks))}
	for _, check := range h.checks {
		if check.Check == nil {
			res.Checks[check.Name] = statusDisabled
			continue
		}
		if err := check.Check(ctx); err != nil {
			logrus.WithError(err).Warnf("[HEALTH] %s is not ready", check.Name)
			res.Checks[check.Name] = statusError
			res.Status = statusError
			continue
		}
		res.Checks[check.Name] = statusOK
	}

	if res.Status != statusOK {
		return c.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return c.JSON(res)
}
