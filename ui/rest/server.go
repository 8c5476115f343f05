package rest

import (
	"strings"

	accessRest "github.com/AzielCF/az-access/access/adapter/rest"
	coreconfig "github.com/AzielCF/az-access/core/config"
	"github.com/AzielCF/az-access/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewServer assembles the HTTP application. Routes hang off cfg.App.BasePath.
func NewServer(cfg *coreconfig.Config, grants *accessRest.GrantHandler, checks ...ReadinessCheck) *fiber.App {
	fiberConfig := fiber.Config{
		AppName:      "Az-Access Content Security",
		ServerHeader: "Hidden",
		Network:      "tcp",
		ErrorHandler: middleware.ErrorHandler,
	}

	if len(cfg.App.TrustedProxies) > 0 {
		fiberConfig.EnableTrustedProxyCheck = true
		fiberConfig.TrustedProxies = cfg.App.TrustedProxies
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedFor
	}

	app := fiber.New(fiberConfig)

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(cfg.App),
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            31536000,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:;",
	}))

	if cfg.App.Debug {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
		}))
	}

	var router fiber.Router = app
	if cfg.App.BasePath != "" {
		router = app.Group(cfg.App.BasePath)
	}

	InitRestHealth(router, checks...)
	InitRestDocs(router, cfg.App.BasePath)
	grants.RegisterRoutes(router)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not Found",
			"path":  c.Path(),
		})
	})

	return app
}

func corsOrigins(app coreconfig.AppConfig) string {
	origins := app.CorsAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	joined := strings.Join(origins, ", ")
	if app.BaseUrl != "" && !strings.Contains(joined, "*") && !strings.Contains(joined, app.BaseUrl) {
		joined += ", " + app.BaseUrl
	}
	return joined
}
