package rest

import (
	"github.com/AzielCF/az-access/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	httpSwagger "github.com/swaggo/http-swagger"
)

// InitRestDocs serves the Swagger UI under /docs and the OpenAPI document at /docs/doc.json.
func InitRestDocs(router fiber.Router, basePath string) {
	docs.SwaggerInfo.BasePath = "/"
	if basePath != "" {
		docs.SwaggerInfo.BasePath = basePath
	}

	handler := adaptor.HTTPHandler(httpSwagger.Handler(
		httpSwagger.URL(basePath + "/docs/doc.json"),
	))
	router.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect(basePath+"/docs/index.html", fiber.StatusMovedPermanently)
	})
	router.Get("/docs/*", handler)
}
