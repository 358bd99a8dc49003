package api

import (
	"voxdocs/docs"
	"voxdocs/internal/api/handlers"
	"voxdocs/pkg/auth"
	"voxdocs/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	askHandler *handlers.AskHandler,
	speechHandler *handlers.SpeechHandler,
	secretHandler *handlers.SecretHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the API documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	v1.Post("/ask", askHandler.Ask)
	v1.Post("/secrets", secretHandler.GetSecret)

	// Synthesis-only endpoint requires a caller identity
	v1.Post("/speech", middleware.AuthMiddleware(jwtManager, appLogger), speechHandler.Synthesize)

	return app
}
