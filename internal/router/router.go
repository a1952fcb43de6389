package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/siakad-go-api/internal/config"
	"github.com/noah-isme/siakad-go-api/internal/handler"
	"github.com/noah-isme/siakad-go-api/internal/middleware"
	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler   *handler.StudentHandler
	CourseHandler    *handler.CourseHandler
	ProgramHandler   *handler.ProgramHandler
	RecordHandler    *handler.RecordHandler
	DashboardHandler *handler.DashboardHandler
	AdminUserHandler *handler.AdminUserHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Management
// routes require an admin role; the me group only requires a valid token.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	if deps.StudentHandler != nil {
		students := api.Group("/students", jwtMiddleware, adminOnly)
		deps.StudentHandler.Register(students)
	}

	if deps.CourseHandler != nil {
		courses := api.Group("/courses", jwtMiddleware, adminOnly)
		deps.CourseHandler.Register(courses)
	}

	if deps.ProgramHandler != nil {
		programs := api.Group("/programs", jwtMiddleware, adminOnly)
		deps.ProgramHandler.Register(programs)
	}

	if deps.RecordHandler != nil {
		records := api.Group("/records", jwtMiddleware, adminOnly)
		deps.RecordHandler.Register(records)
	}

	if deps.AdminUserHandler != nil {
		users := api.Group("/admin/users", jwtMiddleware, adminOnly)
		deps.AdminUserHandler.Register(users)
	}

	if deps.DashboardHandler != nil {
		me := api.Group("/me", jwtMiddleware)
		deps.DashboardHandler.Register(me)
	}
}
