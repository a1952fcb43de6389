package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/utils"
)

// DashboardHandler serves the signed-in student's derived views. The student
// is resolved from the token's email claim, so tampering with path or query
// parameters cannot reach another student's data.
type DashboardHandler struct {
	students service.StudentService
	stats    service.StatsService
	logger   zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(students service.StudentService, stats service.StatsService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		students: students,
		stats:    stats,
		logger:   logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the me routes to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/profile", h.profile)
	router.Get("/stats", h.studentStats)
	router.Get("/progress", h.progress)
	router.Get("/grade-report", h.gradeReport)
	router.Get("/courses", h.courses)
}

func (h *DashboardHandler) resolveStudent(c *fiber.Ctx) (dto.StudentResponse, error) {
	email := userEmailFromContext(c)
	if email == "" {
		return dto.StudentResponse{}, fiber.NewError(fiber.StatusUnauthorized, "missing email claim")
	}
	return h.students.GetByEmail(c.Context(), email)
}

func (h *DashboardHandler) profile(c *fiber.Ctx) error {
	student, err := h.resolveStudent(c)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to resolve student")
	}

	return utils.SendSuccess(c, "profile retrieved", student)
}

func (h *DashboardHandler) studentStats(c *fiber.Ctx) error {
	student, err := h.resolveStudent(c)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to resolve student")
	}

	stats, err := h.stats.ComputeStudentStats(c.Context(), student.ID)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to compute stats")
	}

	return utils.SendSuccess(c, "stats retrieved", stats)
}

func (h *DashboardHandler) progress(c *fiber.Ctx) error {
	student, err := h.resolveStudent(c)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to resolve student")
	}

	progress, err := h.stats.Progress(c.Context(), student.ID)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to compute progress")
	}

	return utils.SendSuccess(c, "progress retrieved", progress)
}

func (h *DashboardHandler) gradeReport(c *fiber.Ctx) error {
	student, err := h.resolveStudent(c)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to resolve student")
	}

	report, err := h.stats.GradeReport(c.Context(), student.ID)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to build grade report")
	}

	return utils.SendSuccess(c, "grade report retrieved", report)
}

func (h *DashboardHandler) courses(c *fiber.Ctx) error {
	student, err := h.resolveStudent(c)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to resolve student")
	}

	courses, err := h.stats.MyCourses(c.Context(), student.ID)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to list enrolled courses")
	}

	return utils.SendSuccess(c, "courses retrieved", courses)
}
