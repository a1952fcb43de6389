package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/utils"
)

// RecordHandler wires grade submission and course record endpoints.
type RecordHandler struct {
	service service.RecordService
	logger  zerolog.Logger
}

// NewRecordHandler constructs the handler.
func NewRecordHandler(service service.RecordService, logger zerolog.Logger) *RecordHandler {
	return &RecordHandler{
		service: service,
		logger:  logger.With().Str("component", "record_handler").Logger(),
	}
}

// Register attaches record routes to the router group.
func (h *RecordHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
	router.Get("", h.listByStudent)
	router.Delete("/:id", h.delete)
}

func (h *RecordHandler) submit(c *fiber.Ctx) error {
	var payload dto.GradeSubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.SubmitGrade(c.Context(), payload)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to submit grade")
	}

	status := fiber.StatusOK
	if result.Outcome == dto.RecordOutcomeCreated {
		status = fiber.StatusCreated
	}

	return utils.SendSuccessWithStatus(c, status, "grade "+result.Outcome, result)
}

func (h *RecordHandler) listByStudent(c *fiber.Ctx) error {
	studentID := strings.TrimSpace(c.Query("student_id"))
	if studentID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "student_id query parameter is required")
	}

	records, err := h.service.ListByStudent(c.Context(), studentID)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to list records")
	}

	return utils.SendSuccess(c, "records retrieved", records)
}

func (h *RecordHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to delete record")
	}

	return utils.SendSuccess(c, "record deleted", fiber.Map{"id": id})
}
