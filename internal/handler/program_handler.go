package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/utils"
)

// ProgramHandler wires study program endpoints.
type ProgramHandler struct {
	service service.ProgramService
	logger  zerolog.Logger
}

// NewProgramHandler constructs the handler.
func NewProgramHandler(service service.ProgramService, logger zerolog.Logger) *ProgramHandler {
	return &ProgramHandler{
		service: service,
		logger:  logger.With().Str("component", "program_handler").Logger(),
	}
}

// Register attaches program routes to the router group.
func (h *ProgramHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:name", h.get)
	router.Put("/:name", h.update)
	router.Delete("/:name", h.delete)
}

func (h *ProgramHandler) create(c *fiber.Ctx) error {
	var payload dto.ProgramCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	program, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to create program")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "program created", program)
}

func (h *ProgramHandler) list(c *fiber.Ctx) error {
	programs, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to list programs")
	}

	return utils.SendSuccess(c, "programs retrieved", programs)
}

func (h *ProgramHandler) get(c *fiber.Ctx) error {
	program, err := h.service.Get(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to fetch program")
	}

	return utils.SendSuccess(c, "program retrieved", program)
}

func (h *ProgramHandler) update(c *fiber.Ctx) error {
	var payload dto.ProgramUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	program, err := h.service.Update(c.Context(), c.Params("name"), payload)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to update program")
	}

	return utils.SendSuccess(c, "program updated", program)
}

func (h *ProgramHandler) delete(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.Delete(c.Context(), name); err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to delete program")
	}

	return utils.SendSuccess(c, "program deleted", fiber.Map{"name": name})
}
