package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/utils"
)

// AdminUserHandler wires user account administration endpoints.
type AdminUserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewAdminUserHandler constructs the handler.
func NewAdminUserHandler(service service.UserService, logger zerolog.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_user_handler").Logger(),
	}
}

// Register attaches user administration routes to the router group.
func (h *AdminUserHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:uid", h.get)
	router.Put("/:uid", h.update)
	router.Delete("/:uid", h.deactivate)
}

func (h *AdminUserHandler) list(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to list users")
	}

	return utils.SendSuccess(c, "users retrieved", users)
}

func (h *AdminUserHandler) get(c *fiber.Ctx) error {
	user, err := h.service.Get(c.Context(), c.Params("uid"))
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to fetch user")
	}

	return utils.SendSuccess(c, "user retrieved", user)
}

func (h *AdminUserHandler) update(c *fiber.Ctx) error {
	var payload dto.UserUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Context(), c.Params("uid"), payload)
	if err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to update user")
	}

	return utils.SendSuccess(c, "user updated", user)
}

func (h *AdminUserHandler) deactivate(c *fiber.Ctx) error {
	uid := c.Params("uid")
	if err := h.service.Deactivate(c.Context(), uid); err != nil {
		return respondError(c, requestLogger(h.logger, c), err, "failed to deactivate user")
	}

	return utils.SendSuccess(c, "user deactivated", fiber.Map{"uid": uid})
}
