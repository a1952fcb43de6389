package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/middleware"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/utils"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

func userEmailFromContext(c *fiber.Ctx) string {
	if v := c.Locals(middleware.LocalUserEmail); v != nil {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// respondError translates the service error taxonomy into HTTP responses.
// Every surfaced error carries a human-readable message; validation failures
// additionally carry their field-level details.
func respondError(c *fiber.Ctx, logger *zerolog.Logger, err error, fallback string) error {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		return utils.SendErrorDetails(c, fiber.StatusBadRequest, "validation failed", validationErr.Fields)
	}

	if apperr.IsNotFound(err) {
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	}

	switch {
	case errors.Is(err, service.ErrDuplicateStudent),
		errors.Is(err, service.ErrDuplicateStudentEmail),
		errors.Is(err, service.ErrDuplicateCourseCode),
		errors.Is(err, service.ErrDuplicateProgramName):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	}

	if apperr.IsPartialReconciliation(err) {
		// Distinguishable from a plain failure: the record write landed but
		// the grade sheet is now out of sync.
		logger.Error().Err(err).Msg("partial reconciliation")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.SendError(c, fiberErr.Code, fiberErr.Message)
	}

	var storeErr *apperr.StoreError
	if errors.As(err, &storeErr) {
		logger.Error().Err(err).Msg("store failure")
		return utils.SendError(c, fiber.StatusBadGateway, "document store unavailable")
	}

	logger.Error().Err(err).Msg(fallback)
	return utils.SendError(c, fiber.StatusInternalServerError, fallback)
}
